package dto

import "time"

// TimeLayout is the fixed rendering of created_at/updated_at in the full view.
const TimeLayout = "2006-01-02 15:04:05"

// CreateOrderRequest is the creation projection: only the fields an office
// operator supplies. Everything else takes entity defaults.
type CreateOrderRequest struct {
	CustomerName     string  `json:"customer_name"`
	PhoneNumber      string  `json:"phone_number"`
	DeliveryAddress  string  `json:"delivery_address"`
	DeliveryCity     string  `json:"delivery_city"`
	OrderDescription *string `json:"order_description"`
	CreatedBy        string  `json:"created_by"`
}

// UpdateOrderRequest is the full projection's writable field set. Nil means
// the field was not supplied; PUT demands the required fields, PATCH does not.
type UpdateOrderRequest struct {
	CustomerName       *string    `json:"customer_name"`
	CustomerEmail      *string    `json:"customer_email"`
	PhoneNumber        *string    `json:"phone_number"`
	DeliveryAddress    *string    `json:"delivery_address"`
	DeliveryCity       *string    `json:"delivery_city"`
	DeliveryPostalCode *string    `json:"delivery_postal_code"`
	OrderDescription   *string    `json:"order_description"`
	OrderStatus        *string    `json:"order_status"`
	AssignedDriver     *string    `json:"assigned_driver"`
	DriverNotes        *string    `json:"driver_notes"`
	PickupTime         *time.Time `json:"pickup_time"`
	DeliveryTime       *time.Time `json:"delivery_time"`
	CurrentLatitude    *float64   `json:"current_latitude"`
	CurrentLongitude   *float64   `json:"current_longitude"`
	DeliveryPhotoURL   *string    `json:"delivery_photo_url"`
	CreatedBy          *string    `json:"created_by"`
}

// UpdateStatusRequest is the driver-facing status projection.
type UpdateStatusRequest struct {
	OrderStatus      *string    `json:"order_status"`
	DriverNotes      *string    `json:"driver_notes"`
	CurrentLatitude  *float64   `json:"current_latitude"`
	CurrentLongitude *float64   `json:"current_longitude"`
	DeliveryPhotoURL *string    `json:"delivery_photo_url"`
	PickupTime       *time.Time `json:"pickup_time"`
	DeliveryTime     *time.Time `json:"delivery_time"`
}

// OrderResponse is the full view of an order.
type OrderResponse struct {
	ID                 int64      `json:"id"`
	OrderNumber        string     `json:"order_number"`
	CustomerName       string     `json:"customer_name"`
	CustomerEmail      *string    `json:"customer_email"`
	PhoneNumber        string     `json:"phone_number"`
	DeliveryAddress    string     `json:"delivery_address"`
	DeliveryCity       string     `json:"delivery_city"`
	DeliveryPostalCode *string    `json:"delivery_postal_code"`
	OrderDescription   *string    `json:"order_description"`
	OrderStatus        string     `json:"order_status"`
	AssignedDriver     *string    `json:"assigned_driver"`
	DriverNotes        *string    `json:"driver_notes"`
	PickupTime         *time.Time `json:"pickup_time"`
	DeliveryTime       *time.Time `json:"delivery_time"`
	CurrentLatitude    *float64   `json:"current_latitude"`
	CurrentLongitude   *float64   `json:"current_longitude"`
	DeliveryPhotoURL   *string    `json:"delivery_photo_url"`
	CreatedAt          string     `json:"created_at"`
	UpdatedAt          string     `json:"updated_at"`
	CreatedBy          string     `json:"created_by"`
	IsDelivered        bool       `json:"is_delivered"`
	HasDriver          bool       `json:"has_driver"`
}

// OrderSummaryResponse is the lightweight view used by the list operation.
type OrderSummaryResponse struct {
	ID             int64     `json:"id"`
	OrderNumber    string    `json:"order_number"`
	CustomerName   string    `json:"customer_name"`
	DeliveryCity   string    `json:"delivery_city"`
	OrderStatus    string    `json:"order_status"`
	AssignedDriver *string   `json:"assigned_driver"`
	CreatedAt      time.Time `json:"created_at"`
}

// ListOrdersResponse wraps the list operation result.
type ListOrdersResponse struct {
	Count   int                    `json:"count"`
	Results []OrderSummaryResponse `json:"results"`
}

// DriverOrdersResponse wraps the by_driver result.
type DriverOrdersResponse struct {
	Driver string          `json:"driver"`
	Count  int             `json:"count"`
	Orders []OrderResponse `json:"orders"`
}

// StatusOrdersResponse wraps the by_status result.
type StatusOrdersResponse struct {
	Status string          `json:"status"`
	Count  int             `json:"count"`
	Orders []OrderResponse `json:"orders"`
}

// SearchOrdersResponse wraps the search result.
type SearchOrdersResponse struct {
	Query   string          `json:"query"`
	Count   int             `json:"count"`
	Results []OrderResponse `json:"results"`
}

// ErrorResponse carries a single error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}
