package model

import (
	"strings"
	"time"
)

// OrderStatus describes the delivery lifecycle of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusAssigned  OrderStatus = "ASSIGNED"
	OrderStatusInTransit OrderStatus = "IN_TRANSIT"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Statuses lists every accepted order status in declaration order.
var Statuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusAssigned,
	OrderStatusInTransit,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// ValidStatus reports whether s is one of the five accepted statuses.
// Matching is exact: lower-case values are rejected on write paths.
func ValidStatus(s OrderStatus) bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// NormalizeStatus upper-cases a status filter value the way read paths do.
func NormalizeStatus(s string) OrderStatus {
	return OrderStatus(strings.ToUpper(s))
}

// Order describes one delivery job tracked by the system.
type Order struct {
	ID                 int64
	OrderNumber        string
	CustomerName       string
	CustomerEmail      *string
	PhoneNumber        string
	DeliveryAddress    string
	DeliveryCity       string
	DeliveryPostalCode *string
	OrderDescription   *string
	Status             OrderStatus
	AssignedDriver     *string
	DriverNotes        *string
	PickupTime         *time.Time
	DeliveryTime       *time.Time
	CurrentLatitude    *float64
	CurrentLongitude   *float64
	DeliveryPhotoURL   *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	CreatedBy          string
}

// IsDelivered reports whether the order reached its final delivered state.
func (o Order) IsDelivered() bool {
	return o.Status == OrderStatusDelivered
}

// HasDriver reports whether a driver is assigned to the order.
func (o Order) HasDriver() bool {
	return o.AssignedDriver != nil && *o.AssignedDriver != ""
}

// OrderPatch carries the writable fields of the full projection.
// Nil means "not supplied"; replace and partial update share this shape,
// replace additionally demands the required fields be present.
type OrderPatch struct {
	CustomerName       *string
	CustomerEmail      *string
	PhoneNumber        *string
	DeliveryAddress    *string
	DeliveryCity       *string
	DeliveryPostalCode *string
	OrderDescription   *string
	Status             *OrderStatus
	AssignedDriver     *string
	DriverNotes        *string
	PickupTime         *time.Time
	DeliveryTime       *time.Time
	CurrentLatitude    *float64
	CurrentLongitude   *float64
	DeliveryPhotoURL   *string
	CreatedBy          *string
}

// StatusPatch carries the driver-facing status projection fields.
type StatusPatch struct {
	Status           *OrderStatus
	DriverNotes      *string
	CurrentLatitude  *float64
	CurrentLongitude *float64
	DeliveryPhotoURL *string
	PickupTime       *time.Time
	DeliveryTime     *time.Time
}

// OrderFilter narrows the list operation. Zero values mean "no filter".
// Status matches exactly after upper-casing, Driver and City match as
// case-insensitive substrings.
type OrderFilter struct {
	Status OrderStatus
	Driver string
	City   string
}
