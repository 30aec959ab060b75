package usecase

import (
	"context"
	"encoding/hex"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	domainErrors "github.com/kdelarosa/deliverytrack/internal/domain/errors"
	"github.com/kdelarosa/deliverytrack/internal/domain/model"
	"github.com/kdelarosa/deliverytrack/internal/domain/repository"
)

const (
	defaultDeliveryCity = "Manila"
	defaultCreatedBy    = "System"
	orderNumberPrefix   = "ORD-"
)

// OrderUseCase encapsulates the order lifecycle: creation defaults,
// projection validation and the status-update cross-field rule.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// NewOrderNumber generates a server-side order number: "ORD-" followed by
// eight upper-case hex characters.
func NewOrderNumber() string {
	id := uuid.New()
	return orderNumberPrefix + strings.ToUpper(hex.EncodeToString(id[:4]))
}

// Create validates the creation projection, applies entity defaults and
// persists a new PENDING order with a generated order number.
func (u *OrderUseCase) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	errs := domainErrors.FieldErrors{}
	checkRequiredText(errs, "customer_name", order.CustomerName)
	if utf8.RuneCountInString(order.CustomerName) > maxCustomerName {
		errs.Add("customer_name", msgNameTooLong)
	}
	if checkRequiredText(errs, "phone_number", order.PhoneNumber) {
		for _, msg := range ValidatePhoneNumber(order.PhoneNumber) {
			errs.Add("phone_number", msg)
		}
	}
	checkRequiredText(errs, "delivery_address", order.DeliveryAddress)
	if !errs.Empty() {
		return nil, errs
	}

	if order.DeliveryCity == "" {
		order.DeliveryCity = defaultDeliveryCity
	}
	if order.CreatedBy == "" {
		order.CreatedBy = defaultCreatedBy
	}
	order.Status = model.OrderStatusPending
	order.OrderNumber = NewOrderNumber()

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, domainErrors.FieldErrors{
				"order_number": {"order with this order number already exists"},
			}
		}
		return nil, err
	}
	return created, nil
}

// Get returns a single order by id.
func (u *OrderUseCase) Get(ctx context.Context, id int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// List returns orders matching the filter, newest first. The status filter
// is upper-cased before the exact match.
func (u *OrderUseCase) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	if filter.Status != "" {
		filter.Status = model.NormalizeStatus(string(filter.Status))
	}
	return u.orders.List(ctx, filter)
}

// ListByDriver returns orders whose assigned driver contains the given name.
func (u *OrderUseCase) ListByDriver(ctx context.Context, driver string) ([]model.Order, error) {
	return u.orders.List(ctx, model.OrderFilter{Driver: driver})
}

// ListByStatus returns orders with exactly the given status (upper-cased).
func (u *OrderUseCase) ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	return u.orders.List(ctx, model.OrderFilter{Status: model.NormalizeStatus(string(status))})
}

// Search matches the query as a case-insensitive substring against customer
// name, order number, delivery address and phone number.
func (u *OrderUseCase) Search(ctx context.Context, query string) ([]model.Order, error) {
	return u.orders.Search(ctx, query)
}

// Update applies the full projection to an existing order. With partial set,
// only supplied fields are validated and written; otherwise the required
// fields must be present. The delivery-time requirement for DELIVERED does
// not apply here; only UpdateStatus enforces it.
func (u *OrderUseCase) Update(ctx context.Context, id int64, patch model.OrderPatch, partial bool) (*model.Order, error) {
	existing, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	errs := domainErrors.FieldErrors{}
	if !partial {
		if patch.CustomerName == nil {
			errs.Add("customer_name", msgRequired)
		}
		if patch.PhoneNumber == nil {
			errs.Add("phone_number", msgRequired)
		}
		if patch.DeliveryAddress == nil {
			errs.Add("delivery_address", msgRequired)
		}
	}
	if patch.CustomerName != nil {
		if checkBlankText(errs, "customer_name", *patch.CustomerName) &&
			utf8.RuneCountInString(*patch.CustomerName) > maxCustomerName {
			errs.Add("customer_name", msgNameTooLong)
		}
	}
	if patch.CustomerEmail != nil && *patch.CustomerEmail != "" && !validEmail(*patch.CustomerEmail) {
		errs.Add("customer_email", msgEmail)
	}
	if patch.PhoneNumber != nil {
		if checkBlankText(errs, "phone_number", *patch.PhoneNumber) {
			for _, msg := range ValidatePhoneNumber(*patch.PhoneNumber) {
				errs.Add("phone_number", msg)
			}
		}
	}
	if patch.DeliveryAddress != nil {
		checkBlankText(errs, "delivery_address", *patch.DeliveryAddress)
	}
	if patch.DeliveryPostalCode != nil && utf8.RuneCountInString(*patch.DeliveryPostalCode) > maxPostalCode {
		errs.Add("delivery_postal_code", msgPostalTooLong)
	}
	if patch.Status != nil && !model.ValidStatus(*patch.Status) {
		errs.Add("order_status", msgInvalidStatus())
	}
	validateTracking(errs, patch.DeliveryPhotoURL, patch.CurrentLatitude, patch.CurrentLongitude)
	if !errs.Empty() {
		return nil, errs
	}

	updated := *existing
	if patch.CustomerName != nil {
		updated.CustomerName = *patch.CustomerName
	}
	updated.CustomerEmail = applyNullable(updated.CustomerEmail, patch.CustomerEmail)
	if patch.PhoneNumber != nil {
		updated.PhoneNumber = *patch.PhoneNumber
	}
	if patch.DeliveryAddress != nil {
		updated.DeliveryAddress = *patch.DeliveryAddress
	}
	if patch.DeliveryCity != nil {
		updated.DeliveryCity = *patch.DeliveryCity
	}
	updated.DeliveryPostalCode = applyNullable(updated.DeliveryPostalCode, patch.DeliveryPostalCode)
	updated.OrderDescription = applyNullable(updated.OrderDescription, patch.OrderDescription)
	if patch.Status != nil {
		updated.Status = *patch.Status
	}
	updated.AssignedDriver = applyNullable(updated.AssignedDriver, patch.AssignedDriver)
	updated.DriverNotes = applyNullable(updated.DriverNotes, patch.DriverNotes)
	if patch.PickupTime != nil {
		updated.PickupTime = patch.PickupTime
	}
	if patch.DeliveryTime != nil {
		updated.DeliveryTime = patch.DeliveryTime
	}
	if patch.CurrentLatitude != nil {
		updated.CurrentLatitude = patch.CurrentLatitude
	}
	if patch.CurrentLongitude != nil {
		updated.CurrentLongitude = patch.CurrentLongitude
	}
	updated.DeliveryPhotoURL = applyNullable(updated.DeliveryPhotoURL, patch.DeliveryPhotoURL)
	if patch.CreatedBy != nil {
		updated.CreatedBy = *patch.CreatedBy
	}

	return u.orders.Update(ctx, &updated)
}

// UpdateStatus applies the driver status projection. Marking the order
// DELIVERED requires a delivery time in the patch or already on the record.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id int64, patch model.StatusPatch) (*model.Order, error) {
	existing, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	errs := domainErrors.FieldErrors{}
	if patch.Status != nil && !model.ValidStatus(*patch.Status) {
		errs.Add("order_status", msgInvalidStatus())
	}
	if patch.Status != nil && *patch.Status == model.OrderStatusDelivered &&
		patch.DeliveryTime == nil && existing.DeliveryTime == nil {
		errs.Add("delivery_time", msgDeliveryTime)
	}
	validateTracking(errs, patch.DeliveryPhotoURL, patch.CurrentLatitude, patch.CurrentLongitude)
	if !errs.Empty() {
		return nil, errs
	}

	updated := *existing
	if patch.Status != nil {
		updated.Status = *patch.Status
	}
	updated.DriverNotes = applyNullable(updated.DriverNotes, patch.DriverNotes)
	if patch.CurrentLatitude != nil {
		updated.CurrentLatitude = patch.CurrentLatitude
	}
	if patch.CurrentLongitude != nil {
		updated.CurrentLongitude = patch.CurrentLongitude
	}
	updated.DeliveryPhotoURL = applyNullable(updated.DeliveryPhotoURL, patch.DeliveryPhotoURL)
	if patch.PickupTime != nil {
		updated.PickupTime = patch.PickupTime
	}
	if patch.DeliveryTime != nil {
		updated.DeliveryTime = patch.DeliveryTime
	}

	return u.orders.Update(ctx, &updated)
}

// Delete removes the order.
func (u *OrderUseCase) Delete(ctx context.Context, id int64) error {
	return u.orders.Delete(ctx, id)
}

func validateTracking(errs domainErrors.FieldErrors, photoURL *string, lat, lng *float64) {
	if photoURL != nil && *photoURL != "" && !validURL(*photoURL) {
		errs.Add("delivery_photo_url", msgURL)
	}
	if lat != nil && !validCoordinate(*lat) {
		errs.Add("current_latitude", msgCoordinate)
	}
	if lng != nil && !validCoordinate(*lng) {
		errs.Add("current_longitude", msgCoordinate)
	}
}

// checkRequiredText records a required-field error for empty values and
// reports whether further checks should run.
func checkRequiredText(errs domainErrors.FieldErrors, field, value string) bool {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, msgRequired)
		return false
	}
	return true
}

func checkBlankText(errs domainErrors.FieldErrors, field, value string) bool {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, msgBlank)
		return false
	}
	return true
}

// applyNullable keeps the current value when the patch omits the field and
// clears it when the patch carries an empty string.
func applyNullable(current, patched *string) *string {
	if patched == nil {
		return current
	}
	if *patched == "" {
		return nil
	}
	return patched
}
