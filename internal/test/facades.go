package test

import (
	"context"
	"time"

	"github.com/kdelarosa/deliverytrack/internal/domain/model"
)

// SampleOrder returns a fully populated order for handler and router tests.
func SampleOrder() model.Order {
	driver := "John Smith"
	email := "ana.cruz@example.com"
	return model.Order{
		ID:              1,
		OrderNumber:     "ORD-AB12CD34",
		CustomerName:    "Ana Cruz",
		CustomerEmail:   &email,
		PhoneNumber:     "+639171234567",
		DeliveryAddress: "123 Rizal St",
		DeliveryCity:    "Manila",
		Status:          model.OrderStatusPending,
		AssignedDriver:  &driver,
		CreatedAt:       time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
		CreatedBy:       "ops",
	}
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn       func(context.Context, *model.Order) (*model.Order, error)
	OrderFn        func(context.Context, int64) (*model.Order, error)
	OrdersFn       func(context.Context, model.OrderFilter) ([]model.Order, error)
	ByDriverFn     func(context.Context, string) ([]model.Order, error)
	ByStatusFn     func(context.Context, model.OrderStatus) ([]model.Order, error)
	SearchFn       func(context.Context, string) ([]model.Order, error)
	UpdateFn       func(context.Context, int64, model.OrderPatch, bool) (*model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.StatusPatch) (*model.Order, error)
	DeleteFn       func(context.Context, int64) error
}

// CreateOrder delegates to the provided function or echoes a created order.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	created := SampleOrder()
	created.CustomerName = order.CustomerName
	return &created, nil
}

// Order returns the configured order or the sample one.
func (s OrderFacadeStub) Order(ctx context.Context, id int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	order := SampleOrder()
	order.ID = id
	return &order, nil
}

// Orders returns predefined orders for the list operation.
func (s OrderFacadeStub) Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, filter)
	}
	return []model.Order{SampleOrder()}, nil
}

// OrdersByDriver returns predefined orders for the by_driver operation.
func (s OrderFacadeStub) OrdersByDriver(ctx context.Context, driver string) ([]model.Order, error) {
	if s.ByDriverFn != nil {
		return s.ByDriverFn(ctx, driver)
	}
	return []model.Order{SampleOrder()}, nil
}

// OrdersByStatus returns predefined orders for the by_status operation.
func (s OrderFacadeStub) OrdersByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	if s.ByStatusFn != nil {
		return s.ByStatusFn(ctx, status)
	}
	return []model.Order{SampleOrder()}, nil
}

// SearchOrders returns predefined orders for the search operation.
func (s OrderFacadeStub) SearchOrders(ctx context.Context, query string) ([]model.Order, error) {
	if s.SearchFn != nil {
		return s.SearchFn(ctx, query)
	}
	return []model.Order{SampleOrder()}, nil
}

// UpdateOrder executes the configured update handler.
func (s OrderFacadeStub) UpdateOrder(ctx context.Context, id int64, patch model.OrderPatch, partial bool) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, patch, partial)
	}
	order := SampleOrder()
	order.ID = id
	return &order, nil
}

// UpdateOrderStatus executes the configured status update handler.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, id int64, patch model.StatusPatch) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, patch)
	}
	order := SampleOrder()
	order.ID = id
	if patch.Status != nil {
		order.Status = *patch.Status
	}
	return &order, nil
}

// DeleteOrder executes the configured delete handler.
func (s OrderFacadeStub) DeleteOrder(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}
