package app

import (
	"context"

	"github.com/kdelarosa/deliverytrack/internal/domain/model"
	"github.com/kdelarosa/deliverytrack/internal/usecase"
)

// DeliveryFacade aggregates the order use case behind the surface the HTTP
// layer consumes.
type DeliveryFacade struct {
	orders *usecase.OrderUseCase
}

// NewDeliveryFacade constructs DeliveryFacade.
func NewDeliveryFacade(orders *usecase.OrderUseCase) *DeliveryFacade {
	return &DeliveryFacade{orders: orders}
}

func (f *DeliveryFacade) CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	return f.orders.Create(ctx, order)
}

func (f *DeliveryFacade) Order(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *DeliveryFacade) Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	return f.orders.List(ctx, filter)
}

func (f *DeliveryFacade) OrdersByDriver(ctx context.Context, driver string) ([]model.Order, error) {
	return f.orders.ListByDriver(ctx, driver)
}

func (f *DeliveryFacade) OrdersByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	return f.orders.ListByStatus(ctx, status)
}

func (f *DeliveryFacade) SearchOrders(ctx context.Context, query string) ([]model.Order, error) {
	return f.orders.Search(ctx, query)
}

func (f *DeliveryFacade) UpdateOrder(ctx context.Context, id int64, patch model.OrderPatch, partial bool) (*model.Order, error) {
	return f.orders.Update(ctx, id, patch, partial)
}

func (f *DeliveryFacade) UpdateOrderStatus(ctx context.Context, id int64, patch model.StatusPatch) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, id, patch)
}

func (f *DeliveryFacade) DeleteOrder(ctx context.Context, id int64) error {
	return f.orders.Delete(ctx, id)
}
