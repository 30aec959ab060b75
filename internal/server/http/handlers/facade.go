package handlers

import (
	"context"

	"github.com/kdelarosa/deliverytrack/internal/domain/model"
)

// DeliveryFacade aggregates the order operations exposed via HTTP.
type DeliveryFacade interface {
	CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error)
	Order(ctx context.Context, id int64) (*model.Order, error)
	Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error)
	OrdersByDriver(ctx context.Context, driver string) ([]model.Order, error)
	OrdersByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	SearchOrders(ctx context.Context, query string) ([]model.Order, error)
	UpdateOrder(ctx context.Context, id int64, patch model.OrderPatch, partial bool) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, patch model.StatusPatch) (*model.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}
