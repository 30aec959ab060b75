package repository

import (
	"context"

	"github.com/kdelarosa/deliverytrack/internal/domain/model"
)

// OrderRepository abstracts order persistence.
type OrderRepository interface {
	// Create inserts the order and fills in id and timestamps.
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	// GetByID returns the order or ErrNotFound.
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	// Update persists every writable column of the order and refreshes
	// updated_at. Returns ErrNotFound when the id is unknown.
	Update(ctx context.Context, order *model.Order) (*model.Order, error)
	// Delete removes the order or returns ErrNotFound.
	Delete(ctx context.Context, id int64) error
	// List returns orders matching the filter, newest first.
	List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error)
	// Search returns orders whose customer name, order number, delivery
	// address or phone number contains the query, newest first.
	Search(ctx context.Context, query string) ([]model.Order, error)
}
