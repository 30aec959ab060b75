package test

import (
	"context"
	"time"

	"github.com/kdelarosa/deliverytrack/internal/domain/model"
)

// OrderRepositoryStub allows tests to customize repository behaviour and
// records every write.
type OrderRepositoryStub struct {
	CreateFn  func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn func(context.Context, int64) (*model.Order, error)
	UpdateFn  func(context.Context, *model.Order) (*model.Order, error)
	DeleteFn  func(context.Context, int64) error
	ListFn    func(context.Context, model.OrderFilter) ([]model.Order, error)
	SearchFn  func(context.Context, string) ([]model.Order, error)

	Created    []model.Order
	Updated    []model.Order
	Deleted    []int64
	LastFilter model.OrderFilter
	LastQuery  string
}

// Create tracks the order and returns the configured response or echoes the
// input with an id and timestamps.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	s.Created = append(s.Created, *order)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	created := *order
	created.ID = int64(len(s.Created))
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	return &created, nil
}

// GetByID returns the configured order or the sample order with that id.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	order := SampleOrder()
	order.ID = id
	return &order, nil
}

// Update tracks the order and returns it with a refreshed timestamp.
func (s *OrderRepositoryStub) Update(ctx context.Context, order *model.Order) (*model.Order, error) {
	s.Updated = append(s.Updated, *order)
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, order)
	}
	updated := *order
	updated.UpdatedAt = time.Now()
	return &updated, nil
}

// Delete tracks the id.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id int64) error {
	s.Deleted = append(s.Deleted, id)
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// List records the filter and returns the configured orders.
func (s *OrderRepositoryStub) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	s.LastFilter = filter
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return []model.Order{SampleOrder()}, nil
}

// Search records the query and returns the configured orders.
func (s *OrderRepositoryStub) Search(ctx context.Context, query string) ([]model.Order, error) {
	s.LastQuery = query
	if s.SearchFn != nil {
		return s.SearchFn(ctx, query)
	}
	return []model.Order{SampleOrder()}, nil
}
