package app

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/kdelarosa/deliverytrack/internal/domain/errors"
	"github.com/kdelarosa/deliverytrack/internal/domain/model"
	testhelpers "github.com/kdelarosa/deliverytrack/internal/test"
	"github.com/kdelarosa/deliverytrack/internal/usecase"
)

func newFacade() (*DeliveryFacade, *testhelpers.OrderRepositoryStub) {
	repo := &testhelpers.OrderRepositoryStub{}
	return NewDeliveryFacade(usecase.NewOrderUseCase(repo)), repo
}

func TestDeliveryFacadeCreateAndRetrieve(t *testing.T) {
	facade, repo := newFacade()

	created, err := facade.CreateOrder(context.Background(), &model.Order{
		CustomerName:    "Ana Cruz",
		PhoneNumber:     "+639171234567",
		DeliveryAddress: "123 Rizal St",
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if created.Status != model.OrderStatusPending {
		t.Fatalf("expected PENDING status, got %q", created.Status)
	}
	if len(repo.Created) != 1 {
		t.Fatalf("expected one create call, got %d", len(repo.Created))
	}

	order, err := facade.Order(context.Background(), 3)
	if err != nil {
		t.Fatalf("retrieve returned error: %v", err)
	}
	if order.ID != 3 {
		t.Fatalf("expected id 3, got %d", order.ID)
	}
}

func TestDeliveryFacadeListOperations(t *testing.T) {
	facade, repo := newFacade()

	if _, err := facade.Orders(context.Background(), model.OrderFilter{Status: "pending"}); err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if repo.LastFilter.Status != model.OrderStatusPending {
		t.Fatalf("expected normalized filter, got %q", repo.LastFilter.Status)
	}

	if _, err := facade.OrdersByDriver(context.Background(), "John Smith"); err != nil {
		t.Fatalf("by driver returned error: %v", err)
	}
	if repo.LastFilter.Driver != "John Smith" {
		t.Fatalf("unexpected driver filter %q", repo.LastFilter.Driver)
	}

	if _, err := facade.OrdersByStatus(context.Background(), "delivered"); err != nil {
		t.Fatalf("by status returned error: %v", err)
	}
	if repo.LastFilter.Status != model.OrderStatusDelivered {
		t.Fatalf("unexpected status filter %q", repo.LastFilter.Status)
	}

	if _, err := facade.SearchOrders(context.Background(), "Ana"); err != nil {
		t.Fatalf("search returned error: %v", err)
	}
	if repo.LastQuery != "Ana" {
		t.Fatalf("unexpected query %q", repo.LastQuery)
	}
}

func TestDeliveryFacadeUpdateAndDelete(t *testing.T) {
	facade, repo := newFacade()

	notes := "ring the bell"
	updated, err := facade.UpdateOrder(context.Background(), 1, model.OrderPatch{DriverNotes: &notes}, true)
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.DriverNotes == nil || *updated.DriverNotes != notes {
		t.Fatalf("expected notes applied, got %v", updated.DriverNotes)
	}

	status := model.OrderStatusInTransit
	updated, err = facade.UpdateOrderStatus(context.Background(), 1, model.StatusPatch{Status: &status})
	if err != nil {
		t.Fatalf("update status returned error: %v", err)
	}
	if updated.Status != model.OrderStatusInTransit {
		t.Fatalf("expected IN_TRANSIT, got %q", updated.Status)
	}

	if err := facade.DeleteOrder(context.Background(), 4); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if len(repo.Deleted) != 1 || repo.Deleted[0] != 4 {
		t.Fatalf("unexpected delete calls %v", repo.Deleted)
	}
}

func TestDeliveryFacadePropagatesErrors(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{GetByIDFn: func(context.Context, int64) (*model.Order, error) {
		return nil, domainErrors.ErrNotFound
	}}
	facade := NewDeliveryFacade(usecase.NewOrderUseCase(repo))

	if _, err := facade.Order(context.Background(), 404); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}
