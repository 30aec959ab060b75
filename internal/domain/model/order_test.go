package model

import "testing"

func TestValidStatus(t *testing.T) {
	for _, status := range Statuses {
		if !ValidStatus(status) {
			t.Fatalf("expected %s to be valid", status)
		}
	}

	invalid := []OrderStatus{"", "pending", "Delivered", "SHIPPED", "IN TRANSIT"}
	for _, status := range invalid {
		if ValidStatus(status) {
			t.Fatalf("expected %q to be invalid", status)
		}
	}
}

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		in   string
		want OrderStatus
	}{
		{"pending", OrderStatusPending},
		{"PENDING", OrderStatusPending},
		{"in_transit", OrderStatusInTransit},
		{"delivered", OrderStatusDelivered},
		{"bogus", "BOGUS"},
	}
	for _, tt := range tests {
		if got := NormalizeStatus(tt.in); got != tt.want {
			t.Fatalf("NormalizeStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOrderIsDelivered(t *testing.T) {
	order := Order{Status: OrderStatusPending}
	if order.IsDelivered() {
		t.Fatal("pending order should not be delivered")
	}
	order.Status = OrderStatusDelivered
	if !order.IsDelivered() {
		t.Fatal("delivered order should report delivered")
	}
}

func TestOrderHasDriver(t *testing.T) {
	order := Order{}
	if order.HasDriver() {
		t.Fatal("order without driver should report no driver")
	}
	empty := ""
	order.AssignedDriver = &empty
	if order.HasDriver() {
		t.Fatal("empty driver name should report no driver")
	}
	driver := "John Smith"
	order.AssignedDriver = &driver
	if !order.HasDriver() {
		t.Fatal("order with driver should report a driver")
	}
}
