package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestFieldErrorsAddAndEmpty(t *testing.T) {
	errs := FieldErrors{}
	if !errs.Empty() {
		t.Fatal("expected new FieldErrors to be empty")
	}

	errs.Add("phone_number", "first")
	errs.Add("phone_number", "second")
	if errs.Empty() {
		t.Fatal("expected FieldErrors to be non-empty")
	}
	if got := errs["phone_number"]; len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("unexpected messages %v", got)
	}
}

func TestFieldErrorsErrorIsStable(t *testing.T) {
	errs := FieldErrors{}
	errs.Add("delivery_address", "This field is required.")
	errs.Add("customer_name", "This field is required.")

	want := "validation failed: customer_name: This field is required., delivery_address: This field is required."
	for i := 0; i < 10; i++ {
		if got := errs.Error(); got != want {
			t.Fatalf("unexpected rendering %q", got)
		}
	}
}

func TestFieldErrorsAsError(t *testing.T) {
	errs := FieldErrors{}
	errs.Add("customer_name", "This field may not be blank.")
	wrapped := fmt.Errorf("update order: %w", errs)

	var target FieldErrors
	if !stderrors.As(wrapped, &target) {
		t.Fatal("expected errors.As to unwrap FieldErrors")
	}
	if len(target["customer_name"]) != 1 {
		t.Fatalf("unexpected target %v", target)
	}
}
