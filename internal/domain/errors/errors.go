package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound      = errors.New("order not found")
	ErrAlreadyExists = errors.New("already exists")
)

// FieldErrors maps a field name to the validation messages collected for it.
// It is returned by every write path that rejects a payload and serializes
// directly into the API's 400 response body.
type FieldErrors map[string][]string

// Add appends a message for the given field.
func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Empty reports whether no field collected a message.
func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

// Error renders fields in stable order for logs and test output.
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e[field], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
