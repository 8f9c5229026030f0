// Package models holds the typed entities exchanged with the inventory
// backend. Payloads are decoded into these structs at the service boundary
// and checked there, so call sites never deal with loose maps.
package models

import "fmt"

// ShapeError reports a backend payload that does not match the documented
// entity shape.
type ShapeError struct {
	Entity string
	Field  string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s payload missing or invalid field %q", e.Entity, e.Field)
}

func ErrBadShape(entity, field string) error {
	return &ShapeError{Entity: entity, Field: field}
}
