// Package validate classifies user input before it reaches the cart or the
// backend. Validators never mutate state; callers decide how to revert the
// offending field.
package validate

import (
	"fmt"
	"math"
)

type Kind string

const (
	NotInteger       Kind = "not_integer"
	NonPositive      Kind = "non_positive"
	ExceedsAvailable Kind = "exceeds_available"
	Required         Kind = "required"
	InvalidDate      Kind = "invalid_date"
	PastDate         Kind = "past_date"
)

// Error names the specific bound an input violated.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// PositiveQuantity checks that a quantity is a whole number greater than
// zero and returns the normalized integer. Quantities arrive as float64
// because JSON numbers and form fields do; 3.0 is a whole number, 3.5 is not.
func PositiveQuantity(requested float64) (int, error) {
	if requested != math.Trunc(requested) || math.IsNaN(requested) || math.IsInf(requested, 0) {
		return 0, &Error{Kind: NotInteger, Message: "Solo se permiten números enteros."}
	}
	q := int(requested)
	if q <= 0 {
		return 0, &Error{Kind: NonPositive, Message: "La cantidad no puede ser menor o igual a 0."}
	}
	return q, nil
}

// Quantity additionally bounds the requested quantity by the available
// stock.
func Quantity(requested float64, available int) (int, error) {
	q, err := PositiveQuantity(requested)
	if err != nil {
		return 0, err
	}
	if q > available {
		return 0, &Error{
			Kind:    ExceedsAvailable,
			Message: fmt.Sprintf("La cantidad no puede exceder el máximo disponible (%d).", available),
		}
	}
	return q, nil
}
