package validate

import (
	"errors"
	"math"
	"testing"
)

func TestQuantity(t *testing.T) {
	cases := []struct {
		name      string
		requested float64
		available int
		want      int
		wantKind  Kind
	}{
		{name: "minimum accepted", requested: 1, available: 5, want: 1},
		{name: "maximum accepted", requested: 5, available: 5, want: 5},
		{name: "whole float accepted", requested: 3.0, available: 5, want: 3},
		{name: "fraction rejected", requested: 2.5, available: 5, wantKind: NotInteger},
		{name: "NaN rejected", requested: math.NaN(), available: 5, wantKind: NotInteger},
		{name: "zero rejected", requested: 0, available: 5, wantKind: NonPositive},
		{name: "negative rejected", requested: -3, available: 5, wantKind: NonPositive},
		{name: "over stock rejected", requested: 6, available: 5, wantKind: ExceedsAvailable},
		{name: "no stock rejected", requested: 1, available: 0, wantKind: ExceedsAvailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Quantity(tc.requested, tc.available)
			if tc.wantKind == "" {
				if err != nil {
					t.Fatalf("Quantity(%v, %d) failed: %v", tc.requested, tc.available, err)
				}
				if got != tc.want {
					t.Errorf("Quantity(%v, %d) = %d, want %d", tc.requested, tc.available, got, tc.want)
				}
				return
			}
			var verr *Error
			if !errors.As(err, &verr) {
				t.Fatalf("Quantity(%v, %d) returned %v, want *validate.Error", tc.requested, tc.available, err)
			}
			if verr.Kind != tc.wantKind {
				t.Errorf("Quantity(%v, %d) kind = %s, want %s", tc.requested, tc.available, verr.Kind, tc.wantKind)
			}
		})
	}
}
