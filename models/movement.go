package models

import "time"

type MovementType string

const (
	MovementIngress MovementType = "ingreso"
	MovementEgress  MovementType = "egreso"
)

// Movement is a stock adjustment record tied to a component, separate from
// loan requests.
type Movement struct {
	ID          int          `json:"id"`
	ComponentID int          `json:"componentId"`
	Type        MovementType `json:"type"`
	Quantity    int          `json:"quantity"`
	Reason      string       `json:"reason,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}
