package services

import "fmt"

// TransportError wraps network, timeout and payload-decoding failures. The
// user sees a generic message; the wrapped cause goes to the log.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("backend request %s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is a structured refusal from the backend that is neither a stock
// shortfall nor a known domain precondition.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// PreconditionError is a domain precondition the backend reported, e.g. no
// active academic period. It is surfaced as a specific actionable message.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string { return e.Message }

// StockShortfall is one failing line of an accept attempt.
type StockShortfall struct {
	ComponentID       int    `json:"componentId"`
	ComponentName     string `json:"componentName"`
	RequestedQuantity int    `json:"requestedQuantity"`
	AvailableQuantity int    `json:"availableQuantity"`
}

// StockShortfallError carries the backend's per-component shortfall detail.
// The transition is all-or-nothing: nothing was committed server-side.
type StockShortfallError struct {
	Items []StockShortfall
}

func (e *StockShortfallError) Error() string {
	return fmt.Sprintf("stock insuficiente en %d componente(s)", len(e.Items))
}
