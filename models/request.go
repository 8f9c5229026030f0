package models

type RequestStatus string

const (
	// Loan request statuses (vocabulary owned by the backend wire contract)
	StatusPending     RequestStatus = "pendiente"   // submitted, awaiting admin decision
	StatusLoan        RequestStatus = "prestamo"    // accepted, components handed out
	StatusNotReturned RequestStatus = "no_devuelto" // return date passed without return
	StatusFinalized   RequestStatus = "finalizado"  // closed, components back in stock
	StatusRejected    RequestStatus = "rechazado"   // refused by an admin
)

// Known reports whether s is one of the documented statuses.
func (s RequestStatus) Known() bool {
	switch s {
	case StatusPending, StatusLoan, StatusNotReturned, StatusFinalized, StatusRejected:
		return true
	}
	return false
}

// Active reports whether a request in this status still demands attention.
func (s RequestStatus) Active() bool {
	return s == StatusPending || s == StatusLoan || s == StatusNotReturned
}

// RequestLine is one component/quantity pair inside a request.
type RequestLine struct {
	ComponentID int        `json:"componentId"`
	Quantity    int        `json:"quantity"`
	Component   *Component `json:"component,omitempty"`
}

// LoanRequest is the server-owned loan application. The portal holds a
// read-replica per view and never mutates status locally; status changes go
// through the lifecycle controller.
type LoanRequest struct {
	RequestID      int           `json:"requestId"`
	UserID         int           `json:"userId"`
	Status         RequestStatus `json:"status"`
	IsActive       bool          `json:"isActive"`
	Responsible    string        `json:"responsible"`
	TypeRequest    string        `json:"typeRequest"`
	ReturnDate     string        `json:"returnDate"`
	Description    string        `json:"description,omitempty"`
	AdminNotes     string        `json:"adminNotes,omitempty"`
	ProofURL       string        `json:"proofUrl,omitempty"`
	RequestDetails []RequestLine `json:"requestDetails,omitempty"`
}

func (r LoanRequest) Validate() error {
	if r.RequestID <= 0 {
		return ErrBadShape("request", "requestId")
	}
	if !r.Status.Known() {
		return ErrBadShape("request", "status")
	}
	return nil
}
