// Package lifecycle models the status progression of a loan request and the
// actions permitted at each status. The client only asks for transitions;
// the backend confirms them. One transition table is the single source of
// truth for both the guards and the UI predicates.
package lifecycle

import (
	"context"
	"fmt"

	"github.com/KevinStop/inventory-management-frontend/models"
	"github.com/KevinStop/inventory-management-frontend/validate"
)

type Action string

const (
	ActionAccept          Action = "accept"
	ActionReject          Action = "reject"
	ActionCancel          Action = "cancel"
	ActionFinalize        Action = "finalize"
	ActionMarkNotReturned Action = "mark_not_returned"
	ActionExtend          Action = "extend"
)

// transitions maps each status to the actions allowed from it. finalizado
// and rechazado are terminal and deliberately absent. Extend amends the
// return date only; the status stays put.
var transitions = map[models.RequestStatus][]Action{
	models.StatusPending:     {ActionAccept, ActionReject, ActionCancel},
	models.StatusLoan:        {ActionFinalize, ActionMarkNotReturned, ActionExtend},
	models.StatusNotReturned: {ActionFinalize, ActionExtend},
}

// Allowed reports whether action may be requested from status.
func Allowed(status models.RequestStatus, action Action) bool {
	for _, allowed := range transitions[status] {
		if allowed == action {
			return true
		}
	}
	return false
}

// CanMarkAsNotReturned gates the "mark as not returned" UI action.
func CanMarkAsNotReturned(r models.LoanRequest) bool {
	return Allowed(r.Status, ActionMarkNotReturned)
}

// CanFinalize gates the "finalize" UI action.
func CanFinalize(r models.LoanRequest) bool {
	return Allowed(r.Status, ActionFinalize)
}

// CanExtend gates the return-date amendment action.
func CanExtend(r models.LoanRequest) bool {
	return Allowed(r.Status, ActionExtend)
}

// CanCancel gates the owner's cancel action.
func CanCancel(r models.LoanRequest) bool {
	return Allowed(r.Status, ActionCancel)
}

// TransitionError is a locally refused transition: the request's replica
// status does not permit the action, so no network call is made.
type TransitionError struct {
	From   models.RequestStatus
	Action Action
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("la acción %s no está permitida en estado %s", e.Action, e.From)
}

// RequestService is the slice of the request service the controller drives.
// *services.Requests satisfies it.
type RequestService interface {
	Accept(ctx context.Context, id int) error
	Reject(ctx context.Context, id int, notes string) error
	Delete(ctx context.Context, id int) error
	Finalize(ctx context.Context, id int, adminNotes string) error
	MarkNotReturned(ctx context.Context, id int, adminNotes string) error
	UpdateReturnDate(ctx context.Context, id int, newReturnDate string) error
}

// Controller guards transitions against the table, then asks the backend to
// confirm. It never retries and never mutates the replica; callers re-fetch
// after a successful transition.
type Controller struct {
	svc RequestService
}

func NewController(svc RequestService) *Controller {
	return &Controller{svc: svc}
}

func (c *Controller) guard(r models.LoanRequest, action Action) error {
	if !Allowed(r.Status, action) {
		return &TransitionError{From: r.Status, Action: action}
	}
	return nil
}

// Accept moves pendiente → prestamo. The backend may refuse with a
// per-component stock shortfall (all-or-nothing, surfaced verbatim) or a
// no-active-period precondition.
func (c *Controller) Accept(ctx context.Context, r models.LoanRequest) error {
	if err := c.guard(r, ActionAccept); err != nil {
		return err
	}
	return c.svc.Accept(ctx, r.RequestID)
}

// Reject moves pendiente → rechazado with the admin's notes.
func (c *Controller) Reject(ctx context.Context, r models.LoanRequest, notes string) error {
	if err := c.guard(r, ActionReject); err != nil {
		return err
	}
	return c.svc.Reject(ctx, r.RequestID, notes)
}

// Cancel deletes a pending request. Ownership is enforced by the backend.
func (c *Controller) Cancel(ctx context.Context, r models.LoanRequest) error {
	if err := c.guard(r, ActionCancel); err != nil {
		return err
	}
	return c.svc.Delete(ctx, r.RequestID)
}

// Finalize moves prestamo or no_devuelto → finalizado.
func (c *Controller) Finalize(ctx context.Context, r models.LoanRequest, adminNotes string) error {
	if err := c.guard(r, ActionFinalize); err != nil {
		return err
	}
	return c.svc.Finalize(ctx, r.RequestID, adminNotes)
}

// MarkNotReturned moves prestamo → no_devuelto.
func (c *Controller) MarkNotReturned(ctx context.Context, r models.LoanRequest, adminNotes string) error {
	if err := c.guard(r, ActionMarkNotReturned); err != nil {
		return err
	}
	return c.svc.MarkNotReturned(ctx, r.RequestID, adminNotes)
}

// Extend amends the return date of an ongoing loan. The date is validated
// locally first; an invalid date never reaches the backend.
func (c *Controller) Extend(ctx context.Context, r models.LoanRequest, newReturnDate string) error {
	if err := c.guard(r, ActionExtend); err != nil {
		return err
	}
	if err := validate.ReturnDate(newReturnDate); err != nil {
		return err
	}
	return c.svc.UpdateReturnDate(ctx, r.RequestID, newReturnDate)
}
