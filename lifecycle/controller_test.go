package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KevinStop/inventory-management-frontend/models"
	"github.com/KevinStop/inventory-management-frontend/services"
	"github.com/KevinStop/inventory-management-frontend/validate"
)

// fakeRequestService records calls and replies with canned errors.
type fakeRequestService struct {
	calls []string
	err   error
}

func (f *fakeRequestService) record(call string) error {
	f.calls = append(f.calls, call)
	return f.err
}

func (f *fakeRequestService) Accept(ctx context.Context, id int) error {
	return f.record("accept")
}
func (f *fakeRequestService) Reject(ctx context.Context, id int, notes string) error {
	return f.record("reject")
}
func (f *fakeRequestService) Delete(ctx context.Context, id int) error {
	return f.record("delete")
}
func (f *fakeRequestService) Finalize(ctx context.Context, id int, adminNotes string) error {
	return f.record("finalize")
}
func (f *fakeRequestService) MarkNotReturned(ctx context.Context, id int, adminNotes string) error {
	return f.record("not_returned")
}
func (f *fakeRequestService) UpdateReturnDate(ctx context.Context, id int, newReturnDate string) error {
	return f.record("return_date")
}

func request(status models.RequestStatus) models.LoanRequest {
	return models.LoanRequest{RequestID: 42, Status: status, IsActive: status.Active()}
}

func TestAcceptFromPending(t *testing.T) {
	svc := &fakeRequestService{}
	ctl := NewController(svc)

	if err := ctl.Accept(context.Background(), request(models.StatusPending)); err != nil {
		t.Fatalf("Accept failed: %v", err)
	}
	if len(svc.calls) != 1 || svc.calls[0] != "accept" {
		t.Errorf("Expected one accept call, got %v", svc.calls)
	}

	// After the backend confirms, the re-fetched replica is in prestamo and
	// both follow-up actions open up.
	accepted := request(models.StatusLoan)
	if !CanMarkAsNotReturned(accepted) {
		t.Error("CanMarkAsNotReturned should be true for prestamo")
	}
	if !CanFinalize(accepted) {
		t.Error("CanFinalize should be true for prestamo")
	}
}

func TestMarkNotReturnedFlow(t *testing.T) {
	svc := &fakeRequestService{}
	ctl := NewController(svc)

	if err := ctl.MarkNotReturned(context.Background(), request(models.StatusLoan), "no entregó"); err != nil {
		t.Fatalf("MarkNotReturned failed: %v", err)
	}

	overdue := request(models.StatusNotReturned)
	if !CanFinalize(overdue) {
		t.Error("CanFinalize should remain true for no_devuelto")
	}
	if CanMarkAsNotReturned(overdue) {
		t.Error("CanMarkAsNotReturned should be false for no_devuelto")
	}
}

func TestGuardsRefuseLocally(t *testing.T) {
	cases := []struct {
		name   string
		status models.RequestStatus
		run    func(*Controller, models.LoanRequest) error
	}{
		{"accept from prestamo", models.StatusLoan, func(c *Controller, r models.LoanRequest) error {
			return c.Accept(context.Background(), r)
		}},
		{"reject from finalizado", models.StatusFinalized, func(c *Controller, r models.LoanRequest) error {
			return c.Reject(context.Background(), r, "n/a")
		}},
		{"cancel from prestamo", models.StatusLoan, func(c *Controller, r models.LoanRequest) error {
			return c.Cancel(context.Background(), r)
		}},
		{"finalize from pendiente", models.StatusPending, func(c *Controller, r models.LoanRequest) error {
			return c.Finalize(context.Background(), r, "")
		}},
		{"not returned from rechazado", models.StatusRejected, func(c *Controller, r models.LoanRequest) error {
			return c.MarkNotReturned(context.Background(), r, "")
		}},
		{"extend from pendiente", models.StatusPending, func(c *Controller, r models.LoanRequest) error {
			return c.Extend(context.Background(), r, "2030-01-01")
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeRequestService{}
			err := tc.run(NewController(svc), request(tc.status))
			var terr *TransitionError
			if !errors.As(err, &terr) {
				t.Fatalf("Expected TransitionError, got %v", err)
			}
			if len(svc.calls) != 0 {
				t.Errorf("Refused transition still reached the backend: %v", svc.calls)
			}
		})
	}
}

func TestExtendValidatesDateLocally(t *testing.T) {
	svc := &fakeRequestService{}
	ctl := NewController(svc)

	err := ctl.Extend(context.Background(), request(models.StatusLoan), "2019-01-01")
	var verr *validate.Error
	if !errors.As(err, &verr) || verr.Kind != validate.PastDate {
		t.Fatalf("Expected past_date validation error, got %v", err)
	}
	if len(svc.calls) != 0 {
		t.Errorf("Invalid date still reached the backend: %v", svc.calls)
	}

	future := time.Now().AddDate(0, 0, 14).Format("2006-01-02")
	if err := ctl.Extend(context.Background(), request(models.StatusNotReturned), future); err != nil {
		t.Fatalf("Extend with valid date failed: %v", err)
	}
	if len(svc.calls) != 1 || svc.calls[0] != "return_date" {
		t.Errorf("Expected one return_date call, got %v", svc.calls)
	}
}

func TestAcceptSurfacesStockShortfall(t *testing.T) {
	shortfall := &services.StockShortfallError{Items: []services.StockShortfall{
		{ComponentID: 1, ComponentName: "Resistor 10k", RequestedQuantity: 10, AvailableQuantity: 4},
	}}
	svc := &fakeRequestService{err: shortfall}
	ctl := NewController(svc)

	err := ctl.Accept(context.Background(), request(models.StatusPending))
	var serr *services.StockShortfallError
	if !errors.As(err, &serr) {
		t.Fatalf("Expected StockShortfallError, got %v", err)
	}
	item := serr.Items[0]
	if item.ComponentName != "Resistor 10k" || item.RequestedQuantity != 10 || item.AvailableQuantity != 4 {
		t.Errorf("Shortfall detail mangled: %+v", item)
	}
	// The replica stays pendiente; nothing was committed.
	if got := request(models.StatusPending).Status; got != models.StatusPending {
		t.Errorf("Status changed locally to %s", got)
	}
}

func TestPredicatesFollowTransitionTable(t *testing.T) {
	for status, actions := range transitions {
		for _, action := range actions {
			if !Allowed(status, action) {
				t.Errorf("Allowed(%s, %s) = false, want true", status, action)
			}
		}
	}
	for _, terminal := range []models.RequestStatus{models.StatusFinalized, models.StatusRejected} {
		for _, action := range []Action{ActionAccept, ActionReject, ActionCancel, ActionFinalize, ActionMarkNotReturned, ActionExtend} {
			if Allowed(terminal, action) {
				t.Errorf("Allowed(%s, %s) = true, want false", terminal, action)
			}
		}
	}
}
