package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/KevinStop/inventory-management-frontend/models"
)

// Requests is the client of the loan-request service. Status transitions
// live here as single request/response exchanges; the lifecycle controller
// decides which transition may be asked for.
type Requests struct {
	c *Client
}

// RequestFilter narrows ByFilter. Zero values mean "not filtered".
type RequestFilter struct {
	Status   models.RequestStatus
	IsActive *bool
	UserID   int
}

func (s *Requests) ByFilter(ctx context.Context, filter RequestFilter) ([]models.LoanRequest, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.IsActive != nil {
		query.Set("isActive", strconv.FormatBool(*filter.IsActive))
	}
	if filter.UserID > 0 {
		query.Set("userId", strconv.Itoa(filter.UserID))
	}

	var requests []models.LoanRequest
	if err := s.c.getJSON(ctx, "/requests", query, &requests); err != nil {
		return nil, err
	}
	for _, request := range requests {
		if err := request.Validate(); err != nil {
			return nil, err
		}
	}
	return requests, nil
}

func (s *Requests) Get(ctx context.Context, id int) (models.LoanRequest, error) {
	var request models.LoanRequest
	if err := s.c.getJSON(ctx, fmt.Sprintf("/requests/%d", id), nil, &request); err != nil {
		return models.LoanRequest{}, err
	}
	if err := request.Validate(); err != nil {
		return models.LoanRequest{}, err
	}
	return request, nil
}

// CreateRequestInput is the submission payload: the validated form plus the
// cart lines and an optional proof document.
type CreateRequestInput struct {
	UserID      int
	TypeRequest string
	Responsible string
	ReturnDate  string
	Description string
	Lines       []models.RequestLine
	Proof       *Upload
}

// Create submits a new request; it always enters status pendiente. The
// backend re-checks availability and owns the outcome.
func (s *Requests) Create(ctx context.Context, input CreateRequestInput) (models.LoanRequest, error) {
	details, err := json.Marshal(input.Lines)
	if err != nil {
		return models.LoanRequest{}, &TransportError{Op: "POST /requests", Err: err}
	}
	fields := map[string]string{
		"userId":         strconv.Itoa(input.UserID),
		"typeRequest":    input.TypeRequest,
		"responsible":    input.Responsible,
		"returnDate":     input.ReturnDate,
		"description":    input.Description,
		"status":         string(models.StatusPending),
		"requestDetails": string(details),
	}
	body, contentType, err := multipartBody(fields, map[string]*Upload{"file": input.Proof})
	if err != nil {
		return models.LoanRequest{}, &TransportError{Op: "POST /requests", Err: err}
	}

	var request models.LoanRequest
	if err := s.c.do(ctx, http.MethodPost, "/requests/", nil, body, contentType, &request); err != nil {
		return models.LoanRequest{}, err
	}
	if err := request.Validate(); err != nil {
		return models.LoanRequest{}, err
	}
	return request, nil
}

// Accept asks the backend to move a pending request into prestamo. Refusals
// come back as StockShortfallError or PreconditionError.
func (s *Requests) Accept(ctx context.Context, id int) error {
	return s.c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/requests/%d", id), nil, nil)
}

func (s *Requests) Reject(ctx context.Context, id int, notes string) error {
	payload := map[string]string{"rejectionNotes": notes}
	return s.c.sendJSON(ctx, http.MethodPost, fmt.Sprintf("/requests/%d/reject", id), payload, nil)
}

// Delete cancels a request. The backend enforces that only the owner of a
// pending request may do this.
func (s *Requests) Delete(ctx context.Context, id int) error {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/requests/%d", id), nil, nil, "", nil)
}

func (s *Requests) Finalize(ctx context.Context, id int, adminNotes string) error {
	payload := map[string]string{}
	if adminNotes != "" {
		payload["adminNotes"] = adminNotes
	}
	return s.c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/requests/%d/finalize", id), payload, nil)
}

func (s *Requests) MarkNotReturned(ctx context.Context, id int, adminNotes string) error {
	payload := map[string]string{}
	if adminNotes != "" {
		payload["adminNotes"] = adminNotes
	}
	return s.c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/requests/%d/not-returned", id), payload, nil)
}

// UpdateReturnDate amends the return date without changing status.
func (s *Requests) UpdateReturnDate(ctx context.Context, id int, newReturnDate string) error {
	payload := map[string]string{"newReturnDate": newReturnDate}
	return s.c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/requests/%d/return-date", id), payload, nil)
}

func (s *Requests) NotReturned(ctx context.Context) ([]models.LoanRequest, error) {
	var requests []models.LoanRequest
	if err := s.c.getJSON(ctx, "/requests/not-returned", nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}
