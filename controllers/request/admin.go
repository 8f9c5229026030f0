package requestControllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KevinStop/inventory-management-frontend/controllers/respond"
	"github.com/KevinStop/inventory-management-frontend/lifecycle"
	"github.com/KevinStop/inventory-management-frontend/middleware"
	"github.com/KevinStop/inventory-management-frontend/models"
	"github.com/KevinStop/inventory-management-frontend/services"
)

// activeList re-fetches the admin's working set after a mutation. Responses
// race under last-response-wins; the list returned here is simply the
// freshest one this exchange saw.
func activeList(ctx context.Context, requests *services.Requests) ([]models.LoanRequest, error) {
	active := true
	return requests.ByFilter(ctx, services.RequestFilter{IsActive: &active})
}

// requestView decorates a request with the action predicates so the admin
// UI renders exactly the actions the transition table allows.
type requestView struct {
	models.LoanRequest
	CanFinalize          bool `json:"canFinalize"`
	CanMarkAsNotReturned bool `json:"canMarkAsNotReturned"`
	CanExtend            bool `json:"canExtend"`
}

func decorate(list []models.LoanRequest) []requestView {
	views := make([]requestView, len(list))
	for i, request := range list {
		views[i] = requestView{
			LoanRequest:          request,
			CanFinalize:          lifecycle.CanFinalize(request),
			CanMarkAsNotReturned: lifecycle.CanMarkAsNotReturned(request),
			CanExtend:            lifecycle.CanExtend(request),
		}
	}
	return views
}

// GET /admin/requests?status=pendiente lists active requests, optionally
// narrowed to one status.
func Active(requests *services.Requests) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := middleware.SessionContext(c)
		list, err := activeList(ctx, requests)
		if err != nil {
			respond.Error(c, err)
			return
		}
		if raw := c.Query("status"); raw != "" && raw != "todo" {
			status := models.RequestStatus(raw)
			filtered := list[:0]
			for _, request := range list {
				if request.Status == status {
					filtered = append(filtered, request)
				}
			}
			list = filtered
		}
		c.JSON(http.StatusOK, decorate(list))
	}
}

// mutation runs one admin lifecycle action and answers with the re-fetched
// active list.
func mutation(requests *services.Requests, run func(ctx context.Context, r models.LoanRequest) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
			return
		}

		ctx := middleware.SessionContext(c)
		request, err := requests.Get(ctx, id)
		if err != nil {
			respond.Error(c, err)
			return
		}
		if err := run(ctx, request); err != nil {
			respond.Error(c, err)
			return
		}

		list, err := activeList(ctx, requests)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"requests": decorate(list)})
	}
}

// PUT /admin/requests/:id accepts a pending request. Stock shortfalls and
// the missing-active-period precondition come back with their own shapes.
func Accept(ctl *lifecycle.Controller, requests *services.Requests) gin.HandlerFunc {
	return mutation(requests, func(ctx context.Context, r models.LoanRequest) error {
		return ctl.Accept(ctx, r)
	})
}

type notesInput struct {
	AdminNotes string `json:"adminNotes"`
}

// POST /admin/requests/:id/reject
func Reject(ctl *lifecycle.Controller, requests *services.Requests) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			RejectionNotes string `json:"rejectionNotes" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Debe indicar el motivo del rechazo"})
			return
		}
		mutation(requests, func(ctx context.Context, r models.LoanRequest) error {
			return ctl.Reject(ctx, r, input.RejectionNotes)
		})(c)
	}
}

// PUT /admin/requests/:id/finalize
func Finalize(ctl *lifecycle.Controller, requests *services.Requests) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input notesInput
		_ = c.ShouldBindJSON(&input) // notes are optional
		mutation(requests, func(ctx context.Context, r models.LoanRequest) error {
			return ctl.Finalize(ctx, r, input.AdminNotes)
		})(c)
	}
}

// PUT /admin/requests/:id/not-returned
func MarkNotReturned(ctl *lifecycle.Controller, requests *services.Requests) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input notesInput
		_ = c.ShouldBindJSON(&input)
		mutation(requests, func(ctx context.Context, r models.LoanRequest) error {
			return ctl.MarkNotReturned(ctx, r, input.AdminNotes)
		})(c)
	}
}

// PUT /admin/requests/:id/return-date
func AdminExtend(ctl *lifecycle.Controller, requests *services.Requests) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			NewReturnDate string `json:"newReturnDate" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		mutation(requests, func(ctx context.Context, r models.LoanRequest) error {
			return ctl.Extend(ctx, r, input.NewReturnDate)
		})(c)
	}
}

// GET /admin/loans lists overdue loans.
func NotReturnedLoans(requests *services.Requests) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := requests.NotReturned(middleware.SessionContext(c))
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, decorate(list))
	}
}

// GET /admin/requests/:id
func AdminDetails(requests *services.Requests) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
			return
		}
		request, err := requests.Get(middleware.SessionContext(c), id)
		if err != nil {
			respond.Error(c, err)
			return
		}
		views := decorate([]models.LoanRequest{request})
		c.JSON(http.StatusOK, views[0])
	}
}
