package requestControllers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KevinStop/inventory-management-frontend/cart"
	"github.com/KevinStop/inventory-management-frontend/controllers/respond"
	"github.com/KevinStop/inventory-management-frontend/lifecycle"
	"github.com/KevinStop/inventory-management-frontend/middleware"
	"github.com/KevinStop/inventory-management-frontend/models"
	"github.com/KevinStop/inventory-management-frontend/services"
	"github.com/KevinStop/inventory-management-frontend/validate"
)

// readProof pulls the optional proof document out of the submission form.
func readProof(c *gin.Context) (*services.Upload, bool) {
	header, err := c.FormFile("comprobante")
	if err != nil {
		return nil, true
	}
	file, err := header.Open()
	if err != nil {
		return nil, false
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, false
	}
	return &services.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
	}, true
}

// POST /user/requests submits the cart as a loan request. Validation is
// local first (form rules, non-empty selection) and never reaches the
// backend on failure; the cart is cleared only after the backend confirms.
func Submit(store *cart.Store, requests *services.Requests) gin.HandlerFunc {
	return func(c *gin.Context) {
		form := validate.LoanForm{
			TypeRequest: c.PostForm("typeRequest"),
			Responsible: c.PostForm("responsible"),
			ReturnDate:  c.PostForm("returnDate"),
			Description: c.PostForm("description"),
		}
		if violations := validate.LoanRequestForm(form); len(violations) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":      "Debe completar todos los campos requeridos.",
				"violations": violations,
			})
			return
		}

		selected := store.Selected()
		lines := make([]models.RequestLine, 0, len(selected))
		for _, item := range selected {
			if item.Quantity > 0 {
				lines = append(lines, models.RequestLine{ComponentID: item.ID, Quantity: item.Quantity})
			}
		}
		if len(lines) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Debe seleccionar al menos un componente."})
			return
		}

		proof, ok := readProof(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No se pudo leer el comprobante"})
			return
		}

		request, err := requests.Create(middleware.SessionContext(c), services.CreateRequestInput{
			UserID:      middleware.UserID(c),
			TypeRequest: form.TypeRequest,
			Responsible: form.Responsible,
			ReturnDate:  form.ReturnDate,
			Description: form.Description,
			Lines:       lines,
			Proof:       proof,
		})
		if err != nil {
			respond.Error(c, err)
			return
		}

		if err := store.Clear(); err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, request)
	}
}

// GET /user/requests?status=pendiente lists the caller's requests by status.
func MyRequests(requests *services.Requests) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := models.RequestStatus(c.DefaultQuery("status", string(models.StatusPending)))
		if !status.Known() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Estado de solicitud inválido"})
			return
		}

		list, err := requests.ByFilter(middleware.SessionContext(c), services.RequestFilter{
			Status: status,
			UserID: middleware.UserID(c),
		})
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /user/requests/:id
func Details(requests *services.Requests) gin.HandlerFunc {
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
		c.JSON(http.StatusOK, request)
	}
}

// DELETE /user/requests/:id cancels the caller's pending request. Ownership
// is confirmed by the backend; the local guard only checks the status.
func Cancel(ctl *lifecycle.Controller, requests *services.Requests) gin.HandlerFunc {
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
		if err := ctl.Cancel(ctx, request); err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Solicitud cancelada"})
	}
}

// PUT /user/requests/:id/return-date asks for a return-date extension on an
// ongoing loan.
func ExtendReturnDate(ctl *lifecycle.Controller, requests *services.Requests) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
			return
		}

		var input struct {
			NewReturnDate string `json:"newReturnDate" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		ctx := middleware.SessionContext(c)
		request, err := requests.Get(ctx, id)
		if err != nil {
			respond.Error(c, err)
			return
		}
		if err := ctl.Extend(ctx, request, input.NewReturnDate); err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Fecha de retorno actualizada"})
	}
}
