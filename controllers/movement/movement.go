package movementControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KevinStop/inventory-management-frontend/controllers/respond"
	"github.com/KevinStop/inventory-management-frontend/middleware"
	"github.com/KevinStop/inventory-management-frontend/models"
	"github.com/KevinStop/inventory-management-frontend/services"
	"github.com/KevinStop/inventory-management-frontend/validate"
)

// GET /admin/movements?componentId=N
func List(movements *services.Movements) gin.HandlerFunc {
	return func(c *gin.Context) {
		componentID := 0
		if raw := c.Query("componentId"); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "componentId inválido"})
				return
			}
			componentID = id
		}
		list, err := movements.List(middleware.SessionContext(c), componentID)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

type movementInput struct {
	ComponentID int     `json:"componentId" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required"`
	Reason      string  `json:"reason"`
}

// POST /admin/movements registers an ingress or egress adjustment. The
// backend refuses egress beyond stock and requires an active period.
func Create(movements *services.Movements) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input movementInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		movementType := models.MovementType(input.Type)
		if movementType != models.MovementIngress && movementType != models.MovementEgress {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tipo de movimiento inválido"})
			return
		}
		// Movement quantities obey the same integer > 0 rule as the cart;
		// there is no stock ceiling client-side, the backend owns that.
		quantity, err := validate.PositiveQuantity(input.Quantity)
		if err != nil {
			respond.Error(c, err)
			return
		}

		movement, err := movements.Create(middleware.SessionContext(c), services.MovementInput{
			ComponentID: input.ComponentID,
			Type:        movementType,
			Quantity:    quantity,
			Reason:      input.Reason,
		})
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, movement)
	}
}
