package periodControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KevinStop/inventory-management-frontend/controllers/respond"
	"github.com/KevinStop/inventory-management-frontend/middleware"
	"github.com/KevinStop/inventory-management-frontend/services"
	"github.com/KevinStop/inventory-management-frontend/validate"
)

// GET /admin/academic-periods
func List(periods *services.Periods) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := periods.List(middleware.SessionContext(c))
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// POST /admin/academic-periods. Creating and activating are two independent
// calls; an activation failure leaves the period created (callers re-query
// rather than assume rollback).
func Create(periods *services.Periods) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			services.PeriodInput
			Activate bool `json:"activate"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := validate.ReturnDate(input.EndDate); err != nil {
			respond.Error(c, err)
			return
		}

		ctx := middleware.SessionContext(c)
		period, err := periods.Create(ctx, input.PeriodInput)
		if err != nil {
			respond.Error(c, err)
			return
		}
		if input.Activate {
			if err := periods.Activate(ctx, period.ID); err != nil {
				c.JSON(http.StatusCreated, gin.H{
					"period":  period,
					"warning": "El periodo fue creado pero no se pudo activar.",
				})
				return
			}
			period.IsActive = true
		}
		c.JSON(http.StatusCreated, gin.H{"period": period})
	}
}

// PUT /admin/academic-periods/:id/activate
func Activate(periods *services.Periods) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
			return
		}
		if err := periods.Activate(middleware.SessionContext(c), id); err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Periodo activado"})
	}
}

// DELETE /admin/academic-periods/:id
func Delete(periods *services.Periods) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
			return
		}
		if err := periods.Delete(middleware.SessionContext(c), id); err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Periodo eliminado"})
	}
}
