// Package respond translates taxonomy errors into HTTP responses. Server
// failures become user-facing notifications here, never unhandled, and
// transport details go to the log only.
package respond

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KevinStop/inventory-management-frontend/lifecycle"
	"github.com/KevinStop/inventory-management-frontend/models"
	"github.com/KevinStop/inventory-management-frontend/services"
	"github.com/KevinStop/inventory-management-frontend/validate"
)

// Error writes the response matching err's place in the taxonomy.
func Error(c *gin.Context, err error) {
	var verr *validate.Error
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "kind": verr.Kind})
		return
	}

	var terr *lifecycle.TransitionError
	if errors.As(err, &terr) {
		c.JSON(http.StatusConflict, gin.H{"error": terr.Error()})
		return
	}

	var stockErr *services.StockShortfallError
	if errors.As(err, &stockErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":       "Stock insuficiente",
			"stockErrors": stockErr.Items,
		})
		return
	}

	var precondErr *services.PreconditionError
	if errors.As(err, &precondErr) {
		c.JSON(http.StatusPreconditionFailed, gin.H{"error": precondErr.Message})
		return
	}

	var apiErr *services.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
		return
	}

	var shapeErr *models.ShapeError
	if errors.As(err, &shapeErr) {
		log.Printf("❌ Unexpected backend payload: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Respuesta inesperada del servidor"})
		return
	}

	log.Printf("❌ Backend call failed: %v", err)
	c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudo contactar al servidor"})
}
