package cartControllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KevinStop/inventory-management-frontend/cart"
	"github.com/KevinStop/inventory-management-frontend/controllers/respond"
	"github.com/KevinStop/inventory-management-frontend/middleware"
	"github.com/KevinStop/inventory-management-frontend/models"
	"github.com/KevinStop/inventory-management-frontend/validate"
)

// Catalog is the slice of the component service the cart needs: fetching a
// component to validate its availability. *services.Components satisfies it.
type Catalog interface {
	Get(ctx context.Context, id int) (models.Component, error)
}

// CartItemInput carries the quantity as a float so 2.5 can be classified as
// NotInteger instead of being silently truncated by the JSON binder.
type CartItemInput struct {
	ComponentID int     `json:"componentId" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required"`
}

// GET /user/cart
func GetCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Selected())
	}
}

// GET /user/cart/count feeds the live badge.
func GetCount(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"count": store.Count()})
	}
}

// POST /user/cart upserts one component. The quantity is validated against
// the catalog's availability before the store is touched; on failure the
// cart stays exactly as it was and the response names the violated bound.
func AddItem(store *cart.Store, catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		component, err := catalog.Get(middleware.SessionContext(c), input.ComponentID)
		if err != nil {
			respond.Error(c, err)
			return
		}
		if !component.Loanable() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El componente no está disponible para préstamo"})
			return
		}

		quantity, err := validate.Quantity(input.Quantity, component.AvailableQuantity)
		if err != nil {
			respond.Error(c, err)
			return
		}
		if err := store.AddOrUpdate(component, quantity); err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"selected": store.Selected(), "count": store.Count()})
	}
}

// PUT /user/cart/:component_id edits the quantity of an entry already in the
// cart, validated against the availability captured with it. A failed
// validation leaves the persisted entry untouched and returns it so the UI
// can revert the field.
func UpdateItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("component_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "component_id inválido"})
			return
		}

		var input struct {
			Quantity float64 `json:"quantity" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var current *models.SelectedComponent
		for _, item := range store.Selected() {
			if item.ID == id {
				entry := item
				current = &entry
				break
			}
		}
		if current == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "El componente no está en la selección"})
			return
		}

		quantity, err := validate.Quantity(input.Quantity, current.AvailableQuantity)
		if err != nil {
			var verr *validate.Error
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{
					"error":   verr.Message,
					"kind":    verr.Kind,
					"current": current,
				})
				return
			}
			respond.Error(c, err)
			return
		}

		component := models.Component{
			ID:                current.ID,
			Name:              current.Name,
			CategoryID:        current.CategoryID,
			AvailableQuantity: current.AvailableQuantity,
		}
		if err := store.AddOrUpdate(component, quantity); err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"selected": store.Selected(), "count": store.Count()})
	}
}

// DELETE /user/cart/:component_id
func RemoveItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("component_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "component_id inválido"})
			return
		}
		if err := store.Remove(id); err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"selected": store.Selected(), "count": store.Count()})
	}
}

// DELETE /user/cart
func ClearCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Clear(); err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Selección vaciada"})
	}
}
