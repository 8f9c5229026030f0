package categoryControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KevinStop/inventory-management-frontend/controllers/respond"
	"github.com/KevinStop/inventory-management-frontend/middleware"
	"github.com/KevinStop/inventory-management-frontend/services"
)

// GET /user/categories
func List(categories *services.Categories) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := categories.List(middleware.SessionContext(c))
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// POST /admin/categories
func Create(categories *services.Categories) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		category, err := categories.Create(middleware.SessionContext(c), input)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// PUT /admin/categories/:id
func Update(categories *services.Categories) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
			return
		}
		var input services.CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		category, err := categories.Update(middleware.SessionContext(c), id, input)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// DELETE /admin/categories/:id
func Delete(categories *services.Categories) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
			return
		}
		if err := categories.Delete(middleware.SessionContext(c), id); err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Categoría eliminada"})
	}
}
