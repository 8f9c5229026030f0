package componentControllers

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KevinStop/inventory-management-frontend/controllers/respond"
	"github.com/KevinStop/inventory-management-frontend/middleware"
	"github.com/KevinStop/inventory-management-frontend/models"
	"github.com/KevinStop/inventory-management-frontend/services"
)

// GET /user/components lists what a user may borrow: active components with
// stock, optionally narrowed by name or categories.
func Browse(components *services.Components) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := middleware.SessionContext(c)

		var (
			list []models.Component
			err  error
		)
		switch {
		case c.Query("name") != "":
			list, err = components.SearchByName(ctx, c.Query("name"), true)
		case c.Query("categoryIds") != "":
			ids, parseErr := parseIDList(c.Query("categoryIds"))
			if parseErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "categoryIds inválido"})
				return
			}
			list, err = components.FilterByCategories(ctx, ids)
		default:
			list, err = components.List(ctx, true)
		}
		if err != nil {
			respond.Error(c, err)
			return
		}

		loanable := make([]models.Component, 0, len(list))
		for _, component := range list {
			if component.Loanable() {
				loanable = append(loanable, component)
			}
		}
		c.JSON(http.StatusOK, gin.H{"components": loanable})
	}
}

// GET /user/components/:id
func Get(components *services.Components) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
			return
		}
		component, err := components.Get(middleware.SessionContext(c), id)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, component)
	}
}

// GET /admin/components lists the full catalog, inactive entries included.
func AdminList(components *services.Components) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := middleware.SessionContext(c)

		var (
			list []models.Component
			err  error
		)
		if status := c.Query("status"); status != "" {
			list, err = components.FilterByStatus(ctx, status, true)
		} else {
			list, err = components.List(ctx, true)
		}
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"components": list})
	}
}

type createComponentForm struct {
	Name        string `form:"name" binding:"required"`
	CategoryID  int    `form:"categoryId" binding:"required"`
	Quantity    int    `form:"quantity" binding:"required,min=1"`
	Reason      string `form:"reason" binding:"required"`
	Description string `form:"description"`
	IsActive    bool   `form:"isActive"`
}

// POST /admin/components creates the component and seeds its initial ingress
// movement. The two steps are independent backend calls: if the movement
// fails the component stays created, and the response says which step broke
// so the admin can re-query and continue.
func Create(components *services.Components, movements *services.Movements) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form createComponentForm
		if err := c.ShouldBind(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		image, err := readUpload(c, "image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No se pudo leer la imagen"})
			return
		}

		ctx := middleware.SessionContext(c)
		component, err := components.Create(ctx, services.ComponentInput{
			Name:        form.Name,
			CategoryID:  form.CategoryID,
			Quantity:    form.Quantity,
			Reason:      form.Reason,
			Description: form.Description,
			IsActive:    form.IsActive,
		}, image)
		if err != nil {
			respond.Error(c, err)
			return
		}

		_, err = movements.Create(ctx, services.MovementInput{
			ComponentID: component.ID,
			Type:        models.MovementIngress,
			Quantity:    form.Quantity,
			Reason:      form.Reason,
		})
		if err != nil {
			c.JSON(http.StatusCreated, gin.H{
				"component": component,
				"warning":   "El componente fue creado pero el movimiento inicial falló; regístrelo manualmente.",
			})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"component": component})
	}
}

// PUT /admin/components/:id
func Update(components *services.Components) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
			return
		}

		var form struct {
			Name        string `form:"name" binding:"required"`
			CategoryID  int    `form:"categoryId" binding:"required"`
			Description string `form:"description"`
			IsActive    bool   `form:"isActive"`
		}
		if err := c.ShouldBind(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		image, err := readUpload(c, "image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No se pudo leer la imagen"})
			return
		}

		component, err := components.Update(middleware.SessionContext(c), id, services.ComponentInput{
			Name:        form.Name,
			CategoryID:  form.CategoryID,
			Description: form.Description,
			IsActive:    form.IsActive,
		}, image)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, component)
	}
}

// DELETE /admin/components/:id
func Delete(components *services.Components) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
			return
		}
		if err := components.Delete(middleware.SessionContext(c), id); err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Componente eliminado"})
	}
}

func parseIDList(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// readUpload pulls an optional multipart file out of the form. A missing
// file is not an error.
func readUpload(c *gin.Context, field string) (*services.Upload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &services.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}
