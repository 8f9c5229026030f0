package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/KevinStop/inventory-management-frontend/models"
)

// Categories is the client of the category catalog service.
type Categories struct {
	c *Client
}

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (s *Categories) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.c.getJSON(ctx, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *Categories) Create(ctx context.Context, input CategoryInput) (models.Category, error) {
	var category models.Category
	if err := s.c.sendJSON(ctx, http.MethodPost, "/categories", input, &category); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (s *Categories) Update(ctx context.Context, id int, input CategoryInput) (models.Category, error) {
	var category models.Category
	if err := s.c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/categories/%d", id), input, &category); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (s *Categories) Delete(ctx context.Context, id int) error {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, nil, "", nil)
}
