package services

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/KevinStop/inventory-management-frontend/models"
)

// Movements is the client of the stock-movement ledger.
type Movements struct {
	c *Client
}

type MovementInput struct {
	ComponentID int                 `json:"componentId"`
	Type        models.MovementType `json:"type"`
	Quantity    int                 `json:"quantity"`
	Reason      string              `json:"reason,omitempty"`
}

// List returns the ledger, optionally filtered to one component
// (componentID 0 means all).
func (s *Movements) List(ctx context.Context, componentID int) ([]models.Movement, error) {
	var query url.Values
	if componentID > 0 {
		query = url.Values{"componentId": {strconv.Itoa(componentID)}}
	}
	var movements []models.Movement
	if err := s.c.getJSON(ctx, "/component-movements", query, &movements); err != nil {
		return nil, err
	}
	return movements, nil
}

func (s *Movements) Create(ctx context.Context, input MovementInput) (models.Movement, error) {
	var movement models.Movement
	if err := s.c.sendJSON(ctx, http.MethodPost, "/component-movements", input, &movement); err != nil {
		return models.Movement{}, err
	}
	return movement, nil
}
