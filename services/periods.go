package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/KevinStop/inventory-management-frontend/models"
)

// Periods is the client of the academic-period service. Accepting requests
// and registering movements require exactly one active period backend-side.
type Periods struct {
	c *Client
}

type PeriodInput struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (s *Periods) List(ctx context.Context) ([]models.AcademicPeriod, error) {
	var periods []models.AcademicPeriod
	if err := s.c.getJSON(ctx, "/academic-periods", nil, &periods); err != nil {
		return nil, err
	}
	return periods, nil
}

func (s *Periods) Active(ctx context.Context) (models.AcademicPeriod, error) {
	var period models.AcademicPeriod
	if err := s.c.getJSON(ctx, "/academic-periods/active", nil, &period); err != nil {
		return models.AcademicPeriod{}, err
	}
	return period, nil
}

func (s *Periods) Create(ctx context.Context, input PeriodInput) (models.AcademicPeriod, error) {
	var period models.AcademicPeriod
	if err := s.c.sendJSON(ctx, http.MethodPost, "/academic-periods", input, &period); err != nil {
		return models.AcademicPeriod{}, err
	}
	return period, nil
}

// Activate makes the period the single active one; the backend deactivates
// any other.
func (s *Periods) Activate(ctx context.Context, id int) error {
	return s.c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/academic-periods/%d/activate", id), nil, nil)
}

func (s *Periods) Delete(ctx context.Context, id int) error {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/academic-periods/%d", id), nil, nil, "", nil)
}
