package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/KevinStop/inventory-management-frontend/models"
)

// Components is the client of the component catalog service.
type Components struct {
	c *Client
}

type componentsEnvelope struct {
	Components []models.Component `json:"components"`
}

func (s *Components) list(ctx context.Context, path string, query url.Values) ([]models.Component, error) {
	var envelope componentsEnvelope
	if err := s.c.getJSON(ctx, path, query, &envelope); err != nil {
		return nil, err
	}
	for _, component := range envelope.Components {
		if err := component.Validate(); err != nil {
			return nil, err
		}
	}
	return envelope.Components, nil
}

func (s *Components) List(ctx context.Context, includeAvailable bool) ([]models.Component, error) {
	query := url.Values{"includeAvailable": {strconv.FormatBool(includeAvailable)}}
	return s.list(ctx, "/components", query)
}

func (s *Components) Get(ctx context.Context, id int) (models.Component, error) {
	var component models.Component
	if err := s.c.getJSON(ctx, fmt.Sprintf("/components/%d", id), nil, &component); err != nil {
		return models.Component{}, err
	}
	if err := component.Validate(); err != nil {
		return models.Component{}, err
	}
	return component, nil
}

func (s *Components) SearchByName(ctx context.Context, name string, includeAvailable bool) ([]models.Component, error) {
	query := url.Values{
		"name":             {name},
		"includeAvailable": {strconv.FormatBool(includeAvailable)},
	}
	return s.list(ctx, "/components", query)
}

func (s *Components) FilterByCategories(ctx context.Context, categoryIDs []int) ([]models.Component, error) {
	ids := make([]string, len(categoryIDs))
	for i, id := range categoryIDs {
		ids[i] = strconv.Itoa(id)
	}
	query := url.Values{"categoryIds": {strings.Join(ids, ",")}}
	return s.list(ctx, "/components/filter", query)
}

func (s *Components) FilterByStatus(ctx context.Context, status string, includeAvailable bool) ([]models.Component, error) {
	query := url.Values{
		"status":           {status},
		"includeAvailable": {strconv.FormatBool(includeAvailable)},
	}
	return s.list(ctx, "/components", query)
}

// ComponentInput is the admin catalog form. Reason and Quantity only apply on
// creation, where they seed the initial ingress movement.
type ComponentInput struct {
	Name        string
	CategoryID  int
	Quantity    int
	Reason      string
	Description string
	IsActive    bool
}

func (s *Components) Create(ctx context.Context, input ComponentInput, image *Upload) (models.Component, error) {
	fields := map[string]string{
		"name":       input.Name,
		"categoryId": strconv.Itoa(input.CategoryID),
		"quantity":   strconv.Itoa(input.Quantity),
		"reason":     input.Reason,
		"isActive":   strconv.FormatBool(input.IsActive),
	}
	if input.Description != "" {
		fields["description"] = input.Description
	}
	body, contentType, err := multipartBody(fields, map[string]*Upload{"image": image})
	if err != nil {
		return models.Component{}, &TransportError{Op: "POST /components", Err: err}
	}

	var component models.Component
	if err := s.c.do(ctx, http.MethodPost, "/components", nil, body, contentType, &component); err != nil {
		return models.Component{}, err
	}
	if err := component.Validate(); err != nil {
		return models.Component{}, err
	}
	return component, nil
}

func (s *Components) Update(ctx context.Context, id int, input ComponentInput, image *Upload) (models.Component, error) {
	fields := map[string]string{
		"name":       input.Name,
		"categoryId": strconv.Itoa(input.CategoryID),
		"isActive":   strconv.FormatBool(input.IsActive),
	}
	if input.Description != "" {
		fields["description"] = input.Description
	}
	path := fmt.Sprintf("/components/%d", id)
	body, contentType, err := multipartBody(fields, map[string]*Upload{"image": image})
	if err != nil {
		return models.Component{}, &TransportError{Op: "PUT " + path, Err: err}
	}

	var component models.Component
	if err := s.c.do(ctx, http.MethodPut, path, nil, body, contentType, &component); err != nil {
		return models.Component{}, err
	}
	return component, nil
}

func (s *Components) Delete(ctx context.Context, id int) error {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/components/%d", id), nil, nil, "", nil)
}
