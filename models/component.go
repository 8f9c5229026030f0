package models

import "time"

// AvailabilityDetails breaks the stock of a component down by where the
// units currently are.
type AvailabilityDetails struct {
	Total      int `json:"total"`
	Available  int `json:"available"`
	InLoans    int `json:"inLoans"`
	InRequests int `json:"inRequests"`
}

type Component struct {
	ID                  int                  `json:"id"`
	Name                string               `json:"name"`
	Description         string               `json:"description,omitempty"`
	Quantity            int                  `json:"quantity"`
	AvailableQuantity   int                  `json:"availableQuantity"`
	AvailabilityDetails *AvailabilityDetails `json:"availabilityDetails,omitempty"`
	IsActive            bool                 `json:"isActive"`
	ImageURL            string               `json:"imageUrl,omitempty"`
	CategoryID          int                  `json:"categoryId"`
	Category            *Category            `json:"category,omitempty"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
}

func (c Component) Validate() error {
	if c.ID <= 0 {
		return ErrBadShape("component", "id")
	}
	if c.Name == "" {
		return ErrBadShape("component", "name")
	}
	return nil
}

// Loanable reports whether the component should appear in the user catalog.
func (c Component) Loanable() bool {
	return c.IsActive && c.AvailableQuantity > 0
}
