package models

// SelectedComponent is one line of the local selection cart: a component the
// user intends to request, with the quantity they picked. One entry per
// component id.
type SelectedComponent struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	CategoryID        int    `json:"categoryId"`
	AvailableQuantity int    `json:"availableQuantity"`
	Quantity          int    `json:"quantity"`
}
