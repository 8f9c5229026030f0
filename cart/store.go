// Package cart maintains the selection cart: the components a user is
// assembling into a future loan request. The cart survives restarts by
// persisting every mutation immediately to local storage.
package cart

import (
	"encoding/json"
	"sync"

	"github.com/KevinStop/inventory-management-frontend/models"
	"github.com/KevinStop/inventory-management-frontend/storage"
)

const storageKey = "selectedComponents"

// Store is constructed once at startup and passed to whatever needs the
// cart. It does not validate quantities; callers run validate.Quantity
// before mutating (the store honors whatever the caller decided).
type Store struct {
	mu sync.Mutex
	kv *storage.KV
}

func NewStore(kv *storage.KV) *Store {
	return &Store{kv: kv}
}

// Selected returns the current snapshot. A missing or malformed payload is
// treated as an empty cart, never an error.
func (s *Store) Selected() []models.SelectedComponent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// SetSelected replaces the whole snapshot in a single write.
func (s *Store) SetSelected(components []models.SelectedComponent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(components)
}

// AddOrUpdate upserts by component id: an id already in the cart gets its
// quantity overwritten, never a duplicate entry.
func (s *Store) AddOrUpdate(component models.Component, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected := s.load()
	for i := range selected {
		if selected[i].ID == component.ID {
			selected[i].Quantity = quantity
			return s.save(selected)
		}
	}
	selected = append(selected, models.SelectedComponent{
		ID:                component.ID,
		Name:              component.Name,
		CategoryID:        component.CategoryID,
		AvailableQuantity: component.AvailableQuantity,
		Quantity:          quantity,
	})
	return s.save(selected)
}

// Remove drops the entry for id. Removing an absent id is a no-op.
func (s *Store) Remove(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected := s.load()
	kept := selected[:0]
	for _, item := range selected {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return s.save(kept)
}

// Count is the sum of all quantities, shown as the cart badge.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.load() {
		total += item.Quantity
	}
	return total
}

// Clear empties the cart. Called after a successful submission and on logout.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(nil)
}

func (s *Store) load() []models.SelectedComponent {
	raw, ok, err := s.kv.Get(storageKey)
	if err != nil || !ok {
		return []models.SelectedComponent{}
	}
	var selected []models.SelectedComponent
	if err := json.Unmarshal(raw, &selected); err != nil {
		return []models.SelectedComponent{}
	}
	return selected
}

func (s *Store) save(components []models.SelectedComponent) error {
	if components == nil {
		components = []models.SelectedComponent{}
	}
	raw, err := json.Marshal(components)
	if err != nil {
		return err
	}
	return s.kv.Put(storageKey, raw)
}
