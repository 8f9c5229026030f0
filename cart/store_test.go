package cart

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/KevinStop/inventory-management-frontend/models"
	"github.com/KevinStop/inventory-management-frontend/storage"
)

func newTestStore(t *testing.T) (*Store, *storage.KV) {
	t.Helper()
	kv, err := storage.Open(filepath.Join(t.TempDir(), "cart.db"))
	if err != nil {
		t.Fatalf("Failed to open storage: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return NewStore(kv), kv
}

func resistor() models.Component {
	return models.Component{ID: 1, Name: "Resistor 10k", CategoryID: 2, AvailableQuantity: 5, IsActive: true}
}

func TestEmptyCart(t *testing.T) {
	store, _ := newTestStore(t)

	if got := store.Selected(); len(got) != 0 {
		t.Errorf("Expected empty cart, got %v", got)
	}
	if got := store.Count(); got != 0 {
		t.Errorf("Count() = %d, want 0", got)
	}
}

func TestAddOrUpdateIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)

	if err := store.AddOrUpdate(resistor(), 3); err != nil {
		t.Fatalf("AddOrUpdate failed: %v", err)
	}
	if err := store.AddOrUpdate(resistor(), 3); err != nil {
		t.Fatalf("Second AddOrUpdate failed: %v", err)
	}

	selected := store.Selected()
	if len(selected) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(selected))
	}
	if selected[0].Quantity != 3 {
		t.Errorf("Quantity = %d, want 3", selected[0].Quantity)
	}
}

func TestAddOrUpdateOverwritesQuantity(t *testing.T) {
	store, _ := newTestStore(t)

	store.AddOrUpdate(resistor(), 3)
	store.AddOrUpdate(resistor(), 2)

	selected := store.Selected()
	if len(selected) != 1 || selected[0].Quantity != 2 {
		t.Errorf("Expected single entry with quantity 2, got %v", selected)
	}
}

func TestCountSumsQuantities(t *testing.T) {
	store, _ := newTestStore(t)

	store.AddOrUpdate(resistor(), 3)
	store.AddOrUpdate(models.Component{ID: 2, Name: "Protoboard", CategoryID: 1, AvailableQuantity: 10}, 4)
	store.AddOrUpdate(models.Component{ID: 3, Name: "LED rojo", CategoryID: 2, AvailableQuantity: 50}, 10)
	store.Remove(2)
	store.AddOrUpdate(resistor(), 5)

	if got := store.Count(); got != 15 {
		t.Errorf("Count() = %d, want 15", got)
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	store, _ := newTestStore(t)

	store.AddOrUpdate(resistor(), 1)
	if err := store.Remove(99); err != nil {
		t.Fatalf("Remove of absent id failed: %v", err)
	}
	if got := store.Selected(); len(got) != 1 {
		t.Errorf("Expected cart untouched, got %v", got)
	}
}

func TestSetSelectedRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	store.AddOrUpdate(resistor(), 3)
	store.AddOrUpdate(models.Component{ID: 7, Name: "Sensor DHT11", CategoryID: 4, AvailableQuantity: 8}, 2)

	before := store.Selected()
	if err := store.SetSelected(before); err != nil {
		t.Fatalf("SetSelected failed: %v", err)
	}
	after := store.Selected()
	if !reflect.DeepEqual(before, after) {
		t.Errorf("Round trip changed cart: before=%v after=%v", before, after)
	}
}

func TestClearAfterSubmission(t *testing.T) {
	store, _ := newTestStore(t)

	store.AddOrUpdate(resistor(), 3)
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if got := store.Selected(); len(got) != 0 {
		t.Errorf("Expected empty cart after clear, got %v", got)
	}
	if got := store.Count(); got != 0 {
		t.Errorf("Count() = %d after clear, want 0", got)
	}
}

func TestMalformedPayloadTreatedAsEmpty(t *testing.T) {
	store, kv := newTestStore(t)

	if err := kv.Put("selectedComponents", []byte("{not json")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if got := store.Selected(); len(got) != 0 {
		t.Errorf("Malformed payload should read as empty, got %v", got)
	}
}

func TestCartSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cart.db")

	kv, err := storage.Open(path)
	if err != nil {
		t.Fatalf("Failed to open storage: %v", err)
	}
	store := NewStore(kv)
	store.AddOrUpdate(resistor(), 4)
	if err := kv.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	kv, err = storage.Open(path)
	if err != nil {
		t.Fatalf("Failed to reopen storage: %v", err)
	}
	defer kv.Close()

	reopened := NewStore(kv)
	selected := reopened.Selected()
	if len(selected) != 1 || selected[0].Quantity != 4 {
		t.Errorf("Cart did not survive reopen: %v", selected)
	}
}
