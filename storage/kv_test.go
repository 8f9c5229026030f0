package storage

import (
	"bytes"
	"path/filepath"
	"testing"
)

func openTestKV(t *testing.T) *KV {
	t.Helper()
	kv, err := Open(filepath.Join(t.TempDir(), "portal.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestGetMissingKey(t *testing.T) {
	kv := openTestKV(t)

	value, ok, err := kv.Get("selectedComponents")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Fatalf("Expected missing key, got value %q", value)
	}
}

func TestPutOverwrites(t *testing.T) {
	kv := openTestKV(t)

	if err := kv.Put("k", []byte("first")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := kv.Put("k", []byte("second")); err != nil {
		t.Fatalf("Overwrite failed: %v", err)
	}

	value, ok, err := kv.Get("k")
	if err != nil || !ok {
		t.Fatalf("Get after overwrite: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(value, []byte("second")) {
		t.Errorf("Expected %q, got %q", "second", value)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	kv := openTestKV(t)

	if err := kv.Put("k", []byte("v")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := kv.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := kv.Delete("k"); err != nil {
		t.Fatalf("Second delete failed: %v", err)
	}

	_, ok, err := kv.Get("k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("Key still present after delete")
	}
}
