// ABOUTME: Tests for the key/value client wrapper
// ABOUTME: Covers get/set/delete round-trips, prefix listing, and reset
package kv

import (
	"errors"
	"testing"
)

func TestSetGetRoundTrip(t *testing.T) {
	c, cleanup := NewTestClient(t)
	defer cleanup()

	if err := c.Set([]byte("tasks"), []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := c.Get([]byte("tasks"))
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != `[{"id":"a"}]` {
		t.Errorf("Value mismatch: %s", got)
	}
}

func TestGetMissingKey(t *testing.T) {
	c, cleanup := NewTestClient(t)
	defer cleanup()

	_, err := c.Get([]byte("nothing-here"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	c, cleanup := NewTestClient(t)
	defer cleanup()

	if err := c.Set([]byte("deals"), []byte("[]")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := c.Delete([]byte("deals")); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := c.Get([]byte("deals")); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}

	// Deleting again is not an error
	if err := c.Delete([]byte("deals")); err != nil {
		t.Errorf("Second delete failed: %v", err)
	}
}

func TestKeysWithPrefix(t *testing.T) {
	c, cleanup := NewTestClient(t)
	defer cleanup()

	for _, k := range []string{"pomodoro-sessions", "pomodoro-settings", "tasks"} {
		if err := c.Set([]byte(k), []byte("{}")); err != nil {
			t.Fatalf("Set %s failed: %v", k, err)
		}
	}

	matched, err := c.KeysWithPrefix([]byte("pomodoro-"))
	if err != nil {
		t.Fatalf("KeysWithPrefix failed: %v", err)
	}
	if len(matched) != 2 {
		t.Errorf("Expected 2 keys, got %d", len(matched))
	}
}

func TestReset(t *testing.T) {
	c, cleanup := NewTestClient(t)
	defer cleanup()

	if err := c.Set([]byte("streak-data"), []byte("{}")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := c.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	keys, err := c.Keys()
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 0 {
		t.Errorf("Expected empty store after reset, got %d keys", len(keys))
	}
}
