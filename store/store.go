// ABOUTME: Persistence adapter interface and storage key names
// ABOUTME: JSON snapshots per named collection over the key/value client
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/harperreed/dayboard/kv"
)

// Storage keys, one per collection.
const (
	KeyTasks            = "tasks"
	KeyProjects         = "projects"
	KeyCustomers        = "customers"
	KeyDeals            = "deals"
	KeyInteractions     = "interactions"
	KeyPomodoroSessions = "pomodoro-sessions"
	KeyPomodoroSettings = "pomodoro-settings"
	KeyStreakData       = "streak-data"
	KeyDailyStats       = "daily-stats"
	KeySyncedTasks      = "synced-tasks"
)

// ErrNoData is returned by Load when a key has never been written. Callers
// use it to tell "fresh install, seed defaults" apart from corrupt data.
var ErrNoData = errors.New("no stored data")

// Adapter persists a named JSON-serializable value. Implementations must be
// safe for concurrent use.
type Adapter interface {
	Load(key string, v any) error
	Save(key string, v any) error
}

// KV adapts the Badger client to the Adapter interface.
type KV struct {
	client *kv.Client
}

// NewKV wraps a key/value client as a store adapter.
func NewKV(client *kv.Client) *KV {
	return &KV{client: client}
}

func (a *KV) Load(key string, v any) error {
	data, err := a.client.Get([]byte(key))
	if errors.Is(err, kv.ErrNotFound) {
		return ErrNoData
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func (a *KV) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := a.client.Set([]byte(key), data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Memory is an in-process adapter for tests.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Load(key string, v any) error {
	m.mu.RLock()
	data, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return ErrNoData
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func (m *Memory) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	m.mu.Lock()
	m.data[key] = data
	m.mu.Unlock()
	return nil
}

// Seed stores raw bytes under a key, bypassing the JSON codec. Tests use it
// to simulate corrupt stored data.
func (m *Memory) Seed(key string, raw []byte) {
	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
}
