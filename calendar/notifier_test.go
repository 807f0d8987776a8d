// ABOUTME: Tests for the best-effort calendar notifier
// ABOUTME: A fake bridge records calls; Close makes delivery observable
package calendar

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/dayboard/models"
)

type fakeBridge struct {
	mu     sync.Mutex
	titles []string
	fail   bool
}

func (b *fakeBridge) Events(ctx context.Context, daysAhead int) ([]models.Event, error) {
	return nil, nil
}

func (b *fakeBridge) CreateTaskEvent(ctx context.Context, title, description string, dueDate time.Time, priority models.Priority) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.fail {
		return "", errors.New("api unavailable")
	}
	b.titles = append(b.titles, title)
	return "https://calendar.example/event", nil
}

func (b *fakeBridge) created() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.titles))
	copy(out, b.titles)
	return out
}

type fakeMarkers struct {
	mu     sync.Mutex
	synced map[string]bool
}

func newFakeMarkers() *fakeMarkers {
	return &fakeMarkers{synced: make(map[string]bool)}
}

func (m *fakeMarkers) IsSynced(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.synced[id]
}

func (m *fakeMarkers) MarkSynced(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.synced[id] = true
}

func dueTask(id, title string) models.Task {
	due := time.Now().AddDate(0, 0, 1)
	return models.Task{ID: id, Title: title, Priority: models.PriorityHigh, DueDate: &due}
}

func TestNotifierSyncsAndMarks(t *testing.T) {
	bridge := &fakeBridge{}
	markers := newFakeMarkers()
	n := NewNotifier(bridge, markers)

	n.Enqueue(dueTask("task-1", "Mirror me"))
	n.Close()

	require.Equal(t, []string{"Mirror me"}, bridge.created())
	assert.True(t, markers.IsSynced("task-1"))
}

func TestNotifierSkipsAlreadySynced(t *testing.T) {
	bridge := &fakeBridge{}
	markers := newFakeMarkers()
	markers.MarkSynced("task-1")
	n := NewNotifier(bridge, markers)

	n.Enqueue(dueTask("task-1", "Already there"))
	n.Close()

	assert.Empty(t, bridge.created())
}

func TestNotifierSwallowsFailures(t *testing.T) {
	bridge := &fakeBridge{fail: true}
	markers := newFakeMarkers()
	n := NewNotifier(bridge, markers)

	n.Enqueue(dueTask("task-1", "Doomed"))
	n.Close()

	assert.False(t, markers.IsSynced("task-1"), "failed sync must not mark the task")
}

func TestNotifierIgnoresTasksWithoutDueDate(t *testing.T) {
	bridge := &fakeBridge{}
	n := NewNotifier(bridge, newFakeMarkers())

	n.Enqueue(models.Task{ID: "task-1", Title: "No date"})
	n.Close()

	assert.Empty(t, bridge.created())
}

func TestNotifierNilBridge(t *testing.T) {
	n := NewNotifier(nil, newFakeMarkers())
	n.Enqueue(dueTask("task-1", "Nowhere to go"))
	n.Close() // must not panic or hang
}
