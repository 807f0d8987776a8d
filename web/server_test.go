// ABOUTME: Tests for the calendar API endpoints
// ABOUTME: A stub bridge exercises both the happy path and the demo fallback
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/dayboard/models"
	"github.com/harperreed/dayboard/store"
)

type stubBridge struct {
	events    []models.Event
	eventsErr error
	link      string
	createErr error
	created   int
}

func (b *stubBridge) Events(ctx context.Context, daysAhead int) ([]models.Event, error) {
	return b.events, b.eventsErr
}

func (b *stubBridge) CreateTaskEvent(ctx context.Context, title, description string, dueDate time.Time, priority models.Priority) (string, error) {
	if b.createErr != nil {
		return "", b.createErr
	}
	b.created++
	return b.link, nil
}

func newTestServer(bridge *stubBridge) (*Server, *store.TaskStore) {
	tasks := store.NewTaskStore(store.NewMemory(), nil)
	if bridge == nil {
		return NewServer(tasks, nil), tasks
	}
	return NewServer(tasks, bridge), tasks
}

func TestEventsHappyPath(t *testing.T) {
	bridge := &stubBridge{events: []models.Event{{ID: "e1", Title: "Meeting"}}}
	srv, _ := newTestServer(bridge)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/calendar/events?days=7", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Events []models.Event `json:"events"`
		Demo   bool           `json:"demo"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Demo {
		t.Fatal("expected real events, not demo")
	}
	if len(body.Events) != 1 || body.Events[0].Title != "Meeting" {
		t.Fatalf("unexpected events: %+v", body.Events)
	}
}

func TestEventsFallsBackToDemo(t *testing.T) {
	bridge := &stubBridge{eventsErr: errors.New("api down")}
	srv, _ := newTestServer(bridge)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/calendar/events", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Events []models.Event `json:"events"`
		Demo   bool           `json:"demo"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !body.Demo {
		t.Fatal("expected demo flag on bridge failure")
	}
	if len(body.Events) == 0 {
		t.Fatal("expected demo events")
	}
}

func TestEventsRejectsBadDays(t *testing.T) {
	srv, _ := newTestServer(&stubBridge{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/calendar/events?days=zero", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSyncCreatesEventAndMarks(t *testing.T) {
	bridge := &stubBridge{link: "https://calendar.example/e1"}
	srv, tasks := newTestServer(bridge)

	task := models.Task{Title: "Sync me", Status: models.StatusTodo, Priority: models.PriorityHigh}
	tasks.CreateTask(&task)

	payload := `{"title":"Sync me","due_date":"2026-03-12T10:00:00Z","priority":"high","task_id":"` + task.ID + `"}`
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/calendar/sync", strings.NewReader(payload)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if bridge.created != 1 {
		t.Fatalf("expected 1 created event, got %d", bridge.created)
	}
	if !tasks.IsSynced(task.ID) {
		t.Fatal("expected task to be marked synced")
	}
}

func TestSyncValidatesBody(t *testing.T) {
	srv, _ := newTestServer(&stubBridge{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/calendar/sync", strings.NewReader(`{"description":"no title"}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSyncWithoutBridge(t *testing.T) {
	srv, _ := newTestServer(nil)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/calendar/sync", strings.NewReader(`{"title":"x","due_date":"2026-03-12T10:00:00Z"}`)))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestMethodChecks(t *testing.T) {
	srv, _ := newTestServer(&stubBridge{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/calendar/events", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for POST events, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/calendar/sync", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for GET sync, got %d", rec.Code)
	}
}
