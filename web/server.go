// ABOUTME: Thin JSON API server for the calendar endpoints
// ABOUTME: Read path falls back to demo events when the bridge is unavailable
package web

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/harperreed/dayboard/calendar"
	"github.com/harperreed/dayboard/models"
	"github.com/harperreed/dayboard/store"
)

type Server struct {
	tasks  *store.TaskStore
	bridge calendar.Bridge
	now    func() time.Time
}

// NewServer wires the task store and the calendar bridge. bridge may be
// nil; reads then serve demo events and writes fail with 503.
func NewServer(tasks *store.TaskStore, bridge calendar.Bridge) *Server {
	return &Server{tasks: tasks, bridge: bridge, now: time.Now}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/calendar/events", s.handleEvents)
	mux.HandleFunc("/api/calendar/sync", s.handleSync)
	return mux
}

// Start serves until the listener fails.
func (s *Server) Start(port int) error {
	addr := fmt.Sprintf(":%d", port)
	log.Printf("Starting API server at http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	days := 30
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "days must be a positive integer", http.StatusBadRequest)
			return
		}
		days = parsed
	}

	if s.bridge != nil {
		events, err := s.bridge.Events(r.Context(), days)
		if err == nil {
			writeJSON(w, map[string]any{"events": events})
			return
		}
		log.Printf("Calendar read failed, serving demo events: %v", err)
	}

	writeJSON(w, map[string]any{
		"events": calendar.DemoEvents(s.now()),
		"demo":   true,
	})
}

type syncRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	DueDate     time.Time       `json:"due_date"`
	Priority    models.Priority `json:"priority"`
	TaskID      string          `json:"task_id"`
}

func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.bridge == nil {
		http.Error(w, "calendar bridge not configured", http.StatusServiceUnavailable)
		return
	}

	var req syncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Title == "" || req.DueDate.IsZero() {
		http.Error(w, "title and due_date are required", http.StatusBadRequest)
		return
	}

	link, err := s.bridge.CreateTaskEvent(r.Context(), req.Title, req.Description, req.DueDate, req.Priority)
	if err != nil {
		log.Printf("Calendar sync failed: %v", err)
		http.Error(w, "failed to create calendar event", http.StatusBadGateway)
		return
	}

	if req.TaskID != "" && s.tasks != nil {
		s.tasks.MarkSynced(req.TaskID)
	}

	writeJSON(w, map[string]any{"html_link": link})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
