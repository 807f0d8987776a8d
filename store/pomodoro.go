// ABOUTME: Append-only pomodoro session log and timer settings persistence
// ABOUTME: Sessions get time-sortable ulid IDs; settings fall back to stock defaults
package store

import (
	"log"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/harperreed/dayboard/models"
)

// SessionStore owns the pomodoro session history and the timer settings.
// The session log is append-only; sessions are never edited after the
// fact.
type SessionStore struct {
	mu       sync.Mutex
	adapter  Adapter
	now      func() time.Time
	sessions []models.PomodoroSession
	settings models.PomodoroSettings
}

func NewSessionStore(adapter Adapter) *SessionStore {
	s := &SessionStore{adapter: adapter, now: time.Now}

	if err := adapter.Load(KeyPomodoroSessions, &s.sessions); err != nil {
		if err != ErrNoData {
			log.Printf("Error loading pomodoro sessions: %v", err)
		}
		s.sessions = nil
	}
	if err := adapter.Load(KeyPomodoroSettings, &s.settings); err != nil {
		if err != ErrNoData {
			log.Printf("Error loading pomodoro settings, using defaults: %v", err)
		}
		s.settings = models.DefaultPomodoroSettings()
	}

	return s
}

// Log appends a completed session to the history. The ID is assigned here
// and is time-sortable, so the stored log stays in chronological order.
func (s *SessionStore) Log(session models.PomodoroSession) models.PomodoroSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	session.ID = ulid.Make().String()
	session.CreatedAt = s.now()
	s.sessions = append(s.sessions, session)
	if err := s.adapter.Save(KeyPomodoroSessions, s.sessions); err != nil {
		log.Printf("Error saving pomodoro sessions: %v", err)
	}
	return session
}

// Sessions returns a copy of the full session history, oldest first.
func (s *SessionStore) Sessions() []models.PomodoroSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.PomodoroSession, len(s.sessions))
	copy(out, s.sessions)
	return out
}

// TodaysSessions returns sessions whose end time falls on the current day.
func (s *SessionStore) TodaysSessions() []models.PomodoroSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := models.DayKey(s.now())
	var out []models.PomodoroSession
	for i := range s.sessions {
		if models.DayKey(s.sessions[i].EndTime) == today {
			out = append(out, s.sessions[i])
		}
	}
	return out
}

// TodaysFocusMinutes sums the durations of today's completed work sessions.
func (s *SessionStore) TodaysFocusMinutes() int {
	total := 0
	for _, session := range s.TodaysSessions() {
		if session.Completed {
			total += session.Duration
		}
	}
	return total
}

// Settings returns the current timer settings.
func (s *SessionStore) Settings() models.PomodoroSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// UpdateSettings merges the patch into the stored settings and returns the
// result.
func (s *SessionStore) UpdateSettings(patch models.SettingsPatch) models.PomodoroSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = patch.Apply(s.settings)
	if err := s.adapter.Save(KeyPomodoroSettings, s.settings); err != nil {
		log.Printf("Error saving pomodoro settings: %v", err)
	}
	return s.settings
}
