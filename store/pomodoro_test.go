// ABOUTME: Tests for the pomodoro session log and settings store
// ABOUTME: Focus minutes only count completed sessions from the current day
package store

import (
	"testing"
	"time"

	"github.com/harperreed/dayboard/models"
)

func TestLogAssignsSortableIDs(t *testing.T) {
	s := NewSessionStore(NewMemory())
	now := time.Now()

	first := s.Log(models.PomodoroSession{StartTime: now.Add(-25 * time.Minute), EndTime: now, Duration: 25, Completed: true})
	second := s.Log(models.PomodoroSession{StartTime: now, EndTime: now.Add(25 * time.Minute), Duration: 25, Completed: true})

	if first.ID == "" || second.ID == "" {
		t.Fatal("expected sessions to get IDs")
	}
	if first.ID >= second.ID {
		t.Fatalf("expected IDs to sort chronologically: %s >= %s", first.ID, second.ID)
	}
	if got := len(s.Sessions()); got != 2 {
		t.Fatalf("expected 2 sessions, got %d", got)
	}
}

func TestTodaysFocusMinutes(t *testing.T) {
	s := NewSessionStore(NewMemory())
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)

	s.Log(models.PomodoroSession{StartTime: now.Add(-time.Hour), EndTime: now, Duration: 25, Completed: true})
	s.Log(models.PomodoroSession{StartTime: now.Add(-time.Hour), EndTime: now, Duration: 10, Completed: false})
	s.Log(models.PomodoroSession{StartTime: yesterday, EndTime: yesterday, Duration: 25, Completed: true})

	if got := len(s.TodaysSessions()); got != 2 {
		t.Fatalf("expected 2 sessions today, got %d", got)
	}
	if got := s.TodaysFocusMinutes(); got != 25 {
		t.Fatalf("expected 25 focus minutes, got %d", got)
	}
}

func TestDefaultSettings(t *testing.T) {
	s := NewSessionStore(NewMemory())

	settings := s.Settings()
	if settings.WorkDuration != 25 || settings.ShortBreakDuration != 5 || settings.LongBreakDuration != 15 {
		t.Fatalf("unexpected default durations: %+v", settings)
	}
	if settings.SessionsBeforeLongBreak != 4 {
		t.Fatalf("expected 4 sessions before long break, got %d", settings.SessionsBeforeLongBreak)
	}
	if settings.AutoStartBreaks || settings.AutoStartPomodoros {
		t.Fatal("expected auto-start off by default")
	}
}

func TestUpdateSettingsPersists(t *testing.T) {
	mem := NewMemory()
	s := NewSessionStore(mem)

	work := 50
	auto := true
	updated := s.UpdateSettings(models.SettingsPatch{WorkDuration: &work, AutoStartBreaks: &auto})
	if updated.WorkDuration != 50 || !updated.AutoStartBreaks {
		t.Fatalf("patch not applied: %+v", updated)
	}
	// Untouched fields keep their values.
	if updated.ShortBreakDuration != 5 {
		t.Fatalf("expected short break untouched, got %d", updated.ShortBreakDuration)
	}

	reloaded := NewSessionStore(mem)
	if got := reloaded.Settings().WorkDuration; got != 50 {
		t.Fatalf("expected settings to survive reload, got %d", got)
	}
}
