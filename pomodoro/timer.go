// ABOUTME: Pomodoro timer state machine driven by one-second ticks
// ABOUTME: Completed work phases are logged and feed the daily focus counters
package pomodoro

import (
	"fmt"
	"sync"
	"time"

	"github.com/harperreed/dayboard/models"
	"github.com/harperreed/dayboard/store"
)

// StatsRecorder receives completed focus minutes. The streak tracker
// implements it.
type StatsRecorder interface {
	AddPomodoroMinutes(minutes int)
}

// State is a snapshot of the timer for display.
type State struct {
	Running           bool             `json:"running"`
	Mode              models.TimerMode `json:"mode"`
	TimeLeft          int              `json:"time_left"` // seconds
	CompletedSessions int              `json:"completed_sessions"`
	ActiveTaskID      *string          `json:"active_task_id,omitempty"`
	ActiveTaskTitle   *string          `json:"active_task_title,omitempty"`
}

// Timer is the pomodoro state machine. It does not run its own goroutine;
// the owner calls Tick once per second while the timer runs. Completed work
// phases are appended to the session log, then the timer rolls into a break
// whose length depends on how many work phases have finished.
type Timer struct {
	mu       sync.Mutex
	sessions *store.SessionStore
	stats    StatsRecorder
	now      func() time.Time

	running        bool
	mode           models.TimerMode
	timeLeft       int // seconds
	completedCount int
	taskID         *string
	taskTitle      *string
	startTime      time.Time
}

// NewTimer builds a stopped work-mode timer. stats may be nil.
func NewTimer(sessions *store.SessionStore, stats StatsRecorder) *Timer {
	t := &Timer{
		sessions: sessions,
		stats:    stats,
		now:      time.Now,
		mode:     models.ModeWork,
	}
	t.timeLeft = sessions.Settings().WorkDuration * 60
	return t
}

// Start runs the timer, optionally attaching a task to the session.
func (t *Timer) Start(taskID, taskTitle *string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if taskID != nil {
		t.taskID = taskID
		t.taskTitle = taskTitle
	}
	t.running = true
	t.startTime = t.now()
}

// Pause stops the countdown without losing the remaining time.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = false
}

// Reset stops the timer and returns it to a full work phase, detaching any
// active task.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.running = false
	t.mode = models.ModeWork
	t.timeLeft = t.sessions.Settings().WorkDuration * 60
	t.taskID = nil
	t.taskTitle = nil
}

// Skip ends the current phase immediately, with the same effects as a
// natural expiry.
func (t *Timer) Skip() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.complete()
}

// Tick advances the countdown by one second. The phase transition happens
// on the tick that reaches zero.
func (t *Timer) Tick() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return
	}
	if t.timeLeft > 0 {
		t.timeLeft--
	}
	if t.timeLeft == 0 {
		t.complete()
	}
}

// complete handles phase expiry. Caller holds the lock.
func (t *Timer) complete() {
	t.running = false
	settings := t.sessions.Settings()

	if t.mode == models.ModeWork {
		now := t.now()
		start := t.startTime
		if start.IsZero() {
			start = now
		}
		t.sessions.Log(models.PomodoroSession{
			TaskID:    t.taskID,
			TaskTitle: t.taskTitle,
			StartTime: start,
			EndTime:   now,
			Duration:  settings.WorkDuration,
			Completed: true,
		})
		if t.stats != nil {
			t.stats.AddPomodoroMinutes(settings.WorkDuration)
		}

		t.completedCount++
		// Stored settings predating validation may carry a zero cadence.
		every := settings.SessionsBeforeLongBreak
		if every > 0 && t.completedCount%every == 0 {
			t.mode = models.ModeLongBreak
			t.timeLeft = settings.LongBreakDuration * 60
		} else {
			t.mode = models.ModeShortBreak
			t.timeLeft = settings.ShortBreakDuration * 60
		}
		if settings.AutoStartBreaks {
			t.running = true
			t.startTime = t.now()
		}
		return
	}

	t.mode = models.ModeWork
	t.timeLeft = settings.WorkDuration * 60
	if settings.AutoStartPomodoros {
		t.running = true
		t.startTime = t.now()
	}
}

// SwitchMode stops the timer and jumps to the given phase at full duration.
func (t *Timer) SwitchMode(mode models.TimerMode) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.running = false
	t.mode = mode
	t.timeLeft = t.phaseDuration(mode, t.sessions.Settings())
}

// UpdateSettings merges the patch into the stored settings. A stopped timer
// re-bases its remaining time on the new duration for the current phase; a
// running countdown is left alone.
func (t *Timer) UpdateSettings(patch models.SettingsPatch) models.PomodoroSettings {
	t.mu.Lock()
	defer t.mu.Unlock()

	settings := t.sessions.UpdateSettings(patch)
	if !t.running {
		t.timeLeft = t.phaseDuration(t.mode, settings)
	}
	return settings
}

func (t *Timer) phaseDuration(mode models.TimerMode, settings models.PomodoroSettings) int {
	switch mode {
	case models.ModeShortBreak:
		return settings.ShortBreakDuration * 60
	case models.ModeLongBreak:
		return settings.LongBreakDuration * 60
	default:
		return settings.WorkDuration * 60
	}
}

// State returns a snapshot of the timer.
func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	return State{
		Running:           t.running,
		Mode:              t.mode,
		TimeLeft:          t.timeLeft,
		CompletedSessions: t.completedCount,
		ActiveTaskID:      t.taskID,
		ActiveTaskTitle:   t.taskTitle,
	}
}

// FormatTime renders seconds as MM:SS.
func FormatTime(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
