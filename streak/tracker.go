// ABOUTME: Persistent streak tracker with incremental and full recompute paths
// ABOUTME: Also owns the per-day stats counters (completions, pomodoro minutes)
package streak

import (
	"log"
	"sync"
	"time"

	"github.com/harperreed/dayboard/models"
	"github.com/harperreed/dayboard/store"
)

// Status is the at-a-glance streak summary.
type Status struct {
	HasCompletedToday    bool `json:"has_completed_today"`
	CurrentStreak        int  `json:"current_streak"`
	LongestStreak        int  `json:"longest_streak"`
	IsStreakActive       bool `json:"is_streak_active"`
	DaysUntilStreakBreak int  `json:"days_until_streak_break"`
}

// DayProgress is one cell of the weekly progress strip.
type DayProgress struct {
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
	Count     int    `json:"count"`
}

// Tracker persists streak data and daily stats through the store adapter.
type Tracker struct {
	mu      sync.Mutex
	adapter store.Adapter
	now     func() time.Time

	data  models.StreakData
	stats map[string]models.DailyStats
}

func NewTracker(adapter store.Adapter) *Tracker {
	t := &Tracker{adapter: adapter, now: time.Now}

	if err := adapter.Load(store.KeyStreakData, &t.data); err != nil {
		if err != store.ErrNoData {
			log.Printf("Error loading streak data: %v", err)
		}
		t.data = models.StreakData{}
	}
	if err := adapter.Load(store.KeyDailyStats, &t.stats); err != nil {
		if err != store.ErrNoData {
			log.Printf("Error loading daily stats: %v", err)
		}
	}
	if t.stats == nil {
		t.stats = make(map[string]models.DailyStats)
	}

	return t
}

// Recompute derives the streak from the full task collection and refreshes
// the per-day completion counts. It is the authoritative path; the longest
// streak survives as a running maximum.
func (t *Tracker) Recompute(tasks []models.Task) models.StreakData {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.data = Compute(tasks, t.now(), t.data)

	perDay := make(map[string]int)
	for i := range tasks {
		task := &tasks[i]
		if task.Status == models.StatusDone && task.CompletedAt != nil {
			perDay[models.DayKey(*task.CompletedAt)]++
		}
	}
	for date, count := range perDay {
		day := t.stats[date]
		day.Date = date
		day.TasksCompleted = count
		t.stats[date] = day
	}

	t.persist()
	return t.data
}

// RecordCompletion is the incremental path: the first completion of a day
// extends or restarts the streak; later completions only bump counters.
func (t *Tracker) RecordCompletion() models.StreakData {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	today := models.DayKey(now)
	yesterday := models.DayKey(now.AddDate(0, 0, -1))

	first := true
	for _, d := range t.data.CompletedDates {
		if d == today {
			first = false
			break
		}
	}

	if first {
		switch t.data.LastCompletedDate {
		case "", today, yesterday:
			t.data.CurrentStreak++
		default:
			t.data.CurrentStreak = 1
		}
		if t.data.CurrentStreak > t.data.LongestStreak {
			t.data.LongestStreak = t.data.CurrentStreak
		}
		t.data.CompletedDates = append(t.data.CompletedDates, today)
	}
	t.data.LastCompletedDate = today
	t.data.TotalTasksCompleted++

	day := t.stats[today]
	day.Date = today
	day.TasksCompleted++
	t.stats[today] = day

	t.persist()
	return t.data
}

// RecordCreation bumps today's created-task counter.
func (t *Tracker) RecordCreation() {
	t.mu.Lock()
	defer t.mu.Unlock()

	today := models.DayKey(t.now())
	day := t.stats[today]
	day.Date = today
	day.TasksCreated++
	t.stats[today] = day
	t.persist()
}

// AddPomodoroMinutes adds completed focus time to today's counters.
func (t *Tracker) AddPomodoroMinutes(minutes int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	today := models.DayKey(t.now())
	day := t.stats[today]
	day.Date = today
	day.PomodoroMinutes += minutes
	t.stats[today] = day
	t.persist()
}

// Data returns the current streak snapshot.
func (t *Tracker) Data() models.StreakData {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.data
}

// Status summarizes the streak for display. daysUntilStreakBreak is 0 when
// today already has a completion, otherwise 1.
func (t *Tracker) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	today := models.DayKey(t.now())
	completedToday := false
	for _, d := range t.data.CompletedDates {
		if d == today {
			completedToday = true
			break
		}
	}

	until := 1
	if completedToday {
		until = 0
	}
	return Status{
		HasCompletedToday:    completedToday,
		CurrentStreak:        t.data.CurrentStreak,
		LongestStreak:        t.data.LongestStreak,
		IsStreakActive:       t.data.CurrentStreak > 0,
		DaysUntilStreakBreak: until,
	}
}

// WeeklyProgress returns the last seven days, oldest first.
func (t *Tracker) WeeklyProgress() []DayProgress {
	t.mu.Lock()
	defer t.mu.Unlock()

	completed := make(map[string]bool, len(t.data.CompletedDates))
	for _, d := range t.data.CompletedDates {
		completed[d] = true
	}

	now := t.now()
	days := make([]DayProgress, 0, 7)
	for i := 6; i >= 0; i-- {
		date := models.DayKey(now.AddDate(0, 0, -i))
		days = append(days, DayProgress{
			Date:      date,
			Completed: completed[date],
			Count:     t.stats[date].TasksCompleted,
		})
	}
	return days
}

func (t *Tracker) persist() {
	if err := t.adapter.Save(store.KeyStreakData, t.data); err != nil {
		log.Printf("Error saving streak data: %v", err)
	}
	if err := t.adapter.Save(store.KeyDailyStats, t.stats); err != nil {
		log.Printf("Error saving daily stats: %v", err)
	}
}
