// ABOUTME: Tests for the persistent streak tracker
// ABOUTME: The clock is injected so day rollovers can be simulated
package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/dayboard/models"
	"github.com/harperreed/dayboard/store"
)

func newTestTracker(adapter store.Adapter, now time.Time) *Tracker {
	tr := NewTracker(adapter)
	tr.now = func() time.Time { return now }
	return tr
}

func TestRecordCompletionFirstOfDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	tr := newTestTracker(store.NewMemory(), now)

	data := tr.RecordCompletion()
	assert.Equal(t, 1, data.CurrentStreak)
	assert.Equal(t, 1, data.LongestStreak)
	assert.Equal(t, 1, data.TotalTasksCompleted)

	// A second completion the same day bumps the total only.
	data = tr.RecordCompletion()
	assert.Equal(t, 1, data.CurrentStreak)
	assert.Equal(t, 2, data.TotalTasksCompleted)
}

func TestRecordCompletionAcrossDays(t *testing.T) {
	mem := store.NewMemory()
	day1 := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)

	tr := newTestTracker(mem, day1)
	tr.RecordCompletion()

	// Next day: streak extends.
	tr.now = func() time.Time { return day1.AddDate(0, 0, 1) }
	data := tr.RecordCompletion()
	assert.Equal(t, 2, data.CurrentStreak)

	// Skip a day: streak restarts at 1, longest stays.
	tr.now = func() time.Time { return day1.AddDate(0, 0, 3) }
	data = tr.RecordCompletion()
	assert.Equal(t, 1, data.CurrentStreak)
	assert.Equal(t, 2, data.LongestStreak)
}

func TestTrackerPersistsAcrossReload(t *testing.T) {
	mem := store.NewMemory()
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)

	tr := newTestTracker(mem, now)
	tr.RecordCompletion()
	tr.AddPomodoroMinutes(25)

	reloaded := newTestTracker(mem, now)
	assert.Equal(t, 1, reloaded.Data().CurrentStreak)

	progress := reloaded.WeeklyProgress()
	require.Len(t, progress, 7)
	today := progress[6]
	assert.Equal(t, models.DayKey(now), today.Date)
	assert.True(t, today.Completed)
	assert.Equal(t, 1, today.Count)
}

func TestStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	tr := newTestTracker(store.NewMemory(), now)

	status := tr.Status()
	assert.False(t, status.HasCompletedToday)
	assert.False(t, status.IsStreakActive)
	assert.Equal(t, 1, status.DaysUntilStreakBreak)

	tr.RecordCompletion()
	status = tr.Status()
	assert.True(t, status.HasCompletedToday)
	assert.True(t, status.IsStreakActive)
	assert.Equal(t, 0, status.DaysUntilStreakBreak)
}

func TestRecomputeRefreshesDailyCounts(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	tr := newTestTracker(store.NewMemory(), now)

	yesterday := now.AddDate(0, 0, -1)
	tasks := []models.Task{doneOn(yesterday), doneOn(yesterday), doneOn(now)}

	data := tr.Recompute(tasks)
	assert.Equal(t, 2, data.CurrentStreak)

	progress := tr.WeeklyProgress()
	assert.Equal(t, 2, progress[5].Count, "yesterday had two completions")
	assert.Equal(t, 1, progress[6].Count)
}
