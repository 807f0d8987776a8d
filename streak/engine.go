// ABOUTME: Pure streak derivation over a task collection
// ABOUTME: Counts consecutive completion days back from today or yesterday
package streak

import (
	"sort"
	"time"

	"github.com/harperreed/dayboard/models"
)

// Compute derives streak data from the task collection. The current streak
// counts consecutive days with at least one completion, ending today or
// yesterday; a completion-free yesterday and today means the streak is 0.
// The longest streak is a running maximum carried over from prev, never
// shrunk by recomputation.
func Compute(tasks []models.Task, now time.Time, prev models.StreakData) models.StreakData {
	days := make(map[string]bool)
	total := 0
	for i := range tasks {
		t := &tasks[i]
		if t.Status != models.StatusDone || t.CompletedAt == nil {
			continue
		}
		days[models.DayKey(*t.CompletedAt)] = true
		total++
	}

	dates := make([]string, 0, len(days))
	for d := range days {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	today := models.DayKey(now)
	yesterday := models.DayKey(now.AddDate(0, 0, -1))

	current := 0
	last := prev.LastCompletedDate
	switch {
	case days[today]:
		current = countBack(days, now)
		last = today
	case days[yesterday]:
		current = countBack(days, now.AddDate(0, 0, -1))
		last = yesterday
	}

	longest := prev.LongestStreak
	if current > longest {
		longest = current
	}

	return models.StreakData{
		CurrentStreak:       current,
		LongestStreak:       longest,
		LastCompletedDate:   last,
		CompletedDates:      dates,
		TotalTasksCompleted: total,
	}
}

// countBack walks backwards day by day from the anchor while each day has a
// completion.
func countBack(days map[string]bool, anchor time.Time) int {
	count := 0
	for d := anchor; days[models.DayKey(d)]; d = d.AddDate(0, 0, -1) {
		count++
	}
	return count
}
