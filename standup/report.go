// ABOUTME: Daily standup report derived from the task collection
// ABOUTME: Three buckets: completed yesterday, working today, blockers
package standup

import (
	"sort"
	"strings"
	"time"

	"github.com/harperreed/dayboard/models"
)

// Generate builds the three-bucket report from the task collection. A task
// can appear in both the today and blockers buckets.
func Generate(tasks []models.Task, now time.Time) models.StandupReport {
	todayKey := models.DayKey(now)
	yesterdayKey := models.DayKey(now.AddDate(0, 0, -1))

	report := models.StandupReport{GeneratedAt: now}

	for i := range tasks {
		t := &tasks[i]
		if t.Status == models.StatusDone && t.CompletedAt != nil &&
			models.DayKey(*t.CompletedAt) == yesterdayKey {
			report.Yesterday = append(report.Yesterday, models.StandupItem{
				TaskID: t.ID,
				Title:  t.Title,
				Status: t.Status,
				Notes:  t.Description,
			})
		}
	}

	var today []models.Task
	for i := range tasks {
		t := &tasks[i]
		if t.Status == models.StatusDone {
			continue
		}
		switch {
		case t.Status == models.StatusInProgress:
			today = append(today, *t)
		case t.DueDate != nil:
			if models.DayKey(*t.DueDate) == todayKey || t.DueDate.Before(now) {
				today = append(today, *t)
			}
		}
	}
	sort.SliceStable(today, func(i, j int) bool {
		return models.PriorityRank(today[i].Priority) < models.PriorityRank(today[j].Priority)
	})
	for i := range today {
		report.Today = append(report.Today, models.StandupItem{
			TaskID: today[i].ID,
			Title:  today[i].Title,
			Status: today[i].Status,
			Notes:  today[i].Description,
		})
	}

	for i := range tasks {
		t := &tasks[i]
		if t.Status == models.StatusDone {
			continue
		}
		overdue := t.DueDate != nil && t.DueDate.Before(now)
		if t.Priority != models.PriorityUrgent && !(overdue && t.Priority == models.PriorityHigh) {
			continue
		}
		notes := "High priority task"
		if overdue {
			notes = "Overdue since " + models.DayKey(*t.DueDate)
		}
		report.Blockers = append(report.Blockers, models.StandupItem{
			TaskID: t.ID,
			Title:  t.Title,
			Status: t.Status,
			Notes:  notes,
		})
	}

	return report
}

// Render formats the report as shareable markdown.
func Render(report models.StandupReport) string {
	var b strings.Builder

	b.WriteString("📅 **Daily Standup**\n\n")

	b.WriteString("**✅ Yesterday I completed:**\n")
	if len(report.Yesterday) == 0 {
		b.WriteString("- No tasks completed yesterday\n")
	} else {
		for _, item := range report.Yesterday {
			b.WriteString("- " + item.Title + "\n")
		}
	}
	b.WriteString("\n")

	b.WriteString("**📋 Today I am working on:**\n")
	if len(report.Today) == 0 {
		b.WriteString("- No active tasks\n")
	} else {
		for _, item := range report.Today {
			marker := "⏳"
			if item.Status == models.StatusInProgress {
				marker = "🔄"
			}
			b.WriteString("- " + marker + " " + item.Title + "\n")
		}
	}
	b.WriteString("\n")

	b.WriteString("**🚧 Blockers:**\n")
	if len(report.Blockers) == 0 {
		b.WriteString("- No blockers 🎉\n")
	} else {
		for _, item := range report.Blockers {
			b.WriteString("- ⚠️ " + item.Title)
			if item.Notes != "" {
				b.WriteString(" (" + item.Notes + ")")
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}
