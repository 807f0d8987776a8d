// ABOUTME: Streak CLI commands
// ABOUTME: Status summary and the seven-day progress strip
package cli

import (
	"fmt"
)

// StreakStatusCommand prints the current streak summary.
func StreakStatusCommand(app *App, args []string) error {
	// Recompute from the task collection so edits made outside the
	// incremental path are reflected.
	data := app.Streak.Recompute(app.Tasks.Tasks())
	status := app.Streak.Status()

	fmt.Println("Streak")
	fmt.Println("------")
	if status.IsStreakActive {
		fmt.Printf("Current streak:   %d day(s) 🔥\n", status.CurrentStreak)
	} else {
		fmt.Println("Current streak:   0 days")
	}
	fmt.Printf("Longest streak:   %d day(s)\n", status.LongestStreak)
	fmt.Printf("Total completed:  %d task(s)\n", data.TotalTasksCompleted)
	if status.HasCompletedToday {
		fmt.Println("Today:            done ✓")
	} else {
		fmt.Println("Today:            complete a task to keep the streak")
	}
	return nil
}

// StreakWeekCommand prints the last seven days.
func StreakWeekCommand(app *App, args []string) error {
	app.Streak.Recompute(app.Tasks.Tasks())

	fmt.Println("Last 7 days")
	fmt.Println("-----------")
	for _, day := range app.Streak.WeeklyProgress() {
		marker := "·"
		if day.Completed {
			marker = "✓"
		}
		fmt.Printf("%s  %s  %d task(s)\n", day.Date, marker, day.Count)
	}
	return nil
}
