// ABOUTME: Pomodoro CLI commands
// ABOUTME: Runs timed focus phases in the foreground and reports daily totals
package cli

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/harperreed/dayboard/models"
	"github.com/harperreed/dayboard/pomodoro"
)

// PomodoroStartCommand runs the timer in the foreground until the phase
// ends or the user interrupts.
func PomodoroStartCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("start", flag.ExitOnError)
	task := fs.String("task", "", "Task ID to attach to the session")
	_ = fs.Parse(args)

	var taskID, taskTitle *string
	if *task != "" {
		id, err := resolveTaskID(app, *task)
		if err != nil {
			return err
		}
		t := app.Tasks.Task(id)
		taskID = &t.ID
		taskTitle = &t.Title
		fmt.Printf("→ Focusing on: %s\n", t.Title)
	}

	timer := app.Timer
	timer.Start(taskID, taskTitle)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	startMode := timer.State().Mode
	for {
		select {
		case <-interrupt:
			timer.Pause()
			fmt.Printf("\n⏸ Paused at %s\n", pomodoro.FormatTime(timer.State().TimeLeft))
			return nil
		case <-ticker.C:
			timer.Tick()
			state := timer.State()
			fmt.Printf("\r%s  %s ", state.Mode, pomodoro.FormatTime(state.TimeLeft))
			if state.Mode != startMode {
				fmt.Println()
				if startMode == models.ModeWork {
					fmt.Printf("✓ Work session complete. Next: %s\n", state.Mode)
				} else {
					fmt.Println("✓ Break over. Back to work")
				}
				return nil
			}
		}
	}
}

// PomodoroStatusCommand prints today's focus totals and timer settings.
func PomodoroStatusCommand(app *App, args []string) error {
	sessions := app.Sessions.TodaysSessions()
	settings := app.Sessions.Settings()

	fmt.Println("Pomodoro")
	fmt.Println("--------")
	fmt.Printf("Sessions today:   %d\n", len(sessions))
	fmt.Printf("Focus today:      %d minute(s)\n", app.Sessions.TodaysFocusMinutes())
	fmt.Printf("Work/break:       %d/%d min (long break %d min every %d)\n",
		settings.WorkDuration, settings.ShortBreakDuration,
		settings.LongBreakDuration, settings.SessionsBeforeLongBreak)

	for _, s := range sessions {
		label := "(untitled)"
		if s.TaskTitle != nil {
			label = *s.TaskTitle
		}
		fmt.Printf("  %s  %d min  %s\n", s.EndTime.Format("15:04"), s.Duration, label)
	}
	return nil
}

// PomodoroLogCommand records a completed focus session manually.
func PomodoroLogCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("log", flag.ExitOnError)
	minutes := fs.Int("minutes", 25, "Session length in minutes")
	task := fs.String("task", "", "Task ID to attach")
	_ = fs.Parse(args)

	if *minutes <= 0 {
		return fmt.Errorf("--minutes must be positive")
	}

	session := models.PomodoroSession{
		EndTime:   time.Now(),
		StartTime: time.Now().Add(-time.Duration(*minutes) * time.Minute),
		Duration:  *minutes,
		Completed: true,
	}
	if *task != "" {
		id, err := resolveTaskID(app, *task)
		if err != nil {
			return err
		}
		t := app.Tasks.Task(id)
		session.TaskID = &t.ID
		session.TaskTitle = &t.Title
	}

	app.Sessions.Log(session)
	if app.Streak != nil {
		app.Streak.AddPomodoroMinutes(*minutes)
	}
	fmt.Printf("✓ Logged %d minute(s) of focus\n", *minutes)
	return nil
}

// PomodoroSettingsCommand updates timer settings.
func PomodoroSettingsCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("settings", flag.ExitOnError)
	work := fs.Int("work", 0, "Work duration in minutes")
	short := fs.Int("short-break", 0, "Short break in minutes")
	long := fs.Int("long-break", 0, "Long break in minutes")
	every := fs.Int("sessions", 0, "Work sessions before a long break")
	autoBreaks := fs.Bool("auto-breaks", false, "Auto-start breaks")
	autoWork := fs.Bool("auto-work", false, "Auto-start work sessions")
	_ = fs.Parse(args)

	var patch models.SettingsPatch
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "work":
			patch.WorkDuration = work
		case "short-break":
			patch.ShortBreakDuration = short
		case "long-break":
			patch.LongBreakDuration = long
		case "sessions":
			patch.SessionsBeforeLongBreak = every
		case "auto-breaks":
			patch.AutoStartBreaks = autoBreaks
		case "auto-work":
			patch.AutoStartPomodoros = autoWork
		}
	})

	settings := app.Timer.UpdateSettings(patch)
	fmt.Printf("✓ Settings: %d/%d/%d min, long break every %d session(s)\n",
		settings.WorkDuration, settings.ShortBreakDuration,
		settings.LongBreakDuration, settings.SessionsBeforeLongBreak)
	return nil
}
