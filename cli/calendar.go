// ABOUTME: Google Calendar CLI commands
// ABOUTME: OAuth setup, upcoming events, and on-demand task mirroring
package cli

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"golang.org/x/oauth2"

	"github.com/harperreed/dayboard/calendar"
	"github.com/harperreed/dayboard/models"
)

// CalendarInitCommand runs the OAuth flow and stores the token.
func CalendarInitCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	_ = fs.Parse(args)

	ctx := context.Background()

	config, err := calendar.NewOAuthConfig()
	if err != nil {
		return err
	}

	callbackChan := make(chan *oauth2.Token)
	errChan := make(chan error)

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/callback", func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			errChan <- fmt.Errorf("no authorization code received")
			return
		}

		token, err := config.Exchange(ctx, code)
		if err != nil {
			errChan <- fmt.Errorf("failed to exchange code: %w", err)
			return
		}

		callbackChan <- token
		_, _ = fmt.Fprintf(w, "Authorization successful! You can close this window.")
	})

	server := &http.Server{Addr: ":8080", Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	authURL := config.AuthCodeURL("state", oauth2.AccessTypeOffline)

	fmt.Println("Opening browser for Google OAuth...")
	fmt.Printf("\nIf browser doesn't open, visit this URL:\n%s\n\n", authURL)
	_ = openBrowser(authURL)

	select {
	case token := <-callbackChan:
		_ = server.Shutdown(ctx)
		if err := calendar.SaveToken(token); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}
		fmt.Printf("\n✓ Authenticated successfully\n")
		fmt.Printf("✓ Tokens saved to %s\n", calendar.TokenPath())
		return nil

	case err := <-errChan:
		_ = server.Shutdown(ctx)
		return fmt.Errorf("OAuth flow failed: %w", err)
	}
}

// CalendarEventsCommand lists upcoming events, falling back to the demo set
// when the bridge is unavailable.
func CalendarEventsCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("events", flag.ExitOnError)
	days := fs.Int("days", 30, "How many days ahead to look")
	_ = fs.Parse(args)

	ctx := context.Background()
	events, demo := loadEvents(ctx, *days)

	if demo {
		fmt.Println("(demo events - run 'dayboard calendar init' to connect Google Calendar)")
	}
	if len(events) == 0 {
		fmt.Println("No upcoming events")
		return nil
	}

	for _, e := range events {
		when := e.StartDate.Format("2006-01-02 15:04")
		if e.IsAllDay {
			when = models.DayKey(e.StartDate) + " (all day)"
		}
		fmt.Printf("%s  %s", when, e.Title)
		if e.Location != "" {
			fmt.Printf(" @ %s", e.Location)
		}
		fmt.Println()
	}
	return nil
}

// SyncTaskCommand mirrors one task to the calendar immediately.
func SyncTaskCommand(app *App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("task ID is required")
	}
	id, err := resolveTaskID(app, args[0])
	if err != nil {
		return err
	}
	task := app.Tasks.Task(id)
	if task.DueDate == nil {
		return fmt.Errorf("task has no due date: %s", task.Title)
	}

	bridge, err := openBridge(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("→ Creating calendar event for: %s\n", task.Title)
	link, err := bridge.CreateTaskEvent(context.Background(), task.Title, task.Description, *task.DueDate, task.Priority)
	if err != nil {
		return err
	}
	app.Tasks.MarkSynced(task.ID)

	fmt.Println("✓ Event created")
	if link != "" {
		fmt.Printf("  %s\n", link)
	}
	return nil
}

// openBridge builds a Google bridge from the stored token.
func openBridge(ctx context.Context) (calendar.Bridge, error) {
	token, err := calendar.LoadToken()
	if err != nil {
		return nil, fmt.Errorf("not authenticated - run 'dayboard calendar init' first: %w", err)
	}
	return calendar.NewGoogleBridge(ctx, token, calendar.LoadConfig().CalendarID)
}

func loadEvents(ctx context.Context, days int) ([]models.Event, bool) {
	bridge, err := openBridge(ctx)
	if err != nil {
		return calendar.DemoEvents(time.Now()), true
	}
	events, err := bridge.Events(ctx, days)
	if err != nil {
		return calendar.DemoEvents(time.Now()), true
	}
	return events, false
}

func openBrowser(url string) error {
	var cmd string
	var args []string

	switch runtime.GOOS {
	case "darwin":
		cmd = "open"
		args = []string{url}
	case "windows":
		cmd = "cmd"
		args = []string{"/c", "start", url}
	default:
		cmd = "xdg-open"
		args = []string{url}
	}

	return exec.Command(cmd, args...).Start()
}
