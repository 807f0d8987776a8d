// ABOUTME: Entry point for the dayboard CLI and API server
// ABOUTME: Routes commands to the task, CRM, pomodoro, and calendar layers
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/harperreed/dayboard/calendar"
	"github.com/harperreed/dayboard/cli"
	"github.com/harperreed/dayboard/kv"
	"github.com/harperreed/dayboard/pomodoro"
	"github.com/harperreed/dayboard/store"
	"github.com/harperreed/dayboard/streak"
	"github.com/harperreed/dayboard/web"
)

const version = "0.2.0"

func main() {
	// .env is optional
	_ = godotenv.Load()

	showVersion := flag.Bool("version", false, "Show version and exit")
	dataDir := flag.String("data-dir", "", "Data directory (default: ~/.local/share/dayboard)")
	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("dayboard version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	dir := *dataDir
	if dir == "" {
		dir = kv.DefaultDir()
	}
	client, err := kv.Open(dir)
	if err != nil {
		log.Fatalf("Failed to open data store: %v", err)
	}
	defer func() { _ = client.Close() }()

	adapter := store.NewKV(client)

	tasks := store.NewTaskStore(adapter, nil)
	sessions := store.NewSessionStore(adapter)
	app := &cli.App{
		Tasks:        tasks,
		Customers:    store.NewCustomerStore(adapter),
		Deals:        store.NewDealStore(adapter),
		Interactions: store.NewInteractionStore(adapter),
		Sessions:     sessions,
		Streak:       streak.NewTracker(adapter),
	}
	app.Timer = pomodoro.NewTimer(sessions, app.Streak)

	// The notifier only runs when a calendar token is available. Without
	// one, due-date changes are simply not mirrored.
	notifier := startNotifier(tasks)
	if notifier != nil {
		defer notifier.Close()
	}

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "tasks":
		runSubcommand(command, commandArgs, map[string]func(*cli.App, []string) error{
			"add":    cli.AddTaskCommand,
			"list":   cli.ListTasksCommand,
			"update": cli.UpdateTaskCommand,
			"done":   cli.DoneTaskCommand,
			"move":   cli.MoveTaskCommand,
			"delete": cli.DeleteTaskCommand,
		}, app)

	case "projects":
		runSubcommand(command, commandArgs, map[string]func(*cli.App, []string) error{
			"add":    cli.AddProjectCommand,
			"list":   cli.ListProjectsCommand,
			"delete": cli.DeleteProjectCommand,
		}, app)

	case "crm":
		runSubcommand(command, commandArgs, map[string]func(*cli.App, []string) error{
			"add-customer":      cli.AddCustomerCommand,
			"list-customers":    cli.ListCustomersCommand,
			"update-customer":   cli.UpdateCustomerCommand,
			"delete-customer":   cli.DeleteCustomerCommand,
			"add-deal":          cli.AddDealCommand,
			"list-deals":        cli.ListDealsCommand,
			"move-deal":         cli.MoveDealCommand,
			"delete-deal":       cli.DeleteDealCommand,
			"deal-stats":        cli.DealStatsCommand,
			"log-interaction":   cli.LogInteractionCommand,
			"list-interactions": cli.ListInteractionsCommand,
			"follow-ups":        cli.FollowUpsCommand,
		}, app)

	case "standup":
		if err := cli.StandupCommand(app, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "streak":
		runSubcommand(command, commandArgs, map[string]func(*cli.App, []string) error{
			"status": cli.StreakStatusCommand,
			"week":   cli.StreakWeekCommand,
		}, app)

	case "pomodoro":
		runSubcommand(command, commandArgs, map[string]func(*cli.App, []string) error{
			"start":    cli.PomodoroStartCommand,
			"status":   cli.PomodoroStatusCommand,
			"log":      cli.PomodoroLogCommand,
			"settings": cli.PomodoroSettingsCommand,
		}, app)

	case "calendar":
		runSubcommand(command, commandArgs, map[string]func(*cli.App, []string) error{
			"init":      cli.CalendarInitCommand,
			"events":    cli.CalendarEventsCommand,
			"sync-task": cli.SyncTaskCommand,
		}, app)

	case "serve":
		fs := flag.NewFlagSet("serve", flag.ExitOnError)
		port := fs.Int("port", 3000, "Port to listen on")
		_ = fs.Parse(commandArgs)

		var bridge calendar.Bridge
		if token, err := calendar.LoadToken(); err == nil {
			cfg := calendar.LoadConfig()
			if b, err := calendar.NewGoogleBridge(context.Background(), token, cfg.CalendarID); err == nil {
				bridge = b
			} else {
				log.Printf("Calendar bridge unavailable: %v", err)
			}
		}

		server := web.NewServer(tasks, bridge)
		if err := server.Start(*port); err != nil {
			log.Fatalf("Server failed: %v", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runSubcommand(parent string, args []string, commands map[string]func(*cli.App, []string) error, app *cli.App) {
	if len(args) == 0 {
		fmt.Printf("Error: %s requires a subcommand\n", parent)
		printUsage()
		os.Exit(1)
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Printf("Unknown %s command: %s\n\n", parent, args[0])
		printUsage()
		os.Exit(1)
	}
	if err := cmd(app, args[1:]); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// startNotifier wires best-effort calendar mirroring when a token exists.
func startNotifier(tasks *store.TaskStore) *calendar.Notifier {
	token, err := calendar.LoadToken()
	if err != nil {
		return nil
	}
	bridge, err := calendar.NewGoogleBridge(context.Background(), token, calendar.LoadConfig().CalendarID)
	if err != nil {
		log.Printf("Calendar bridge unavailable: %v", err)
		return nil
	}

	notifier := calendar.NewNotifier(bridge, tasks)
	tasks.SetNotifier(notifier)
	return notifier
}

func printUsage() {
	fmt.Printf(`dayboard v%s - Personal project management

USAGE:
  dayboard [global flags] <command> <subcommand> [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --data-dir <path>      Data directory (default: ~/.local/share/dayboard)

TASK COMMANDS:
  dayboard tasks add        Add a task
    --title <title>           Task title (required)
    --description <text>      Description
    --status <status>         todo, in-progress, done (default: todo)
    --priority <p>            low, medium, high, urgent (default: medium)
    --due <date>              Due date (YYYY-MM-DD)
    --project <id>            Project ID
    --tags <a,b>              Comma-separated tags

  dayboard tasks list       List tasks
    --status <status>         Filter by status

  dayboard tasks update [flags] <id>  Update a task
    (same flags as add; --due none clears the due date)
    Note: flags must come before the task ID

  dayboard tasks done <id>     Complete a task
  dayboard tasks move --status <s> <id>  Move a task
  dayboard tasks delete <id>   Delete a task

  dayboard projects add --name <name>   Add a project
  dayboard projects list                List projects
  dayboard projects delete <id>         Delete a project (tasks kept)

CRM COMMANDS:
  dayboard crm add-customer --name <name>   Add a customer
  dayboard crm list-customers [--query <q>] [--status <s>]
  dayboard crm update-customer [flags] <id>
  dayboard crm delete-customer <id>         Also removes their deals

  dayboard crm add-deal --customer <id> --title <t> [--value <v>] [--stage <s>] [--close <date>]
  dayboard crm list-deals [--stage <s>] [--customer <id>] [--upcoming]
  dayboard crm move-deal --stage <s> <id>
  dayboard crm delete-deal <id>
  dayboard crm deal-stats                   Pipeline summary

  dayboard crm log-interaction --customer <id> --notes <text> [--type <t>] [--follow-up <date>]
  dayboard crm list-interactions [--customer <id>] [--recent]
  dayboard crm follow-ups                   Overdue and upcoming follow-ups

DAILY COMMANDS:
  dayboard standup [--copy]     Generate the daily standup report
  dayboard streak status        Show the completion streak
  dayboard streak week          Last seven days
  dayboard pomodoro start [--task <id>]   Run a focus session
  dayboard pomodoro status      Today's sessions and settings
  dayboard pomodoro log [--minutes <n>] [--task <id>]
  dayboard pomodoro settings [--work <m>] [--short-break <m>] [--long-break <m>] [--sessions <n>]

CALENDAR COMMANDS:
  dayboard calendar init        Authenticate with Google Calendar
  dayboard calendar events [--days <n>]   Upcoming events
  dayboard calendar sync-task <id>        Mirror a task to the calendar

SERVER:
  dayboard serve [--port <n>]   Start the JSON API server (default: 3000)

EXAMPLES:
  # Add a task due Friday
  dayboard tasks add --title "Design homepage" --priority high --due 2026-03-13

  # Complete it and see the streak grow
  dayboard tasks done <id>

  # Morning routine
  dayboard standup --copy
`, version)
}
