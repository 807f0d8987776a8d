// ABOUTME: Task and project CLI commands
// ABOUTME: Human-friendly commands over the task store
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/harperreed/dayboard/models"
)

func parseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", value)
	}
	return t, nil
}

// AddTaskCommand creates a task.
func AddTaskCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	title := fs.String("title", "", "Task title (required)")
	description := fs.String("description", "", "Task description")
	status := fs.String("status", "todo", "Status (todo, in-progress, done)")
	priority := fs.String("priority", "medium", "Priority (low, medium, high, urgent)")
	due := fs.String("due", "", "Due date (YYYY-MM-DD)")
	project := fs.String("project", "", "Project ID")
	category := fs.String("category", "", "Category")
	tags := fs.String("tags", "", "Comma-separated tags")
	_ = fs.Parse(args)

	if *title == "" {
		return fmt.Errorf("--title is required")
	}

	task := models.Task{
		Title:       *title,
		Description: *description,
		Status:      models.Status(*status),
		Priority:    models.Priority(*priority),
		Category:    *category,
	}
	if *due != "" {
		d, err := parseDate(*due)
		if err != nil {
			return err
		}
		task.DueDate = &d
	}
	if *project != "" {
		if app.Tasks.Project(*project) == nil {
			return fmt.Errorf("project not found: %s", *project)
		}
		task.ProjectID = project
	}
	if *tags != "" {
		task.Tags = strings.Split(*tags, ",")
	}

	app.Tasks.CreateTask(&task)
	if task.Status == models.StatusDone && app.Streak != nil {
		app.Streak.RecordCompletion()
	} else if app.Streak != nil {
		app.Streak.RecordCreation()
	}

	fmt.Printf("✓ Task created: %s (ID: %s)\n", task.Title, task.ID)
	return nil
}

// ListTasksCommand lists tasks, optionally filtered by status.
func ListTasksCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	status := fs.String("status", "", "Filter by status")
	_ = fs.Parse(args)

	tasks := app.Tasks.Tasks()
	if *status != "" {
		filtered := tasks[:0]
		for _, t := range tasks {
			if t.Status == models.Status(*status) {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	now := time.Now()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TITLE\tSTATUS\tPRIORITY\tDUE\tID")
	_, _ = fmt.Fprintln(w, "-----\t------\t--------\t---\t--")
	for _, t := range tasks {
		due := "-"
		if t.DueDate != nil {
			due = models.DayKey(*t.DueDate)
			if t.IsOverdue(now) {
				due += " (overdue)"
			}
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", t.Title, t.Status, t.Priority, due, shortID(t.ID))
	}
	_ = w.Flush()

	stats := app.Tasks.Stats()
	fmt.Printf("\nTotal: %d task(s), %d overdue\n", stats.Total, stats.Overdue)
	return nil
}

// UpdateTaskCommand updates fields of an existing task. Flags must come
// before the task ID.
func UpdateTaskCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	title := fs.String("title", "", "Task title")
	description := fs.String("description", "", "Task description")
	status := fs.String("status", "", "Status (todo, in-progress, done)")
	priority := fs.String("priority", "", "Priority (low, medium, high, urgent)")
	due := fs.String("due", "", "Due date (YYYY-MM-DD), or 'none' to clear")
	category := fs.String("category", "", "Category")
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("task ID is required")
	}
	id, err := resolveTaskID(app, fs.Arg(0))
	if err != nil {
		return err
	}

	var patch models.TaskPatch
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			patch.Title = title
		case "description":
			patch.Description = description
		case "status":
			s := models.Status(*status)
			patch.Status = &s
		case "priority":
			p := models.Priority(*priority)
			patch.Priority = &p
		case "category":
			patch.Category = category
		}
	})
	if *due != "" {
		if *due == "none" {
			var cleared *time.Time
			patch.DueDate = &cleared
		} else {
			d, err := parseDate(*due)
			if err != nil {
				return err
			}
			ptr := &d
			patch.DueDate = &ptr
		}
	}

	before := app.Tasks.Task(id)
	updated := app.Tasks.UpdateTask(id, patch)
	if updated == nil {
		return fmt.Errorf("task not found: %s", id)
	}
	if app.Streak != nil && before != nil &&
		before.Status != models.StatusDone && updated.Status == models.StatusDone {
		app.Streak.RecordCompletion()
	}

	fmt.Printf("✓ Task updated: %s\n", updated.Title)
	return nil
}

// DoneTaskCommand completes a task.
func DoneTaskCommand(app *App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("task ID is required")
	}
	id, err := resolveTaskID(app, args[0])
	if err != nil {
		return err
	}

	before := app.Tasks.Task(id)
	updated := app.Tasks.MoveTask(id, models.StatusDone)
	if updated == nil {
		return fmt.Errorf("task not found: %s", id)
	}
	if app.Streak != nil && before != nil && before.Status != models.StatusDone {
		data := app.Streak.RecordCompletion()
		fmt.Printf("✓ Task completed: %s\n", updated.Title)
		fmt.Printf("  Streak: %d day(s) 🔥\n", data.CurrentStreak)
		return nil
	}

	fmt.Printf("✓ Task completed: %s\n", updated.Title)
	return nil
}

// MoveTaskCommand moves a task to another kanban column.
func MoveTaskCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("move", flag.ExitOnError)
	status := fs.String("status", "", "Target status (required)")
	_ = fs.Parse(args)

	if *status == "" {
		return fmt.Errorf("--status is required")
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("task ID is required")
	}
	id, err := resolveTaskID(app, fs.Arg(0))
	if err != nil {
		return err
	}

	before := app.Tasks.Task(id)
	updated := app.Tasks.MoveTask(id, models.Status(*status))
	if updated == nil {
		return fmt.Errorf("task not found: %s", id)
	}
	if app.Streak != nil && before != nil &&
		before.Status != models.StatusDone && updated.Status == models.StatusDone {
		app.Streak.RecordCompletion()
	}

	fmt.Printf("✓ Task moved to %s: %s\n", updated.Status, updated.Title)
	return nil
}

// DeleteTaskCommand removes a task.
func DeleteTaskCommand(app *App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("task ID is required")
	}
	id, err := resolveTaskID(app, args[0])
	if err != nil {
		return err
	}

	if !app.Tasks.DeleteTask(id) {
		return fmt.Errorf("task not found: %s", id)
	}
	fmt.Printf("✓ Task deleted: %s\n", shortID(id))
	return nil
}

// AddProjectCommand creates a project.
func AddProjectCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("add-project", flag.ExitOnError)
	name := fs.String("name", "", "Project name (required)")
	description := fs.String("description", "", "Project description")
	color := fs.String("color", "#6366f1", "Display color")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	project := models.Project{Name: *name, Description: *description, Color: *color}
	app.Tasks.CreateProject(&project)
	fmt.Printf("✓ Project created: %s (ID: %s)\n", project.Name, project.ID)
	return nil
}

// ListProjectsCommand lists projects with their task counts.
func ListProjectsCommand(app *App, args []string) error {
	projects := app.Tasks.Projects()
	if len(projects) == 0 {
		fmt.Println("No projects found")
		return nil
	}

	tasks := app.Tasks.Tasks()
	counts := make(map[string]int)
	for _, t := range tasks {
		if t.ProjectID != nil {
			counts[*t.ProjectID]++
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tTASKS\tID")
	_, _ = fmt.Fprintln(w, "----\t-----\t--")
	for _, p := range projects {
		_, _ = fmt.Fprintf(w, "%s\t%d\t%s\n", p.Name, counts[p.ID], shortID(p.ID))
	}
	_ = w.Flush()
	return nil
}

// DeleteProjectCommand removes a project, detaching its tasks.
func DeleteProjectCommand(app *App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("project ID is required")
	}

	id := args[0]
	if app.Tasks.Project(id) == nil {
		for _, p := range app.Tasks.Projects() {
			if strings.HasPrefix(p.ID, id) {
				id = p.ID
				break
			}
		}
	}
	if !app.Tasks.DeleteProject(id) {
		return fmt.Errorf("project not found: %s", args[0])
	}
	fmt.Println("✓ Project deleted (tasks kept, detached)")
	return nil
}

// resolveTaskID accepts a full ID or a unique prefix.
func resolveTaskID(app *App, id string) (string, error) {
	if app.Tasks.Task(id) != nil {
		return id, nil
	}
	var match string
	for _, t := range app.Tasks.Tasks() {
		if strings.HasPrefix(t.ID, id) {
			if match != "" {
				return "", fmt.Errorf("ambiguous task ID prefix: %s", id)
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("task not found: %s", id)
	}
	return match, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
