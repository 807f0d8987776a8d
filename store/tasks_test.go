// ABOUTME: Tests for the task/project store
// ABOUTME: Covers the completedAt rule, project cascades, and data fallback
package store

import (
	"testing"
	"time"

	"github.com/harperreed/dayboard/models"
)

func newEmptyTaskStore(t *testing.T) (*TaskStore, *Memory) {
	t.Helper()
	mem := NewMemory()
	// Seed empty collections so the store does not load sample data.
	if err := mem.Save(KeyTasks, []models.Task{}); err != nil {
		t.Fatalf("failed to seed tasks: %v", err)
	}
	if err := mem.Save(KeyProjects, []models.Project{}); err != nil {
		t.Fatalf("failed to seed projects: %v", err)
	}
	return NewTaskStore(mem, nil), mem
}

func TestCreateTaskAssignsIDAndTimestamps(t *testing.T) {
	s, _ := newEmptyTaskStore(t)

	task := models.Task{Title: "Write report", Status: models.StatusTodo, Priority: models.PriorityMedium}
	s.CreateTask(&task)

	if task.ID == "" {
		t.Fatal("expected task to get an ID")
	}
	if task.CreatedAt.IsZero() || task.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set")
	}
	if task.CompletedAt != nil {
		t.Fatal("expected completedAt to be nil for a todo task")
	}
	if got := len(s.Tasks()); got != 1 {
		t.Fatalf("expected 1 task, got %d", got)
	}
}

func TestCreateTaskDirectlyDoneGetsCompletedAt(t *testing.T) {
	s, _ := newEmptyTaskStore(t)

	task := models.Task{Title: "Already finished", Status: models.StatusDone, Priority: models.PriorityLow}
	s.CreateTask(&task)

	if task.CompletedAt == nil {
		t.Fatal("expected completedAt to be set for a task created in done")
	}
}

func TestCompleteAndReopenTask(t *testing.T) {
	s, _ := newEmptyTaskStore(t)

	task := models.Task{Title: "Ship release", Status: models.StatusInProgress, Priority: models.PriorityHigh}
	s.CreateTask(&task)

	done := s.MoveTask(task.ID, models.StatusDone)
	if done == nil {
		t.Fatal("expected update to find the task")
	}
	if done.CompletedAt == nil {
		t.Fatal("expected completedAt to be set after completing")
	}

	reopened := s.MoveTask(task.ID, models.StatusTodo)
	if reopened.CompletedAt != nil {
		t.Fatal("expected completedAt to be cleared after reopening")
	}
}

func TestUpdateTaskClearsDueDate(t *testing.T) {
	s, _ := newEmptyTaskStore(t)

	due := time.Now().AddDate(0, 0, 3)
	task := models.Task{Title: "Call supplier", Status: models.StatusTodo, Priority: models.PriorityMedium, DueDate: &due}
	s.CreateTask(&task)

	var cleared *time.Time
	updated := s.UpdateTask(task.ID, models.TaskPatch{DueDate: &cleared})
	if updated.DueDate != nil {
		t.Fatal("expected due date to be cleared")
	}
}

func TestUpdateMissingTaskReturnsNil(t *testing.T) {
	s, _ := newEmptyTaskStore(t)

	if got := s.MoveTask("nope", models.StatusDone); got != nil {
		t.Fatalf("expected nil for missing task, got %+v", got)
	}
}

func TestDeleteProjectNullsTaskReferences(t *testing.T) {
	s, _ := newEmptyTaskStore(t)

	project := models.Project{Name: "Spring cleanup"}
	s.CreateProject(&project)

	task := models.Task{Title: "Sort inventory", Status: models.StatusTodo, Priority: models.PriorityLow, ProjectID: &project.ID}
	s.CreateTask(&task)

	if !s.DeleteProject(project.ID) {
		t.Fatal("expected project delete to succeed")
	}

	got := s.Task(task.ID)
	if got == nil {
		t.Fatal("expected task to survive the project delete")
	}
	if got.ProjectID != nil {
		t.Fatalf("expected projectId to be nulled, got %v", *got.ProjectID)
	}
}

func TestStatsCountsOverdue(t *testing.T) {
	s, _ := newEmptyTaskStore(t)

	past := time.Now().AddDate(0, 0, -2)
	future := time.Now().AddDate(0, 0, 2)
	s.CreateTask(&models.Task{Title: "Late", Status: models.StatusTodo, Priority: models.PriorityHigh, DueDate: &past})
	s.CreateTask(&models.Task{Title: "On track", Status: models.StatusInProgress, Priority: models.PriorityMedium, DueDate: &future})
	s.CreateTask(&models.Task{Title: "Done late", Status: models.StatusDone, Priority: models.PriorityLow, DueDate: &past})

	stats := s.Stats()
	if stats.Total != 3 {
		t.Fatalf("expected 3 total, got %d", stats.Total)
	}
	if stats.Overdue != 1 {
		t.Fatalf("expected 1 overdue, got %d", stats.Overdue)
	}
	if stats.Done != 1 || stats.Todo != 1 || stats.InProgress != 1 {
		t.Fatalf("unexpected status counts: %+v", stats)
	}
}

func TestFreshStoreSeedsSampleData(t *testing.T) {
	s := NewTaskStore(NewMemory(), nil)

	if got := len(s.Tasks()); got == 0 {
		t.Fatal("expected sample tasks on first run")
	}
	if got := len(s.Projects()); got == 0 {
		t.Fatal("expected sample projects on first run")
	}
}

func TestCorruptDataFallsBackToSamples(t *testing.T) {
	mem := NewMemory()
	mem.Seed(KeyTasks, []byte("{not json"))

	s := NewTaskStore(mem, nil)
	if got := len(s.Tasks()); got == 0 {
		t.Fatal("expected sample tasks after corrupt data fallback")
	}

	// The fallback also repairs the stored snapshot.
	var stored []models.Task
	if err := mem.Load(KeyTasks, &stored); err != nil {
		t.Fatalf("expected repaired snapshot to decode: %v", err)
	}
}

func TestTasksPersistAcrossStores(t *testing.T) {
	mem := NewMemory()
	first := NewTaskStore(mem, nil)

	task := models.Task{Title: "Survive restart", Status: models.StatusTodo, Priority: models.PriorityMedium}
	first.CreateTask(&task)

	second := NewTaskStore(mem, nil)
	if got := second.Task(task.ID); got == nil {
		t.Fatal("expected task to survive a store reload")
	}
}

type recordingNotifier struct {
	tasks []models.Task
}

func (n *recordingNotifier) Enqueue(task models.Task) {
	n.tasks = append(n.tasks, task)
}

func TestNotifierFiresOnDueDateChanges(t *testing.T) {
	mem := NewMemory()
	if err := mem.Save(KeyTasks, []models.Task{}); err != nil {
		t.Fatalf("failed to seed tasks: %v", err)
	}
	if err := mem.Save(KeyProjects, []models.Project{}); err != nil {
		t.Fatalf("failed to seed projects: %v", err)
	}
	notifier := &recordingNotifier{}
	s := NewTaskStore(mem, notifier)

	// No due date: no notification.
	plain := models.Task{Title: "No calendar", Status: models.StatusTodo, Priority: models.PriorityLow}
	s.CreateTask(&plain)
	if len(notifier.tasks) != 0 {
		t.Fatalf("expected no notification without a due date, got %d", len(notifier.tasks))
	}

	due := time.Now().AddDate(0, 0, 1)
	withDue := models.Task{Title: "On calendar", Status: models.StatusTodo, Priority: models.PriorityHigh, DueDate: &due}
	s.CreateTask(&withDue)
	if len(notifier.tasks) != 1 {
		t.Fatalf("expected 1 notification after create, got %d", len(notifier.tasks))
	}

	// Changing the due date fires again; an unrelated update does not.
	newDue := due.AddDate(0, 0, 2)
	duePtr := &newDue
	s.UpdateTask(withDue.ID, models.TaskPatch{DueDate: &duePtr})
	if len(notifier.tasks) != 2 {
		t.Fatalf("expected 2 notifications after due change, got %d", len(notifier.tasks))
	}

	title := "Renamed"
	s.UpdateTask(withDue.ID, models.TaskPatch{Title: &title})
	if len(notifier.tasks) != 2 {
		t.Fatalf("expected no notification for a title change, got %d", len(notifier.tasks))
	}
}

func TestSyncedMarkers(t *testing.T) {
	s, _ := newEmptyTaskStore(t)

	task := models.Task{Title: "Mirror me", Status: models.StatusTodo, Priority: models.PriorityMedium}
	s.CreateTask(&task)

	if s.IsSynced(task.ID) {
		t.Fatal("expected new task to be unsynced")
	}
	s.MarkSynced(task.ID)
	if !s.IsSynced(task.ID) {
		t.Fatal("expected task to be synced after MarkSynced")
	}

	s.DeleteTask(task.ID)
	if s.IsSynced(task.ID) {
		t.Fatal("expected synced marker to be forgotten after delete")
	}
}
