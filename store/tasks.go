// ABOUTME: Task and project store with status transitions and statistics
// ABOUTME: Owns the canonical task list, synced-to-calendar markers included
package store

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/dayboard/models"
)

// Notifier receives best-effort calendar notifications for tasks whose due
// date was set or changed. Enqueue must never block the caller.
type Notifier interface {
	Enqueue(task models.Task)
}

// TaskStats is the pure count projection over the task collection.
type TaskStats struct {
	Total      int `json:"total"`
	Todo       int `json:"todo"`
	InProgress int `json:"in_progress"`
	Done       int `json:"done"`
	Overdue    int `json:"overdue"`
}

// TaskStore owns tasks, projects, and the synced-task markers. All
// mutations are synchronous and atomic with respect to the in-memory
// collections; persistence writes are best-effort after each mutation.
type TaskStore struct {
	mu       sync.Mutex
	adapter  Adapter
	notifier Notifier
	now      func() time.Time

	tasks    []models.Task
	projects []models.Project
	synced   map[string]bool
}

// NewTaskStore loads tasks and projects through the adapter, falling back
// to the built-in sample dataset when nothing is stored or the stored data
// cannot be decoded. notifier may be nil to disable calendar sync.
func NewTaskStore(adapter Adapter, notifier Notifier) *TaskStore {
	s := &TaskStore{
		adapter:  adapter,
		notifier: notifier,
		now:      time.Now,
		synced:   make(map[string]bool),
	}

	seedTime := s.now()
	if err := adapter.Load(KeyTasks, &s.tasks); err != nil {
		if err != ErrNoData {
			log.Printf("Error loading tasks, using sample data: %v", err)
		}
		s.tasks = sampleTasks(seedTime)
		s.persistTasks()
	}
	if err := adapter.Load(KeyProjects, &s.projects); err != nil {
		if err != ErrNoData {
			log.Printf("Error loading projects, using sample data: %v", err)
		}
		s.projects = sampleProjects(seedTime)
		s.persistProjects()
	}
	if err := adapter.Load(KeySyncedTasks, &s.synced); err != nil {
		if err != ErrNoData {
			log.Printf("Error loading synced markers: %v", err)
		}
		s.synced = make(map[string]bool)
	}

	return s
}

// SetNotifier attaches a calendar notifier after construction. The store
// and the notifier reference each other, so one of them has to be wired
// late.
func (s *TaskStore) SetNotifier(n Notifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifier = n
}

// CreateTask assigns an ID and timestamps, applies the completedAt rule for
// tasks created directly in done, and prepends the task to the collection.
// A task created with a due date is handed to the calendar notifier; the
// notification never blocks or rolls back the create.
func (s *TaskStore) CreateTask(t *models.Task) {
	s.mu.Lock()
	now := s.now()
	t.ID = uuid.New().String()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Status == models.StatusDone {
		t.CompletedAt = &now
	} else {
		t.CompletedAt = nil
	}

	s.tasks = append([]models.Task{*t}, s.tasks...)
	s.persistTasks()
	notifier := s.notifier
	s.mu.Unlock()

	if t.DueDate != nil && notifier != nil {
		notifier.Enqueue(*t)
	}
}

// UpdateTask merges the patch into the task, recomputes updatedAt, and
// maintains the completedAt invariant: transitioning into done stamps the
// transition time, transitioning out clears it. Returns nil if no task has
// the given ID.
func (s *TaskStore) UpdateTask(id string, patch models.TaskPatch) *models.Task {
	s.mu.Lock()

	idx := -1
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}

	t := &s.tasks[idx]
	now := s.now()
	dueChanged := false

	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Status != nil && *patch.Status != t.Status {
		completing := *patch.Status == models.StatusDone
		reopening := t.Status == models.StatusDone
		t.Status = *patch.Status
		if completing {
			t.CompletedAt = &now
		} else if reopening {
			t.CompletedAt = nil
		}
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		old := t.DueDate
		t.DueDate = *patch.DueDate
		if t.DueDate != nil && (old == nil || !old.Equal(*t.DueDate)) {
			dueChanged = true
		}
	}
	if patch.ProjectID != nil {
		t.ProjectID = *patch.ProjectID
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.Tags != nil {
		t.Tags = *patch.Tags
	}
	t.UpdatedAt = now

	updated := *t
	s.persistTasks()
	notifier := s.notifier
	s.mu.Unlock()

	if dueChanged && notifier != nil {
		notifier.Enqueue(updated)
	}
	return &updated
}

// MoveTask is sugar over UpdateTask for status transitions.
func (s *TaskStore) MoveTask(id string, status models.Status) *models.Task {
	return s.UpdateTask(id, models.TaskPatch{Status: &status})
}

// DeleteTask removes the task and forgets its synced-to-calendar marker.
func (s *TaskStore) DeleteTask(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			delete(s.synced, id)
			s.persistTasks()
			s.persistSynced()
			return true
		}
	}
	return false
}

// Task returns a copy of the task with the given ID, or nil.
func (s *TaskStore) Task(id string) *models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			t := s.tasks[i]
			return &t
		}
	}
	return nil
}

// Tasks returns a copy of the task collection, newest first.
func (s *TaskStore) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Stats projects per-status counts plus overdue (due strictly before now
// and not done).
func (s *TaskStore) Stats() TaskStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	stats := TaskStats{Total: len(s.tasks)}
	for i := range s.tasks {
		switch s.tasks[i].Status {
		case models.StatusTodo:
			stats.Todo++
		case models.StatusInProgress:
			stats.InProgress++
		case models.StatusDone:
			stats.Done++
		}
		if s.tasks[i].IsOverdue(now) {
			stats.Overdue++
		}
	}
	return stats
}

// IsSynced reports whether the task's due date has been mirrored to the
// external calendar at least once.
func (s *TaskStore) IsSynced(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.synced[id]
}

// MarkSynced records a successful calendar mirror for the task.
func (s *TaskStore) MarkSynced(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.synced[id] = true
	s.persistSynced()
}

// CreateProject assigns an ID and timestamps and prepends the project.
func (s *TaskStore) CreateProject(p *models.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p.ID = uuid.New().String()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.projects = append([]models.Project{*p}, s.projects...)
	s.persistProjects()
}

// UpdateProject merges the patch. Returns nil if no project has the ID.
func (s *TaskStore) UpdateProject(id string, patch models.ProjectPatch) *models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		p := &s.projects[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Color != nil {
			p.Color = *patch.Color
		}
		p.UpdatedAt = s.now()
		updated := *p
		s.persistProjects()
		return &updated
	}
	return nil
}

// DeleteProject removes the project and nulls the projectId of referencing
// tasks. Tasks themselves are never cascade-deleted.
func (s *TaskStore) DeleteProject(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return false
	}

	now := s.now()
	for i := range s.tasks {
		if s.tasks[i].ProjectID != nil && *s.tasks[i].ProjectID == id {
			s.tasks[i].ProjectID = nil
			s.tasks[i].UpdatedAt = now
		}
	}
	s.persistProjects()
	s.persistTasks()
	return true
}

// Project returns a copy of the project with the given ID, or nil.
func (s *TaskStore) Project(id string) *models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == id {
			p := s.projects[i]
			return &p
		}
	}
	return nil
}

// Projects returns a copy of the project collection.
func (s *TaskStore) Projects() []models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

func (s *TaskStore) persistTasks() {
	if err := s.adapter.Save(KeyTasks, s.tasks); err != nil {
		log.Printf("Error saving tasks: %v", err)
	}
}

func (s *TaskStore) persistProjects() {
	if err := s.adapter.Save(KeyProjects, s.projects); err != nil {
		log.Printf("Error saving projects: %v", err)
	}
}

func (s *TaskStore) persistSynced() {
	if err := s.adapter.Save(KeySyncedTasks, s.synced); err != nil {
		log.Printf("Error saving synced markers: %v", err)
	}
}
