// ABOUTME: Data models for the dayboard project-management core
// ABOUTME: Defines Task, Project, CRM entities, pomodoro and streak types
package models

import "time"

// Status is a task's kanban column.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Priority orders tasks from most to least pressing.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// PriorityRank maps a priority to its sort rank (urgent first).
// Unknown priorities sort last.
func PriorityRank(p Priority) int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	ProjectID   *string    `json:"project_id,omitempty"`
	Category    string     `json:"category,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// IsOverdue reports whether the task is past its due date and not done.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.Status == StatusDone || t.DueDate == nil {
		return false
	}
	return t.DueDate.Before(now)
}

type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CustomerStatus constants.
type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
	CustomerProspect CustomerStatus = "prospect"
	CustomerFormer   CustomerStatus = "former"
)

type Customer struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Company   string         `json:"company,omitempty"`
	Email     string         `json:"email,omitempty"`
	Phone     string         `json:"phone,omitempty"`
	Status    CustomerStatus `json:"status"`
	Tags      []string       `json:"tags,omitempty"`
	Address   string         `json:"address,omitempty"`
	Notes     string         `json:"notes,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// DealStage is a deal's position in the sales pipeline.
type DealStage string

const (
	StageLead        DealStage = "lead"
	StageContacted   DealStage = "contacted"
	StageProposal    DealStage = "proposal"
	StageNegotiation DealStage = "negotiation"
	StageClosedWon   DealStage = "closed-won"
	StageClosedLost  DealStage = "closed-lost"
)

type Deal struct {
	ID            string     `json:"id"`
	CustomerID    string     `json:"customer_id"`
	Title         string     `json:"title"`
	Value         float64    `json:"value"`
	Stage         DealStage  `json:"stage"`
	ExpectedClose *time.Time `json:"expected_close,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// IsClosed reports whether the deal has left the open pipeline.
func (d *Deal) IsClosed() bool {
	return d.Stage == StageClosedWon || d.Stage == StageClosedLost
}

// InteractionType constants.
type InteractionType string

const (
	InteractionCall    InteractionType = "call"
	InteractionEmail   InteractionType = "email"
	InteractionMeeting InteractionType = "meeting"
	InteractionVisit   InteractionType = "visit"
	InteractionNote    InteractionType = "note"
)

type Interaction struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Type       InteractionType `json:"type"`
	Date       time.Time       `json:"date"`
	Notes      string          `json:"notes"`
	FollowUp   *time.Time      `json:"follow_up,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// TimerMode is a pomodoro timer phase.
type TimerMode string

const (
	ModeWork       TimerMode = "work"
	ModeShortBreak TimerMode = "shortBreak"
	ModeLongBreak  TimerMode = "longBreak"
)

// PomodoroSession is one entry in the append-only focus log.
type PomodoroSession struct {
	ID        string    `json:"id"`
	TaskID    *string   `json:"task_id,omitempty"`
	TaskTitle *string   `json:"task_title,omitempty"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Duration  int       `json:"duration"` // minutes
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

type PomodoroSettings struct {
	WorkDuration            int  `json:"work_duration"` // minutes
	ShortBreakDuration      int  `json:"short_break_duration"`
	LongBreakDuration       int  `json:"long_break_duration"`
	SessionsBeforeLongBreak int  `json:"sessions_before_long_break"`
	AutoStartBreaks         bool `json:"auto_start_breaks"`
	AutoStartPomodoros      bool `json:"auto_start_pomodoros"`
}

// DefaultPomodoroSettings returns the stock 25/5/15 configuration.
func DefaultPomodoroSettings() PomodoroSettings {
	return PomodoroSettings{
		WorkDuration:            25,
		ShortBreakDuration:      5,
		LongBreakDuration:       15,
		SessionsBeforeLongBreak: 4,
		AutoStartBreaks:         false,
		AutoStartPomodoros:      false,
	}
}

// StreakData is the persisted snapshot of the day-streak derivation.
type StreakData struct {
	CurrentStreak       int      `json:"current_streak"`
	LongestStreak       int      `json:"longest_streak"`
	LastCompletedDate   string   `json:"last_completed_date,omitempty"` // YYYY-MM-DD
	CompletedDates      []string `json:"completed_dates"`               // ascending YYYY-MM-DD
	TotalTasksCompleted int      `json:"total_tasks_completed"`
}

// DailyStats aggregates per-day productivity counters.
type DailyStats struct {
	Date            string `json:"date"` // YYYY-MM-DD
	TasksCompleted  int    `json:"tasks_completed"`
	TasksCreated    int    `json:"tasks_created"`
	PomodoroMinutes int    `json:"pomodoro_minutes"`
}

// StandupItem is one line of a standup bucket.
type StandupItem struct {
	TaskID string `json:"task_id"`
	Title  string `json:"title"`
	Status Status `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

// StandupReport is the derived three-bucket daily summary. It is
// synthesized on demand and never persisted.
type StandupReport struct {
	GeneratedAt time.Time     `json:"generated_at"`
	Yesterday   []StandupItem `json:"yesterday"`
	Today       []StandupItem `json:"today"`
	Blockers    []StandupItem `json:"blockers"`
}

// Event is a calendar entry as seen through the bridge.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Location    string    `json:"location,omitempty"`
	HTMLLink    string    `json:"html_link"`
	IsAllDay    bool      `json:"is_all_day"`
}

// DayKey truncates a timestamp to its local calendar day.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
