// ABOUTME: Partial-update patch types for every mutable entity
// ABOUTME: Pointer fields mark which fields a caller wants changed
package models

import "time"

// TaskPatch lists the task fields a partial update may touch. Nil means
// "leave alone". DueDate and ProjectID use a double pointer so a patch
// can distinguish "unchanged" from "cleared".
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *Status
	Priority    *Priority
	DueDate     **time.Time
	ProjectID   **string
	Category    *string
	Tags        *[]string
}

type ProjectPatch struct {
	Name        *string
	Description *string
	Color       *string
}

type CustomerPatch struct {
	Name    *string
	Company *string
	Email   *string
	Phone   *string
	Status  *CustomerStatus
	Tags    *[]string
	Address *string
	Notes   *string
}

type DealPatch struct {
	CustomerID    *string
	Title         *string
	Value         *float64
	Stage         *DealStage
	ExpectedClose **time.Time
	Notes         *string
}

type InteractionPatch struct {
	Type     *InteractionType
	Date     *time.Time
	Notes    *string
	FollowUp **time.Time
}

// SettingsPatch is a partial update for PomodoroSettings.
type SettingsPatch struct {
	WorkDuration            *int
	ShortBreakDuration      *int
	LongBreakDuration       *int
	SessionsBeforeLongBreak *int
	AutoStartBreaks         *bool
	AutoStartPomodoros      *bool
}

// Apply merges the patch into settings and returns the result. Durations
// and the session cadence never drop below 1: a zero cadence would break
// the long-break modulo and a non-positive duration would stall the
// countdown.
func (p SettingsPatch) Apply(s PomodoroSettings) PomodoroSettings {
	if p.WorkDuration != nil {
		s.WorkDuration = atLeastOne(*p.WorkDuration)
	}
	if p.ShortBreakDuration != nil {
		s.ShortBreakDuration = atLeastOne(*p.ShortBreakDuration)
	}
	if p.LongBreakDuration != nil {
		s.LongBreakDuration = atLeastOne(*p.LongBreakDuration)
	}
	if p.SessionsBeforeLongBreak != nil {
		s.SessionsBeforeLongBreak = atLeastOne(*p.SessionsBeforeLongBreak)
	}
	if p.AutoStartBreaks != nil {
		s.AutoStartBreaks = *p.AutoStartBreaks
	}
	if p.AutoStartPomodoros != nil {
		s.AutoStartPomodoros = *p.AutoStartPomodoros
	}
	return s
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
