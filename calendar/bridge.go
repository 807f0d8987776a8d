// ABOUTME: Google Calendar bridge for reading events and mirroring tasks
// ABOUTME: Task events get a [Task] prefix and a one-hour default duration
package calendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	calendarapi "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/harperreed/dayboard/models"
)

// Bridge reads upcoming events and mirrors tasks onto the calendar.
type Bridge interface {
	Events(ctx context.Context, daysAhead int) ([]models.Event, error)
	CreateTaskEvent(ctx context.Context, title, description string, dueDate time.Time, priority models.Priority) (string, error)
}

// GoogleBridge implements Bridge over the Calendar API. calendarID is
// usually "primary".
type GoogleBridge struct {
	service    *calendarapi.Service
	calendarID string
	now        func() time.Time
}

// NewGoogleBridge builds a bridge from a stored OAuth token.
func NewGoogleBridge(ctx context.Context, token *oauth2.Token, calendarID string) (*GoogleBridge, error) {
	if token == nil {
		return nil, fmt.Errorf("token cannot be nil")
	}

	config, err := NewOAuthConfig()
	if err != nil {
		return nil, err
	}

	client := config.Client(ctx, token)
	service, err := calendarapi.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	if calendarID == "" {
		calendarID = "primary"
	}
	return &GoogleBridge{service: service, calendarID: calendarID, now: time.Now}, nil
}

// Events lists events in the window [now, now+daysAhead].
func (b *GoogleBridge) Events(ctx context.Context, daysAhead int) ([]models.Event, error) {
	if daysAhead <= 0 {
		daysAhead = 30
	}
	now := b.now()

	call := b.service.Events.List(b.calendarID).
		TimeMin(now.Format(time.RFC3339)).
		TimeMax(now.AddDate(0, 0, daysAhead).Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(100).
		Context(ctx)

	result, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]models.Event, 0, len(result.Items))
	for _, item := range result.Items {
		events = append(events, fromAPIEvent(item))
	}
	return events, nil
}

// CreateTaskEvent mirrors a task as a calendar event at its due date and
// returns the event's HTML link.
func (b *GoogleBridge) CreateTaskEvent(ctx context.Context, title, description string, dueDate time.Time, priority models.Priority) (string, error) {
	if description == "" {
		if priority == "" {
			priority = models.PriorityMedium
		}
		description = fmt.Sprintf("Priority: %s", priority)
	}

	event := &calendarapi.Event{
		Summary:     fmt.Sprintf("[Task] %s", title),
		Description: description,
		Start: &calendarapi.EventDateTime{
			DateTime: dueDate.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
		End: &calendarapi.EventDateTime{
			DateTime: dueDate.Add(time.Hour).UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
	}

	created, err := b.service.Events.Insert(b.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create calendar event: %w", err)
	}
	return created.HtmlLink, nil
}

func fromAPIEvent(item *calendarapi.Event) models.Event {
	isAllDay := item.Start != nil && item.Start.Date != ""

	title := item.Summary
	if title == "" {
		title = "Untitled Event"
	}

	return models.Event{
		ID:          item.Id,
		Title:       title,
		Description: item.Description,
		StartDate:   parseEventTime(item.Start),
		EndDate:     parseEventTime(item.End),
		Location:    item.Location,
		HTMLLink:    item.HtmlLink,
		IsAllDay:    isAllDay,
	}
}

func parseEventTime(edt *calendarapi.EventDateTime) time.Time {
	if edt == nil {
		return time.Time{}
	}
	if edt.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, edt.DateTime); err == nil {
			return t
		}
	}
	if edt.Date != "" {
		if t, err := time.ParseInLocation("2006-01-02", edt.Date, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}
