// ABOUTME: Fixed demonstration events shown when no bridge is available
// ABOUTME: Lets the events view render something useful before OAuth setup
package calendar

import (
	"time"

	"github.com/harperreed/dayboard/models"
)

// DemoEvents returns a fixed set of upcoming events anchored on now.
// Callers substitute these when the bridge is unconfigured or failing.
func DemoEvents(now time.Time) []models.Event {
	return []models.Event{
		{
			ID:          "demo-1",
			Title:       "Team Standup",
			Description: "Daily standup meeting with the development team",
			StartDate:   now.AddDate(0, 0, 1),
			EndDate:     now.AddDate(0, 0, 1),
			Location:    "Conference Room A",
			HTMLLink:    "#",
		},
		{
			ID:          "demo-2",
			Title:       "Project Review",
			Description: "Quarterly project review with stakeholders",
			StartDate:   now.AddDate(0, 0, 3),
			EndDate:     now.AddDate(0, 0, 3),
			Location:    "Zoom",
			HTMLLink:    "#",
		},
		{
			ID:          "demo-3",
			Title:       "Sprint Planning",
			Description: "Plan the next sprint cycle",
			StartDate:   now.AddDate(0, 0, 5),
			EndDate:     now.AddDate(0, 0, 5),
			Location:    "War Room",
			HTMLLink:    "#",
			IsAllDay:    true,
		},
		{
			ID:          "demo-4",
			Title:       "Client Meeting",
			Description: "Review progress with the client",
			StartDate:   now.AddDate(0, 0, 7),
			EndDate:     now.AddDate(0, 0, 7),
			Location:    "Office",
			HTMLLink:    "#",
		},
	}
}
