// ABOUTME: Tests for the interaction store follow-up classification
// ABOUTME: Today counts as upcoming, strictly past counts as overdue
package store

import (
	"testing"
	"time"

	"github.com/harperreed/dayboard/models"
)

func newEmptyInteractionStore(t *testing.T) *InteractionStore {
	t.Helper()
	mem := NewMemory()
	if err := mem.Save(KeyInteractions, []models.Interaction{}); err != nil {
		t.Fatalf("failed to seed interactions: %v", err)
	}
	return NewInteractionStore(mem)
}

func addInteraction(s *InteractionStore, customerID string, date time.Time, followUp *time.Time) models.Interaction {
	in := models.Interaction{
		CustomerID: customerID,
		Type:       models.InteractionCall,
		Date:       date,
		Notes:      "note",
		FollowUp:   followUp,
	}
	s.Create(&in)
	return in
}

func TestFollowUpClassification(t *testing.T) {
	s := newEmptyInteractionStore(t)
	now := time.Now()

	past := now.AddDate(0, 0, -3)
	today := now
	future := now.AddDate(0, 0, 4)

	addInteraction(s, "customer-1", now.AddDate(0, 0, -5), &past)
	addInteraction(s, "customer-1", now.AddDate(0, 0, -1), &today)
	addInteraction(s, "customer-2", now.AddDate(0, 0, -1), &future)
	addInteraction(s, "customer-2", now.AddDate(0, 0, -2), nil)

	upcoming := s.UpcomingFollowUps()
	if len(upcoming) != 2 {
		t.Fatalf("expected 2 upcoming follow-ups, got %d", len(upcoming))
	}
	// Soonest first: today before the future one.
	if !upcoming[0].FollowUp.Before(*upcoming[1].FollowUp) {
		t.Fatal("expected upcoming follow-ups sorted ascending")
	}

	overdue := s.OverdueFollowUps()
	if len(overdue) != 1 {
		t.Fatalf("expected 1 overdue follow-up, got %d", len(overdue))
	}

	if got := s.TodaysFollowUpCount(); got != 1 {
		t.Fatalf("expected 1 follow-up today, got %d", got)
	}
}

func TestByCustomerSortedNewestFirst(t *testing.T) {
	s := newEmptyInteractionStore(t)
	now := time.Now()

	addInteraction(s, "customer-1", now.AddDate(0, 0, -10), nil)
	newest := addInteraction(s, "customer-1", now.AddDate(0, 0, -1), nil)
	addInteraction(s, "customer-1", now.AddDate(0, 0, -5), nil)
	addInteraction(s, "customer-2", now, nil)

	history := s.ByCustomer("customer-1")
	if len(history) != 3 {
		t.Fatalf("expected 3 interactions, got %d", len(history))
	}
	if history[0].ID != newest.ID {
		t.Fatal("expected most recent interaction first")
	}

	last := s.Last("customer-1")
	if last == nil || last.ID != newest.ID {
		t.Fatal("expected Last to return the most recent interaction")
	}
	if s.Last("customer-9") != nil {
		t.Fatal("expected nil for a customer with no history")
	}
}

func TestRecentWindow(t *testing.T) {
	s := newEmptyInteractionStore(t)
	now := time.Now()

	addInteraction(s, "customer-1", now.AddDate(0, 0, -40), nil)
	inside := addInteraction(s, "customer-1", now.AddDate(0, 0, -10), nil)

	recent := s.Recent()
	if len(recent) != 1 {
		t.Fatalf("expected 1 recent interaction, got %d", len(recent))
	}
	if recent[0].ID != inside.ID {
		t.Fatal("expected the interaction inside the 30-day window")
	}
}

func TestUpdateFollowUpCleared(t *testing.T) {
	s := newEmptyInteractionStore(t)
	now := time.Now()
	followUp := now.AddDate(0, 0, 2)

	in := addInteraction(s, "customer-1", now, &followUp)

	var cleared *time.Time
	updated := s.Update(in.ID, models.InteractionPatch{FollowUp: &cleared})
	if updated == nil {
		t.Fatal("expected interaction to be found")
	}
	if updated.FollowUp != nil {
		t.Fatal("expected follow-up to be cleared")
	}
	if len(s.UpcomingFollowUps()) != 0 {
		t.Fatal("expected no upcoming follow-ups after clearing")
	}
}
