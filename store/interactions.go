// ABOUTME: Interaction store with follow-up scheduling queries
// ABOUTME: Follow-up status is a query-time classification, never delivered
package store

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/dayboard/models"
)

type InteractionStore struct {
	mu           sync.Mutex
	adapter      Adapter
	now          func() time.Time
	interactions []models.Interaction
}

func NewInteractionStore(adapter Adapter) *InteractionStore {
	s := &InteractionStore{adapter: adapter, now: time.Now}
	if err := adapter.Load(KeyInteractions, &s.interactions); err != nil {
		if err != ErrNoData {
			log.Printf("Error loading interactions, using sample data: %v", err)
		}
		s.interactions = sampleInteractions(s.now())
		s.persist()
	}
	return s
}

func (s *InteractionStore) Create(in *models.Interaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in.ID = uuid.New().String()
	in.CreatedAt = s.now()
	s.interactions = append([]models.Interaction{*in}, s.interactions...)
	s.persist()
}

func (s *InteractionStore) Update(id string, patch models.InteractionPatch) *models.Interaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.interactions {
		if s.interactions[i].ID != id {
			continue
		}
		in := &s.interactions[i]
		if patch.Type != nil {
			in.Type = *patch.Type
		}
		if patch.Date != nil {
			in.Date = *patch.Date
		}
		if patch.Notes != nil {
			in.Notes = *patch.Notes
		}
		if patch.FollowUp != nil {
			in.FollowUp = *patch.FollowUp
		}
		updated := *in
		s.persist()
		return &updated
	}
	return nil
}

func (s *InteractionStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.interactions {
		if s.interactions[i].ID == id {
			s.interactions = append(s.interactions[:i], s.interactions[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

func (s *InteractionStore) List() []models.Interaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Interaction, len(s.interactions))
	copy(out, s.interactions)
	return out
}

// ByCustomer returns the customer's interactions, most recent first.
func (s *InteractionStore) ByCustomer(customerID string) []models.Interaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Interaction
	for i := range s.interactions {
		if s.interactions[i].CustomerID == customerID {
			out = append(out, s.interactions[i])
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// Last returns the most recent interaction with the customer, or nil.
func (s *InteractionStore) Last(customerID string) *models.Interaction {
	history := s.ByCustomer(customerID)
	if len(history) == 0 {
		return nil
	}
	return &history[0]
}

// UpcomingFollowUps returns interactions whose follow-up date is today or
// in the future, soonest first.
func (s *InteractionStore) UpcomingFollowUps() []models.Interaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := models.DayKey(s.now())
	var out []models.Interaction
	for i := range s.interactions {
		in := &s.interactions[i]
		if in.FollowUp == nil {
			continue
		}
		day := models.DayKey(*in.FollowUp)
		if day >= today {
			out = append(out, *in)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FollowUp.Before(*out[j].FollowUp)
	})
	return out
}

// OverdueFollowUps returns interactions whose follow-up date is strictly in
// the past (not today).
func (s *InteractionStore) OverdueFollowUps() []models.Interaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := models.DayKey(s.now())
	var out []models.Interaction
	for i := range s.interactions {
		in := &s.interactions[i]
		if in.FollowUp == nil {
			continue
		}
		if models.DayKey(*in.FollowUp) < today {
			out = append(out, *in)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FollowUp.Before(*out[j].FollowUp)
	})
	return out
}

// TodaysFollowUpCount counts follow-ups landing on the current day.
func (s *InteractionStore) TodaysFollowUpCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := models.DayKey(s.now())
	count := 0
	for i := range s.interactions {
		if s.interactions[i].FollowUp != nil && models.DayKey(*s.interactions[i].FollowUp) == today {
			count++
		}
	}
	return count
}

// Recent returns interactions from the last 30 days, most recent first.
func (s *InteractionStore) Recent() []models.Interaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().AddDate(0, 0, -30)
	var out []models.Interaction
	for i := range s.interactions {
		if s.interactions[i].Date.After(cutoff) {
			out = append(out, s.interactions[i])
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

func (s *InteractionStore) persist() {
	if err := s.adapter.Save(KeyInteractions, s.interactions); err != nil {
		log.Printf("Error saving interactions: %v", err)
	}
}
