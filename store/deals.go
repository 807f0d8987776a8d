// ABOUTME: Deal store with pipeline statistics and stage queries
// ABOUTME: Conversion rate and pipeline value follow the dashboard rules
package store

import (
	"log"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/dayboard/models"
)

// DealStats is the pipeline projection. ConversionRate is a whole percent:
// closed-won over all closed deals, 0 when nothing has closed.
type DealStats struct {
	TotalDeals      int     `json:"total_deals"`
	OpenDeals       int     `json:"open_deals"`
	ClosedWon       int     `json:"closed_won"`
	ClosedLost      int     `json:"closed_lost"`
	PipelineValue   float64 `json:"pipeline_value"`
	ClosedWonValue  float64 `json:"closed_won_value"`
	ClosedLostValue float64 `json:"closed_lost_value"`
	ConversionRate  int     `json:"conversion_rate"`
}

type DealStore struct {
	mu      sync.Mutex
	adapter Adapter
	now     func() time.Time
	deals   []models.Deal
}

func NewDealStore(adapter Adapter) *DealStore {
	s := &DealStore{adapter: adapter, now: time.Now}
	if err := adapter.Load(KeyDeals, &s.deals); err != nil {
		if err != ErrNoData {
			log.Printf("Error loading deals, using sample data: %v", err)
		}
		s.deals = sampleDeals(s.now())
		s.persist()
	}
	return s
}

func (s *DealStore) Create(d *models.Deal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	d.ID = uuid.New().String()
	d.CreatedAt = now
	d.UpdatedAt = now
	s.deals = append([]models.Deal{*d}, s.deals...)
	s.persist()
}

func (s *DealStore) Update(id string, patch models.DealPatch) *models.Deal {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.deals {
		if s.deals[i].ID != id {
			continue
		}
		d := &s.deals[i]
		if patch.CustomerID != nil {
			d.CustomerID = *patch.CustomerID
		}
		if patch.Title != nil {
			d.Title = *patch.Title
		}
		if patch.Value != nil {
			d.Value = *patch.Value
		}
		if patch.Stage != nil {
			d.Stage = *patch.Stage
		}
		if patch.ExpectedClose != nil {
			d.ExpectedClose = *patch.ExpectedClose
		}
		if patch.Notes != nil {
			d.Notes = *patch.Notes
		}
		d.UpdatedAt = s.now()
		updated := *d
		s.persist()
		return &updated
	}
	return nil
}

// MoveStage is sugar over Update for pipeline transitions.
func (s *DealStore) MoveStage(id string, stage models.DealStage) *models.Deal {
	return s.Update(id, models.DealPatch{Stage: &stage})
}

func (s *DealStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.deals {
		if s.deals[i].ID == id {
			s.deals = append(s.deals[:i], s.deals[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

func (s *DealStore) Get(id string) *models.Deal {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.deals {
		if s.deals[i].ID == id {
			d := s.deals[i]
			return &d
		}
	}
	return nil
}

func (s *DealStore) List() []models.Deal {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Deal, len(s.deals))
	copy(out, s.deals)
	return out
}

// ByCustomer returns the customer's deals, used when a customer deletion
// cascades at the call site.
func (s *DealStore) ByCustomer(customerID string) []models.Deal {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Deal
	for i := range s.deals {
		if s.deals[i].CustomerID == customerID {
			out = append(out, s.deals[i])
		}
	}
	return out
}

func (s *DealStore) ByStage(stage models.DealStage) []models.Deal {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Deal
	for i := range s.deals {
		if s.deals[i].Stage == stage {
			out = append(out, s.deals[i])
		}
	}
	return out
}

// Upcoming returns open deals expected to close within the next 30 days,
// soonest first. Deals without an expected close date are excluded.
func (s *DealStore) Upcoming() []models.Deal {
	s.mu.Lock()
	defer s.mu.Unlock()

	horizon := s.now().AddDate(0, 0, 30)
	var out []models.Deal
	for i := range s.deals {
		d := &s.deals[i]
		if d.ExpectedClose == nil || d.IsClosed() {
			continue
		}
		if !d.ExpectedClose.After(horizon) {
			out = append(out, *d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ExpectedClose.Before(*out[j].ExpectedClose)
	})
	return out
}

func (s *DealStore) Stats() DealStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := DealStats{TotalDeals: len(s.deals)}
	for i := range s.deals {
		d := &s.deals[i]
		switch d.Stage {
		case models.StageClosedWon:
			stats.ClosedWon++
			stats.ClosedWonValue += d.Value
		case models.StageClosedLost:
			stats.ClosedLost++
			stats.ClosedLostValue += d.Value
		default:
			stats.OpenDeals++
			stats.PipelineValue += d.Value
		}
	}

	totalClosed := stats.ClosedWon + stats.ClosedLost
	if totalClosed > 0 {
		stats.ConversionRate = int(math.Round(float64(stats.ClosedWon) / float64(totalClosed) * 100))
	}
	return stats
}

func (s *DealStore) persist() {
	if err := s.adapter.Save(KeyDeals, s.deals); err != nil {
		log.Printf("Error saving deals: %v", err)
	}
}
