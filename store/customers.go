// ABOUTME: Customer store with CRUD and status/tag queries
// ABOUTME: Sample-data fallback matches the other collection stores
package store

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/dayboard/models"
)

// CustomerStats summarizes the customer book for dashboards.
type CustomerStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Prospects int `json:"prospects"`
}

type CustomerStore struct {
	mu        sync.Mutex
	adapter   Adapter
	now       func() time.Time
	customers []models.Customer
}

func NewCustomerStore(adapter Adapter) *CustomerStore {
	s := &CustomerStore{adapter: adapter, now: time.Now}
	if err := adapter.Load(KeyCustomers, &s.customers); err != nil {
		if err != ErrNoData {
			log.Printf("Error loading customers, using sample data: %v", err)
		}
		s.customers = sampleCustomers(s.now())
		s.persist()
	}
	return s
}

func (s *CustomerStore) Create(c *models.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	c.ID = uuid.New().String()
	c.CreatedAt = now
	c.UpdatedAt = now
	s.customers = append([]models.Customer{*c}, s.customers...)
	s.persist()
}

func (s *CustomerStore) Update(id string, patch models.CustomerPatch) *models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID != id {
			continue
		}
		c := &s.customers[i]
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Company != nil {
			c.Company = *patch.Company
		}
		if patch.Email != nil {
			c.Email = *patch.Email
		}
		if patch.Phone != nil {
			c.Phone = *patch.Phone
		}
		if patch.Status != nil {
			c.Status = *patch.Status
		}
		if patch.Tags != nil {
			c.Tags = *patch.Tags
		}
		if patch.Address != nil {
			c.Address = *patch.Address
		}
		if patch.Notes != nil {
			c.Notes = *patch.Notes
		}
		c.UpdatedAt = s.now()
		updated := *c
		s.persist()
		return &updated
	}
	return nil
}

func (s *CustomerStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

func (s *CustomerStore) Get(id string) *models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			c := s.customers[i]
			return &c
		}
	}
	return nil
}

func (s *CustomerStore) List() []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// ByStatus returns customers in the given status.
func (s *CustomerStore) ByStatus(status models.CustomerStatus) []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Customer
	for i := range s.customers {
		if s.customers[i].Status == status {
			out = append(out, s.customers[i])
		}
	}
	return out
}

// Search matches name, company, or email, case-insensitively.
func (s *CustomerStore) Search(query string) []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(query)
	var out []models.Customer
	for i := range s.customers {
		c := &s.customers[i]
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Company), q) ||
			strings.Contains(strings.ToLower(c.Email), q) {
			out = append(out, *c)
		}
	}
	return out
}

func (s *CustomerStore) Stats() CustomerStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := CustomerStats{Total: len(s.customers)}
	for i := range s.customers {
		switch s.customers[i].Status {
		case models.CustomerActive:
			stats.Active++
		case models.CustomerProspect:
			stats.Prospects++
		}
	}
	return stats
}

func (s *CustomerStore) persist() {
	if err := s.adapter.Save(KeyCustomers, s.customers); err != nil {
		log.Printf("Error saving customers: %v", err)
	}
}
