// ABOUTME: Built-in sample datasets used when stored data is missing or corrupt
// ABOUTME: Mirrors the demo content shipped with a fresh install
package store

import (
	"time"

	"github.com/harperreed/dayboard/models"
)

func strPtr(s string) *string { return &s }
func timePtr(t time.Time) *time.Time { return &t }

func sampleProjects(now time.Time) []models.Project {
	return []models.Project{
		{
			ID:          "project-1",
			Name:        "Website Redesign",
			Description: "Complete overhaul of the company website",
			Color:       "#6366f1",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "project-2",
			Name:        "Mobile App",
			Description: "iOS and Android mobile application",
			Color:       "#10b981",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

func sampleTasks(now time.Time) []models.Task {
	return []models.Task{
		{
			ID:          "task-1",
			Title:       "Design homepage mockup",
			Description: "Create initial design concepts for the new homepage",
			Status:      models.StatusInProgress,
			Priority:    models.PriorityHigh,
			DueDate:     timePtr(now.AddDate(0, 0, 2)),
			ProjectID:   strPtr("project-1"),
			Category:    "Design",
			Tags:        []string{"ui", "homepage"},
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "task-2",
			Title:       "Setup project repository",
			Description: "Initialize Git repo and configure CI/CD",
			Status:      models.StatusDone,
			Priority:    models.PriorityMedium,
			DueDate:     timePtr(now.AddDate(0, 0, -1)),
			ProjectID:   strPtr("project-2"),
			Category:    "Development",
			Tags:        []string{"devops", "setup"},
			CreatedAt:   now,
			UpdatedAt:   now,
			CompletedAt: timePtr(now),
		},
		{
			ID:          "task-3",
			Title:       "User research interviews",
			Description: "Conduct interviews with 5 target users",
			Status:      models.StatusTodo,
			Priority:    models.PriorityUrgent,
			DueDate:     timePtr(now.AddDate(0, 0, 1)),
			ProjectID:   strPtr("project-1"),
			Category:    "Research",
			Tags:        []string{"research", "users"},
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "task-4",
			Title:       "API documentation",
			Description: "Document all REST API endpoints",
			Status:      models.StatusTodo,
			Priority:    models.PriorityLow,
			DueDate:     timePtr(now.AddDate(0, 0, 7)),
			ProjectID:   strPtr("project-2"),
			Category:    "Documentation",
			Tags:        []string{"docs", "api"},
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

func sampleCustomers(now time.Time) []models.Customer {
	return []models.Customer{
		{
			ID:        "customer-1",
			Name:      "Margaret Holloway",
			Company:   "",
			Email:     "mholloway@example.com",
			Phone:     "334-555-0117",
			Status:    models.CustomerActive,
			Tags:      []string{"Homeowner", "Annual Maintenance"},
			Address:   "412 Cary Woods Cir",
			Notes:     "Annual maintenance plan customer since 2022.",
			CreatedAt: now.AddDate(0, 0, -120),
			UpdatedAt: now.AddDate(0, 0, -30),
		},
		{
			ID:        "customer-2",
			Name:      "Dale Pruitt",
			Company:   "Pruitt Properties",
			Email:     "dale@pruittproperties.com",
			Phone:     "334-555-0145",
			Status:    models.CustomerActive,
			Tags:      []string{"Property Manager", "Repair"},
			Address:   "88 Opelika Rd",
			Notes:     "Manages three rental properties on the north side.",
			CreatedAt: now.AddDate(0, 0, -90),
			UpdatedAt: now.AddDate(0, 0, -2),
		},
		{
			ID:        "customer-3",
			Name:      "Renee Castillo",
			Company:   "",
			Email:     "renee.castillo@example.com",
			Phone:     "334-555-0192",
			Status:    models.CustomerProspect,
			Tags:      []string{"Homeowner", "New Install"},
			Address:   "1530 Moores Mill Rd",
			Notes:     "Interested in a carriage house style door.",
			CreatedAt: now.AddDate(0, 0, -14),
			UpdatedAt: now.AddDate(0, 0, -2),
		},
		{
			ID:        "customer-4",
			Name:      "Frank Osborne",
			Company:   "Osborne Storage",
			Email:     "frank@osbornestorage.com",
			Phone:     "334-555-0128",
			Status:    models.CustomerActive,
			Tags:      []string{"Commercial", "Emergency"},
			Address:   "2201 Pepperell Pkwy",
			Notes:     "Self-storage facility, 14 roll-up doors.",
			CreatedAt: now.AddDate(0, 0, -60),
			UpdatedAt: now.AddDate(0, 0, -1),
		},
	}
}

func sampleDeals(now time.Time) []models.Deal {
	return []models.Deal{
		{
			ID:            "deal-1",
			CustomerID:    "customer-3",
			Title:         "New Garage Door Installation",
			Value:         3500,
			Stage:         models.StageProposal,
			ExpectedClose: timePtr(now.AddDate(0, 0, 14)),
			Notes:         "Customer wants carriage house style door. Quote sent.",
			CreatedAt:     now.AddDate(0, 0, -7),
			UpdatedAt:     now.AddDate(0, 0, -2),
		},
		{
			ID:            "deal-2",
			CustomerID:    "customer-4",
			Title:         "Commercial Roll-up Door Replacement",
			Value:         2800,
			Stage:         models.StageContacted,
			ExpectedClose: timePtr(now.AddDate(0, 0, 10)),
			Notes:         "Unit 12 door damaged. Needs 10x10 commercial roll-up with motor.",
			CreatedAt:     now.AddDate(0, 0, -5),
			UpdatedAt:     now.AddDate(0, 0, -1),
		},
		{
			ID:            "deal-3",
			CustomerID:    "customer-2",
			Title:         "Spring Replacement - 3 Properties",
			Value:         750,
			Stage:         models.StageClosedWon,
			ExpectedClose: timePtr(now.AddDate(0, 0, -2)),
			Notes:         "Completed spring replacements at 3 rental properties.",
			CreatedAt:     now.AddDate(0, 0, -14),
			UpdatedAt:     now.AddDate(0, 0, -2),
		},
		{
			ID:            "deal-4",
			CustomerID:    "customer-1",
			Title:         "Annual Maintenance Contract",
			Value:         299,
			Stage:         models.StageClosedWon,
			ExpectedClose: timePtr(now.AddDate(0, 0, -30)),
			Notes:         "Renewed annual maintenance plan.",
			CreatedAt:     now.AddDate(0, 0, -45),
			UpdatedAt:     now.AddDate(0, 0, -30),
		},
		{
			ID:            "deal-5",
			CustomerID:    "customer-4",
			Title:         "Commercial Overhead Door",
			Value:         4500,
			Stage:         models.StageClosedLost,
			ExpectedClose: timePtr(now.AddDate(0, 0, -90)),
			Notes:         "Business closed before project could move forward.",
			CreatedAt:     now.AddDate(0, 0, -120),
			UpdatedAt:     now.AddDate(0, 0, -90),
		},
	}
}

func sampleInteractions(now time.Time) []models.Interaction {
	return []models.Interaction{
		{
			ID:         "interaction-1",
			CustomerID: "customer-1",
			Type:       models.InteractionCall,
			Date:       now.AddDate(0, 0, -30),
			Notes:      "Scheduled annual maintenance visit. Customer confirmed availability.",
			CreatedAt:  now.AddDate(0, 0, -30),
		},
		{
			ID:         "interaction-2",
			CustomerID: "customer-3",
			Type:       models.InteractionMeeting,
			Date:       now.AddDate(0, 0, -7),
			Notes:      "Home visit to measure garage opening. Discussed style options.",
			FollowUp:   timePtr(now.AddDate(0, 0, 3)),
			CreatedAt:  now.AddDate(0, 0, -7),
		},
		{
			ID:         "interaction-3",
			CustomerID: "customer-3",
			Type:       models.InteractionEmail,
			Date:       now.AddDate(0, 0, -2),
			Notes:      "Sent detailed quote with installation timeline and warranty info.",
			FollowUp:   timePtr(now.AddDate(0, 0, 5)),
			CreatedAt:  now.AddDate(0, 0, -2),
		},
		{
			ID:         "interaction-4",
			CustomerID: "customer-4",
			Type:       models.InteractionVisit,
			Date:       now.AddDate(0, 0, -1),
			Notes:      "Emergency repair call. Replaced damaged panel and realigned track.",
			CreatedAt:  now.AddDate(0, 0, -1),
		},
	}
}
