package models

import "time"

// ServiceCategories is the closed set of catalog categories.
var ServiceCategories = []string{
	"Cleaning",
	"Plumbing",
	"Electrician",
	"Cooking",
	"Gardening",
	"Painting",
	"Carpentry",
	"AC Repair",
	"Pest Control",
	"Appliance Repair",
}

// IsValidCategory reports whether category belongs to the catalog's closed set.
func IsValidCategory(category string) bool {
	for _, c := range ServiceCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Service represents a bookable household service.
type Service struct {
	ID          string    `bson:"id" json:"id"`
	Category    string    `bson:"category" json:"category"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	BasePrice   float64   `bson:"base_price" json:"basePrice"`
	Duration    int       `bson:"duration" json:"duration"` // minutes
	Icon        string    `bson:"icon" json:"icon"`
	IsActive    bool      `bson:"is_active" json:"isActive"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// ServiceSummary is the compact service shape embedded in chat responses.
type ServiceSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Icon     string  `json:"icon"`
	Duration int     `json:"duration"`
}

// Summary maps a service to its chat-facing summary.
func (s Service) Summary() ServiceSummary {
	return ServiceSummary{
		ID:       s.ID,
		Name:     s.Name,
		Price:    s.BasePrice,
		Icon:     s.Icon,
		Duration: s.Duration,
	}
}
