package catalog

import (
	"fmt"

	"servease/models"

	"github.com/google/uuid"
)

// ListActive returns all active services grouped by category.
func (s *DefaultCatalogService) ListActive() (map[string][]models.Service, error) {
	services, err := s.Repo.GetAllActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	grouped := make(map[string][]models.Service)
	for _, svc := range services {
		grouped[svc.Category] = append(grouped[svc.Category], svc)
	}
	return grouped, nil
}

// GetService retrieves one service by ID.
func (s *DefaultCatalogService) GetService(id string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	if svc == nil {
		return nil, fmt.Errorf("service with id %s not found", id)
	}
	return svc, nil
}

// ReplaceAll wipes the catalog and installs the given services, validating
// categories against the closed set and assigning IDs where missing.
func (s *DefaultCatalogService) ReplaceAll(services []models.Service) error {
	for i := range services {
		if !models.IsValidCategory(services[i].Category) {
			return fmt.Errorf("invalid service category %q", services[i].Category)
		}
		if services[i].ID == "" {
			services[i].ID = uuid.NewString()
		}
		services[i].IsActive = true
	}

	if err := s.Repo.DeleteAll(); err != nil {
		return fmt.Errorf("failed to clear catalog: %w", err)
	}
	if err := s.Repo.CreateMany(services); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	return nil
}
