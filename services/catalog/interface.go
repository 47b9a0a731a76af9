package catalog

import (
	serviceRepo "servease/database/repository/service"
	"servease/models"
)

// CatalogService exposes the service catalog.
type CatalogService interface {
	// ListActive returns all active services grouped by category.
	ListActive() (map[string][]models.Service, error)
	// GetService retrieves one service by ID.
	GetService(id string) (*models.Service, error)
	// ReplaceAll wipes the catalog and installs the given services. Used by
	// the seeding script.
	ReplaceAll(services []models.Service) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo serviceRepo.ServiceRepository
}
