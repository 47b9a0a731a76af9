package serviceRepo

import "servease/models"

// ServiceRepository defines methods for service catalog data access.
type ServiceRepository interface {
	// GetByID retrieves a service by its unique ID. Returns nil when absent.
	GetByID(id string) (*models.Service, error)
	// GetActiveByCategory retrieves active services in a category, up to limit.
	// A limit of 0 means no limit.
	GetActiveByCategory(category string, limit int64) ([]models.Service, error)
	// GetAllActive retrieves all active services.
	GetAllActive() ([]models.Service, error)
	// GetByIDs retrieves services whose IDs are in the given set.
	GetByIDs(ids []string) ([]models.Service, error)
	// Create inserts a new service record.
	Create(service *models.Service) error
	// CreateMany inserts a batch of service records.
	CreateMany(services []models.Service) error
	// DeleteAll removes every service record. Used by the catalog seeder.
	DeleteAll() error
}
