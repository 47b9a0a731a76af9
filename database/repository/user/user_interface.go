package userRepo

import (
	"servease/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address. Returns nil when absent.
	GetByEmail(email string) (*models.User, error)
	// GetByUsername retrieves a user by its username. Returns nil when absent.
	GetByUsername(username string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// UpdateWithDocument applies a partial update document to a user record.
	UpdateWithDocument(id string, update bson.M) error
	// Delete removes a user record by its ID.
	Delete(id string) error
	// CountByRole counts users holding the given role.
	CountByRole(role string) (int64, error)
	// GetByIDWithProjection retrieves a user by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
}
