package user

import (
	userRepo "servease/database/repository/user"
	"servease/models"
)

// RegistrationInput carries the sign-up form fields.
type RegistrationInput struct {
	Username    string         `json:"username" binding:"required"`
	Email       string         `json:"email" binding:"required,email"`
	Password    string         `json:"password" binding:"required"`
	PhoneNumber string         `json:"phoneNumber"`
	Address     models.Address `json:"address"`
}

// AuthResponse contains the user's ID, token, and profile basics.
type AuthResponse struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}

// UserService manages user accounts and authentication.
type UserService interface {
	// Register creates a user account and returns an auth token.
	Register(input RegistrationInput) (*AuthResponse, error)
	// Authenticate verifies credentials and returns an auth token.
	Authenticate(email, password string) (*AuthResponse, error)
	// GetUserByID retrieves a user by ID, excluding sensitive fields.
	GetUserByID(userID string) (*models.User, error)
	// UpdateUser applies a partial profile update (incl. address).
	UpdateUser(userID string, update models.User) (*models.User, error)
	// UpdateUserPassword rotates the password after verifying the current one.
	UpdateUserPassword(userID, currentPassword, newPassword string) error
	// DeleteUser removes a user account.
	DeleteUser(userID string) error
	// RevokeAuthToken logs the user out by invalidating the active token.
	RevokeAuthToken(userID string) error
	// GetAllUsers returns all users. Admin only.
	GetAllUsers() ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
