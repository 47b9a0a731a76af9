package user

import (
	"fmt"
	"time"

	"servease/models"
	"servease/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// GetUserByID retrieves a user by ID, excluding sensitive fields.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	projection := bson.M{"password_hash": 0, "token_hash": 0}
	usr, err := s.Repo.GetByIDWithProjection(userID, projection)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return usr, nil
}

// UpdateUser applies a partial profile update. Only non-zero fields are
// written; the address is replaced as a whole when provided.
func (s *DefaultUserService) UpdateUser(userID string, update models.User) (*models.User, error) {
	logger := utils.GetLogger()

	updateFields := bson.M{
		"updated_at": time.Now(),
	}
	if update.Username != "" {
		updateFields["username"] = update.Username
	}
	if update.PhoneNumber != "" {
		updateFields["phoneNumber"] = update.PhoneNumber
	}
	if update.Address != (models.Address{}) {
		updateFields["address"] = update.Address
	}

	if len(updateFields) == 1 {
		logger.Warn("No updatable fields provided", zap.String("userID", userID))
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateWithDocument(userID, updateFields); err != nil {
		logger.Error("Failed to update user", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.GetUserByID(userID)
}

// UpdateUserPassword rotates the password after verifying the current one.
// The active token is revoked so other sessions are logged out.
func (s *DefaultUserService) UpdateUserPassword(userID, currentPassword, newPassword string) error {
	existing, err := s.Repo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("current password is incorrect")
	}
	if err := VerifyPasswordComplexity(newPassword); err != nil {
		return err
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	update := bson.M{
		"password_hash": string(newHash),
		"updated_at":    time.Now(),
	}
	if err := s.Repo.UpdateWithDocument(userID, update); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return s.RevokeAuthToken(userID)
}

// DeleteUser removes a user account.
func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user with id %s: %w", userID, err)
	}
	return nil
}

// GetAllUsers returns all users with sensitive fields cleared.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	users, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	for i := range users {
		users[i].PasswordHash = ""
		users[i].TokenHash = ""
	}
	return users, nil
}
