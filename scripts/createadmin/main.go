// Bootstraps the admin account. Idempotent: if an account with the admin
// username or email already exists it logs and exits without touching it.
//
//	go run ./scripts/createadmin
package main

import (
	"time"

	"servease/config"
	"servease/database"
	userRepo "servease/database/repository/user"
	"servease/models"
	"servease/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminUsername = "admin"
	adminEmail    = "admin@servease.com"
	adminPassword = "admin123"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger().Sugar()

	database.InitDB()

	repo := userRepo.NewMongoUserRepo()

	existing, err := repo.GetByUsername(adminUsername)
	if err != nil {
		logger.Fatalf("createadmin: lookup failed: %v", err)
	}
	if existing == nil {
		existing, err = repo.GetByEmail(adminEmail)
		if err != nil {
			logger.Fatalf("createadmin: lookup failed: %v", err)
		}
	}
	if existing != nil {
		logger.Warnf("createadmin: admin account already exists (username=%s email=%s); delete it and rerun to reset the password", adminUsername, adminEmail)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatalf("createadmin: failed to hash password: %v", err)
	}

	now := time.Now()
	admin := &models.User{
		ID:           uuid.NewString(),
		Username:     adminUsername,
		Email:        adminEmail,
		PhoneNumber:  "9999999999",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Address: models.Address{
			Street:  "Admin Office",
			City:    "Mumbai",
			State:   "Maharashtra",
			Pincode: "400001",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Create(admin); err != nil {
		logger.Fatalf("createadmin: failed to create admin: %v", err)
	}

	logger.Infof("createadmin: admin account created (username=%s email=%s)", adminUsername, adminEmail)
	logger.Warn("createadmin: change the default password after first login")
}
