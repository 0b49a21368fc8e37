// Command migrate applies the schema and optionally seeds the first admin
// account. Admins cannot be created through signup, so deployments run this
// once with ADMIN_EMAIL, ADMIN_NAME and ADMIN_PASSWORD set.
package main

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/docflow-app/docflow/internal/config"
	"github.com/docflow-app/docflow/internal/database"
	"github.com/docflow-app/docflow/internal/models"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	log.Printf("schema migrated (%s)", cfg.Database.Driver)

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		log.Fatalf("failed to check for existing admin: %v", err)
	}
	if count > 0 {
		log.Printf("admin %s already exists, nothing to do", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}
	admin := &models.User{
		Email:        email,
		Name:         os.Getenv("ADMIN_NAME"),
		Organization: os.Getenv("ADMIN_ORGANIZATION"),
		PasswordHash: string(hash),
		UserType:     models.RoleAdmin,
		UserStatus:   models.StatusApproved,
	}
	if err := db.Create(admin).Error; err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}
	log.Printf("admin %s created", email)
}
