package main

import (
	"log"
	"os"

	"studiq-be/internal/model"
	"studiq-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the initial admin account. Credentials come from ADMIN_EMAIL and
// ADMIN_PASSWORD; re-running is a no-op if the account already exists.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Fatal("Error: ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	color.Cyan("Seeding admin account...")

	var existing model.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		color.Yellow("Admin '%s' already exists, skipping...", adminEmail)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error: Failed to hash password:", err)
	}
	hashStr := string(hash)

	admin := model.User{
		Email:        adminEmail,
		PasswordHash: &hashStr,
		FullName:     "Administrator",
		Role:         "admin",
		Status:       "active",
	}

	if err := db.Create(&admin).Error; err != nil {
		color.Red("Error creating admin: %v", err)
		os.Exit(1)
	}

	color.Green("✅ Created admin account: %s", adminEmail)
}
