// Command init-admin bootstraps the first admin account if none
// exists yet.
package main

import (
	"flag"
	"log"

	"book-archive-api/config"
	"book-archive-api/controllers"
	"book-archive-api/models"
	"book-archive-api/utils"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.InitDB()

	var (
		email    string
		password string
		name     string
	)

	flag.StringVar(&email, "email", "", "admin email address (required)")
	flag.StringVar(&password, "password", "", "admin password (required)")
	flag.StringVar(&name, "name", "Admin User", "display name")
	flag.Parse()

	if email == "" || password == "" {
		log.Fatal("-email and -password are required")
	}
	if !utils.ValidateEmail(email) {
		log.Fatalf("invalid email address %q", email)
	}
	if ok, msg := utils.ValidatePassword(password); !ok {
		log.Fatal(msg)
	}

	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("user %s already exists, nothing to do", email)
		return
	}

	hashed, err := controllers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin := models.User{
		Email:    email,
		Password: hashed,
		Name:     &name,
		Role:     models.RoleAdmin,
		IsActive: true,
	}

	if err := config.DB.Create(&admin).Error; err != nil {
		log.Fatalf("failed to create admin user: %v", err)
	}

	log.Printf("admin user %s created", email)
}
