package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	"userapi/internal/auth"
	"userapi/internal/config"
	"userapi/internal/db"
	"userapi/internal/model"
	"userapi/internal/repository"
)

// SeedUserData represents one entry in the seed file.
type SeedUserData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func main() {
	file := flag.String("file", "users.json", "path to a JSON file with users to seed")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	users, err := loadSeedFile(*file)
	if err != nil {
		log.Fatalf("Failed to load seed file: %v", err)
	}
	log.Printf("Loaded %d users from %s", len(users), *file)

	userRepo := repository.NewUserRepository(gormDB)
	hasher := auth.NewPasswordHasher()
	ctx := context.Background()

	created, skipped, err := seedUsers(ctx, userRepo, hasher, users)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seed completed: %d created, %d already existed", created, skipped)
}

// loadSeedFile reads and parses the seed file.
func loadSeedFile(path string) ([]SeedUserData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var users []SeedUserData
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return users, nil
}

// seedUsers inserts users that are not already registered, hashing their
// passwords the same way registration does.
func seedUsers(ctx context.Context, repo repository.UserRepository, hasher *auth.PasswordHasher, users []SeedUserData) (created int, skipped int, err error) {
	for _, item := range users {
		if item.Email == "" || item.Password == "" {
			log.Printf("Skipping entry with missing email or password: %q", item.Name)
			skipped++
			continue
		}

		_, err := repo.FindByEmail(ctx, item.Email)
		if err == nil {
			skipped++
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, skipped, fmt.Errorf("check user %s: %w", item.Email, err)
		}

		passwordHash, err := hasher.Hash(item.Password)
		if err != nil {
			return created, skipped, fmt.Errorf("hash password for %s: %w", item.Email, err)
		}

		user := &model.User{
			Name:         item.Name,
			Email:        item.Email,
			PasswordHash: passwordHash,
		}
		if err := repo.Create(ctx, user); err != nil {
			return created, skipped, fmt.Errorf("create user %s: %w", item.Email, err)
		}
		created++
	}
	return created, skipped, nil
}
