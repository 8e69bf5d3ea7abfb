// Command seed creates or resets the admin user and the registration
// code. It is an offline utility and is never invoked at runtime:
//
//	ADMIN_EMAIL=... ADMIN_PASSWORD=... REGISTER_CODE=... go run ./cmd/seed
package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	authadapter "communitycalendar/internal/adapters/auth"
)

const bcryptCost = 10

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	registerCode := os.Getenv("REGISTER_CODE")

	if dbURL == "" {
		log.Fatal("DATABASE_URL is required for seeding")
	}
	if adminEmail == "" || adminPassword == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD are required for seeding")
	}
	if registerCode == "" {
		log.Fatal("REGISTER_CODE is required for seeding")
	}

	hash, err := authadapter.NewBcryptHasher(bcryptCost).Hash(adminPassword)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err = db.ExecContext(ctx, `
		INSERT INTO users (email, password_hash, name, created_at, updated_at)
		VALUES ($1, $2, 'Admin', NOW(), NOW())
		ON CONFLICT (email) DO UPDATE
		SET password_hash = EXCLUDED.password_hash, updated_at = NOW()
	`, adminEmail, hash)
	if err != nil {
		log.Fatalf("failed to upsert admin user: %v", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO registration_codes (code, is_active, created_at)
		VALUES ($1, TRUE, NOW())
		ON CONFLICT (code) DO UPDATE
		SET is_active = TRUE
	`, registerCode)
	if err != nil {
		log.Fatalf("failed to upsert registration code: %v", err)
	}

	log.Printf("seeded admin %s and registration code", adminEmail)
}
