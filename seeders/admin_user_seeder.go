package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdminUser creates the initial back-office operator account if it
// does not already exist.
func SeedAdminUser(db *pgxpool.Pool, email, password string) error {
	ctx := context.Background()

	var existingID string
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&existingID)
	if err == nil {
		log.Printf("  - user %s already exists, skipping", email)
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("checking for existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	_, err = db.Exec(ctx,
		"INSERT INTO users (email, password_hash, full_name) VALUES ($1, $2, $3)",
		email, string(hash), "Administrator",
	)
	if err != nil {
		return fmt.Errorf("inserting admin user: %w", err)
	}
	log.Printf("  - user %s created", email)
	return nil
}
