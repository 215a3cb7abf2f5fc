package entities

import (
	"time"

	"github.com/google/uuid"
)

// User is a back-office operator account. There are no roles beyond
// being authenticated.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
