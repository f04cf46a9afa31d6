package models

import (
	"time"

	"github.com/google/uuid"
)

// User model definition
type User struct {
	UserID       uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
