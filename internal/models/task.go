package models

import (
	"time"

	"github.com/google/uuid"
)

// Task represents a to-do item owned by exactly one user.
// OwnerID is set on creation and never changes afterwards.
type Task struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Completed   bool      `json:"completed" db:"completed"`
	OwnerID     uuid.UUID `json:"-" db:"owner_id"` // Hidden from JSON responses
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
