package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is a staff account that can log in and record sales.
type User struct {
	ID           uuid.UUID `json:"id"`
	Nickname     string    `json:"nickname"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"display_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Repository defines the interface for user data storage.
type Repository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByNickname(ctx context.Context, nickname string) (*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
}
