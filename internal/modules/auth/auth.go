package auth

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the interface for authentication-related business logic.
type Service interface {
	Login(ctx context.Context, nickname, password string) (string, error)
	// ParseToken validates a signed token and returns the staff user id.
	ParseToken(tokenString string) (uuid.UUID, error)
}
