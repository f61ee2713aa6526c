package auth

import (
	"context"
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/amods/cantina-backend/internal/modules/user"
)

// ErrInvalidCredentials is returned for unknown nicknames and wrong
// passwords alike.
var ErrInvalidCredentials = errors.New("invalid credentials")

type service struct {
	userRepo user.Repository
	secret   []byte
	tokenTTL time.Duration
}

// NewService creates a new auth service.
func NewService(userRepo user.Repository, secret string, tokenTTL time.Duration) Service {
	return &service{userRepo: userRepo, secret: []byte(secret), tokenTTL: tokenTTL}
}

func (s *service) Login(ctx context.Context, nickname, password string) (string, error) {
	u, err := s.userRepo.GetUserByNickname(ctx, nickname)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	expirationTime := time.Now().Add(s.tokenTTL)
	claims := &jwt.StandardClaims{
		Subject:   u.ID.String(),
		ExpiresAt: expirationTime.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func (s *service) ParseToken(tokenString string) (uuid.UUID, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidCredentials
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidCredentials
	}
	return id, nil
}
