package user

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	registerErr error
}

func (f *fakeService) RegisterUser(_ context.Context, nickname, _, displayName string) (*User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &User{Nickname: nickname, DisplayName: displayName}, nil
}

func (f *fakeService) GetUser(_ context.Context, _ string) (*User, error) {
	return nil, errors.New("no rows")
}

func TestRegisterUserDoesNotLeakStorageDetail(t *testing.T) {
	service := &fakeService{
		registerErr: errors.New(`pq: duplicate key value violates unique constraint "users_nickname_key"`),
	}
	router := chi.NewRouter()
	NewHandler(service).RegisterRoutes(router)

	body := strings.NewReader(`{"nickname":"ana","password":"amods"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/register", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "failed to register user", strings.TrimSpace(rec.Body.String()))
	assert.NotContains(t, rec.Body.String(), "duplicate key")
	assert.NotContains(t, rec.Body.String(), "pq:")
}
