package user

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL user repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateUser(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, nickname, password_hash, display_name)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Nickname, user.PasswordHash, user.DisplayName)
	return err
}

func (r *postgresRepository) GetUserByNickname(ctx context.Context, nickname string) (*User, error) {
	user := &User{}
	query := `
		SELECT id, nickname, password_hash, display_name, created_at, updated_at
		FROM users
		WHERE nickname = $1
	`
	err := r.db.QueryRowContext(ctx, query, nickname).Scan(
		&user.ID,
		&user.Nickname,
		&user.PasswordHash,
		&user.DisplayName,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *postgresRepository) GetUserByID(ctx context.Context, id string) (*User, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	user := &User{}
	query := `
		SELECT id, nickname, password_hash, display_name, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	err = r.db.QueryRowContext(ctx, query, parsedID).Scan(
		&user.ID,
		&user.Nickname,
		&user.PasswordHash,
		&user.DisplayName,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}
