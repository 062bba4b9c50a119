package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/campusinsider/campus-insider/internal/domain/entities"
	"github.com/campusinsider/campus-insider/internal/domain/repositories"
	"github.com/campusinsider/campus-insider/internal/infrastructure/clients/postgres"
	apperrors "github.com/campusinsider/campus-insider/pkg/errors"
)

// uniqueViolation is the Postgres error code for unique constraint failures.
const uniqueViolation = "23505"

// UserAdapter implements the UserRepository interface.
type UserAdapter struct {
	client *postgres.Client
}

// NewUserAdapter creates a new user adapter.
func NewUserAdapter(client *postgres.Client) repositories.UserRepository {
	return &UserAdapter{client: client}
}

// Create inserts a new account and fills in its generated ID. Duplicate
// usernames map to a conflict error.
func (a *UserAdapter) Create(ctx context.Context, user *entities.User) error {
	query := `
		INSERT INTO users (username, password_hash, role, university_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := a.client.DB().QueryRowContext(ctx, query,
		user.Username,
		user.PasswordHash,
		user.Role,
		user.UniversityID,
		user.CreatedAt,
	).Scan(&user.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return apperrors.NewConflictError(fmt.Sprintf("username %q is already taken", user.Username))
		}
		return apperrors.NewInternalError("failed to create user", err)
	}

	return nil
}

// GetByUsername retrieves an account by username.
func (a *UserAdapter) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	query := `
		SELECT id, username, password_hash, role, university_id, created_at
		FROM users
		WHERE username = $1
	`

	user := &entities.User{}
	err := a.client.DB().QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Role,
		&user.UniversityID,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user %q not found", username))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get user", err)
	}

	return user, nil
}

// List returns all accounts ordered by creation time.
func (a *UserAdapter) List(ctx context.Context) ([]entities.User, error) {
	query := `
		SELECT id, username, role, university_id, created_at
		FROM users
		ORDER BY created_at
	`

	rows, err := a.client.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list users", err)
	}
	defer rows.Close()

	users := []entities.User{}
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Role, &u.UniversityID, &u.CreatedAt); err != nil {
			return nil, apperrors.NewInternalError("failed to scan user row", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read user rows", err)
	}

	return users, nil
}
