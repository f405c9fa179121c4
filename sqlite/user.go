package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/documind"
)

// Compile-time interface verification.
var _ documind.UserService = (*UserService)(nil)

// UserService implements documind.UserService using SQLite.
type UserService struct {
	db *DB
}

// NewUserService creates a new UserService.
func NewUserService(db *DB) *UserService {
	return &UserService{db: db}
}

// UpsertUser inserts the user or updates the existing row with the same
// email in a single statement.
func (s *UserService) UpsertUser(ctx context.Context, u *documind.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	now := formatTime(time.Now())

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO users (email, name, avatar_url, provider, provider_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (email) DO UPDATE
		SET
			name = excluded.name,
			avatar_url = excluded.avatar_url,
			provider = excluded.provider,
			provider_id = excluded.provider_id,
			updated_at = excluded.updated_at
		RETURNING id, email, name, avatar_url, provider, provider_id, created_at, updated_at
	`, u.Email, u.Name, u.AvatarURL, string(u.Provider), u.ProviderID, now, now)

	persisted, err := scanUser(row)
	if err != nil {
		return err
	}
	*u = *persisted
	return nil
}

// FindUserByID retrieves a user by ID.
func (s *UserService) FindUserByID(ctx context.Context, id int64) (*documind.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, email, name, avatar_url, provider, provider_id, created_at, updated_at
		FROM users
		WHERE id = ?
	`, id)

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, documind.Errorf(documind.ENOTFOUND, "user not found")
	}
	return u, err
}

func scanUser(row *sql.Row) (*documind.User, error) {
	var u documind.User
	var provider, createdAt, updatedAt string

	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.AvatarURL, &provider, &u.ProviderID,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}
	u.Provider = documind.Provider(provider)

	var err error
	if u.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if u.UpdatedAt, err = parseTime(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &u, nil
}
