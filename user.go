package documind

import (
	"context"
	"time"
)

// Provider names an OAuth identity provider.
type Provider string

// Supported identity providers.
const (
	ProviderGoogle Provider = "google"
	ProviderGitHub Provider = "github"
)

// User is an account. Email is the identity key: logins through different
// providers that report the same email resolve to the same user.
type User struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	AvatarURL  string    `json:"avatar_url"`
	Provider   Provider  `json:"provider"`
	ProviderID string    `json:"provider_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Validate returns an error if the user contains invalid fields.
func (u *User) Validate() error {
	if u.Email == "" {
		return Errorf(EINVALID, "user email required")
	}
	if u.Provider == "" {
		return Errorf(EINVALID, "user provider required")
	}
	return nil
}

// UserService represents a service for managing users.
type UserService interface {
	// UpsertUser inserts the user or, when a user with the same email
	// exists, overwrites its name, avatar, provider and provider ID.
	// The persisted row is copied back into u.
	UpsertUser(ctx context.Context, u *User) error

	// FindUserByID retrieves a user by ID.
	// Returns ENOTFOUND if user does not exist.
	FindUserByID(ctx context.Context, id int64) (*User, error)
}
