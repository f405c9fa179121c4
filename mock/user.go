package mock

import (
	"context"

	"github.com/fwojciec/documind"
)

var _ documind.UserService = (*UserService)(nil)

// UserService is a mock implementation of documind.UserService.
type UserService struct {
	UpsertUserFn   func(ctx context.Context, u *documind.User) error
	FindUserByIDFn func(ctx context.Context, id int64) (*documind.User, error)
}

func (s *UserService) UpsertUser(ctx context.Context, u *documind.User) error {
	return s.UpsertUserFn(ctx, u)
}

func (s *UserService) FindUserByID(ctx context.Context, id int64) (*documind.User, error) {
	return s.FindUserByIDFn(ctx, id)
}

var _ documind.TokenService = (*TokenService)(nil)

// TokenService is a mock implementation of documind.TokenService.
type TokenService struct {
	IssueTokenFn  func(u *documind.User) (string, error)
	VerifyTokenFn func(token string) (*documind.Claims, error)
}

func (s *TokenService) IssueToken(u *documind.User) (string, error) {
	return s.IssueTokenFn(u)
}

func (s *TokenService) VerifyToken(token string) (*documind.Claims, error) {
	return s.VerifyTokenFn(token)
}
