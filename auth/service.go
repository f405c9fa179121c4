// Package auth signs users in: it verifies an OAuth code with the requested
// identity provider, upserts the user by email and issues a session token.
package auth

import (
	"context"

	"github.com/fwojciec/documind"
)

var _ documind.Authenticator = (*Service)(nil)

// Service implements documind.Authenticator.
type Service struct {
	Providers map[documind.Provider]documind.IdentityProvider
	Users     documind.UserService
	Tokens    documind.TokenService
}

// Authenticate verifies req.Code with the provider, upserts the user and
// returns it together with a signed session token. Users are keyed by email,
// so a second provider reporting the same email updates the existing row.
func (s *Service) Authenticate(ctx context.Context, req documind.LoginRequest) (*documind.LoginResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	idp, ok := s.Providers[req.Provider]
	if !ok || idp == nil {
		return nil, documind.Errorf(documind.EUNSUPPORTED, "Unsupported provider: %s", req.Provider)
	}

	identity, err := idp.Verify(ctx, req.Code, req.RedirectURI, req.CodeVerifier)
	if err != nil {
		return nil, err
	}

	user := &documind.User{
		Email:      identity.Email,
		Name:       identity.Name,
		AvatarURL:  identity.AvatarURL,
		Provider:   req.Provider,
		ProviderID: identity.ProviderID,
	}
	if err := s.Users.UpsertUser(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.Tokens.IssueToken(user)
	if err != nil {
		return nil, err
	}

	return &documind.LoginResult{User: user, Token: token}, nil
}
