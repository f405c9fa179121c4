package mock

import (
	"context"

	"github.com/fwojciec/documind"
)

var _ documind.IdentityProvider = (*IdentityProvider)(nil)

// IdentityProvider is a mock implementation of documind.IdentityProvider.
type IdentityProvider struct {
	VerifyFn func(ctx context.Context, code, redirectURI, codeVerifier string) (*documind.Identity, error)
}

func (p *IdentityProvider) Verify(ctx context.Context, code, redirectURI, codeVerifier string) (*documind.Identity, error) {
	return p.VerifyFn(ctx, code, redirectURI, codeVerifier)
}

var _ documind.Authenticator = (*Authenticator)(nil)

// Authenticator is a mock implementation of documind.Authenticator.
type Authenticator struct {
	AuthenticateFn func(ctx context.Context, req documind.LoginRequest) (*documind.LoginResult, error)
}

func (a *Authenticator) Authenticate(ctx context.Context, req documind.LoginRequest) (*documind.LoginResult, error) {
	return a.AuthenticateFn(ctx, req)
}
