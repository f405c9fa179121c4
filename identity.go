package documind

import "context"

// Identity is the normalized profile returned by an identity provider.
type Identity struct {
	ProviderID string
	Email      string
	Name       string
	AvatarURL  string
}

// IdentityProvider exchanges an OAuth authorization code for the profile of
// the user who granted it.
type IdentityProvider interface {
	// Verify exchanges code for an access token and fetches the user's
	// profile. redirectURI and codeVerifier may be empty; providers that
	// do not support PKCE ignore codeVerifier.
	// Failures are reported as EIDENTITY.
	Verify(ctx context.Context, code, redirectURI, codeVerifier string) (*Identity, error)
}

// LoginRequest is the body of a login call.
type LoginRequest struct {
	Code         string   `json:"code"`
	Provider     Provider `json:"provider"`
	RedirectURI  string   `json:"redirectUri,omitempty"`
	CodeVerifier string   `json:"codeVerifier,omitempty"`
}

// Validate returns an error if code or provider is missing.
func (r *LoginRequest) Validate() error {
	if r.Code == "" || r.Provider == "" {
		return Errorf(EINVALID, "Missing parameters (code, provider)")
	}
	return nil
}

// LoginResult is the persisted user and a freshly issued session token.
type LoginResult struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Authenticator signs users in through an identity provider.
type Authenticator interface {
	// Authenticate verifies the code with the requested provider, upserts
	// the user by email and issues a session token.
	// Returns EUNSUPPORTED for unknown providers.
	Authenticate(ctx context.Context, req LoginRequest) (*LoginResult, error)
}
