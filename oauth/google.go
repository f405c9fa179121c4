package oauth

import (
	"context"

	"github.com/fwojciec/documind"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// GoogleUserInfoURL is the v2 userinfo endpoint.
const GoogleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// Ensure Google implements documind.IdentityProvider at compile time.
var _ documind.IdentityProvider = (*Google)(nil)

// Google verifies Google authorization codes.
type Google struct {
	provider
}

// NewGoogle creates a Google identity provider. Client credentials are sent
// in the token request body.
func NewGoogle(clientID, clientSecret string, opts ...Option) *Google {
	endpoint := google.Endpoint
	endpoint.AuthStyle = oauth2.AuthStyleInParams

	return &Google{provider: newProvider("Google", oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     endpoint,
	}, GoogleUserInfoURL, opts)}
}

type googleUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Verify exchanges code for a token and returns the Google profile.
// Google does not take a PKCE verifier here, so codeVerifier is ignored.
// The token request always carries redirect_uri, empty when none is given.
func (g *Google) Verify(ctx context.Context, code, redirectURI, codeVerifier string) (*documind.Identity, error) {
	var opts []oauth2.AuthCodeOption
	if redirectURI == "" {
		opts = append(opts, oauth2.SetAuthURLParam("redirect_uri", ""))
	}

	tok, err := g.exchange(ctx, code, redirectURI, opts...)
	if err != nil {
		return nil, err
	}

	var u googleUser
	if err := g.profile(ctx, tok, &u); err != nil {
		return nil, err
	}
	if u.Email == "" {
		return nil, documind.Errorf(documind.EIDENTITY, "Google Auth Failed: profile has no email")
	}

	return &documind.Identity{
		ProviderID: u.ID,
		Email:      u.Email,
		Name:       u.Name,
		AvatarURL:  u.Picture,
	}, nil
}
