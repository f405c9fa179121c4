package oauth

import (
	"context"
	"strconv"

	"github.com/fwojciec/documind"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

// GitHubUserURL is the authenticated user endpoint of the GitHub API.
const GitHubUserURL = "https://api.github.com/user"

// GitHubUserAgent identifies the application to the GitHub API, which
// rejects requests without a User-Agent.
const GitHubUserAgent = "Documind-App"

// Ensure GitHub implements documind.IdentityProvider at compile time.
var _ documind.IdentityProvider = (*GitHub)(nil)

// GitHub verifies GitHub authorization codes, optionally bound by PKCE.
type GitHub struct {
	provider
}

// NewGitHub creates a GitHub identity provider.
func NewGitHub(clientID, clientSecret string, opts ...Option) *GitHub {
	endpoint := github.Endpoint
	endpoint.AuthStyle = oauth2.AuthStyleInParams

	p := newProvider("GitHub", oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     endpoint,
	}, GitHubUserURL, opts)
	p.userAgent = GitHubUserAgent

	return &GitHub{provider: p}
}

type githubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// Verify exchanges code for a token and returns the GitHub profile.
// Accounts with a private email get the placeholder <login>@no-email.github,
// and accounts without a display name use their login.
func (g *GitHub) Verify(ctx context.Context, code, redirectURI, codeVerifier string) (*documind.Identity, error) {
	var opts []oauth2.AuthCodeOption
	if codeVerifier != "" {
		opts = append(opts, oauth2.VerifierOption(codeVerifier))
	}

	tok, err := g.exchange(ctx, code, redirectURI, opts...)
	if err != nil {
		return nil, err
	}

	var u githubUser
	if err := g.profile(ctx, tok, &u); err != nil {
		return nil, err
	}
	if u.ID == 0 || u.Login == "" {
		return nil, documind.Errorf(documind.EIDENTITY, "GitHub Auth Failed: incomplete user profile")
	}

	email := u.Email
	if email == "" {
		email = u.Login + "@no-email.github"
	}
	name := u.Name
	if name == "" {
		name = u.Login
	}

	return &documind.Identity{
		ProviderID: strconv.FormatInt(u.ID, 10),
		Email:      email,
		Name:       name,
		AvatarURL:  u.AvatarURL,
	}, nil
}
