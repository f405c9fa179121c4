// Package oauth implements documind.IdentityProvider for Google and GitHub
// using golang.org/x/oauth2 for the authorization code exchange.
package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fwojciec/documind"
	"golang.org/x/oauth2"
)

// DefaultTimeout bounds each call to an identity provider.
const DefaultTimeout = 15 * time.Second

// Option configures a provider.
type Option func(*provider)

// WithTimeout sets the timeout for token and profile requests. Zero disables
// the timeout. Each provider owns its client, so the setting never leaks to
// another provider.
func WithTimeout(d time.Duration) Option {
	return func(p *provider) {
		c := *p.client
		c.Timeout = d
		p.client = &c
	}
}

// WithEndpoints overrides the token and profile URLs.
func WithEndpoints(tokenURL, profileURL string) Option {
	return func(p *provider) {
		p.config.Endpoint.TokenURL = tokenURL
		p.profileURL = profileURL
	}
}

// provider holds what Google and GitHub have in common.
type provider struct {
	name       string
	config     oauth2.Config
	profileURL string
	userAgent  string
	client     *http.Client
}

func newProvider(name string, config oauth2.Config, profileURL string, opts []Option) provider {
	p := provider{
		name:       name,
		config:     config,
		profileURL: profileURL,
		client:     &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// exchange trades code for an access token.
func (p *provider) exchange(ctx context.Context, code, redirectURI string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error) {
	cfg := p.config
	cfg.RedirectURL = redirectURI

	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.client)
	tok, err := cfg.Exchange(ctx, code, opts...)
	if err != nil {
		return nil, documind.Errorf(documind.EIDENTITY, "%s: %s", p.failurePrefix(), describeExchangeError(err))
	}
	if tok.AccessToken == "" {
		return nil, documind.Errorf(documind.EIDENTITY, "%s: No access token", p.failurePrefix())
	}
	return tok, nil
}

// profile fetches the authenticated user's profile into v.
func (p *provider) profile(ctx context.Context, tok *oauth2.Token, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.profileURL, nil)
	if err != nil {
		return err
	}
	tok.SetAuthHeader(req)
	req.Header.Set("Accept", "application/json")
	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return documind.Errorf(documind.EIDENTITY, "%s: %v", p.failurePrefix(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return documind.Errorf(documind.EIDENTITY, "%s: user info request returned %s", p.failurePrefix(), resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return documind.Errorf(documind.EIDENTITY, "%s: invalid user info: %v", p.failurePrefix(), err)
	}
	return nil
}

func (p *provider) failurePrefix() string {
	return fmt.Sprintf("%s Auth Failed", p.name)
}

// describeExchangeError prefers the provider's own description of a failed
// token request.
func describeExchangeError(err error) string {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) {
		switch {
		case re.ErrorDescription != "":
			return re.ErrorDescription
		case re.ErrorCode != "":
			return re.ErrorCode
		}
	}
	return err.Error()
}
