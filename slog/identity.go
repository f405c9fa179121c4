package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/documind"
)

// Ensure LoggingIdentityProvider implements documind.IdentityProvider.
var _ documind.IdentityProvider = (*LoggingIdentityProvider)(nil)

// LoggingIdentityProvider wraps an IdentityProvider with logging. Codes and
// verifiers are never logged.
type LoggingIdentityProvider struct {
	next     documind.IdentityProvider
	provider documind.Provider
	logger   *slog.Logger
}

// NewLoggingIdentityProvider creates a new LoggingIdentityProvider.
func NewLoggingIdentityProvider(next documind.IdentityProvider, provider documind.Provider, logger *slog.Logger) *LoggingIdentityProvider {
	return &LoggingIdentityProvider{next: next, provider: provider, logger: logger}
}

// Verify delegates to the wrapped provider and logs the outcome.
func (p *LoggingIdentityProvider) Verify(ctx context.Context, code, redirectURI, codeVerifier string) (identity *documind.Identity, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelError
		}
		attrs := []any{
			"provider", string(p.provider),
			"pkce", codeVerifier != "",
			"duration", time.Since(begin),
		}
		if identity != nil {
			attrs = append(attrs, "provider_id", identity.ProviderID)
		}
		attrs = append(attrs, "err", err)
		p.logger.Log(ctx, level, "identity verification", attrs...)
	}(time.Now())
	return p.next.Verify(ctx, code, redirectURI, codeVerifier)
}
