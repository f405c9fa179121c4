package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/fwojciec/documind"
	"github.com/fwojciec/documind/auth"
	"github.com/fwojciec/documind/htmltomarkdown"
	dochttp "github.com/fwojciec/documind/http"
	"github.com/fwojciec/documind/jwt"
	"github.com/fwojciec/documind/oauth"
	docslog "github.com/fwojciec/documind/slog"
	"github.com/fwojciec/documind/sqlite"
	"golang.org/x/sync/errgroup"
)

// Run opens the database, wires the services and serves the API until the
// context is cancelled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	logger := deps.Logger

	db := sqlite.NewDB(sqlite.PathFromURL(c.DatabaseURL))
	if err := db.Open(); err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	tokens := jwt.NewTokenService(c.JWTSecret)

	srv := dochttp.NewServer()
	srv.Addr = ":" + strconv.Itoa(c.Port)
	srv.Logger = logger
	srv.URLProcessor = newURLProcessor(c.ExtractionFlags, logger)
	srv.Tokens = tokens
	srv.Documents = docslog.NewLoggingDocumentService(sqlite.NewDocumentService(db), logger)
	srv.Converter = htmltomarkdown.NewConverter()
	users := sqlite.NewUserService(db)
	srv.Users = users
	srv.Authenticator = &auth.Service{
		Providers: c.identityProviders(logger),
		Users:     users,
		Tokens:    tokens,
	}

	if err := srv.Open(); err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	fmt.Fprintf(deps.Stdout, "Server running at %s\n", srv.URL())

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(srv.Serve)
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), dochttp.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// identityProviders returns the providers with configured client IDs.
func (c *ServeCmd) identityProviders(logger *slog.Logger) map[documind.Provider]documind.IdentityProvider {
	providers := make(map[documind.Provider]documind.IdentityProvider)
	if c.GoogleClientID != "" {
		google := oauth.NewGoogle(c.GoogleClientID, c.GoogleClientSecret, oauth.WithTimeout(c.OAuthTimeout))
		providers[documind.ProviderGoogle] = docslog.NewLoggingIdentityProvider(google, documind.ProviderGoogle, logger)
	}
	if c.GitHubClientID != "" {
		github := oauth.NewGitHub(c.GitHubClientID, c.GitHubClientSecret, oauth.WithTimeout(c.OAuthTimeout))
		providers[documind.ProviderGitHub] = docslog.NewLoggingIdentityProvider(github, documind.ProviderGitHub, logger)
	}
	if len(providers) == 0 {
		logger.Warn("no identity providers configured; login is disabled")
	}
	return providers
}
