package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alecthomas/kong"
)

// Dependencies holds the services and writers shared by commands.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config    kong.ConfigFlag `help:"Load flag values from a YAML file"`
	LogLevel  string          `name:"log-level" env:"LOG_LEVEL" default:"info" enum:"debug,info,warn,error" help:"Log level"`
	LogFormat string          `name:"log-format" env:"LOG_FORMAT" default:"text" enum:"text,json" help:"Log format"`

	Serve   ServeCmd   `cmd:"" help:"Run the JSON API server"`
	Extract ExtractCmd `cmd:"" help:"Extract the article at a URL and print it as JSON"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Port        int    `env:"PORT" default:"3000" help:"Port to listen on"`
	JWTSecret   string `name:"jwt-secret" env:"JWT_SECRET" required:"" help:"Secret used to sign session tokens"`
	DatabaseURL string `name:"database-url" env:"DATABASE_URL" required:"" help:"SQLite database path or sqlite:// URL"`

	GoogleClientID     string `name:"google-client-id" env:"GOOGLE_CLIENT_ID" help:"Google OAuth client ID"`
	GoogleClientSecret string `name:"google-client-secret" env:"GOOGLE_CLIENT_SECRET" help:"Google OAuth client secret"`
	GitHubClientID     string `name:"github-client-id" env:"GITHUB_CLIENT_ID" help:"GitHub OAuth client ID"`
	GitHubClientSecret string `name:"github-client-secret" env:"GITHUB_CLIENT_SECRET" help:"GitHub OAuth client secret"`

	OAuthTimeout time.Duration `name:"oauth-timeout" env:"OAUTH_TIMEOUT" default:"15s" help:"Identity provider timeout (0 disables)"`

	ExtractionFlags `embed:""`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL string `arg:"" help:"Page URL"`

	ExtractionFlags `embed:""`
}

// ExtractionFlags configures the fetch and extraction pipeline shared by
// serve and extract.
type ExtractionFlags struct {
	FetchTimeout  time.Duration `name:"fetch-timeout" env:"FETCH_TIMEOUT" default:"30s" help:"Page fetch timeout (0 disables)"`
	UserAgent     string        `name:"user-agent" env:"FETCH_USER_AGENT" help:"User-Agent sent when fetching pages (default: desktop Chrome)"`
	Extractor     string        `env:"EXTRACTOR" default:"readability" enum:"readability,trafilatura" help:"Article extractor"`
	CharThreshold int           `name:"char-threshold" env:"READABILITY_CHAR_THRESHOLD" default:"0" help:"Minimum article length for readability's first pass (0 keeps the library default)"`
}
