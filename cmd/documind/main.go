package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/documind"
	"github.com/fwojciec/documind/extract"
	"github.com/fwojciec/documind/goquery"
	dochttp "github.com/fwojciec/documind/http"
	"github.com/fwojciec/documind/readability"
	docslog "github.com/fwojciec/documind/slog"
	"github.com/fwojciec/documind/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("documind"),
		kong.Description("Extract readable articles from web pages and keep them per user"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Configuration(YAML),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'documind --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger, err := NewLogger(stderr, cli.LogLevel, cli.LogFormat)
	if err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	return kongCtx.Run(deps)
}

// NewLogger returns a logger writing to w at the named level in the named
// format ("text" or "json").
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch format {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

// newURLProcessor wires the extraction pipeline with the named extractor.
func newURLProcessor(f ExtractionFlags, logger *slog.Logger) *extract.Service {
	var ext documind.Extractor = &readability.Extractor{CharThreshold: f.CharThreshold}
	if f.Extractor == "trafilatura" {
		ext = trafilatura.NewExtractor()
	}

	opts := []dochttp.Option{dochttp.WithTimeout(f.FetchTimeout)}
	if f.UserAgent != "" {
		opts = append(opts, dochttp.WithUserAgent(f.UserAgent))
	}

	return &extract.Service{
		Loader:    docslog.NewLoggingLoader(dochttp.NewLoader(opts...), logger),
		Builder:   goquery.NewBuilder(),
		Extractor: docslog.NewLoggingExtractor(ext, logger),
	}
}
