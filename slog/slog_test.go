package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/url"
	"testing"

	"github.com/fwojciec/documind"
	"github.com/fwojciec/documind/mock"
	docslog "github.com/fwojciec/documind/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Loader{
			LoadFn: func(ctx context.Context, url string) (*documind.RawPage, error) {
				return &documind.RawPage{HTML: "<html>content</html>", URL: url}, nil
			},
		}

		page, err := docslog.NewLoggingLoader(inner, newLogger(&buf)).Load(context.Background(), "https://example.com/post")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", page.HTML)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "url=https://example.com/post")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Loader{
			LoadFn: func(ctx context.Context, url string) (*documind.RawPage, error) {
				return nil, errors.New("network error")
			},
		}

		_, err := docslog.NewLoggingLoader(inner, newLogger(&buf)).Load(context.Background(), "https://example.com/post")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), `err="network error"`)
	})
}

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.Extractor{
		ExtractFn: func(tree *documind.Tree) (*documind.Article, error) {
			return &documind.Article{Title: "Notes", TextContent: "hello"}, nil
		},
	}
	base, _ := url.Parse("https://example.com/notes")

	article, err := docslog.NewLoggingExtractor(inner, newLogger(&buf)).Extract(&documind.Tree{BaseURL: base})

	require.NoError(t, err)
	assert.Equal(t, "Notes", article.Title)
	assert.Contains(t, buf.String(), "title=Notes")
	assert.Contains(t, buf.String(), "chars=5")
	assert.Contains(t, buf.String(), "url=https://example.com/notes")
}

func TestLoggingIdentityProvider_Verify(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.IdentityProvider{
		VerifyFn: func(ctx context.Context, code, redirectURI, codeVerifier string) (*documind.Identity, error) {
			return &documind.Identity{ProviderID: "42", Email: "octo@example.com"}, nil
		},
	}

	_, err := docslog.NewLoggingIdentityProvider(inner, documind.ProviderGitHub, newLogger(&buf)).
		Verify(context.Background(), "secret-code", "", "secret-verifier")

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "provider=github")
	assert.Contains(t, output, "pkce=true")
	assert.Contains(t, output, "provider_id=42")
	assert.NotContains(t, output, "secret-code")
	assert.NotContains(t, output, "secret-verifier")
}

func TestLoggingDocumentService(t *testing.T) {
	t.Parallel()

	t.Run("logs not found at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.DocumentService{
			FindDocumentByIDFn: func(ctx context.Context, userID, id int64) (*documind.Document, error) {
				return nil, documind.Errorf(documind.ENOTFOUND, "Document not found")
			},
		}

		_, err := docslog.NewLoggingDocumentService(inner, newLogger(&buf)).FindDocumentByID(context.Background(), 1, 9)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "id=9")
	})

	t.Run("logs store failures at error level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.DocumentService{
			DeleteDocumentFn: func(ctx context.Context, userID, id int64) error {
				return errors.New("database is locked")
			},
		}

		err := docslog.NewLoggingDocumentService(inner, newLogger(&buf)).DeleteDocument(context.Background(), 1, 2)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "delete document")
	})

	t.Run("logs created document", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.DocumentService{
			CreateDocumentFn: func(ctx context.Context, doc *documind.Document) error {
				doc.ID = 5
				doc.WordCount = 3
				return nil
			},
		}

		err := docslog.NewLoggingDocumentService(inner, newLogger(&buf)).CreateDocument(context.Background(), &documind.Document{UserID: 1})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "create document")
		assert.Contains(t, buf.String(), "id=5")
		assert.Contains(t, buf.String(), "word_count=3")
	})

	t.Run("logs list count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.DocumentService{
			FindDocumentsFn: func(ctx context.Context, filter documind.DocumentFilter) ([]*documind.Document, error) {
				return []*documind.Document{{ID: 1}, {ID: 2}}, nil
			},
		}

		docs, err := docslog.NewLoggingDocumentService(inner, newLogger(&buf)).FindDocuments(context.Background(), documind.DocumentFilter{UserID: 3})

		require.NoError(t, err)
		assert.Len(t, docs, 2)
		assert.Contains(t, buf.String(), "count=2")
		assert.Contains(t, buf.String(), "user_id=3")
	})
}
