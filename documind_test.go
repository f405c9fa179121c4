package documind_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/documind"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := documind.Errorf(documind.ENOTFOUND, "document %d not found", 7)

	assert.Equal(t, documind.ENOTFOUND, documind.ErrorCode(err))
	assert.Equal(t, "document 7 not found", documind.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, documind.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, documind.ErrorMessage(nil))
}

func TestErrorCode_Unwraps(t *testing.T) {
	t.Parallel()

	t.Run("wrapped application error", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("saving: %w", documind.Errorf(documind.EINVALID, "Title is required"))

		assert.Equal(t, documind.EINVALID, documind.ErrorCode(err))
		assert.Equal(t, "Title is required", documind.ErrorMessage(err))
	})

	t.Run("fetch error", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("load: %w", documind.NewFetchError(503, "503 Service Unavailable"))

		assert.Equal(t, documind.EFETCH, documind.ErrorCode(err))
		assert.Equal(t, "Failed to fetch URL: Service Unavailable", documind.ErrorMessage(err))
	})

	t.Run("extract error", func(t *testing.T) {
		t.Parallel()

		err := &documind.ExtractError{Kind: documind.ContentEmpty}

		assert.Equal(t, documind.EEXTRACT, documind.ErrorCode(err))
		assert.Equal(t, "Failed to extract content (article.content was null)", documind.ErrorMessage(err))
	})

	t.Run("non-application error is internal", func(t *testing.T) {
		t.Parallel()

		err := errors.New("disk full")

		assert.Equal(t, documind.EINTERNAL, documind.ErrorCode(err))
		assert.Equal(t, "Internal error", documind.ErrorMessage(err))
	})
}

func TestNewFetchError(t *testing.T) {
	t.Parallel()

	err := documind.NewFetchError(404, "404 Not Found")

	assert.Equal(t, 404, err.StatusCode)
	assert.Equal(t, "Not Found", err.Status)
	assert.Contains(t, err.Error(), "404")
}

func TestExtractError_Is(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("extract: %w", &documind.ExtractError{Kind: documind.ArticleNotFound})

	assert.ErrorIs(t, err, &documind.ExtractError{Kind: documind.ArticleNotFound})
	assert.NotErrorIs(t, err, &documind.ExtractError{Kind: documind.ContentEmpty})
	assert.Contains(t, err.Error(), "Failed to parse article (article was null)")
}
