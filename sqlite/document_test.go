package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/documind"
	"github.com/fwojciec/documind/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T, db *sqlite.DB, email string) *documind.User {
	t.Helper()
	u := &documind.User{Email: email, Name: email, Provider: documind.ProviderGoogle, ProviderID: email}
	require.NoError(t, sqlite.NewUserService(db).UpsertUser(context.Background(), u))
	return u
}

func newTestDocument(userID int64, title string) *documind.Document {
	return &documind.Document{
		UserID:      userID,
		Title:       title,
		Content:     "<p>hello   world</p>\n<p>again</p>",
		OriginalURL: "https://example.com/" + title,
	}
}

func TestDocumentService_CreateDocument(t *testing.T) {
	t.Parallel()

	t.Run("creates document with generated ID, timestamps and word count", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		user := createTestUser(t, db, "a@example.com")
		svc := sqlite.NewDocumentService(db)

		doc := newTestDocument(user.ID, "first")
		doc.WordCount = 999

		require.NoError(t, svc.CreateDocument(context.Background(), doc))

		assert.Positive(t, doc.ID)
		assert.Equal(t, 3, doc.WordCount)
		assert.Len(t, doc.ContentHash, 16)
		assert.False(t, doc.CreatedAt.IsZero())
		assert.Equal(t, doc.CreatedAt, doc.UpdatedAt)
	})

	t.Run("returns error for invalid document", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(setupTestDB(t))

		err := svc.CreateDocument(context.Background(), &documind.Document{UserID: 1})

		require.Error(t, err)
		assert.Equal(t, documind.EINVALID, documind.ErrorCode(err))
	})

	t.Run("allows duplicate saves of the same URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		user := createTestUser(t, db, "a@example.com")
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateDocument(ctx, newTestDocument(user.ID, "same")))
		require.NoError(t, svc.CreateDocument(ctx, newTestDocument(user.ID, "same")))

		docs, err := svc.FindDocuments(ctx, documind.DocumentFilter{UserID: user.ID})
		require.NoError(t, err)
		assert.Len(t, docs, 2)
	})

	t.Run("rejects owner without a user row as unauthorized", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(setupTestDB(t))

		err := svc.CreateDocument(context.Background(), newTestDocument(4242, "orphan"))

		require.Error(t, err)
		assert.Equal(t, documind.EUNAUTHORIZED, documind.ErrorCode(err))
		assert.Equal(t, "User not found", documind.ErrorMessage(err))
	})
}

func TestDocumentService_FindDocumentByID(t *testing.T) {
	t.Parallel()

	t.Run("returns owned document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		user := createTestUser(t, db, "a@example.com")
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()
		doc := newTestDocument(user.ID, "mine")
		require.NoError(t, svc.CreateDocument(ctx, doc))

		found, err := svc.FindDocumentByID(ctx, user.ID, doc.ID)

		require.NoError(t, err)
		assert.Equal(t, "mine", found.Title)
		assert.Equal(t, doc.Content, found.Content)
		assert.Equal(t, doc.ContentHash, found.ContentHash)
		assert.True(t, doc.CreatedAt.Equal(found.CreatedAt))
	})

	t.Run("reports another user's document as not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		owner := createTestUser(t, db, "owner@example.com")
		other := createTestUser(t, db, "other@example.com")
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()
		doc := newTestDocument(owner.ID, "private")
		require.NoError(t, svc.CreateDocument(ctx, doc))

		_, err := svc.FindDocumentByID(ctx, other.ID, doc.ID)

		require.Error(t, err)
		assert.Equal(t, documind.ENOTFOUND, documind.ErrorCode(err))
	})
}

func TestDocumentService_FindDocuments(t *testing.T) {
	t.Parallel()

	t.Run("returns only the user's documents newest first", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		user := createTestUser(t, db, "a@example.com")
		other := createTestUser(t, db, "b@example.com")
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			require.NoError(t, svc.CreateDocument(ctx, newTestDocument(user.ID, fmt.Sprintf("doc-%d", i))))
		}
		require.NoError(t, svc.CreateDocument(ctx, newTestDocument(other.ID, "foreign")))

		docs, err := svc.FindDocuments(ctx, documind.DocumentFilter{UserID: user.ID})

		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, "doc-2", docs[0].Title)
		assert.Equal(t, "doc-0", docs[2].Title)
	})

	t.Run("returns empty slice when user has no documents", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		user := createTestUser(t, db, "a@example.com")

		docs, err := sqlite.NewDocumentService(db).FindDocuments(context.Background(), documind.DocumentFilter{UserID: user.ID})

		require.NoError(t, err)
		assert.NotNil(t, docs)
		assert.Empty(t, docs)
	})

	t.Run("applies URL filter and pagination", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		user := createTestUser(t, db, "a@example.com")
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()
		for i := 0; i < 4; i++ {
			require.NoError(t, svc.CreateDocument(ctx, newTestDocument(user.ID, fmt.Sprintf("p-%d", i))))
		}

		url := "https://example.com/p-1"
		byURL, err := svc.FindDocuments(ctx, documind.DocumentFilter{UserID: user.ID, OriginalURL: &url})
		require.NoError(t, err)
		require.Len(t, byURL, 1)
		assert.Equal(t, "p-1", byURL[0].Title)

		page, err := svc.FindDocuments(ctx, documind.DocumentFilter{UserID: user.ID, Limit: 2, Offset: 1})
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, "p-2", page[0].Title)

		tail, err := svc.FindDocuments(ctx, documind.DocumentFilter{UserID: user.ID, Offset: 3})
		require.NoError(t, err)
		require.Len(t, tail, 1)
		assert.Equal(t, "p-0", tail[0].Title)
	})
}

func TestDocumentService_DeleteDocument(t *testing.T) {
	t.Parallel()

	t.Run("deletes once then reports not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		user := createTestUser(t, db, "a@example.com")
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()
		doc := newTestDocument(user.ID, "gone")
		require.NoError(t, svc.CreateDocument(ctx, doc))

		require.NoError(t, svc.DeleteDocument(ctx, user.ID, doc.ID))

		err := svc.DeleteDocument(ctx, user.ID, doc.ID)
		require.Error(t, err)
		assert.Equal(t, documind.ENOTFOUND, documind.ErrorCode(err))
	})

	t.Run("does not delete another user's document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		owner := createTestUser(t, db, "owner@example.com")
		other := createTestUser(t, db, "other@example.com")
		svc := sqlite.NewDocumentService(db)
		ctx := context.Background()
		doc := newTestDocument(owner.ID, "keep")
		require.NoError(t, svc.CreateDocument(ctx, doc))

		err := svc.DeleteDocument(ctx, other.ID, doc.ID)
		require.Error(t, err)
		assert.Equal(t, documind.ENOTFOUND, documind.ErrorCode(err))

		_, err = svc.FindDocumentByID(ctx, owner.ID, doc.ID)
		require.NoError(t, err)
	})
}
