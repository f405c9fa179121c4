package documind

import (
	"context"
	"time"
)

// Document represents an extracted article saved by a user.
type Document struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	OriginalURL string    `json:"original_url"`
	WordCount   int       `json:"word_count"`
	ContentHash string    `json:"content_hash"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.UserID <= 0 {
		return Errorf(EINVALID, "document user ID required")
	}
	if d.Title == "" {
		return Errorf(EINVALID, "Title is required")
	}
	if d.Content == "" {
		return Errorf(EINVALID, "Content is required")
	}
	if d.OriginalURL == "" {
		return Errorf(EINVALID, "original_url is required")
	}
	return ValidateURL(d.OriginalURL)
}

// DocumentService represents a service for managing documents.
// Every lookup is scoped to the owning user: a document owned by someone
// else is reported exactly like a missing one.
type DocumentService interface {
	// CreateDocument creates a new document. The word count is computed
	// from the content; any value set by the caller is ignored.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID owned by userID.
	// Returns ENOTFOUND if document does not exist or is not owned by userID.
	FindDocumentByID(ctx context.Context, userID, id int64) (*Document, error)

	// FindDocuments retrieves documents matching the filter, newest first.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocument permanently removes a document owned by userID.
	// Returns ENOTFOUND if document does not exist or is not owned by userID.
	DeleteDocument(ctx context.Context, userID, id int64) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	UserID      int64   `json:"userId"`
	OriginalURL *string `json:"originalUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
