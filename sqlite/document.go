package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/documind"
	"github.com/ncruces/go-sqlite3"
)

// Compile-time interface verification.
var _ documind.DocumentService = (*DocumentService)(nil)

// DocumentService implements documind.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

const documentColumns = "id, user_id, title, content, original_url, word_count, content_hash, created_at, updated_at"

// CreateDocument creates a new document. The word count and content hash are
// derived from the content. An owner with no users row is EUNAUTHORIZED.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *documind.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	doc.WordCount = documind.WordCount(doc.Content)
	doc.ContentHash = hashContent(doc.Content)

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (user_id, title, content, original_url, word_count, content_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.UserID, doc.Title, doc.Content, doc.OriginalURL, doc.WordCount, doc.ContentHash,
		formatTime(doc.CreatedAt), formatTime(doc.UpdatedAt))
	if errors.Is(err, sqlite3.CONSTRAINT_FOREIGNKEY) {
		// The token names a user that no longer exists.
		return documind.Errorf(documind.EUNAUTHORIZED, "User not found")
	}
	if err != nil {
		return err
	}

	doc.ID, err = result.LastInsertId()
	return err
}

// FindDocumentByID retrieves a document by ID owned by userID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, userID, id int64) (*documind.Document, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+documentColumns+" FROM documents WHERE id = ? AND user_id = ?", id, userID)

	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, documind.Errorf(documind.ENOTFOUND, "Document not found")
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FindDocuments retrieves the user's documents matching the filter, newest
// first.
func (s *DocumentService) FindDocuments(ctx context.Context, filter documind.DocumentFilter) ([]*documind.Document, error) {
	var query strings.Builder
	args := []any{filter.UserID}

	query.WriteString("SELECT " + documentColumns + " FROM documents WHERE user_id = ?")

	if filter.OriginalURL != nil {
		query.WriteString(" AND original_url = ?")
		args = append(args, *filter.OriginalURL)
	}

	query.WriteString(" ORDER BY created_at DESC, id DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []*documind.Document{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// DeleteDocument permanently removes a document owned by userID.
func (s *DocumentService) DeleteDocument(ctx context.Context, userID, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return documind.Errorf(documind.ENOTFOUND, "Document not found")
	}

	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(s scanner) (*documind.Document, error) {
	var doc documind.Document
	var createdAt, updatedAt string

	if err := s.Scan(&doc.ID, &doc.UserID, &doc.Title, &doc.Content, &doc.OriginalURL,
		&doc.WordCount, &doc.ContentHash, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if doc.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if doc.UpdatedAt, err = parseTime(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &doc, nil
}
