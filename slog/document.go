package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/documind"
)

// Ensure LoggingDocumentService implements documind.DocumentService.
var _ documind.DocumentService = (*LoggingDocumentService)(nil)

// LoggingDocumentService wraps a DocumentService with logging. Failures
// other than not-found and validation errors are logged at error level.
type LoggingDocumentService struct {
	next   documind.DocumentService
	logger *slog.Logger
}

// NewLoggingDocumentService creates a new LoggingDocumentService.
func NewLoggingDocumentService(next documind.DocumentService, logger *slog.Logger) *LoggingDocumentService {
	return &LoggingDocumentService{next: next, logger: logger}
}

func (s *LoggingDocumentService) log(ctx context.Context, msg string, begin time.Time, err error, attrs ...any) {
	level := slog.LevelDebug
	switch documind.ErrorCode(err) {
	case "":
	case documind.ENOTFOUND, documind.EINVALID, documind.EUNAUTHORIZED:
		level = slog.LevelInfo
	default:
		level = slog.LevelError
	}
	attrs = append(attrs, "duration", time.Since(begin), "err", err)
	s.logger.Log(ctx, level, msg, attrs...)
}

// CreateDocument delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) CreateDocument(ctx context.Context, doc *documind.Document) (err error) {
	defer func(begin time.Time) {
		s.log(ctx, "create document", begin, err,
			"user_id", doc.UserID, "id", doc.ID, "word_count", doc.WordCount)
	}(time.Now())
	return s.next.CreateDocument(ctx, doc)
}

// FindDocumentByID delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) FindDocumentByID(ctx context.Context, userID, id int64) (doc *documind.Document, err error) {
	defer func(begin time.Time) {
		s.log(ctx, "find document", begin, err, "user_id", userID, "id", id)
	}(time.Now())
	return s.next.FindDocumentByID(ctx, userID, id)
}

// FindDocuments delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) FindDocuments(ctx context.Context, filter documind.DocumentFilter) (docs []*documind.Document, err error) {
	defer func(begin time.Time) {
		s.log(ctx, "find documents", begin, err, "user_id", filter.UserID, "count", len(docs))
	}(time.Now())
	return s.next.FindDocuments(ctx, filter)
}

// DeleteDocument delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) DeleteDocument(ctx context.Context, userID, id int64) (err error) {
	defer func(begin time.Time) {
		s.log(ctx, "delete document", begin, err, "user_id", userID, "id", id)
	}(time.Now())
	return s.next.DeleteDocument(ctx, userID, id)
}
