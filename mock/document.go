package mock

import (
	"context"

	"github.com/fwojciec/documind"
)

var _ documind.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of documind.DocumentService.
type DocumentService struct {
	CreateDocumentFn   func(ctx context.Context, doc *documind.Document) error
	FindDocumentByIDFn func(ctx context.Context, userID, id int64) (*documind.Document, error)
	FindDocumentsFn    func(ctx context.Context, filter documind.DocumentFilter) ([]*documind.Document, error)
	DeleteDocumentFn   func(ctx context.Context, userID, id int64) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *documind.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, userID, id int64) (*documind.Document, error) {
	return s.FindDocumentByIDFn(ctx, userID, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter documind.DocumentFilter) ([]*documind.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, userID, id int64) error {
	return s.DeleteDocumentFn(ctx, userID, id)
}
