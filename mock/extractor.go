package mock

import (
	"context"

	"github.com/fwojciec/documind"
)

var _ documind.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of documind.Extractor.
type Extractor struct {
	ExtractFn func(tree *documind.Tree) (*documind.Article, error)
}

func (e *Extractor) Extract(tree *documind.Tree) (*documind.Article, error) {
	return e.ExtractFn(tree)
}

var _ documind.DOMBuilder = (*DOMBuilder)(nil)

// DOMBuilder is a mock implementation of documind.DOMBuilder.
type DOMBuilder struct {
	ParseFn func(rawHTML string, baseURL string) (*documind.Tree, error)
}

func (b *DOMBuilder) Parse(rawHTML string, baseURL string) (*documind.Tree, error) {
	return b.ParseFn(rawHTML, baseURL)
}

var _ documind.URLProcessor = (*URLProcessor)(nil)

// URLProcessor is a mock implementation of documind.URLProcessor.
type URLProcessor struct {
	ProcessURLFn func(ctx context.Context, req documind.ExtractionRequest) (*documind.ProcessedDocument, error)
}

func (p *URLProcessor) ProcessURL(ctx context.Context, req documind.ExtractionRequest) (*documind.ProcessedDocument, error) {
	return p.ProcessURLFn(ctx, req)
}
