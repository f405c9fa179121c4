// Package extract composes the loader, DOM builder and extractor into the
// single URL-to-article operation served by the API.
package extract

import (
	"context"
	"fmt"

	"github.com/fwojciec/documind"
)

var _ documind.URLProcessor = (*Service)(nil)

// Service runs the extraction pipeline. It makes a single pass and stops at
// the first failing step.
type Service struct {
	Loader    documind.Loader
	Builder   documind.DOMBuilder
	Extractor documind.Extractor
}

// ProcessURL validates the request, loads the page, extracts the article and
// returns it with whitespace-collapsed content.
func (s *Service) ProcessURL(ctx context.Context, req documind.ExtractionRequest) (*documind.ProcessedDocument, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	page, err := s.Loader.Load(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	tree, err := s.Builder.Parse(page.HTML, req.URL)
	if err != nil {
		return nil, fmt.Errorf("build document tree: %w", err)
	}

	article, err := s.Extractor.Extract(tree)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, &documind.ExtractError{Kind: documind.ArticleNotFound}
	}
	if article.Content == "" {
		return nil, &documind.ExtractError{Kind: documind.ContentEmpty}
	}

	title := article.Title
	if title == "" {
		title = documind.DefaultTitle
	}

	return &documind.ProcessedDocument{
		Title:       title,
		Content:     documind.Normalize(article.Content),
		OriginalURL: req.URL,
		Byline:      article.Byline,
		Excerpt:     article.Excerpt,
		SiteName:    article.SiteName,
		Language:    article.Language,
	}, nil
}
