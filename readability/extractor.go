// Package readability implements documind.Extractor with go-readability,
// a Go port of Mozilla's Readability algorithm.
package readability

import (
	"strings"

	"github.com/fwojciec/documind"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements documind.Extractor at compile time.
var _ documind.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from a parsed page.
type Extractor struct {
	// CharThreshold is the number of characters an article must have for
	// the first pass to be accepted. Zero keeps the library default.
	CharThreshold int
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract scores the tree and returns the main article. The parser clones
// the tree before pruning it.
//
// A parser error, or a result without text, is reported as ArticleNotFound
// whatever its title. A result with text but no rendered content is reported
// as ContentEmpty.
func (e *Extractor) Extract(tree *documind.Tree) (*documind.Article, error) {
	if tree == nil || tree.Root == nil {
		return nil, documind.Errorf(documind.EINVALID, "empty document")
	}

	parser := readability.NewParser()
	if e.CharThreshold > 0 {
		parser.CharThresholds = e.CharThreshold
	}

	article, err := parser.ParseDocument(tree.Root, tree.BaseURL)
	if err != nil {
		return nil, &documind.ExtractError{Kind: documind.ArticleNotFound}
	}

	if strings.TrimSpace(article.TextContent) == "" {
		return nil, &documind.ExtractError{Kind: documind.ArticleNotFound}
	}
	if strings.TrimSpace(article.Content) == "" {
		return nil, &documind.ExtractError{Kind: documind.ContentEmpty}
	}

	return &documind.Article{
		Title:       article.Title,
		Content:     article.Content,
		TextContent: article.TextContent,
		Byline:      article.Byline,
		Excerpt:     article.Excerpt,
		SiteName:    article.SiteName,
		Language:    article.Language,
	}, nil
}
