// Package trafilatura implements documind.Extractor with go-trafilatura.
// It is an alternative to the readability extractor that tends to do better
// on pages with little markup structure.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/documind"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements documind.Extractor at compile time.
var _ documind.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from a parsed page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the main content of the tree rendered back to HTML.
func (e *Extractor) Extract(tree *documind.Tree) (*documind.Article, error) {
	if tree == nil || tree.Root == nil {
		return nil, documind.Errorf(documind.EINVALID, "empty document")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
		OriginalURL:    tree.BaseURL,
	}

	result, err := trafilatura.ExtractDocument(tree.Root, opts)
	if err != nil || result == nil {
		return nil, &documind.ExtractError{Kind: documind.ArticleNotFound}
	}

	var content string
	if result.ContentNode != nil {
		content, err = renderChildren(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(result.ContentText) == "" {
		return nil, &documind.ExtractError{Kind: documind.ArticleNotFound}
	}
	if strings.TrimSpace(content) == "" {
		return nil, &documind.ExtractError{Kind: documind.ContentEmpty}
	}

	return &documind.Article{
		Title:       result.Metadata.Title,
		Content:     content,
		TextContent: result.ContentText,
		Byline:      result.Metadata.Author,
		Excerpt:     result.Metadata.Description,
		SiteName:    result.Metadata.Sitename,
		Language:    result.Metadata.Language,
	}, nil
}

// renderChildren renders the node's children wrapped in a single <div>, the
// shape readability produces.
func renderChildren(n *html.Node) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("<div>")
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	buf.WriteString("</div>")
	return buf.String(), nil
}
