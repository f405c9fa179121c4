// Package goquery implements documind.DOMBuilder on top of goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/documind"
)

// Ensure Builder implements documind.DOMBuilder at compile time.
var _ documind.DOMBuilder = (*Builder)(nil)

// Builder parses HTML into a documind.Tree.
type Builder struct{}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Parse builds a Tree from raw HTML. Relative links resolve against the
// document's <base href> when it has one, and against baseURL otherwise.
func (b *Builder) Parse(rawHTML string, baseURL string) (*documind.Tree, error) {
	base, err := url.Parse(baseURL)
	if err != nil || !base.IsAbs() {
		return nil, documind.Errorf(documind.EINVALID, "invalid base URL: %q", baseURL)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, documind.Errorf(documind.EINVALID, "failed to parse HTML: %v", err)
	}

	return &documind.Tree{
		Root:    doc.Nodes[0],
		BaseURL: resolveBase(doc, base),
	}, nil
}

// resolveBase applies the first <base href> in the document to the page URL.
// Unparseable hrefs are ignored.
func resolveBase(doc *goquery.Document, page *url.URL) *url.URL {
	href, ok := doc.Find("base[href]").First().Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return page
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return page
	}
	return page.ResolveReference(ref)
}
