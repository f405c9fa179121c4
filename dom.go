package documind

import (
	"net/url"

	"golang.org/x/net/html"
)

// Tree is a parsed, mutable HTML document together with the URL that
// relative links inside it resolve against. Extractors may prune it.
type Tree struct {
	Root    *html.Node
	BaseURL *url.URL
}

// DOMBuilder parses HTML into a navigable document tree.
type DOMBuilder interface {
	// Parse builds a Tree from raw HTML. baseURL is the page location; an
	// in-document <base href> takes precedence when present.
	Parse(rawHTML string, baseURL string) (*Tree, error)
}
