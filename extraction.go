package documind

import (
	"context"
	"net/url"
	"strings"
)

// DefaultTitle is used when the extractor could not determine a title.
const DefaultTitle = "Title not found"

// ExtractionRequest asks for the article at URL.
type ExtractionRequest struct {
	URL string `json:"url"`
}

// Validate returns an error unless URL is a well-formed absolute URL.
func (r *ExtractionRequest) Validate() error {
	return ValidateURL(r.URL)
}

// ProcessedDocument is the result of running the extraction pipeline.
// It is not persisted by the extraction path.
type ProcessedDocument struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	OriginalURL string `json:"original_url"`

	Byline   string `json:"byline,omitempty"`
	Excerpt  string `json:"excerpt,omitempty"`
	SiteName string `json:"site_name,omitempty"`
	Language string `json:"lang,omitempty"`
}

// URLProcessor turns a page URL into a ProcessedDocument.
type URLProcessor interface {
	// ProcessURL validates the request, loads the page, extracts the
	// article and normalizes its content. It fails at the first error.
	ProcessURL(ctx context.Context, req ExtractionRequest) (*ProcessedDocument, error)
}

// hostSchemes are the schemes whose URLs are invalid without a host.
var hostSchemes = map[string]bool{
	"http": true, "https": true, "ws": true, "wss": true, "ftp": true,
}

// ValidateURL returns EINVALID unless rawURL parses as an absolute URL. Any
// scheme is accepted; web schemes additionally need a host.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return Errorf(EINVALID, "url required")
	}
	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() {
		return Errorf(EINVALID, "Invalid url")
	}
	if hostSchemes[strings.ToLower(u.Scheme)] && u.Host == "" {
		return Errorf(EINVALID, "Invalid url")
	}
	return nil
}
