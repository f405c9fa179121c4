package documind

// Article holds the main content isolated from a page, together with
// the metadata the extraction algorithm was able to recover.
type Article struct {
	// Title is the page title from metadata or headings.
	Title string

	// Content is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed and
	// relative links are resolved against the page URL.
	Content string

	// TextContent is the plain text of Content.
	TextContent string

	Byline   string
	Excerpt  string
	SiteName string
	Language string
}

// Extractor isolates the primary article of a parsed page.
type Extractor interface {
	// Extract scores the tree and returns the article. It returns an
	// *ExtractError when the page has no article-like content or when the
	// article it found has no content.
	Extract(tree *Tree) (*Article, error)
}

// ExtractFailureKind distinguishes the ways extraction can fail.
type ExtractFailureKind int

// Extraction failure kinds.
const (
	// ArticleNotFound means the algorithm found nothing article-like.
	ArticleNotFound ExtractFailureKind = iota + 1

	// ContentEmpty means an article was identified but it has no content.
	ContentEmpty
)

// ExtractError reports an extraction failure. Both kinds map to EEXTRACT but
// keep distinct messages.
type ExtractError struct {
	Kind ExtractFailureKind
}

// Message returns the client-facing message for the failure kind.
func (e *ExtractError) Message() string {
	switch e.Kind {
	case ContentEmpty:
		return "Failed to extract content (article.content was null)"
	default:
		return "Failed to parse article (article was null)"
	}
}

// Error implements the error interface.
func (e *ExtractError) Error() string {
	return e.Message()
}

// Is reports whether target is an ExtractError of the same kind, so callers
// can match with errors.Is(err, &ExtractError{Kind: ContentEmpty}).
func (e *ExtractError) Is(target error) bool {
	t, ok := target.(*ExtractError)
	return ok && t.Kind == e.Kind
}
