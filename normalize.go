package documind

import (
	"regexp"
	"strings"
)

var (
	// A newline followed by any whitespace, including vertical tab, Unicode
	// space separators and the byte order mark.
	lineBreakRe = regexp.MustCompile(`\n[\s\v\p{Z}\x{FEFF}]*`)
	tagRe       = regexp.MustCompile(`<[^>]*>`)
)

// Normalize removes every newline together with the whitespace that follows
// it. It works on raw text, so newlines inside attribute values and <pre>
// blocks are removed too.
func Normalize(html string) string {
	return lineBreakRe.ReplaceAllString(html, "")
}

// WordCount approximates the number of words in an HTML fragment. Tags are
// deleted with a plain pattern substitution, not an HTML parser, and the
// remaining text is split on runs of whitespace. Words separated only by
// markup, as in "<p>one</p><p>two</p>", run together and count once.
func WordCount(html string) int {
	text := tagRe.ReplaceAllString(html, "")
	return len(strings.Fields(text))
}
