package documind_test

import (
	"testing"

	"github.com/fwojciec/documind"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"removes newline and indent", "<div>\n    <p>Hi</p>\n</div>", "<div><p>Hi</p></div>"},
		{"keeps spaces without newline", "<p>a  b</p>", "<p>a  b</p>"},
		{"removes carriage returns after newline", "<p>a</p>\n\r\n\t<p>b</p>", "<p>a</p><p>b</p>"},
		{"applies inside attribute values", "<a title=\"one\n  two\">x</a>", "<a title=\"onetwo\">x</a>"},
		{"removes unicode spaces after newline", "<p>a</p>\n\u00a0\u2003<p>b</p>\n\v<p>c</p>", "<p>a</p><p>b</p><p>c</p>"},
		{"removes byte order mark and line separator", "<p>a</p>\n\ufeff\u2028\u3000<p>b</p>", "<p>a</p><p>b</p>"},
		{"keeps unicode spaces without newline", "<p>a\u00a0b</p>", "<p>a\u00a0b</p>"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := documind.Normalize(tt.in)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, documind.Normalize(got), "normalize must be idempotent")
		})
	}
}

func TestWordCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want int
	}{
		{"simple paragraph", "<p>hello world</p>", 2},
		{"multiple spaces", "<p>  multiple   spaces  </p>", 2},
		{"adjacent tags join words", "<p>one</p><p>two</p>", 1},
		{"newline between blocks separates words", "<p>one</p>\n<p>two</p>", 2},
		{"nested markup", "<div><p>a <strong>b</strong> c</p></div>", 3},
		{"only markup", "<div><br/></div>", 0},
		{"plain text", "three plain words", 3},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, documind.WordCount(tt.in))
		})
	}
}
