package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizer_Title(t *testing.T) {
	s := newSanitizer()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text", in: "TSLA Q3", want: "TSLA Q3"},
		{name: "keeps ampersand", in: "M&A rumours", want: "M&A rumours"},
		{name: "strips tags", in: "<b>bold</b> move", want: "bold move"},
		{name: "strips escaped markup", in: "&lt;script&gt;x&lt;/script&gt;safe", want: "safe"},
		{name: "trims", in: "  padded  ", want: "padded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Title(tt.in))
		})
	}
}

func TestSanitizer_Content(t *testing.T) {
	s := newSanitizer()

	assert.Equal(t, "# Thesis\n\n> price > 200 && volume up", s.Content("# Thesis\n\n> price > 200 && volume up"))
	assert.Equal(t, "before after", s.Content("before <script>alert(1)</script>after"))
	assert.NotContains(t, s.Content(`<a href="javascript:alert(1)">x</a>`), "javascript:")
}
