package service

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// maxSanitizePasses bounds the unescape/sanitize loop. Each pass removes
// one level of entity encoding, so markup hidden behind double escaping
// is still caught.
const maxSanitizePasses = 4

// sanitizer strips raw HTML from user text while keeping plain characters
// such as '&' and '>' that markdown relies on.
type sanitizer struct {
	title   *bluemonday.Policy
	content *bluemonday.Policy
}

func newSanitizer() *sanitizer {
	return &sanitizer{
		title:   bluemonday.StrictPolicy(),
		content: bluemonday.UGCPolicy(),
	}
}

func (s *sanitizer) Title(title string) string {
	return strings.TrimSpace(clean(s.title, title))
}

func (s *sanitizer) Content(content string) string {
	return clean(s.content, content)
}

func clean(p *bluemonday.Policy, text string) string {
	for range maxSanitizePasses {
		next := html.UnescapeString(p.Sanitize(text))
		if next == text {
			break
		}
		text = next
	}
	return text
}
