// Package htmlsanitize strips markup from user-entered announcement text.
// Announcements are rendered as plain text on every client, so nothing more
// permissive than bluemonday's strict policy is needed.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Clean removes all HTML elements from s and trims surrounding whitespace.
// Text content of removed elements is kept.
//
// The sanitizer emits entity-escaped output because it is built for HTML
// contexts. The result here is stored and served as plain text over JSON,
// so the escaping is undone: "a & b" must survive Clean unchanged.
func Clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
