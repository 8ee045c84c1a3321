// Package htmlsanitize strips markup from user-supplied text before it is
// stored. Descriptions, quality guidelines, and donation instructions are
// plain text; anything that looks like HTML is removed, not escaped.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Plain strips all HTML tags and trims surrounding whitespace.
func Plain(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}
