package service

import (
	"regexp"
	"strings"
)

const slugMaxLen = 80

var (
	slugStrip      = regexp.MustCompile(`[^\w\s-]`)
	slugWhitespace = regexp.MustCompile(`\s+`)
	slugHyphens    = regexp.MustCompile(`-+`)
)

// Slugify derives a URL-safe token from a recipe title: lower-case,
// strip everything but word characters, whitespace and hyphens, collapse
// whitespace and hyphen runs to single hyphens, cap at 80 characters.
// Slugs are not unique; two recipes with the same normalized title
// collide and lookup resolves the tie by creation time.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugWhitespace.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	if len(s) > slugMaxLen {
		s = s[:slugMaxLen]
	}
	return s
}
