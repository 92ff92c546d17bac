package models

import (
	"regexp"
	"strings"
)

var nonSlugRuns = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a project title: lowercase, runs of
// non-alphanumeric characters collapsed to a single hyphen, leading and
// trailing hyphens trimmed.
func Slugify(title string) string {
	slug := nonSlugRuns.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
