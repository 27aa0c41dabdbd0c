package utils

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases a product name, collapses every non-alphanumeric run
// into a single underscore and trims the ends. SKUs are built from this as
// "<slug>_<id>".
func Slugify(name string) string {
	slug := nonAlphanumeric.ReplaceAllString(strings.ToLower(name), "_")
	return strings.Trim(slug, "_")
}
