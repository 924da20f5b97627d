package helpers

import (
	"strconv"
	"strings"
	"time"
)

// Slug derives the URL slug for a post from its title and a timestamp:
// lower-cased title with spaces replaced by underscores, suffixed with the
// unix timestamp. The slug is computed once at creation and never regenerated.
func Slug(title string, at time.Time) string {
	s := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(title), " ", "_"))
	return s + "_" + strconv.FormatInt(at.UTC().Unix(), 10)
}
