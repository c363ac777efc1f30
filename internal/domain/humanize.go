package domain

import (
	"strings"

	"github.com/gobuffalo/flect"
)

// Humanize turns a handle such as "blog_post" or "main-nav" into a
// display string ("Blog post", "Main nav"). Known acronyms are upper-cased
// ("author_id" becomes "Author ID").
func Humanize(handle string) string {
	if strings.TrimSpace(handle) == "" {
		return ""
	}
	return flect.Humanize(handle)
}
