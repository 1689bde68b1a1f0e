// Package htmlsanitize wraps the bluemonday policies used when accepting
// post content from clients.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// ugc allows the formatting tags that survive markdown rendering
	// (links, emphasis, images, code blocks) while stripping scripts and
	// event handlers.
	ugc = bluemonday.UGCPolicy()

	// strict strips all markup; used for titles, descriptions, and author
	// display names.
	strict = bluemonday.StrictPolicy()
)

// Content sanitizes post body markdown/HTML with the UGC policy.
func Content(s string) string {
	return ugc.Sanitize(s)
}

// Plain strips all markup and trims the result. Used for single-line
// fields that must never carry HTML.
func Plain(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
