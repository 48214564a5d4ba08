package urldetect

import (
	"regexp"
	"strings"
)

// Matches an http(s) URL anywhere inside free text: scheme, one or more
// dot-separated labels, a TLD of at least two letters, optional path,
// query or fragment. Surrounding prose is ignored.
var urlRe = regexp.MustCompile(`(?i)\bhttps?://(?:[a-z0-9-]+\.)+[a-z]{2,}(?:[/?#][^\s]*)?`)

// ContainsURL reports whether the trimmed input contains an http(s) URL.
func ContainsURL(s string) bool {
	return urlRe.MatchString(strings.TrimSpace(s))
}

// ExtractURL returns the first http(s) URL found in the input.
func ExtractURL(s string) (string, bool) {
	match := urlRe.FindString(strings.TrimSpace(s))
	if match == "" {
		return "", false
	}

	return match, true
}
