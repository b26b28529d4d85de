package domain

import (
	"regexp"
	"strings"
)

// maxFilenameLen caps generated filenames so they stay well under
// common filesystem limits even with an extension appended.
const maxFilenameLen = 200

var (
	unsafeFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	whitespaceRun       = regexp.MustCompile(`\s+`)
	unsafeIDChars       = regexp.MustCompile(`[^A-Za-z0-9_-]`)
)

// SanitizeTitle makes arbitrary text (typically a media title) safe for
// use as a filename. Unsafe characters become underscores, whitespace
// runs collapse to a single space, leading/trailing dots and whitespace
// are trimmed, and the result is capped at 200 runes. Idempotent.
func SanitizeTitle(title string) string {
	s := unsafeFilenameChars.ReplaceAllString(title, "_")
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = strings.Trim(s, ". ")

	runes := []rune(s)
	if len(runes) > maxFilenameLen {
		s = strings.Trim(string(runes[:maxFilenameLen]), ". ")
	}
	return s
}

// SanitizeID restricts a media identifier to [A-Za-z0-9_-] for use in
// the time-range filename scheme.
func SanitizeID(id string) string {
	return unsafeIDChars.ReplaceAllString(id, "_")
}
