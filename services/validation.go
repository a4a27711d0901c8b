package services

import (
	"errors"
	"regexp"
	"strings"
)

// MaxRawMessageLen is the hard limit before sanitization; anything longer is
// rejected outright. MaxMessageLen is the cap applied after sanitization.
const (
	MaxRawMessageLen = 1000
	MaxMessageLen    = 500
)

// ErrMessageTooLong is returned for inputs over MaxRawMessageLen.
var ErrMessageTooLong = errors.New("message too long")

var jsSchemeRe = regexp.MustCompile(`(?i)javascript:`)

// SanitizeMessage trims and cleans a raw widget message. Angle brackets and
// javascript: schemes are stripped before any classification sees the text.
func SanitizeMessage(raw string) (string, error) {
	if len(raw) > MaxRawMessageLen {
		return "", ErrMessageTooLong
	}

	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	s = jsSchemeRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	if runes := []rune(s); len(runes) > MaxMessageLen {
		s = string(runes[:MaxMessageLen])
	}

	return s, nil
}

// Truncate shortens s to at most max runes.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
