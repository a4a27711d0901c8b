package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		fallback string
		want     string
	}{
		{"swahili greeting", "habari yako", "en", "sw"},
		{"swahili pricing", "nataka kujua gharama", "en", "sw"},
		{"english message", "hello, tell me about coaching", "sw", "en"},
		{"empty returns fallback", "", "sw", "sw"},
		{"whitespace returns fallback", "   ", "en", "en"},
		{"no markers returns fallback", "zzz qqq", "sw", "sw"},
		{"no markers returns english fallback", "zzz qqq", "en", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.message, tt.fallback))
		})
	}
}

func TestDetectLanguage_SwahiliMarkersWinFirst(t *testing.T) {
	// Swahili markers are scanned before English ones, so a mixed message
	// carrying a Swahili marker resolves to Swahili.
	got := DetectLanguage("hello, bei ya hotuba ni ngapi?", "en")
	assert.Equal(t, "sw", got)
}
