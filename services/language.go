package services

import (
	"strings"

	"speaker-bot/config"
)

// DetectLanguage inspects a message for language marker keywords and returns
// the first language whose markers appear, scanning the marker table in
// order. Empty messages and messages with no markers return the fallback.
func DetectLanguage(message, fallback string) string {
	msg := strings.ToLower(strings.TrimSpace(message))
	if msg == "" {
		return fallback
	}

	for _, marker := range config.LanguageMarkers() {
		for _, kw := range marker.Keywords {
			if strings.Contains(msg, kw) {
				return marker.Code
			}
		}
	}

	return fallback
}
