package services

import (
	"strings"

	"speaker-bot/config"
)

// IsPricingInquiry reports whether the message contains any pricing keyword
// for the language (English list as fallback). Simple existential test, no
// scoring.
func IsPricingInquiry(message, language string) bool {
	return containsAnyKeyword(message, keywordsFor(config.PricingKeywords(), language))
}

// IsAskingForContact reports whether the message asks for contact details.
func IsAskingForContact(message, language string) bool {
	return containsAnyKeyword(message, keywordsFor(config.ContactKeywords(), language))
}

// DetectSubIntent reads the finer-grained inquiry type (pricing, duration,
// process, benefits) used by the suggestion engine. Sub-intents are checked
// in table order; the first hit wins. Empty result means no sub-intent.
func DetectSubIntent(message, language string) config.SubIntent {
	for _, entry := range config.SubIntentKeywords() {
		if containsAnyKeyword(message, keywordsFor(entry.Keywords, language)) {
			return entry.Intent
		}
	}
	return ""
}

func keywordsFor(table map[string][]string, language string) []string {
	if kws, ok := table[language]; ok {
		return kws
	}
	return table[config.LangEnglish]
}

func containsAnyKeyword(message string, keywords []string) bool {
	msg := strings.ToLower(message)
	for _, kw := range keywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}
