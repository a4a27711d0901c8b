package services

import (
	"strings"

	"speaker-bot/config"
	"speaker-bot/models"
)

// Pattern hits weigh double: a regex match is a much stronger signal than a
// keyword appearing somewhere in the message.
const patternWeight = 2

// DetectService is the precision-first matcher. It scores every service by
// distinct keyword hits (weight 1) and distinct pattern hits (weight 2) and
// returns the highest-confidence candidate. Ties go to the service declared
// first in the catalog. An empty result means nothing matched.
func (b *Chatbot) DetectService(message, language string) models.DetectionResult {
	msg := strings.ToLower(strings.TrimSpace(message))
	if msg == "" {
		return models.DetectionResult{}
	}

	best := models.DetectionResult{}
	for i := range b.services {
		rules := b.rulesFor(i, language)

		var keywords []string
		for _, kw := range rules.keywords {
			if strings.Contains(msg, kw) {
				keywords = append(keywords, kw)
			}
		}

		var patterns []string
		for j, re := range rules.patterns {
			if re.MatchString(msg) {
				patterns = append(patterns, rules.sources[j])
			}
		}

		confidence := len(keywords) + patternWeight*len(patterns)
		if confidence == 0 {
			continue
		}

		// Strictly greater keeps the earliest-declared service on ties.
		if confidence > best.Confidence {
			best = models.DetectionResult{
				Service:         b.services[i].name,
				Confidence:      confidence,
				MatchedKeywords: keywords,
				MatchedPatterns: patterns,
			}
		}
	}

	return best
}

// MatchServiceLoose is the recall-first matcher used by the general-response
// path once the precision matcher has come up empty. Pass one scans services
// in longest-keyword order and tests each keyword as a whole word; pass two
// loosens to plain substring containment in the same order.
func (b *Chatbot) MatchServiceLoose(message, language string) (string, bool) {
	msg := strings.ToLower(strings.TrimSpace(message))
	if msg == "" {
		return "", false
	}

	order, ok := b.looseOrder[language]
	if !ok {
		order = b.looseOrder[config.LangEnglish]
	}

	for _, idx := range order {
		rules := b.rulesFor(idx, language)
		for _, re := range rules.wordPatterns {
			if re.MatchString(msg) {
				return b.services[idx].name, true
			}
		}
	}

	for _, idx := range order {
		rules := b.rulesFor(idx, language)
		for _, kw := range rules.wordKeywords {
			if strings.Contains(msg, kw) {
				return b.services[idx].name, true
			}
		}
	}

	return "", false
}
