package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectService(t *testing.T) {
	bot := newTestBot(t)

	tests := []struct {
		name     string
		message  string
		language string
		want     string
	}{
		{"keynote inquiry", "What's the price for keynote speaking?", "en", "Keynote Speaking"},
		{"coaching inquiry", "I'm interested in executive coaching", "en", "Executive Coaching"},
		{"leadership inquiry", "Tell me about leadership development", "en", "Leadership Development"},
		{"team building inquiry", "We want a team building retreat", "en", "Team Building"},
		{"training inquiry", "Can you run a workshop for my staff?", "en", "Corporate Training"},
		{"swahili leadership", "nataka mafunzo ya uongozi", "sw", "Leadership Development"},
		{"swahili keynote", "mnatoa hotuba kuu?", "sw", "Keynote Speaking"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := bot.DetectService(tt.message, tt.language)
			assert.True(t, result.Detected())
			assert.Equal(t, tt.want, result.Service)
			assert.Greater(t, result.Confidence, 0)
		})
	}
}

func TestDetectService_NoMatch(t *testing.T) {
	bot := newTestBot(t)

	for _, message := range []string{"", "   ", "zzz qqq", "what is the weather today"} {
		result := bot.DetectService(message, "en")
		assert.False(t, result.Detected(), "message %q should not match", message)
		assert.Empty(t, result.Service)
		assert.Zero(t, result.Confidence)
	}
}

func TestDetectService_PatternsWeighDouble(t *testing.T) {
	bot := newTestBot(t)

	// Pattern hit only, no keyword: scores 2.
	patternOnly := bot.DetectService("could you speak at our event next month?", "en")
	assert.Equal(t, "Keynote Speaking", patternOnly.Service)
	assert.Equal(t, 2, patternOnly.Confidence)
	assert.Empty(t, patternOnly.MatchedKeywords)
	assert.Len(t, patternOnly.MatchedPatterns, 1)

	// Keyword hit only: scores 1.
	keywordOnly := bot.DetectService("I need a mentor", "en")
	assert.Equal(t, "Executive Coaching", keywordOnly.Service)
	assert.Equal(t, 1, keywordOnly.Confidence)
	assert.Len(t, keywordOnly.MatchedKeywords, 1)
	assert.Empty(t, keywordOnly.MatchedPatterns)
}

func TestDetectService_ConfidenceCombinesHits(t *testing.T) {
	bot := newTestBot(t)

	// "keynote" and "speaking" keywords plus the "keynote speaking" pattern.
	result := bot.DetectService("What's the price for keynote speaking?", "en")
	assert.Equal(t, 4, result.Confidence)
	assert.Contains(t, result.MatchedKeywords, "keynote")
	assert.Contains(t, result.MatchedKeywords, "speaking")
	assert.Len(t, result.MatchedPatterns, 1)
}

func TestDetectService_TieKeepsCatalogOrder(t *testing.T) {
	bot := newTestBot(t)

	// One keyword hit each for Keynote Speaking ("speech") and Team Building
	// ("teamwork"); the earlier catalog entry wins.
	result := bot.DetectService("a speech on teamwork", "en")
	assert.Equal(t, "Keynote Speaking", result.Service)
	assert.Equal(t, 1, result.Confidence)
}

func TestDetectService_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	bot := newTestBot(t)

	result := bot.DetectService("keynote speech for our conference", "fr")
	assert.Equal(t, "Keynote Speaking", result.Service)
}

func TestMatchServiceLoose(t *testing.T) {
	bot := newTestBot(t)

	tests := []struct {
		name      string
		message   string
		language  string
		want      string
		wantFound bool
	}{
		{"whole word hit", "we're planning a retreat", "en", "Team Building", true},
		{"substring pass", "do you work with coaches?", "en", "Executive Coaching", true},
		{"swahili hit", "semina kwa wafanyakazi", "sw", "Corporate Training", true},
		{"no match", "what is the weather today", "en", "", false},
		{"empty message", "", "en", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := bot.MatchServiceLoose(tt.message, tt.language)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchServiceLoose_PrefersLongestKeywordService(t *testing.T) {
	bot := newTestBot(t)

	// Both Corporate Training ("training") and Team Building ("teamwork")
	// have whole-word hits; the scan order puts the service with the longer
	// top keyword first.
	got, found := bot.MatchServiceLoose("training and teamwork", "en")
	assert.True(t, found)
	assert.Equal(t, "Corporate Training", got)
}
