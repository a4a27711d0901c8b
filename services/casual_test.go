package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speaker-bot/config"
)

func newTestBot(t *testing.T) *Chatbot {
	t.Helper()
	bot, err := NewChatbot(42)
	require.NoError(t, err)
	return bot
}

func TestClassifyCasual(t *testing.T) {
	bot := newTestBot(t)

	tests := []struct {
		name     string
		message  string
		language string
		category config.CasualCategory
	}{
		{"hello", "hello", "en", config.CasualGreeting},
		{"hello with punctuation", "Hello!", "en", config.CasualGreeting},
		{"good morning", "good morning", "en", config.CasualGreeting},
		{"bye", "bye", "en", config.CasualGoodbye},
		{"see you later", "see you later", "en", config.CasualGoodbye},
		{"thanks", "thanks!", "en", config.CasualAppreciation},
		{"thank you very much", "thank you very much", "en", config.CasualAppreciation},
		{"yes", "yes", "en", config.CasualAffirmation},
		{"sounds good", "sounds good", "en", config.CasualAffirmation},
		{"confusion", "I don't understand", "en", config.CasualConfusion},
		{"swahili greeting", "habari", "sw", config.CasualGreeting},
		{"swahili appreciation", "asante sana", "sw", config.CasualAppreciation},
		{"swahili affirmation", "sawa", "sw", config.CasualAffirmation},
		{"swahili goodbye", "kwaheri", "sw", config.CasualGoodbye},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := bot.ClassifyCasual(tt.message, tt.language)
			assert.True(t, result.IsCasual)
			assert.Equal(t, tt.category, result.Category)
		})
	}
}

func TestClassifyCasual_NotCasual(t *testing.T) {
	bot := newTestBot(t)

	for _, message := range []string{
		"Tell me about leadership development",
		"What's the price for keynote speaking?",
		"I need training for my staff",
		"",
	} {
		result := bot.ClassifyCasual(message, "en")
		assert.False(t, result.IsCasual, "message %q should not be casual", message)
	}
}

func TestClassifyCasual_PriorityOnOverlap(t *testing.T) {
	bot := newTestBot(t)

	// "ciao" matches both the greeting and goodbye pattern sets; greeting is
	// higher priority so it wins the category, but both flags are set.
	result := bot.ClassifyCasual("ciao", "en")
	assert.True(t, result.IsCasual)
	assert.Equal(t, config.CasualGreeting, result.Category)
	assert.True(t, result.IsGreeting)
	assert.True(t, result.IsGoodbye)
}

func TestClassifyCasual_QuestionIsFlagOnly(t *testing.T) {
	bot := newTestBot(t)

	result := bot.ClassifyCasual("What's the price for keynote speaking?", "en")
	assert.True(t, result.IsQuestion)
	assert.False(t, result.IsCasual)
	assert.Empty(t, result.Category)

	// A bare "what?" is both a question and a confusion utterance.
	result = bot.ClassifyCasual("what?", "en")
	assert.True(t, result.IsQuestion)
	assert.True(t, result.IsCasual)
	assert.Equal(t, config.CasualConfusion, result.Category)
}

func TestClassifyCasual_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	bot := newTestBot(t)

	result := bot.ClassifyCasual("hello", "fr")
	assert.True(t, result.IsCasual)
	assert.Equal(t, config.CasualGreeting, result.Category)
}
