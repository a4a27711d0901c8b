package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"speaker-bot/config"
	"speaker-bot/models"
)

// analyze runs the classifiers the way ProcessTurn does, so response tests
// exercise the real analysis for each message.
func analyze(b *Chatbot, message, language string) TurnAnalysis {
	return TurnAnalysis{
		Language:       language,
		Casual:         b.ClassifyCasual(message, language),
		Detection:      b.DetectService(message, language),
		PricingInquiry: IsPricingInquiry(message, language),
		ContactInquiry: IsAskingForContact(message, language),
	}
}

func TestGenerateResponse_Greeting(t *testing.T) {
	bot := newTestBot(t)
	ctx := models.NewConversationContext()

	text, responseType := bot.GenerateResponse("hello", analyze(bot, "hello", "en"), ctx)

	assert.Equal(t, config.Responses("en").Greeting, text)
	assert.Equal(t, models.ResponseCasual, responseType)
}

func TestGenerateResponse_GreetingMentionsPastTopics(t *testing.T) {
	bot := newTestBot(t)
	ctx := models.NewConversationContext()
	ctx.ServiceHistory = []string{"Executive Coaching"}

	text, _ := bot.GenerateResponse("hello", analyze(bot, "hello", "en"), ctx)

	assert.Contains(t, text, config.Responses("en").Greeting)
	assert.Contains(t, text, "Executive Coaching")
}

func TestGenerateResponse_PricingForDetectedService(t *testing.T) {
	bot := newTestBot(t)
	message := "What's the price for keynote speaking?"
	analysis := analyze(bot, message, "en")
	ctx := UpdateContext(nil, analysis.Detection.Service, message)

	text, responseType := bot.GenerateResponse(message, analysis, ctx)

	assert.Equal(t, models.ResponsePricing, responseType)
	assert.Contains(t, text, "Here's the pricing for Keynote Speaking:")
	assert.Contains(t, text, "Standard Keynote - USD 1500")
	assert.Contains(t, text, "Keynote + Workshop - USD 2500")
	assert.Contains(t, text, config.Responses("en").PricingClosing)
}

func TestGenerateResponse_PricingFallsBackToCurrentTopic(t *testing.T) {
	bot := newTestBot(t)

	// No service named in this turn; the one under discussion is billed.
	ctx := UpdateContext(nil, "Executive Coaching", "coaching")
	message := "how much does it cost?"
	analysis := analyze(bot, message, "en")
	ctx = UpdateContext(ctx, analysis.Detection.Service, message)

	text, responseType := bot.GenerateResponse(message, analysis, ctx)

	assert.Equal(t, models.ResponsePricing, responseType)
	assert.Contains(t, text, "Executive Coaching")
	assert.Contains(t, text, "Monthly Coaching - USD 400")
}

func TestGenerateResponse_ServiceDescription(t *testing.T) {
	bot := newTestBot(t)
	message := "Tell me about leadership development"
	analysis := analyze(bot, message, "en")
	ctx := UpdateContext(nil, analysis.Detection.Service, message)

	text, responseType := bot.GenerateResponse(message, analysis, ctx)

	assert.Equal(t, models.ResponseService, responseType)
	assert.Contains(t, text, "structured multi-week program")
	assert.Contains(t, text, config.Responses("en").ServiceMoreInfo)
}

func TestGenerateResponse_ContactCard(t *testing.T) {
	bot := newTestBot(t)
	message := "How can I contact you?"
	analysis := analyze(bot, message, "en")
	ctx := UpdateContext(nil, "", message)

	text, responseType := bot.GenerateResponse(message, analysis, ctx)

	assert.Equal(t, models.ResponseContact, responseType)
	assert.Contains(t, text, "bookings@barakaspeaks.co.tz")
	assert.Contains(t, text, "+255 713 555 021")
	// Fresh visitor, nothing to personalize with.
	assert.NotContains(t, text, "Since you've been asking about")
}

func TestGenerateResponse_ContactCardPersonalized(t *testing.T) {
	bot := newTestBot(t)
	message := "what's your email?"
	analysis := analyze(bot, message, "en")
	ctx := UpdateContext(nil, "Team Building", "team building")
	ctx = UpdateContext(ctx, analysis.Detection.Service, message)

	text, responseType := bot.GenerateResponse(message, analysis, ctx)

	assert.Equal(t, models.ResponseContact, responseType)
	assert.Contains(t, text, "Since you've been asking about Team Building")
}

func TestGenerateResponse_FAQ(t *testing.T) {
	bot := newTestBot(t)
	message := "Do you travel outside the country?"
	analysis := analyze(bot, message, "en")
	ctx := UpdateContext(nil, analysis.Detection.Service, message)

	text, responseType := bot.GenerateResponse(message, analysis, ctx)

	assert.Equal(t, models.ResponseFAQ, responseType)
	assert.Contains(t, text, "International engagements")
}

func TestGenerateResponse_FAQSwahili(t *testing.T) {
	bot := newTestBot(t)
	message := "Je, unasafiri nje ya nchi?"
	analysis := analyze(bot, message, "sw")
	ctx := UpdateContext(nil, analysis.Detection.Service, message)

	text, responseType := bot.GenerateResponse(message, analysis, ctx)

	assert.Equal(t, models.ResponseFAQ, responseType)
	assert.Contains(t, text, "Matukio ya kimataifa")
}

func TestGenerateResponse_Fallback(t *testing.T) {
	bot := newTestBot(t)

	for _, message := range []string{"", "zzz qqq"} {
		analysis := analyze(bot, message, "en")
		ctx := UpdateContext(nil, analysis.Detection.Service, message)

		text, responseType := bot.GenerateResponse(message, analysis, ctx)

		assert.Equal(t, models.ResponseGeneral, responseType, "message %q", message)
		assert.Equal(t, config.Responses("en").Fallback, text)
	}
}

func TestGenerateResponse_SpecialistInviteOnDeepEngagement(t *testing.T) {
	bot := newTestBot(t)
	invite := config.Responses("en").SpecialistInvite

	ctx := models.NewConversationContext()
	ctx.CurrentService = "Executive Coaching"
	ctx.ServiceHistory = []string{"Executive Coaching"}

	message := "yes"
	analysis := analyze(bot, message, "en")

	ctx.ConversationDepth = deepEngagementDepth
	text, _ := bot.GenerateResponse(message, analysis, ctx)
	assert.NotContains(t, text, invite)

	ctx.ConversationDepth = deepEngagementDepth + 1
	text, _ = bot.GenerateResponse(message, analysis, ctx)
	assert.Contains(t, text, invite)
}

func TestGenerateResponse_SwahiliGreeting(t *testing.T) {
	bot := newTestBot(t)
	ctx := models.NewConversationContext()

	text, responseType := bot.GenerateResponse("habari", analyze(bot, "habari", "sw"), ctx)

	assert.Equal(t, models.ResponseCasual, responseType)
	assert.Equal(t, config.Responses("sw").Greeting, text)
}
