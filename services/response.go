package services

import (
	"fmt"
	"strings"

	"speaker-bot/config"
	"speaker-bot/models"
)

// deepEngagementDepth is the conversation depth past which the bot starts
// inviting the visitor to talk to a human.
const deepEngagementDepth = 5

// faqOverlapThreshold is the number of significant words a message must share
// with an FAQ question to select its answer.
const faqOverlapThreshold = 2

// GenerateResponse composes the bot's reply for one turn. Resolution order,
// first applicable wins: casual reply, pricing block, service description,
// contact card, FAQ answer, loose service match, fallback. Past the deep
// engagement threshold a specialist invitation is appended regardless of
// which branch fired.
func (b *Chatbot) GenerateResponse(message string, analysis TurnAnalysis, ctx *models.ConversationContext) (string, string) {
	lang := analysis.Language
	rs := config.Responses(lang)

	text, responseType := b.baseResponse(message, analysis, ctx, rs)

	if ctx.ConversationDepth > deepEngagementDepth {
		text += "\n\n" + rs.SpecialistInvite
	}

	return text, responseType
}

func (b *Chatbot) baseResponse(message string, analysis TurnAnalysis, ctx *models.ConversationContext, rs config.ResponseStrings) (string, string) {
	lang := analysis.Language

	if analysis.Casual.IsCasual {
		return b.casualResponse(analysis.Casual, ctx, rs), models.ResponseCasual
	}

	// A pricing question counts against the service named this turn, or
	// failing that the one already under discussion.
	pricingService := analysis.Detection.Service
	if pricingService == "" {
		pricingService = ctx.CurrentService
	}
	if analysis.PricingInquiry && pricingService != "" {
		if svc, ok := config.ServiceByName(pricingService); ok {
			return pricingBlock(svc, lang, rs), models.ResponsePricing
		}
	}

	if analysis.Detection.Detected() {
		if svc, ok := config.ServiceByName(analysis.Detection.Service); ok {
			return serviceDescription(svc, lang, rs), models.ResponseService
		}
	}

	if analysis.ContactInquiry {
		return contactCard(ctx, lang, rs), models.ResponseContact
	}

	if answer, ok := matchFAQ(message, lang); ok {
		return answer, models.ResponseFAQ
	}

	// Recall-first pass: the precision matcher found nothing, but the
	// message may still mention a service in passing.
	if name, ok := b.MatchServiceLoose(message, lang); ok {
		if svc, found := config.ServiceByName(name); found {
			return serviceDescription(svc, lang, rs), models.ResponseService
		}
	}

	return rs.Fallback, models.ResponseGeneral
}

func (b *Chatbot) casualResponse(casual CasualResult, ctx *models.ConversationContext, rs config.ResponseStrings) string {
	switch casual.Category {
	case config.CasualGreeting:
		text := rs.Greeting
		if len(ctx.ServiceHistory) > 0 {
			text += fmt.Sprintf(rs.GreetingReturning, strings.Join(ctx.ServiceHistory, ", "))
		}
		return text
	case config.CasualGoodbye:
		return rs.Goodbye
	case config.CasualAppreciation:
		return rs.Appreciation
	case config.CasualAffirmation:
		return rs.Affirmation
	case config.CasualConfusion:
		return rs.Confusion
	}
	return rs.Fallback
}

func pricingBlock(svc config.Service, lang string, rs config.ResponseStrings) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(rs.PricingHeader, svc.Name))

	for _, pkg := range svc.Pricing {
		sb.WriteString(fmt.Sprintf("\n\n%s - %s %d", pkg.Name, pkg.Currency, pkg.Price))
		if pkg.BillingCycle != "" {
			sb.WriteString(" " + pkg.BillingCycle)
		}
		if pkg.Description != "" {
			sb.WriteString("\n" + pkg.Description)
		}
	}

	if note := localized(svc.PricingNote, lang); note != "" {
		sb.WriteString("\n\n" + fmt.Sprintf(rs.PricingNote, note))
	}

	sb.WriteString("\n\n" + rs.PricingClosing)
	return sb.String()
}

func serviceDescription(svc config.Service, lang string, rs config.ResponseStrings) string {
	desc := localized(svc.Description, lang)
	return desc + "\n\n" + rs.ServiceMoreInfo + " " + rs.ServicePricingPrompt
}

func contactCard(ctx *models.ConversationContext, lang string, rs config.ResponseStrings) string {
	info := config.Contact()

	var sb strings.Builder
	sb.WriteString(rs.ContactIntro)
	sb.WriteString("\n\nEmail: " + info.Email)
	sb.WriteString("\nPhone: " + info.Phone)
	sb.WriteString("\n" + info.Location)
	if hours := localized(info.Hours, lang); hours != "" {
		sb.WriteString("\n" + rs.ContactHoursLabel + ": " + hours)
	}

	personalize := ctx.CurrentService != "" ||
		ctx.ConversationDepth >= models.MaxConversationDepth ||
		len(ctx.ServiceHistory) > 1
	if personalize {
		topic := ctx.CurrentService
		if topic == "" && len(ctx.ServiceHistory) > 0 {
			topic = ctx.ServiceHistory[len(ctx.ServiceHistory)-1]
		}
		if topic != "" {
			sb.WriteString("\n\n" + fmt.Sprintf(rs.ContactPersonalized, topic))
		}
	}

	return sb.String()
}

// matchFAQ returns the answer of the first FAQ whose question shares at
// least faqOverlapThreshold significant words with the message.
func matchFAQ(message, lang string) (string, bool) {
	words := significantWords(message)
	if len(words) == 0 {
		return "", false
	}

	for _, faq := range config.FAQs() {
		question := localized(faq.Question, lang)
		overlap := 0
		for w := range significantWords(question) {
			if words[w] {
				overlap++
				if overlap >= faqOverlapThreshold {
					return localized(faq.Answer, lang), true
				}
			}
		}
	}

	return "", false
}

// significantWords returns the set of lower-cased words longer than three
// characters.
func significantWords(s string) map[string]bool {
	words := map[string]bool{}
	for _, w := range strings.Fields(strings.ToLower(s)) {
		w = strings.Trim(w, `.,!?;:'"()-`)
		if len(w) > 3 {
			words[w] = true
		}
	}
	return words
}

// localized picks the entry for a language, falling back to English.
func localized(table map[string]string, lang string) string {
	if v, ok := table[lang]; ok && v != "" {
		return v
	}
	return table[config.LangEnglish]
}
