package services

import (
	"fmt"

	"speaker-bot/config"
	"speaker-bot/models"
)

// MaxSuggestions caps the follow-up prompt list shown under each bot reply.
const MaxSuggestions = 4

// strategyForDepth maps conversation depth onto a suggestion strategy:
// fresh visitors get discovery prompts, engaged ones get pushed towards
// booking a consultation.
func strategyForDepth(depth int) config.SuggestionStrategy {
	switch {
	case depth <= 0:
		return config.StrategyDiscovery
	case depth <= 2:
		return config.StrategyExploration
	case depth <= 4:
		return config.StrategySpecification
	case depth <= 7:
		return config.StrategyConversion
	default:
		return config.StrategyConsultation
	}
}

// GenerateSuggestions produces up to MaxSuggestions deduplicated follow-up
// prompts for the turn. Ordering is shuffled with the bot's seeded source so
// repeated visits don't always show the same four prompts; callers must not
// rely on order. An empty outcome falls back to the static default list.
func (b *Chatbot) GenerateSuggestions(ctx *models.ConversationContext, language, lastMessage string) []string {
	if ctx == nil {
		ctx = models.NewConversationContext()
	}

	templates := config.Suggestions(language)
	depth := ctx.ConversationDepth
	strategy := strategyForDepth(depth)

	var out []string

	if ctx.CurrentService != "" {
		service := ctx.CurrentService

		strategyTpls := templates.Strategies[strategy]
		if len(strategyTpls) == 0 {
			strategyTpls = templates.Strategies[config.StrategyExploration]
		}
		for _, tpl := range strategyTpls {
			out = append(out, fmt.Sprintf(tpl, service))
		}

		if sub := DetectSubIntent(lastMessage, language); sub != "" {
			out = append(out, templates.SubIntents[sub]...)
		}

		if depth > 3 {
			for _, tpl := range templates.SuccessStories {
				out = append(out, fmt.Sprintf(tpl, service))
			}
		}

		if strategy == config.StrategySpecification || strategy == config.StrategyConversion {
			if related := pickCrossSell(ctx); related != "" {
				out = append(out, fmt.Sprintf(templates.CrossSell, related))
			}
		}
	} else {
		added := 0
		for _, popular := range config.PopularServices() {
			if ctx.HasDiscussed(popular) {
				continue
			}
			out = append(out, fmt.Sprintf(templates.DiscoverTopic, popular))
			added++
			if added == 2 {
				break
			}
		}
		out = append(out, templates.Discovery...)
	}

	if depth > deepEngagementDepth {
		out = append(out, templates.Actions...)
	}

	out = dedupe(out)
	b.shuffle(out)
	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}

	if len(out) == 0 {
		defaults := make([]string, len(templates.Defaults))
		copy(defaults, templates.Defaults)
		if len(defaults) > MaxSuggestions {
			defaults = defaults[:MaxSuggestions]
		}
		return defaults
	}

	return out
}

// pickCrossSell chooses a related service the visitor hasn't explored yet,
// falling back to the first related one.
func pickCrossSell(ctx *models.ConversationContext) string {
	related := config.RelatedServices()[ctx.CurrentService]
	for _, candidate := range related {
		if !ctx.HasDiscussed(candidate) {
			return candidate
		}
	}
	if len(related) > 0 {
		return related[0]
	}
	return ""
}

func dedupe(items []string) []string {
	seen := map[string]bool{}
	out := items[:0]
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
