package services

import (
	"strings"

	"speaker-bot/config"
)

// CasualResult describes a non-informational utterance.
type CasualResult struct {
	IsCasual bool
	Category config.CasualCategory

	IsGreeting     bool
	IsGoodbye      bool
	IsAppreciation bool
	IsQuestion     bool
	IsAffirmation  bool
	IsConfusion    bool
}

// ClassifyCasual tests a message against the greeting/goodbye/appreciation/
// affirmation/confusion pattern sets. Every matching category sets its flag;
// the selected category is the first match in priority order. Question is a
// flag only and never becomes the category. Languages without their own
// pattern set use the English one.
func (b *Chatbot) ClassifyCasual(message, language string) CasualResult {
	result := CasualResult{}

	msg := strings.ToLower(strings.TrimSpace(message))
	if msg == "" {
		return result
	}

	set, ok := b.casual[language]
	if !ok {
		set = b.casual[config.LangEnglish]
	}

	matched := map[config.CasualCategory]bool{}
	for category, patterns := range set.categories {
		for _, re := range patterns {
			if re.MatchString(msg) {
				matched[category] = true
				break
			}
		}
	}

	result.IsGreeting = matched[config.CasualGreeting]
	result.IsGoodbye = matched[config.CasualGoodbye]
	result.IsAppreciation = matched[config.CasualAppreciation]
	result.IsAffirmation = matched[config.CasualAffirmation]
	result.IsConfusion = matched[config.CasualConfusion]

	for _, re := range set.questions {
		if re.MatchString(msg) {
			result.IsQuestion = true
			break
		}
	}

	for _, category := range config.CasualPriority() {
		if matched[category] {
			result.IsCasual = true
			result.Category = category
			break
		}
	}

	return result
}
