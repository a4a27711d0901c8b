package config

// SuggestionStrategy is derived purely from conversation depth and decides
// which suggestion templates apply.
type SuggestionStrategy string

const (
	StrategyDiscovery     SuggestionStrategy = "discovery"
	StrategyExploration   SuggestionStrategy = "exploration"
	StrategySpecification SuggestionStrategy = "specification"
	StrategyConversion    SuggestionStrategy = "conversion"
	StrategyConsultation  SuggestionStrategy = "consultation"
)

// SubIntent is a finer-grained read of what the visitor is asking about,
// used only to pick suggestion templates.
type SubIntent string

const (
	SubIntentPricing  SubIntent = "pricing"
	SubIntentDuration SubIntent = "duration"
	SubIntentProcess  SubIntent = "process"
	SubIntentBenefits SubIntent = "benefits"
)

// SubIntentKeywords is checked in declaration order; the first sub-intent
// with a keyword present wins.
func SubIntentKeywords() []struct {
	Intent   SubIntent
	Keywords map[string][]string
} {
	return []struct {
		Intent   SubIntent
		Keywords map[string][]string
	}{
		{SubIntentPricing, map[string][]string{
			LangEnglish: {"price", "cost", "pricing", "fee", "package", "budget"},
			LangSwahili: {"bei", "gharama", "malipo", "kifurushi", "bajeti"},
		}},
		{SubIntentDuration, map[string][]string{
			LangEnglish: {"how long", "duration", "weeks", "days", "hours", "timeline"},
			LangSwahili: {"muda", "wiki", "siku", "saa", "ratiba"},
		}},
		{SubIntentProcess, map[string][]string{
			LangEnglish: {"process", "how do", "how does", "steps", "start", "begin"},
			LangSwahili: {"hatua", "jinsi", "namna", "kuanza", "mchakato"},
		}},
		{SubIntentBenefits, map[string][]string{
			LangEnglish: {"benefit", "outcome", "result", "value", "impact", "gain"},
			LangSwahili: {"faida", "matokeo", "manufaa", "thamani"},
		}},
	}
}

// SuggestionTemplates holds the per-language suggestion template sets.
// %s placeholders take the relevant service name.
type SuggestionTemplates struct {
	Strategies map[SuggestionStrategy][]string
	SubIntents map[SubIntent][]string

	SuccessStories []string // added once engagement deepens
	Discovery      []string // generic prompts when no service is in play
	DiscoverTopic  string   // %s = unexplored popular service
	CrossSell      string   // %s = related service
	Actions        []string // action prompts for deep conversations
	Defaults       []string // safety net when generation yields nothing
}

var suggestionTemplates = map[string]SuggestionTemplates{
	LangEnglish: {
		Strategies: map[SuggestionStrategy][]string{
			StrategyExploration: {
				"Tell me more about %s",
				"Who is %s for?",
				"What does %s include?",
			},
			StrategySpecification: {
				"What topics does %s cover?",
				"How long does %s take?",
				"Can %s be customized for my team?",
			},
			StrategyConversion: {
				"How do I book %s?",
				"What does %s cost?",
				"When are you next available for %s?",
			},
			StrategyConsultation: {
				"Can we schedule a call about %s?",
				"Send me a proposal for %s",
			},
		},
		SubIntents: map[SubIntent][]string{
			SubIntentPricing:  {"Do you offer payment plans?", "What's included in each package?"},
			SubIntentDuration: {"Can sessions be split across several days?", "Do you run weekend sessions?"},
			SubIntentProcess:  {"What happens after I book?", "What do you need from us to prepare?"},
			SubIntentBenefits: {"What results have past clients seen?", "Do you measure outcomes afterwards?"},
		},
		SuccessStories: []string{
			"Share a success story about %s",
			"Which organizations have used %s?",
		},
		Discovery: []string{
			"What services do you offer?",
			"Tell me about your pricing",
			"How can you help my team?",
		},
		DiscoverTopic: "Tell me about %s",
		CrossSell:     "Would %s also interest you?",
		Actions: []string{
			"Speak with a specialist",
			"Get a quotation",
			"Schedule a consultation",
		},
		Defaults: []string{
			"What services do you offer?",
			"Tell me about keynote speaking",
			"How much does coaching cost?",
			"How can I contact you?",
		},
	},
	LangSwahili: {
		Strategies: map[SuggestionStrategy][]string{
			StrategyExploration: {
				"Nieleze zaidi kuhusu %s",
				"%s inafaa kwa nani?",
				"%s inajumuisha nini?",
			},
			StrategySpecification: {
				"%s inagusa mada zipi?",
				"%s huchukua muda gani?",
				"Je, %s inaweza kurekebishwa kwa timu yangu?",
			},
			StrategyConversion: {
				"Nifanyeje booking ya %s?",
				"%s inagharimu kiasi gani?",
				"Unapatikana lini kwa %s?",
			},
			StrategyConsultation: {
				"Tunaweza kupanga simu kuhusu %s?",
				"Nitumie pendekezo la %s",
			},
		},
		SubIntents: map[SubIntent][]string{
			SubIntentPricing:  {"Je, mnapokea malipo kwa awamu?", "Kila kifurushi kinajumuisha nini?"},
			SubIntentDuration: {"Vipindi vinaweza kugawanywa siku kadhaa?", "Mnafanya vipindi wikendi?"},
			SubIntentProcess:  {"Nini kinafuata baada ya booking?", "Mnahitaji nini kutoka kwetu?"},
			SubIntentBenefits: {"Wateja waliopita wamepata matokeo gani?", "Je, mnapima matokeo baadaye?"},
		},
		SuccessStories: []string{
			"Nipe mfano wa mafanikio ya %s",
			"Mashirika gani yametumia %s?",
		},
		Discovery: []string{
			"Mnatoa huduma zipi?",
			"Nieleze kuhusu bei zenu",
			"Mnaweza kusaidiaje timu yangu?",
		},
		DiscoverTopic: "Nieleze kuhusu %s",
		CrossSell:     "Je, %s pia ingekuvutia?",
		Actions: []string{
			"Zungumza na mtaalamu",
			"Pata bei maalum",
			"Panga ushauri",
		},
		Defaults: []string{
			"Mnatoa huduma zipi?",
			"Nieleze kuhusu hotuba kuu",
			"Ukocha unagharimu kiasi gani?",
			"Nawasilianaje nanyi?",
		},
	},
}

// Suggestions returns the suggestion templates for a language, falling back
// to English.
func Suggestions(lang string) SuggestionTemplates {
	if st, ok := suggestionTemplates[lang]; ok {
		return st
	}
	return suggestionTemplates[LangEnglish]
}
