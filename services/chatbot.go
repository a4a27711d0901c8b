package services

import (
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"speaker-bot/config"
	"speaker-bot/models"
)

// compiledRules is one service's matching material for one language, with
// every regex compiled up front.
type compiledRules struct {
	keywords []string
	patterns []*regexp.Regexp
	sources  []string
	// whole-word regexes per keyword, sorted longest keyword first, for the
	// recall-first matcher's strict pass
	wordPatterns []*regexp.Regexp
	wordKeywords []string
	longestLen   int
}

type compiledService struct {
	name  string
	rules map[string]compiledRules
}

type compiledCasual struct {
	categories map[config.CasualCategory][]*regexp.Regexp
	questions  []*regexp.Regexp
}

// Chatbot holds the compiled pattern tables and the suggestion shuffle
// source. All per-visitor state lives in the ConversationContext; the
// Chatbot itself is safe for concurrent use.
type Chatbot struct {
	services []compiledService
	// service scan order for the loose matcher, per language: longest
	// keyword first
	looseOrder map[string][]int
	casual     map[string]compiledCasual

	mu  sync.Mutex
	rng *rand.Rand
}

// NewChatbot compiles and validates every static table. A malformed regex or
// a missing English entry is a configuration error and fails startup rather
// than surfacing mid-conversation.
func NewChatbot(seed int64) (*Chatbot, error) {
	bot := &Chatbot{
		looseOrder: make(map[string][]int),
		casual:     make(map[string]compiledCasual),
		rng:        rand.New(rand.NewSource(seed)),
	}

	svcs := config.Services()
	if len(svcs) == 0 {
		return nil, fmt.Errorf("service catalog is empty")
	}

	for _, svc := range svcs {
		if _, ok := svc.Rules[config.LangEnglish]; !ok {
			return nil, fmt.Errorf("service %q has no English rules", svc.Name)
		}
		if svc.Description[config.LangEnglish] == "" {
			return nil, fmt.Errorf("service %q has no English description", svc.Name)
		}

		cs := compiledService{name: svc.Name, rules: make(map[string]compiledRules)}
		for lang, rules := range svc.Rules {
			cr, err := compileRules(rules)
			if err != nil {
				return nil, fmt.Errorf("service %q (%s): %w", svc.Name, lang, err)
			}
			cs.rules[lang] = cr
		}
		bot.services = append(bot.services, cs)
	}

	casualSets := config.CasualPatterns()
	if _, ok := casualSets[config.LangEnglish]; !ok {
		return nil, fmt.Errorf("casual patterns have no English set")
	}
	questionSets := config.QuestionPatterns()

	for lang, set := range casualSets {
		cc := compiledCasual{categories: make(map[config.CasualCategory][]*regexp.Regexp)}
		for category, patterns := range set {
			for _, src := range patterns {
				re, err := regexp.Compile(src)
				if err != nil {
					return nil, fmt.Errorf("casual pattern %q (%s/%s): %w", src, lang, category, err)
				}
				cc.categories[category] = append(cc.categories[category], re)
			}
		}
		for _, src := range questionSets[lang] {
			re, err := regexp.Compile(src)
			if err != nil {
				return nil, fmt.Errorf("question pattern %q (%s): %w", src, lang, err)
			}
			cc.questions = append(cc.questions, re)
		}
		bot.casual[lang] = cc
	}

	for _, faq := range config.FAQs() {
		if faq.Question[config.LangEnglish] == "" || faq.Answer[config.LangEnglish] == "" {
			return nil, fmt.Errorf("FAQ entry missing English question or answer")
		}
	}

	bot.buildLooseOrder()

	return bot, nil
}

func compileRules(rules config.LanguageRules) (compiledRules, error) {
	cr := compiledRules{}

	for _, kw := range rules.Keywords {
		cr.keywords = append(cr.keywords, strings.ToLower(kw))
	}

	for _, src := range rules.Patterns {
		re, err := regexp.Compile(src)
		if err != nil {
			return cr, fmt.Errorf("pattern %q: %w", src, err)
		}
		cr.patterns = append(cr.patterns, re)
		cr.sources = append(cr.sources, src)
	}

	// Longest keywords first so the loose matcher prefers the most specific
	// term of each service.
	sorted := make([]string, len(cr.keywords))
	copy(sorted, cr.keywords)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	for _, kw := range sorted {
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(kw) + `\b`)
		if err != nil {
			return cr, fmt.Errorf("keyword %q: %w", kw, err)
		}
		cr.wordPatterns = append(cr.wordPatterns, re)
		cr.wordKeywords = append(cr.wordKeywords, kw)
	}
	if len(sorted) > 0 {
		cr.longestLen = len(sorted[0])
	}

	return cr, nil
}

func (b *Chatbot) buildLooseOrder() {
	langs := map[string]bool{}
	for _, svc := range b.services {
		for lang := range svc.rules {
			langs[lang] = true
		}
	}

	for lang := range langs {
		order := make([]int, len(b.services))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(i, j int) bool {
			return b.rulesFor(order[i], lang).longestLen > b.rulesFor(order[j], lang).longestLen
		})
		b.looseOrder[lang] = order
	}
}

// rulesFor returns a service's rules for a language, falling back to English.
func (b *Chatbot) rulesFor(idx int, lang string) compiledRules {
	if r, ok := b.services[idx].rules[lang]; ok {
		return r
	}
	return b.services[idx].rules[config.LangEnglish]
}

// shuffle reorders suggestions in place using the bot's seeded source.
func (b *Chatbot) shuffle(items []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

// TurnAnalysis collects everything the classifiers extracted from one
// user message.
type TurnAnalysis struct {
	Language       string
	Casual         CasualResult
	Detection      models.DetectionResult
	PricingInquiry bool
	ContactInquiry bool
}

// TurnResult is the full outcome of one conversation turn.
type TurnResult struct {
	UserMessage models.ChatMessage
	BotMessage  models.ChatMessage
	Context     *models.ConversationContext
	Suggestions []string
}

// ProcessTurn runs the whole per-message pipeline: sanitize, classify,
// update the context, generate the reply and the follow-up suggestions.
// It performs no I/O; callers persist the result.
func (b *Chatbot) ProcessTurn(sessionID, rawMessage, fallbackLang string, ctx *models.ConversationContext) (*TurnResult, error) {
	message, err := SanitizeMessage(rawMessage)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = models.NewConversationContext()
	}

	language := DetectLanguage(message, fallbackLang)

	analysis := TurnAnalysis{
		Language:       language,
		Casual:         b.ClassifyCasual(message, language),
		Detection:      b.DetectService(message, language),
		PricingInquiry: IsPricingInquiry(message, language),
		ContactInquiry: IsAskingForContact(message, language),
	}

	updated := UpdateContext(ctx, analysis.Detection.Service, message)

	replyText, responseType := b.GenerateResponse(message, analysis, updated)
	suggestions := b.GenerateSuggestions(updated, language, message)

	now := time.Now()
	result := &TurnResult{
		UserMessage: models.ChatMessage{
			SessionID:  sessionID,
			Role:       "user",
			Content:    message,
			Language:   language,
			Service:    analysis.Detection.Service,
			Confidence: analysis.Detection.Confidence,
			Timestamp:  now,
		},
		BotMessage: models.ChatMessage{
			SessionID:    sessionID,
			Role:         "bot",
			Content:      replyText,
			Language:     language,
			Service:      updated.CurrentService,
			ResponseType: responseType,
			Suggestions:  suggestions,
			Timestamp:    now,
		},
		Context:     updated,
		Suggestions: suggestions,
	}

	return result, nil
}

var (
	chatbot     *Chatbot
	chatbotOnce sync.Once
)

// InitChatbot compiles the shared chatbot instance. Called once at startup.
func InitChatbot() error {
	var err error
	chatbotOnce.Do(func() {
		chatbot, err = NewChatbot(time.Now().UnixNano())
	})
	return err
}

// GetChatbot returns the shared chatbot instance.
func GetChatbot() *Chatbot {
	return chatbot
}
