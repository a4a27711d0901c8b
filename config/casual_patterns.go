package config

// CasualCategory labels a non-informational utterance handled by canned replies.
type CasualCategory string

const (
	CasualGreeting     CasualCategory = "greeting"
	CasualGoodbye      CasualCategory = "goodbye"
	CasualAppreciation CasualCategory = "appreciation"
	CasualAffirmation  CasualCategory = "affirmation"
	CasualConfusion    CasualCategory = "confusion"
)

// CasualPriority is the order in which categories win when a message matches
// more than one pattern set.
func CasualPriority() []CasualCategory {
	return []CasualCategory{
		CasualGreeting,
		CasualGoodbye,
		CasualAppreciation,
		CasualAffirmation,
		CasualConfusion,
	}
}

// CasualPatterns returns the per-language whole-message pattern sets.
// All patterns are anchored; they must match the entire trimmed, lower-cased
// message. Languages without an entry fall back to English.
func CasualPatterns() map[string]map[CasualCategory][]string {
	return map[string]map[CasualCategory][]string{
		LangEnglish: {
			CasualGreeting: {
				`^(hi|hello|hey|hiya|howdy|ciao|greetings)[\s!.,]*$`,
				`^good\s+(morning|afternoon|evening|day)[\s!.,]*$`,
				`^(hi|hello|hey)\s+there[\s!.,]*$`,
			},
			CasualGoodbye: {
				`^(bye|goodbye|ciao|farewell|see\s+you(\s+later)?|later|take\s+care)[\s!.,]*$`,
				`^good\s*night[\s!.,]*$`,
				`^(i\s+)?(have\s+to|got\s*ta)\s+go[\s!.,]*$`,
			},
			CasualAppreciation: {
				`^(thanks|thank\s+you|thx|cheers)[\s!.,]*$`,
				`^thank\s+you\s+(so|very)\s+much[\s!.,]*$`,
				`^(that('s|\s+is)\s+)?(great|awesome|perfect|helpful)[\s,]*(thanks|thank\s+you)?[\s!.,]*$`,
			},
			CasualAffirmation: {
				`^(yes|yeah|yep|yup|sure|ok|okay|alright|of\s+course|sounds\s+good)[\s!.,]*$`,
				`^(go|going)\s+ahead[\s!.,]*$`,
			},
			CasualConfusion: {
				`^(what|huh|confused|i'?m\s+lost)[\s?!.,]*$`,
				`^i\s+don'?t\s+understand[\s?!.,]*$`,
				`^what\s+do\s+you\s+mean[\s?!.,]*$`,
				`^can\s+you\s+explain([\s?!.,]+.*)?$`,
			},
		},
		LangSwahili: {
			CasualGreeting: {
				`^(habari|hujambo|jambo|mambo|salama|shikamoo)[\s!.,?]*$`,
				`^habari\s+(yako|zako|za\s+(asubuhi|mchana|jioni|leo))[\s!.,?]*$`,
			},
			CasualGoodbye: {
				`^(kwaheri|tutaonana|baadaye)[\s!.,]*$`,
				`^usiku\s+mwema[\s!.,]*$`,
				`^(naondoka|niage)[\s!.,]*$`,
			},
			CasualAppreciation: {
				`^(asante|ahsante|shukrani)(\s+sana)?[\s!.,]*$`,
				`^nashukuru(\s+sana)?[\s!.,]*$`,
			},
			CasualAffirmation: {
				`^(ndiyo|ndio|sawa|haya|bila\s+shaka|hakika)[\s!.,]*$`,
				`^sawa\s+kabisa[\s!.,]*$`,
			},
			CasualConfusion: {
				`^(sielewi|sijaelewa|nini)[\s?!.,]*$`,
				`^unamaanisha\s+nini[\s?!.,]*$`,
				`^naomba\s+unieleze(\s+zaidi)?[\s?!.,]*$`,
			},
		},
	}
}

// QuestionPatterns detect interrogative messages. Question is tracked as a
// flag only; it never becomes the selected casual category.
func QuestionPatterns() map[string][]string {
	return map[string][]string{
		LangEnglish: {
			`\?\s*$`,
			`^(what|how|when|where|why|who|which|can|could|would|do|does|is|are)\b`,
		},
		LangSwahili: {
			`\?\s*$`,
			`^(nini|vipi|lini|wapi|nani|je|kwa\s+nini|ngapi)\b`,
		},
	}
}

// LanguageMarker pairs a language code with the keywords that signal it.
type LanguageMarker struct {
	Code     string
	Keywords []string
}

// LanguageMarkers is scanned in order by the language detector; the first
// language with any keyword present in the message wins, so order is a
// de facto priority. Swahili comes first because English is the fallback.
func LanguageMarkers() []LanguageMarker {
	return []LanguageMarker{
		{Code: LangSwahili, Keywords: []string{
			"habari", "hujambo", "mambo", "asante", "kwaheri", "ndiyo", "sawa",
			"bei", "gharama", "malipo", "nataka", "nipe", "naomba", "huduma",
			"mafunzo", "uongozi", "hotuba", "kocha", "timu", "warsha", "sielewi",
		}},
		{Code: LangEnglish, Keywords: []string{
			"hello", "thanks", "thank you", "price", "cost", "service",
			"training", "speaking", "coaching", "leadership", "please",
		}},
	}
}
