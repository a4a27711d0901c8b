package config

// ResponseStrings holds every canned reply fragment for one language.
// Fields with a %s placeholder are filled with a service name (or, for
// GreetingReturning, the list of services already discussed).
type ResponseStrings struct {
	Greeting          string
	GreetingReturning string // appended to Greeting when serviceHistory is non-empty
	Goodbye           string
	Appreciation      string
	Affirmation       string
	Confusion         string

	PricingHeader  string // %s = service name
	PricingNote    string
	PricingClosing string

	ServiceMoreInfo      string
	ServicePricingPrompt string

	ContactIntro        string
	ContactHoursLabel   string
	ContactPersonalized string // %s = current service

	SpecialistInvite string
	Fallback         string
}

var responseStrings = map[string]ResponseStrings{
	LangEnglish: {
		Greeting:          "Hello! Welcome - I'm Baraka's assistant. I can tell you about keynote speaking, coaching, leadership programs and more. What brings you here today?",
		GreetingReturning: " Good to have you back - we've talked about %s before.",
		Goodbye:           "Thanks for stopping by! Feel free to come back any time - and if you'd like to take the next step, the booking page is always open.",
		Appreciation:      "You're most welcome! Is there anything else you'd like to know?",
		Affirmation:       "Great! What would you like to look at next?",
		Confusion:         "No worries - let me make it simpler. You can ask me about any of our services, pricing, or how to get in touch. What would you like to start with?",

		PricingHeader:  "Here's the pricing for %s:",
		PricingNote:    "Note: %s",
		PricingClosing: "Would you like to discuss a package or request a custom quote?",

		ServiceMoreInfo:      "Want me to go deeper on any part of this?",
		ServicePricingPrompt: "I can also share the pricing if you're interested.",

		ContactIntro:        "Here's how to reach us:",
		ContactHoursLabel:   "Hours",
		ContactPersonalized: "Since you've been asking about %s, mention it when you reach out and we'll fast-track your inquiry.",

		SpecialistInvite: "You clearly have a serious interest - would you like to speak directly with a specialist? I can arrange a call.",
		Fallback:         "I'm not sure I caught that. I can help with our services, pricing, events or contact details - try asking about one of those.",
	},
	LangSwahili: {
		Greeting:          "Habari! Karibu - mimi ni msaidizi wa Baraka. Naweza kukueleza kuhusu hotuba kuu, ukocha, programu za uongozi na zaidi. Nikusaidieje leo?",
		GreetingReturning: " Karibu tena - tuliwahi kuzungumzia %s.",
		Goodbye:           "Asante kwa kutembelea! Karibu tena wakati wowote - na ukitaka kuchukua hatua, ukurasa wa booking uko wazi daima.",
		Appreciation:      "Karibu sana! Kuna kitu kingine ungependa kujua?",
		Affirmation:       "Vizuri! Ungependa tuangalie nini sasa?",
		Confusion:         "Usijali - ngoja nirahisishe. Unaweza kuniuliza kuhusu huduma zetu, bei, au jinsi ya kuwasiliana nasi. Ungependa kuanza na lipi?",

		PricingHeader:  "Hizi ndizo bei za %s:",
		PricingNote:    "Kumbuka: %s",
		PricingClosing: "Ungependa kujadili kifurushi au kuomba bei maalum?",

		ServiceMoreInfo:      "Ungependa nieleze zaidi sehemu yoyote ya hii?",
		ServicePricingPrompt: "Naweza pia kukupa bei kama una nia.",

		ContactIntro:        "Hivi ndivyo unavyoweza kutufikia:",
		ContactHoursLabel:   "Saa za kazi",
		ContactPersonalized: "Kwa kuwa umekuwa ukiuliza kuhusu %s, itaje utakapowasiliana nasi ili tuharakishe maombi yako.",

		SpecialistInvite: "Ni wazi una nia ya dhati - ungependa kuzungumza moja kwa moja na mtaalamu? Naweza kupanga simu.",
		Fallback:         "Sijaelewa vizuri. Naweza kusaidia kuhusu huduma zetu, bei, matukio au mawasiliano - jaribu kuuliza mojawapo ya hayo.",
	},
}

// Responses returns the reply strings for a language, falling back to English.
func Responses(lang string) ResponseStrings {
	if rs, ok := responseStrings[lang]; ok {
		return rs
	}
	return responseStrings[LangEnglish]
}

// PricingKeywords drives the pricing-inquiry intent classifier.
func PricingKeywords() map[string][]string {
	return map[string][]string{
		LangEnglish: {"price", "cost", "pricing", "fee", "rate", "charge", "expensive", "cheap", "affordable", "how much"},
		LangSwahili: {"bei", "gharama", "malipo", "pesa", "kiasi", "ada", "kodi", "shilingi"},
	}
}

// ContactKeywords drives the contact-inquiry intent classifier.
func ContactKeywords() map[string][]string {
	return map[string][]string{
		LangEnglish: {"contact", "email", "phone", "call", "reach", "address", "location", "hours", "whatsapp"},
		LangSwahili: {"wasiliana", "barua pepe", "simu", "piga", "anwani", "mahali", "ofisi", "whatsapp"},
	}
}
