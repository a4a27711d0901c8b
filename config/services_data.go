package config

// LangEnglish is the universal fallback for every per-language table.
const (
	LangEnglish = "en"
	LangSwahili = "sw"
)

// LanguageRules holds the matching material for one service in one language.
// Patterns are kept as source strings so they can be validated and compiled
// once at startup instead of failing mid-conversation.
type LanguageRules struct {
	Keywords []string
	Patterns []string
}

// PricingPackage describes one purchasable package of a service.
type PricingPackage struct {
	Name         string
	Price        int
	Currency     string
	BillingCycle string // e.g. "per event", "per month"; empty for one-off
	Description  string
}

// Service is a static descriptor of one offering the bot can discuss.
// Declaration order in Services() matters: it breaks confidence ties and
// orders the loose matcher's fallback scan.
type Service struct {
	ID          string
	Name        string
	Rules       map[string]LanguageRules
	Description map[string]string
	Pricing     []PricingPackage
	PricingNote map[string]string
}

// Services returns the full service catalog.
func Services() []Service {
	return []Service{
		{
			ID:   "keynote",
			Name: "Keynote Speaking",
			Rules: map[string]LanguageRules{
				LangEnglish: {
					Keywords: []string{"keynote", "speech", "speaker", "speaking", "conference", "presentation", "motivational talk"},
					Patterns: []string{
						`keynote\s+(speaking|speech|address|session)`,
						`(conference|event|summit)\s+speaker`,
						`motivational\s+(talk|speech|speaker)`,
						`speak\s+at\s+(our|my|the)\s+(event|conference|summit)`,
					},
				},
				LangSwahili: {
					Keywords: []string{"hotuba", "mzungumzaji", "kongamano", "mkutano mkuu"},
					Patterns: []string{
						`hotuba\s+(kuu|ya\s+ufunguzi)`,
						`mzungumzaji\s+(mkuu|wa\s+(mkutano|kongamano))`,
					},
				},
			},
			Description: map[string]string{
				LangEnglish: "Keynote Speaking brings a high-energy, story-driven address to your conference, summit or company event. Each keynote is customized to your audience and theme, covering leadership, resilience and growth, and runs 45-90 minutes with an optional Q&A segment.",
				LangSwahili: "Hotuba Kuu huleta ujumbe wenye nguvu na hadithi za kugusa kwenye kongamano, mkutano au tukio la kampuni yako. Kila hotuba huandaliwa kulingana na hadhira na mada yako, ikigusa uongozi, ustahimilivu na ukuaji, na huchukua dakika 45-90 pamoja na sehemu ya maswali.",
			},
			Pricing: []PricingPackage{
				{Name: "Standard Keynote", Price: 1500, Currency: "USD", BillingCycle: "per event", Description: "45-60 minute customized keynote plus Q&A"},
				{Name: "Keynote + Workshop", Price: 2500, Currency: "USD", BillingCycle: "per event", Description: "Keynote followed by a half-day breakout workshop"},
			},
			PricingNote: map[string]string{
				LangEnglish: "Travel outside Dar es Salaam is billed separately.",
				LangSwahili: "Safari nje ya Dar es Salaam hulipiwa tofauti.",
			},
		},
		{
			ID:   "coaching",
			Name: "Executive Coaching",
			Rules: map[string]LanguageRules{
				LangEnglish: {
					Keywords: []string{"coaching", "coach", "mentor", "mentorship", "one-on-one", "personal growth"},
					Patterns: []string{
						`executive\s+coaching`,
						`(personal|business|career)\s+coach`,
						`one[-\s]on[-\s]one\s+(coaching|session|sessions)`,
					},
				},
				LangSwahili: {
					Keywords: []string{"kocha", "ukocha", "mshauri", "ushauri binafsi"},
					Patterns: []string{
						`kocha\s+wa\s+(viongozi|biashara|binafsi)`,
						`ushauri\s+wa\s+(kikazi|kiuongozi)`,
					},
				},
			},
			Description: map[string]string{
				LangEnglish: "Executive Coaching is a confidential one-on-one engagement for leaders who want clarity and momentum. We meet twice a month, set measurable goals, and work through real decisions you are facing - from managing teams to navigating career transitions.",
				LangSwahili: "Ukocha wa Viongozi ni mpango wa siri wa mtu-kwa-mtu kwa viongozi wanaotaka uwazi na kasi. Tunakutana mara mbili kwa mwezi, tunaweka malengo yanayopimika, na tunafanyia kazi maamuzi halisi unayokabiliana nayo - kuanzia kuongoza timu hadi mabadiliko ya kikazi.",
			},
			Pricing: []PricingPackage{
				{Name: "Monthly Coaching", Price: 400, Currency: "USD", BillingCycle: "per month", Description: "Two private sessions per month with email support"},
				{Name: "Quarterly Intensive", Price: 1000, Currency: "USD", BillingCycle: "per quarter", Description: "Six sessions, a leadership assessment and a growth plan"},
			},
		},
		{
			ID:   "leadership",
			Name: "Leadership Development",
			Rules: map[string]LanguageRules{
				LangEnglish: {
					Keywords: []string{"leadership", "leader", "leaders", "management skills", "influence"},
					Patterns: []string{
						`leadership\s+(development|training|program|programme|skills)`,
						`develop(ing)?\s+(our\s+|my\s+)?leaders`,
						`(grow|build)\s+leadership`,
					},
				},
				LangSwahili: {
					Keywords: []string{"uongozi", "kiongozi", "viongozi"},
					Patterns: []string{
						`(mafunzo|maendeleo|programu)\s+ya\s+uongozi`,
						`kukuza\s+viongozi`,
					},
				},
			},
			Description: map[string]string{
				LangEnglish: "Leadership Development is a structured multi-week program that turns managers into leaders people want to follow. It combines group workshops, practical assignments and peer feedback, and can be delivered on-site or virtually for cohorts of 8-24 participants.",
				LangSwahili: "Maendeleo ya Uongozi ni programu ya wiki kadhaa inayowageuza mameneja kuwa viongozi wanaofuatwa kwa hiari. Inachanganya warsha za vikundi, mazoezi ya vitendo na maoni ya wenzako, na inaweza kufanyika ofisini au mtandaoni kwa makundi ya washiriki 8-24.",
			},
			Pricing: []PricingPackage{
				{Name: "Four-Week Program", Price: 3000, Currency: "USD", BillingCycle: "per cohort", Description: "Weekly workshops with assignments and assessments"},
				{Name: "Eight-Week Program", Price: 5500, Currency: "USD", BillingCycle: "per cohort", Description: "Extended program with individual feedback sessions"},
			},
		},
		{
			ID:   "teambuilding",
			Name: "Team Building",
			Rules: map[string]LanguageRules{
				LangEnglish: {
					Keywords: []string{"team building", "teamwork", "retreat", "collaboration", "team bonding"},
					Patterns: []string{
						`team\s+(building|bonding|retreat|day)`,
						`build(ing)?\s+(a\s+)?(stronger|better)\s+team`,
						`(staff|company)\s+retreat`,
					},
				},
				LangSwahili: {
					Keywords: []string{"timu", "ushirikiano", "mshikamano"},
					Patterns: []string{
						`(kujenga|kuimarisha)\s+timu`,
						`mafunzo\s+ya\s+timu`,
					},
				},
			},
			Description: map[string]string{
				LangEnglish: "Team Building sessions get your people out of their silos and working as one unit. A facilitated day of challenges, honest conversations and shared wins - designed around the friction points your team actually has, not generic games.",
				LangSwahili: "Vipindi vya Kujenga Timu huwatoa watu wako kwenye makundi yao na kuwafanya wafanye kazi kama kitu kimoja. Siku inayoongozwa ya changamoto, mazungumzo ya wazi na ushindi wa pamoja - imeundwa kulingana na vikwazo halisi vya timu yako, si michezo ya jumla.",
			},
			Pricing: []PricingPackage{
				{Name: "Half-Day Session", Price: 800, Currency: "USD", BillingCycle: "per session", Description: "Up to 30 participants, facilitated activities and debrief"},
				{Name: "Full-Day Retreat", Price: 1400, Currency: "USD", BillingCycle: "per session", Description: "Full program with pre-session team diagnostic"},
			},
		},
		{
			ID:   "corporate",
			Name: "Corporate Training",
			Rules: map[string]LanguageRules{
				LangEnglish: {
					Keywords: []string{"training", "workshop", "seminar", "masterclass", "staff training"},
					Patterns: []string{
						`(corporate|staff|employee)\s+(training|workshop)`,
						`training\s+(session|program|programme|day)`,
						`(run|host|organi[sz]e)\s+a\s+(workshop|seminar|masterclass)`,
					},
				},
				LangSwahili: {
					Keywords: []string{"mafunzo", "semina", "warsha"},
					Patterns: []string{
						`mafunzo\s+ya\s+(wafanyakazi|kampuni|kazini)`,
						`warsha\s+ya`,
					},
				},
			},
			Description: map[string]string{
				LangEnglish: "Corporate Training delivers focused, practical workshops on communication, customer service and change management. Sessions are built from your organization's real scenarios and every participant leaves with an action plan they can apply the next morning.",
				LangSwahili: "Mafunzo ya Kampuni hutoa warsha za vitendo kuhusu mawasiliano, huduma kwa wateja na usimamizi wa mabadiliko. Vipindi hujengwa kutokana na hali halisi za shirika lako na kila mshiriki huondoka na mpango wa utekelezaji anaoweza kuanza kesho yake asubuhi.",
			},
			Pricing: []PricingPackage{
				{Name: "Single Workshop", Price: 900, Currency: "USD", BillingCycle: "per day", Description: "One-day workshop for up to 25 participants"},
				{Name: "Training Series", Price: 2400, Currency: "USD", BillingCycle: "per series", Description: "Three linked workshops delivered over a quarter"},
			},
		},
	}
}

// ServiceByName looks a service up by its display name.
func ServiceByName(name string) (Service, bool) {
	for _, svc := range Services() {
		if svc.Name == name {
			return svc, true
		}
	}
	return Service{}, false
}

// PopularServices lists the offerings suggested to visitors who have not
// settled on a topic yet, most-requested first.
func PopularServices() []string {
	return []string{"Keynote Speaking", "Executive Coaching", "Leadership Development"}
}

// RelatedServices maps each service to the offerings most often booked
// alongside it, used for cross-sell suggestions.
func RelatedServices() map[string][]string {
	return map[string][]string{
		"Keynote Speaking":       {"Corporate Training", "Team Building"},
		"Executive Coaching":     {"Leadership Development"},
		"Leadership Development": {"Executive Coaching", "Corporate Training"},
		"Team Building":          {"Corporate Training", "Keynote Speaking"},
		"Corporate Training":     {"Leadership Development"},
	}
}
