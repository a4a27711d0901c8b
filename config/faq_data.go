package config

// FAQEntry is one canned question/answer pair per language.
type FAQEntry struct {
	Question map[string]string
	Answer   map[string]string
}

// FAQs returns the static FAQ list. Matching is done on word overlap with
// the question text, so questions should carry the distinctive words.
func FAQs() []FAQEntry {
	return []FAQEntry{
		{
			Question: map[string]string{
				LangEnglish: "How far in advance should I book a speaking engagement?",
				LangSwahili: "Nifanye booking ya hotuba mapema kiasi gani?",
			},
			Answer: map[string]string{
				LangEnglish: "For keynotes and conference engagements we recommend booking at least 4-6 weeks in advance. Popular dates around end-of-year events fill up earlier, so reach out as soon as your date is fixed.",
				LangSwahili: "Kwa hotuba kuu na makongamano tunashauri kufanya booking angalau wiki 4-6 kabla. Tarehe za msimu wa matukio ya mwisho wa mwaka hujaa mapema, hivyo wasiliana nasi mara tarehe yako inapothibitika.",
			},
		},
		{
			Question: map[string]string{
				LangEnglish: "Do you travel outside the country for events?",
				LangSwahili: "Je, unasafiri nje ya nchi kwa ajili ya matukio?",
			},
			Answer: map[string]string{
				LangEnglish: "Yes. International engagements are welcome across East Africa and beyond. The host covers travel and accommodation, which we agree on before confirming the date.",
				LangSwahili: "Ndiyo. Matukio ya kimataifa yanakaribishwa Afrika Mashariki na kwingineko. Mwenyeji hugharamia usafiri na malazi, jambo tunalokubaliana kabla ya kuthibitisha tarehe.",
			},
		},
		{
			Question: map[string]string{
				LangEnglish: "Do you offer virtual sessions online?",
				LangSwahili: "Je, unatoa vipindi vya mtandaoni?",
			},
			Answer: map[string]string{
				LangEnglish: "Absolutely. Coaching, leadership programs and most workshops can be delivered virtually over Zoom or Teams, and virtual keynotes are available for distributed audiences.",
				LangSwahili: "Bila shaka. Ukocha, programu za uongozi na warsha nyingi zinaweza kufanyika mtandaoni kupitia Zoom au Teams, na hotuba za mtandaoni zinapatikana kwa hadhira zilizotawanyika.",
			},
		},
		{
			Question: map[string]string{
				LangEnglish: "Where can I buy your books and event tickets?",
				LangSwahili: "Naweza kununua wapi vitabu vyako na tiketi za matukio?",
			},
			Answer: map[string]string{
				LangEnglish: "Books and event tickets are available right here on the website - check the Shop and Events pages. Tickets come with a QR code you present at the door.",
				LangSwahili: "Vitabu na tiketi za matukio vinapatikana hapa hapa kwenye tovuti - angalia kurasa za Duka na Matukio. Tiketi huja na QR code unayoonyesha mlangoni.",
			},
		},
		{
			Question: map[string]string{
				LangEnglish: "What payment methods do you accept?",
				LangSwahili: "Mnapokea njia gani za malipo?",
			},
			Answer: map[string]string{
				LangEnglish: "We accept bank transfer, mobile money (M-Pesa, Tigo Pesa, Airtel Money) and major cards. Corporate clients can request an invoice with standard 14-day terms.",
				LangSwahili: "Tunapokea malipo kwa benki, pesa za simu (M-Pesa, Tigo Pesa, Airtel Money) na kadi kuu. Wateja wa makampuni wanaweza kuomba ankara yenye muda wa kawaida wa siku 14.",
			},
		},
	}
}

// ContactInfo is the static contact card rendered by the contact response.
type ContactInfo struct {
	Email    string
	Phone    string
	Location string
	Hours    map[string]string
}

// Contact returns the site's contact details.
func Contact() ContactInfo {
	return ContactInfo{
		Email:    "bookings@barakaspeaks.co.tz",
		Phone:    "+255 713 555 021",
		Location: "Mikocheni, Dar es Salaam, Tanzania",
		Hours: map[string]string{
			LangEnglish: "Monday to Friday, 9:00 - 17:00 EAT",
			LangSwahili: "Jumatatu hadi Ijumaa, saa 3:00 asubuhi - saa 11:00 jioni",
		},
	}
}
