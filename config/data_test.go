package config

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServices_CatalogIsComplete(t *testing.T) {
	svcs := Services()
	require.NotEmpty(t, svcs)

	seen := map[string]bool{}
	for _, svc := range svcs {
		assert.NotEmpty(t, svc.ID)
		assert.NotEmpty(t, svc.Name)
		assert.False(t, seen[svc.Name], "duplicate service %q", svc.Name)
		seen[svc.Name] = true

		// English entries are the fallback for every other language and must
		// always exist.
		enRules, ok := svc.Rules[LangEnglish]
		require.True(t, ok, "service %q has no English rules", svc.Name)
		assert.NotEmpty(t, enRules.Keywords, "service %q", svc.Name)
		assert.NotEmpty(t, svc.Description[LangEnglish], "service %q", svc.Name)
		assert.NotEmpty(t, svc.Pricing, "service %q", svc.Name)

		for _, pkg := range svc.Pricing {
			assert.NotEmpty(t, pkg.Name)
			assert.Greater(t, pkg.Price, 0)
			assert.NotEmpty(t, pkg.Currency)
		}
	}
}

func TestServices_AllPatternsCompile(t *testing.T) {
	for _, svc := range Services() {
		for lang, rules := range svc.Rules {
			for _, src := range rules.Patterns {
				_, err := regexp.Compile(src)
				assert.NoError(t, err, "service %q lang %q pattern %q", svc.Name, lang, src)
			}
		}
	}
}

func TestCasualPatterns_AllCompile(t *testing.T) {
	for lang, set := range CasualPatterns() {
		for category, patterns := range set {
			for _, src := range patterns {
				_, err := regexp.Compile(src)
				assert.NoError(t, err, "lang %q category %q pattern %q", lang, category, src)
			}
		}
	}

	for lang, patterns := range QuestionPatterns() {
		for _, src := range patterns {
			_, err := regexp.Compile(src)
			assert.NoError(t, err, "lang %q question pattern %q", lang, src)
		}
	}
}

func TestServiceByName(t *testing.T) {
	svc, ok := ServiceByName("Keynote Speaking")
	require.True(t, ok)
	assert.Equal(t, "keynote", svc.ID)

	_, ok = ServiceByName("Astrology")
	assert.False(t, ok)
}

func TestPopularAndRelatedServicesExistInCatalog(t *testing.T) {
	names := map[string]bool{}
	for _, svc := range Services() {
		names[svc.Name] = true
	}

	for _, popular := range PopularServices() {
		assert.True(t, names[popular], "popular service %q not in catalog", popular)
	}

	for svc, related := range RelatedServices() {
		assert.True(t, names[svc], "related key %q not in catalog", svc)
		for _, r := range related {
			assert.True(t, names[r], "related service %q not in catalog", r)
			assert.NotEqual(t, svc, r, "service %q relates to itself", svc)
		}
	}
}

func TestFAQs_HaveEnglishEntries(t *testing.T) {
	faqs := FAQs()
	require.NotEmpty(t, faqs)

	for i, faq := range faqs {
		assert.NotEmpty(t, faq.Question[LangEnglish], "faq %d", i)
		assert.NotEmpty(t, faq.Answer[LangEnglish], "faq %d", i)
	}
}

func TestResponses_FallsBackToEnglish(t *testing.T) {
	assert.Equal(t, Responses(LangEnglish), Responses("de"))
	assert.NotEqual(t, Responses(LangEnglish), Responses(LangSwahili))
}

func TestSuggestions_FallsBackToEnglish(t *testing.T) {
	en := Suggestions(LangEnglish)
	assert.Equal(t, en.DiscoverTopic, Suggestions("fr").DiscoverTopic)
	assert.NotEmpty(t, en.Defaults)
	assert.NotEmpty(t, Suggestions(LangSwahili).Defaults)
}

func TestSuggestionTemplates_PlaceholdersRender(t *testing.T) {
	for _, lang := range []string{LangEnglish, LangSwahili} {
		tpls := Suggestions(lang)
		for strategy, entries := range tpls.Strategies {
			for _, tpl := range entries {
				rendered := fmt.Sprintf(tpl, "Team Building")
				assert.NotContains(t, rendered, "%!", "lang %q strategy %q template %q", lang, strategy, tpl)
			}
		}
		assert.NotContains(t, fmt.Sprintf(tpls.DiscoverTopic, "Team Building"), "%!")
		assert.NotContains(t, fmt.Sprintf(tpls.CrossSell, "Team Building"), "%!")
	}
}

func TestLanguageMarkers_SwahiliScannedFirst(t *testing.T) {
	markers := LanguageMarkers()
	require.NotEmpty(t, markers)
	assert.Equal(t, LangSwahili, markers[0].Code)
}
