package matcher

import (
	"sync"
	"testing"

	"legalclarify-backend/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     Category
	}{
		{name: "security keyword", question: "What about my SECURITY deposit?", want: SecurityDeposit},
		{name: "deposit keyword", question: "Is this deposit refundable", want: SecurityDeposit},
		{name: "rent with raise", question: "Can landlord raise rent without warning?", want: RentIncrease},
		{name: "rent with increase", question: "how often can the rent increase", want: RentIncrease},
		{name: "rent alone", question: "when is rent due", want: General},
		{name: "raise alone", question: "can I raise a complaint", want: General},
		{name: "repair", question: "Who pays for repairs?", want: Maintenance},
		{name: "fix beats rights", question: "What are my rights if the landlord doesn't fix things?", want: Maintenance},
		{name: "evict", question: "Can they evict me in winter?", want: Eviction},
		{name: "kick out phrase", question: "will they kick out my family", want: Eviction},
		{name: "kick me out is not the phrase", question: "Can my landlord kick me out without much warning?", want: General},
		{name: "terminate", question: "can the owner terminate the lease", want: Eviction},
		{name: "rights", question: "what rights do I have", want: Rights},
		{name: "protect", question: "does any law protect tenants", want: Rights},
		{name: "rent raise beats rights", question: "rights when rent raise happens", want: RentIncrease},
		{name: "early move", question: "What happens if I need to move out early?", want: EarlyTermination},
		{name: "early without move", question: "can I pay early", want: General},
		{name: "deposit beats everything", question: "will they evict me and keep the deposit", want: SecurityDeposit},
		{name: "empty", question: "", want: General},
		{name: "whitespace", question: "   \t ", want: General},
		{name: "unrelated", question: "What if something expensive breaks - who pays?", want: General},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.question))
		})
	}
}

func TestMatchResponse(t *testing.T) {
	m := Default()

	t.Run("Empty question returns general English text", func(t *testing.T) {
		assert.Equal(t, defaultResponses["en"][string(General)], MatchResponse("", "en"))
	})

	t.Run("Case-insensitive security match", func(t *testing.T) {
		got := MatchResponse("What about my SECURITY deposit?", "en")
		assert.Equal(t, defaultResponses["en"][string(SecurityDeposit)], got)
		assert.NotEqual(t, defaultResponses["en"][string(General)], got)
	})

	t.Run("Rent raise in Hindi", func(t *testing.T) {
		got := MatchResponse("Can landlord raise rent without warning?", "hi")
		assert.Equal(t, defaultResponses["hi"][string(RentIncrease)], got)
	})

	t.Run("Missing translation falls back to English", func(t *testing.T) {
		got := MatchResponse("security deposit?", "ta")
		assert.Equal(t, defaultResponses["en"][string(SecurityDeposit)], got)
	})

	t.Run("Unsupported language falls back to English", func(t *testing.T) {
		got := MatchResponse("can they evict me", "fr")
		assert.Equal(t, defaultResponses["en"][string(Eviction)], got)
	})

	t.Run("Regional tag resolves to base language", func(t *testing.T) {
		got := m.MatchResponse("can they evict me", "te-IN")
		assert.Equal(t, defaultResponses["te"][string(Eviction)], got)
	})
}

func TestEveryCategoryAndLanguageHasText(t *testing.T) {
	m := Default()
	categories := m.Categories()
	require.Len(t, categories, 7)

	for _, category := range categories {
		require.NotEmpty(t, defaultResponses[i18n.Default][string(category)], "default text for %s", category)
		for _, lang := range i18n.Languages() {
			assert.NotEmpty(t, m.Text(category, lang.Code), "%s/%s", category, lang.Code)
		}
	}
}

func TestResolve(t *testing.T) {
	m := Default()

	t.Run("Translated entry", func(t *testing.T) {
		got := m.Resolve(MatchRequest{Question: "my rights?", Language: "hi"})
		assert.Equal(t, Rights, got.Category)
		assert.Equal(t, "hi", got.Language)
		assert.False(t, got.Fallback)
	})

	t.Run("Fallback entry", func(t *testing.T) {
		got := m.Resolve(MatchRequest{Question: "hello", Language: "te"})
		assert.Equal(t, General, got.Category)
		assert.True(t, got.Fallback)
		assert.Equal(t, defaultResponses["en"][string(General)], got.Text)
	})
}

func TestMissingCatalogEntryReturnsKey(t *testing.T) {
	m := New(defaultRules, i18n.Table{"en": {}}, General)

	assert.Equal(t, string(SecurityDeposit), m.MatchResponse("deposit", "en"))
	assert.Equal(t, string(General), m.MatchResponse("anything", "hi"))
}

func TestRulesAreCopies(t *testing.T) {
	m := Default()
	rules := m.Rules()
	rules[0].Category = General

	assert.Equal(t, SecurityDeposit, m.Rules()[0].Category)
	assert.Equal(t, SecurityDeposit, m.Classify("deposit"))
}

func TestConcurrentUseIsStable(t *testing.T) {
	questions := []string{"deposit", "rent increase", "repair", "evict", "rights", "move early", "hi"}
	want := make([]string, len(questions))
	for i, q := range questions {
		want[i] = MatchResponse(q, "hi")
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, q := range questions {
				assert.Equal(t, want[i], MatchResponse(q, "hi"))
			}
		}()
	}
	wg.Wait()
}
