package sections

import (
	"sync"
	"testing"

	"legalclarify-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(list []models.LegalSection) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.Section)
	}
	return out
}

func TestAdviseSections(t *testing.T) {
	tests := []struct {
		name         string
		documentType string
		risk         models.RiskLevel
		want         []string
	}{
		{name: "rental medium", documentType: "Mumbai Rental Agreement", risk: models.RiskMedium, want: []string{"420", "406", "506"}},
		{name: "lease low", documentType: "Commercial LEASE", risk: models.RiskLow, want: []string{"420", "406", "506"}},
		{name: "employment high is truncated", documentType: "IT Job Contract", risk: models.RiskHigh, want: []string{"415", "405", "504"}},
		{name: "rental high hides forgery", documentType: "Rental Agreement", risk: models.RiskHigh, want: []string{"420", "406", "506"}},
		{name: "generic high", documentType: "Personal Loan Agreement", risk: models.RiskHigh, want: []string{"463", "420"}},
		{name: "generic low", documentType: "Generic Contract", risk: models.RiskLow, want: []string{}},
		{name: "empty input", documentType: "", risk: "", want: []string{}},
		{name: "unknown risk", documentType: "Loan", risk: "extreme", want: []string{}},
		{name: "rental and employment", documentType: "rental job housing", risk: models.RiskLow, want: []string{"420", "406", "506"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdviseSections(tt.documentType, tt.risk)
			assert.Equal(t, tt.want, ids(got))
			assert.LessOrEqual(t, len(got), MaxAdvised)
		})
	}
}

func TestAdviseReturnsCopies(t *testing.T) {
	got := AdviseSections("Rental Agreement", models.RiskLow)
	require.NotEmpty(t, got)

	got[0].Title = "changed"
	got[0].RelatedSections[0] = "000"

	fresh, ok := Lookup("420")
	require.True(t, ok)
	assert.Equal(t, "Cheating and dishonestly inducing delivery of property", fresh.Title)
	assert.Equal(t, "415", fresh.RelatedSections[0])
}

func TestAdviseRequest(t *testing.T) {
	got := Advise(AdviceRequest{DocumentType: "Employment Contract", RiskLevel: models.RiskMedium})
	assert.Equal(t, []string{"415", "405", "504"}, ids(got))

	t.Run("Risk level is case-insensitive", func(t *testing.T) {
		got := Advise(AdviceRequest{DocumentType: "Loan", RiskLevel: "HIGH"})
		assert.Equal(t, []string{"463", "420"}, ids(got))
	})

	t.Run("Unknown risk level adds nothing", func(t *testing.T) {
		got := Advise(AdviceRequest{DocumentType: "Loan", RiskLevel: "extreme"})
		assert.Empty(t, got)
	})
}

func TestAdviseIsStable(t *testing.T) {
	inputs := []AdviceRequest{
		{DocumentType: "Rental Agreement", RiskLevel: models.RiskHigh},
		{DocumentType: "Employment Contract", RiskLevel: models.RiskLow},
		{DocumentType: "Personal Loan", RiskLevel: models.RiskHigh},
		{DocumentType: "Generic Contract", RiskLevel: models.RiskMedium},
	}
	want := make([][]models.LegalSection, len(inputs))
	for i, in := range inputs {
		want[i] = AdviseSections(in.DocumentType, in.RiskLevel)
		assert.Equal(t, want[i], AdviseSections(in.DocumentType, in.RiskLevel))
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, in := range inputs {
				assert.Equal(t, want[i], AdviseSections(in.DocumentType, in.RiskLevel))
			}
		}()
	}
	wg.Wait()
}

func TestLookupAndAll(t *testing.T) {
	t.Run("Known section", func(t *testing.T) {
		s, ok := Lookup(" 506 ")
		require.True(t, ok)
		assert.Equal(t, "Punishment for criminal intimidation", s.Title)
	})

	t.Run("Unknown section", func(t *testing.T) {
		_, ok := Lookup("999")
		assert.False(t, ok)
	})

	t.Run("All is sorted", func(t *testing.T) {
		assert.Equal(t, []string{"405", "406", "415", "420", "463", "504", "506"}, ids(All()))
	})
}

func TestRelated(t *testing.T) {
	assert.Equal(t, []string{"415"}, ids(Related("420")))
	assert.Equal(t, []string{"506"}, ids(Related("504")))
	assert.Empty(t, Related("463"))
	assert.Nil(t, Related("nope"))
}

func TestDanglingReferences(t *testing.T) {
	dangling := DanglingReferences()

	assert.Equal(t, []string{"417", "418", "419"}, dangling["420"])
	assert.Len(t, dangling["463"], 8)
	_, has405 := dangling["405"]
	assert.True(t, has405)
	for id, refs := range dangling {
		for _, ref := range refs {
			_, ok := Lookup(ref)
			assert.False(t, ok, "%s -> %s", id, ref)
		}
	}
}
