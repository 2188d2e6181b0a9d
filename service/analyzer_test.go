package service

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"legalclarify-backend/extract"
	"legalclarify-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockAnalyzer(t *testing.T) {
	ctx := context.Background()
	a := NewMockAnalyzer(0)

	tests := []struct {
		docType string
		want    models.RiskLevel
	}{
		{docType: extract.TypeRental, want: models.RiskMedium},
		{docType: extract.TypeGeneric, want: models.RiskMedium},
		{docType: extract.TypeEmployment, want: models.RiskLow},
		{docType: extract.TypeLoan, want: models.RiskHigh},
	}
	for _, tt := range tests {
		t.Run(tt.docType, func(t *testing.T) {
			analysis, err := a.Analyze(ctx, AnalyzeInput{DocumentType: tt.docType})
			require.NoError(t, err)
			assert.Equal(t, tt.want, analysis.RiskLevel)
			assert.NoError(t, analysis.Validate())
		})
	}

	t.Run("Fixed rental terms without text", func(t *testing.T) {
		analysis, err := a.Analyze(ctx, AnalyzeInput{DocumentType: extract.TypeRental})
		require.NoError(t, err)
		assert.Equal(t, 2.0, analysis.Terms.SecurityDepositMonths)
		assert.Equal(t, models.PartyTenant, analysis.Terms.MaintenancePayer)
	})

	t.Run("Extracted terms replace fixed ones", func(t *testing.T) {
		analysis, err := a.Analyze(ctx, AnalyzeInput{DocumentType: extract.TypeRental, Content: "Deposit of 3 months rent is payable."})
		require.NoError(t, err)
		assert.Equal(t, models.ContractTerms{SecurityDepositMonths: 3}, analysis.Terms)
	})

	t.Run("Results are independent", func(t *testing.T) {
		first, err := a.Analyze(ctx, AnalyzeInput{})
		require.NoError(t, err)
		first.KeyPoints[0] = "mutated"
		second, err := a.Analyze(ctx, AnalyzeInput{})
		require.NoError(t, err)
		assert.NotEqual(t, "mutated", second.KeyPoints[0])
	})

	t.Run("Honours cancellation during delay", func(t *testing.T) {
		cctx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
		defer cancel()
		_, err := NewMockAnalyzer(time.Minute).Analyze(cctx, AnalyzeInput{})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

type fakeGenerator struct {
	out    string
	err    error
	prompt string
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.out, g.err
}

func TestGeminiAnalyzer(t *testing.T) {
	ctx := context.Background()
	quiet := GeminiWithLogger(log.New(io.Discard, "", 0))

	valid := employmentAnalysis()
	valid.RiskLevel = "LOW"
	raw, err := json.Marshal(valid)
	require.NoError(t, err)

	t.Run("Uses model output", func(t *testing.T) {
		gen := &fakeGenerator{out: "```json\n" + string(raw) + "\n```"}
		a := NewGeminiAnalyzer(GeminiWithGenerator(gen), quiet)

		analysis, err := a.Analyze(ctx, AnalyzeInput{Name: "offer.pdf", DocumentType: extract.TypeEmployment, Content: "salary", Language: "ta"})
		require.NoError(t, err)
		assert.Equal(t, models.RiskLow, analysis.RiskLevel)
		assert.Equal(t, valid.Summary, analysis.Summary)
		assert.Contains(t, gen.prompt, "Document name: offer.pdf")
		assert.Contains(t, gen.prompt, "Tamil")
	})

	t.Run("Falls back on invalid output", func(t *testing.T) {
		a := NewGeminiAnalyzer(GeminiWithGenerator(&fakeGenerator{out: `{"risk_level":"catastrophic"}`}), quiet)
		analysis, err := a.Analyze(ctx, AnalyzeInput{DocumentType: extract.TypeLoan})
		require.NoError(t, err)
		assert.Equal(t, models.RiskHigh, analysis.RiskLevel)
	})

	t.Run("Falls back on generation error", func(t *testing.T) {
		a := NewGeminiAnalyzer(GeminiWithGenerator(&fakeGenerator{err: errBoom}), quiet)
		analysis, err := a.Analyze(ctx, AnalyzeInput{DocumentType: extract.TypeRental})
		require.NoError(t, err)
		assert.Equal(t, models.RiskMedium, analysis.RiskLevel)
	})

	t.Run("Without a client", func(t *testing.T) {
		a := NewGeminiAnalyzer(GeminiWithClient(nil, "unused"), quiet)
		analysis, err := a.Analyze(ctx, AnalyzeInput{})
		require.NoError(t, err)
		assert.Equal(t, models.RiskMedium, analysis.RiskLevel)
	})

	t.Run("Cancelled context is not masked", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		a := NewGeminiAnalyzer(GeminiWithGenerator(&fakeGenerator{err: context.Canceled}), quiet)
		_, err := a.Analyze(cctx, AnalyzeInput{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestBuildAnalysisPromptTruncatesOnRuneBoundary(t *testing.T) {
	content := "a" + strings.Repeat("क", maxPromptChars)
	prompt := buildAnalysisPrompt(AnalyzeInput{Content: content})

	body := prompt[strings.Index(prompt, "Document text:\n")+len("Document text:\n"):]
	assert.LessOrEqual(t, len(body), maxPromptChars)
	assert.True(t, strings.HasSuffix(body, "क"))
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("  {\"a\":1} "))
}
