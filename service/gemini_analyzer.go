package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"legalclarify-backend/i18n"
	"legalclarify-backend/models"

	"github.com/google/generative-ai-go/genai"
)

// maxPromptChars bounds the document text sent to the model
const maxPromptChars = 60000

// TextGenerator turns a prompt into model output
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// geminiGenerator calls a Gemini model that answers in JSON
type geminiGenerator struct {
	model *genai.GenerativeModel
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
		return "", fmt.Errorf("API blocked prompt: %s", resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 {
		return "", errors.New("API returned no candidates")
	}

	var out strings.Builder
	for i, candidate := range resp.Candidates {
		if candidate.FinishReason != genai.FinishReasonStop && candidate.FinishReason != genai.FinishReasonUnspecified {
			log.Printf("Warning: Candidate %d finished with reason: %s", i, candidate.FinishReason)
		}
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				out.WriteString(string(text))
			}
		}
	}

	if out.Len() == 0 {
		return "", errors.New("API returned empty content")
	}
	return out.String(), nil
}

// GeminiAnalyzer asks a Gemini model for the analysis and falls back to
// another analyzer when the call fails or the answer does not validate.
type GeminiAnalyzer struct {
	generator TextGenerator
	fallback  Analyzer
	logger    *log.Logger
}

var _ Analyzer = (*GeminiAnalyzer)(nil)

// GeminiOption is a functional option for GeminiAnalyzer
type GeminiOption func(*GeminiAnalyzer)

// GeminiWithClient uses modelName on client for generation
func GeminiWithClient(client *genai.Client, modelName string) GeminiOption {
	return func(a *GeminiAnalyzer) {
		if client == nil {
			return
		}
		model := client.GenerativeModel(modelName)
		model.ResponseMIMEType = "application/json"
		model.SetTemperature(0.2)
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemInstruction)},
		}
		a.generator = &geminiGenerator{model: model}
	}
}

// GeminiWithGenerator sets the text generator directly
func GeminiWithGenerator(g TextGenerator) GeminiOption {
	return func(a *GeminiAnalyzer) {
		a.generator = g
	}
}

// GeminiWithFallback sets the analyzer used when generation fails
func GeminiWithFallback(fallback Analyzer) GeminiOption {
	return func(a *GeminiAnalyzer) {
		a.fallback = fallback
	}
}

// GeminiWithLogger sets the logger
func GeminiWithLogger(l *log.Logger) GeminiOption {
	return func(a *GeminiAnalyzer) {
		a.logger = l
	}
}

// NewGeminiAnalyzer creates a Gemini-backed analyzer. Without a fallback it
// uses an undelayed MockAnalyzer.
func NewGeminiAnalyzer(opts ...GeminiOption) *GeminiAnalyzer {
	a := &GeminiAnalyzer{}
	for _, opt := range opts {
		opt(a)
	}
	if a.fallback == nil {
		a.fallback = NewMockAnalyzer(0)
	}
	if a.logger == nil {
		a.logger = log.Default()
	}
	return a
}

// Analyze implements Analyzer
func (a *GeminiAnalyzer) Analyze(ctx context.Context, in AnalyzeInput) (*models.DocumentAnalysis, error) {
	if a.generator == nil {
		return a.fallback.Analyze(ctx, in)
	}

	analysis, err := a.generate(ctx, in)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		a.logger.Printf("Warning: Gemini analysis of %s failed, using fallback: %v", in.DocumentID, err)
		return a.fallback.Analyze(ctx, in)
	}
	return analysis, nil
}

func (a *GeminiAnalyzer) generate(ctx context.Context, in AnalyzeInput) (*models.DocumentAnalysis, error) {
	raw, err := a.generator.Generate(ctx, buildAnalysisPrompt(in))
	if err != nil {
		return nil, err
	}

	var analysis models.DocumentAnalysis
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &analysis); err != nil {
		return nil, fmt.Errorf("failed to decode analysis: %w", err)
	}
	analysis.RiskLevel, _ = models.ParseRiskLevel(string(analysis.RiskLevel))
	if err := analysis.Validate(); err != nil {
		return nil, err
	}
	return &analysis, nil
}

const systemInstruction = `You explain legal documents to people without legal training.
Answer with a single JSON object and nothing else. Use these keys:
summary, simple_summary, key_points (array of strings), risk_level (low|medium|high),
concerns (array of strings),
risky_clauses (array of {title, simple_title, original_text, explanation, simple_explanation, risk, severity (low|medium|high)}),
detailed_clauses (array of {title, simple_title, original_text, explanation, simple_explanation, risk, suggestion, importance (critical|important|moderate)}),
legal_terms (array of {term, definition, simple_definition, example}),
rights (array of {title, explanation, simple_explanation, legal_basis}),
checklist (array of {title, description, simple_description, urgency (low|medium|high)}),
terms ({security_deposit_months, renewal_notice_days, rent_increase_notice_days, eviction_notice_days, maintenance_payer (tenant|landlord), maintenance_threshold}; omit what the document does not state).
Quote original_text exactly from the document. Cite Indian law in legal_basis where it applies.`

func buildAnalysisPrompt(in AnalyzeInput) string {
	content := in.Content
	if len(content) > maxPromptChars {
		cut := maxPromptChars
		for cut > 0 && !utf8.RuneStart(content[cut]) {
			cut--
		}
		content = content[:cut]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Document name: %s\n", in.Name)
	fmt.Fprintf(&b, "Document type: %s\n", in.DocumentType)
	fmt.Fprintf(&b, "Write the simple_* fields in %s.\n\n", i18n.Get(in.Language).Name)
	b.WriteString("Document text:\n")
	b.WriteString(content)
	return b.String()
}

// stripCodeFence removes a ```json fence some models wrap around JSON output
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
