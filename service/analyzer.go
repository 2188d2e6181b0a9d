package service

import (
	"context"
	"time"

	"legalclarify-backend/extract"
	"legalclarify-backend/models"

	"github.com/google/uuid"
)

// AnalyzeInput is the document handed to an Analyzer
type AnalyzeInput struct {
	DocumentID   uuid.UUID
	Name         string
	DocumentType string
	Content      string
	Language     string
}

// Analyzer produces the plain-language analysis of a document
type Analyzer interface {
	Analyze(ctx context.Context, in AnalyzeInput) (*models.DocumentAnalysis, error)
}

// MockAnalyzer returns a fixed analysis per document type after Delay.
// Contract terms found in the document text replace the fixed ones so that
// comparisons reflect what was uploaded.
type MockAnalyzer struct {
	Delay time.Duration
}

var _ Analyzer = (*MockAnalyzer)(nil)

// NewMockAnalyzer creates a mock analyzer that waits delay before answering
func NewMockAnalyzer(delay time.Duration) *MockAnalyzer {
	return &MockAnalyzer{Delay: delay}
}

// Analyze implements Analyzer
func (a *MockAnalyzer) Analyze(ctx context.Context, in AnalyzeInput) (*models.DocumentAnalysis, error) {
	if a.Delay > 0 {
		timer := time.NewTimer(a.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	var analysis *models.DocumentAnalysis
	switch in.DocumentType {
	case extract.TypeEmployment:
		analysis = employmentAnalysis()
	case extract.TypeLoan:
		analysis = loanAnalysis()
	default:
		analysis = rentalAnalysis()
	}

	if terms := extract.ExtractTerms(in.Content); !terms.Empty() {
		analysis.Terms = terms
	}
	return analysis, nil
}
