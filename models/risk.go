package models

import "strings"

// RiskLevel is the coarse severity attached to a document analysis
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ParseRiskLevel parses a risk level case-insensitively
func ParseRiskLevel(s string) (RiskLevel, bool) {
	switch RiskLevel(strings.ToLower(strings.TrimSpace(s))) {
	case RiskLow:
		return RiskLow, true
	case RiskMedium:
		return RiskMedium, true
	case RiskHigh:
		return RiskHigh, true
	}
	return "", false
}

// Valid reports whether r is one of the known levels
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// Icon returns the badge glyph shown next to a risk level
func (r RiskLevel) Icon() string {
	switch r {
	case RiskHigh:
		return "🚨"
	case RiskMedium:
		return "⚠️"
	case RiskLow:
		return "✅"
	default:
		return "📄"
	}
}

// Badge returns the badge colour name for a risk level
func (r RiskLevel) Badge() string {
	switch r {
	case RiskHigh:
		return "red"
	case RiskMedium:
		return "yellow"
	case RiskLow:
		return "green"
	default:
		return "gray"
	}
}
