package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Importance ranks a detailed clause
type Importance string

const (
	ImportanceCritical  Importance = "critical"
	ImportanceImportant Importance = "important"
	ImportanceModerate  Importance = "moderate"
)

// RiskyClause is a clause flagged as unfavourable
type RiskyClause struct {
	Title             string    `json:"title"`
	SimpleTitle       string    `json:"simple_title"`
	OriginalText      string    `json:"original_text"`
	Explanation       string    `json:"explanation"`
	SimpleExplanation string    `json:"simple_explanation"`
	Risk              string    `json:"risk"`
	Severity          RiskLevel `json:"severity"`
}

// DetailedClause is a clause translated into plain language
type DetailedClause struct {
	Title             string     `json:"title"`
	SimpleTitle       string     `json:"simple_title"`
	OriginalText      string     `json:"original_text"`
	Explanation       string     `json:"explanation"`
	SimpleExplanation string     `json:"simple_explanation"`
	Risk              string     `json:"risk,omitempty"`
	Suggestion        string     `json:"suggestion,omitempty"`
	Importance        Importance `json:"importance"`
}

// LegalTerm is one glossary entry
type LegalTerm struct {
	Term             string `json:"term"`
	Definition       string `json:"definition"`
	SimpleDefinition string `json:"simple_definition"`
	Example          string `json:"example,omitempty"`
}

// Right is a protection the reader has under the law
type Right struct {
	Title             string `json:"title"`
	Explanation       string `json:"explanation"`
	SimpleExplanation string `json:"simple_explanation"`
	LegalBasis        string `json:"legal_basis"`
}

// ChecklistItem is a follow-up action for the reader
type ChecklistItem struct {
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	SimpleDescription string    `json:"simple_description"`
	Urgency           RiskLevel `json:"urgency"`
}

// Party names who carries an obligation under a contract
type Party string

const (
	PartyTenant   Party = "tenant"
	PartyLandlord Party = "landlord"
)

// ContractTerms holds the comparable numeric terms of an agreement.
// Zero values mean the term was not found in the document.
type ContractTerms struct {
	SecurityDepositMonths  float64 `json:"security_deposit_months,omitempty"`
	RenewalNoticeDays      int     `json:"renewal_notice_days,omitempty"`
	RentIncreaseNoticeDays int     `json:"rent_increase_notice_days,omitempty"`
	EvictionNoticeDays     int     `json:"eviction_notice_days,omitempty"`
	// MaintenancePayer pays repair costs above MaintenanceThreshold
	MaintenancePayer     Party   `json:"maintenance_payer,omitempty"`
	MaintenanceThreshold float64 `json:"maintenance_threshold,omitempty"`
}

// Empty reports whether no term was found
func (t ContractTerms) Empty() bool {
	return t == ContractTerms{}
}

// DocumentAnalysis is the plain-language explanation of a document
type DocumentAnalysis struct {
	Summary         string           `json:"summary"`
	SimpleSummary   string           `json:"simple_summary"`
	KeyPoints       []string         `json:"key_points"`
	RiskLevel       RiskLevel        `json:"risk_level"`
	Concerns        []string         `json:"concerns"`
	RiskyClauses    []RiskyClause    `json:"risky_clauses"`
	DetailedClauses []DetailedClause `json:"detailed_clauses"`
	LegalTerms      []LegalTerm      `json:"legal_terms"`
	Rights          []Right          `json:"rights"`
	Checklist       []ChecklistItem  `json:"checklist"`
	Terms           ContractTerms    `json:"terms"`
}

// ErrInvalidAnalysis is returned by Validate for malformed analyses
var ErrInvalidAnalysis = errors.New("invalid document analysis")

// Validate checks enum fields before an analysis is accepted from a collaborator
func (a *DocumentAnalysis) Validate() error {
	if a == nil {
		return fmt.Errorf("%w: nil", ErrInvalidAnalysis)
	}
	if !a.RiskLevel.Valid() {
		return fmt.Errorf("%w: risk_level %q", ErrInvalidAnalysis, a.RiskLevel)
	}
	if a.Summary == "" {
		return fmt.Errorf("%w: empty summary", ErrInvalidAnalysis)
	}
	for i, c := range a.RiskyClauses {
		if !c.Severity.Valid() {
			return fmt.Errorf("%w: risky_clauses[%d].severity %q", ErrInvalidAnalysis, i, c.Severity)
		}
	}
	for i, c := range a.DetailedClauses {
		switch c.Importance {
		case ImportanceCritical, ImportanceImportant, ImportanceModerate:
		default:
			return fmt.Errorf("%w: detailed_clauses[%d].importance %q", ErrInvalidAnalysis, i, c.Importance)
		}
	}
	for i, item := range a.Checklist {
		if !item.Urgency.Valid() {
			return fmt.Errorf("%w: checklist[%d].urgency %q", ErrInvalidAnalysis, i, item.Urgency)
		}
	}
	return nil
}

// Value implements driver.Valuer for JSONB
func (a DocumentAnalysis) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan implements sql.Scanner for JSONB
func (a *DocumentAnalysis) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported analysis type %T", value)
	}

	if len(bytes) == 0 {
		return nil
	}

	return json.Unmarshal(bytes, a)
}
