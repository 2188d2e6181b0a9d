// Package sections maps a document's type and risk level to illustrative
// penal code sections. Results are informational and are not legal advice.
package sections

import (
	"sort"
	"strings"

	"legalclarify-backend/models"
)

// Disclaimer accompanies every advised section list exposed to clients
const Disclaimer = "These sections are shown for general awareness only and are not legal advice. Consult a qualified lawyer about your situation."

// MaxAdvised caps the number of sections returned by AdviseSections
const MaxAdvised = 3

// AdviceRequest names the inputs of one advisor call
type AdviceRequest struct {
	DocumentType string           `json:"document_type" form:"document_type"`
	RiskLevel    models.RiskLevel `json:"risk_level" form:"risk_level"`
}

type adviceRule struct {
	keywords []string
	risk     models.RiskLevel
	sections []string
}

func (r adviceRule) applies(lowered string, risk models.RiskLevel) bool {
	if r.risk != "" {
		return risk == r.risk
	}
	for _, kw := range r.keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// Rules are evaluated in order and every applying rule contributes
var adviceRules = []adviceRule{
	{keywords: []string{"rental", "lease"}, sections: []string{"420", "406", "506"}},
	{keywords: []string{"employment", "job"}, sections: []string{"415", "405", "504"}},
	{risk: models.RiskHigh, sections: []string{"463", "420"}},
}

// AdviseSections returns up to MaxAdvised sections relevant to a document.
// Contributions are concatenated in rule order and then truncated, so a late
// rule can be cut off entirely. Duplicates are not removed.
func AdviseSections(documentType string, riskLevel models.RiskLevel) []models.LegalSection {
	lowered := strings.ToLower(documentType)

	var ids []string
	for _, rule := range adviceRules {
		if rule.applies(lowered, riskLevel) {
			ids = append(ids, rule.sections...)
		}
	}
	if len(ids) > MaxAdvised {
		ids = ids[:MaxAdvised]
	}

	out := make([]models.LegalSection, 0, len(ids))
	for _, id := range ids {
		if s, ok := catalog[id]; ok {
			out = append(out, s.Clone())
		}
	}
	return out
}

// Advise is AdviseSections for a request value. The risk level is parsed
// case-insensitively; an unrecognised one contributes no sections.
func Advise(req AdviceRequest) []models.LegalSection {
	risk, _ := models.ParseRiskLevel(string(req.RiskLevel))
	return AdviseSections(req.DocumentType, risk)
}

// Lookup returns a copy of one catalog section
func Lookup(section string) (models.LegalSection, bool) {
	s, ok := catalog[strings.TrimSpace(section)]
	if !ok {
		return models.LegalSection{}, false
	}
	return s.Clone(), true
}

// All returns every catalog section ordered by section number
func All() []models.LegalSection {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]models.LegalSection, 0, len(ids))
	for _, id := range ids {
		out = append(out, catalog[id].Clone())
	}
	return out
}

// Related resolves the related sections of section that exist in the catalog
func Related(section string) []models.LegalSection {
	s, ok := catalog[strings.TrimSpace(section)]
	if !ok {
		return nil
	}
	out := make([]models.LegalSection, 0, len(s.RelatedSections))
	for _, id := range s.RelatedSections {
		if rel, ok := catalog[id]; ok {
			out = append(out, rel.Clone())
		}
	}
	return out
}

// DanglingReferences reports, per section, the related ids missing from the catalog
func DanglingReferences() map[string][]string {
	out := make(map[string][]string)
	for id, s := range catalog {
		for _, rel := range s.RelatedSections {
			if _, ok := catalog[rel]; !ok {
				out[id] = append(out[id], rel)
			}
		}
	}
	return out
}
