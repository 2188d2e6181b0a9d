// Package matcher selects a canned explanation for a free-text question.
//
// Questions are lowercased and tested against an ordered list of keyword
// rules; the first rule that matches decides the category, and anything that
// matches nothing falls through to the general category. Response text is
// resolved per language with the i18n fallback chain, so MatchResponse is
// total: it never fails and never returns an empty string for a configured
// category.
package matcher

import (
	"strings"

	"legalclarify-backend/i18n"
)

// Category is the key of one canned explanation
type Category string

// Rule maps keyword triggers to a category.
// The rule matches when any AnyOf keyword occurs, or when every AllOf group
// has at least one keyword present. Keywords must be lowercase.
type Rule struct {
	Category Category   `json:"category" yaml:"category"`
	AnyOf    []string   `json:"any_of,omitempty" yaml:"any_of,omitempty"`
	AllOf    [][]string `json:"all_of,omitempty" yaml:"all_of,omitempty"`
}

// Matches tests the rule against an already lowercased question
func (r Rule) Matches(lowered string) bool {
	if containsAny(lowered, r.AnyOf) {
		return true
	}
	if len(r.AllOf) == 0 {
		return false
	}
	for _, group := range r.AllOf {
		if !containsAny(lowered, group) {
			return false
		}
	}
	return true
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// MatchRequest is one question to answer
type MatchRequest struct {
	Question string `json:"question" yaml:"question"`
	Language string `json:"language" yaml:"language"`
}

// Match is the resolved answer for a MatchRequest
type Match struct {
	Category Category `json:"category" yaml:"category"`
	// Language is the normalized language the caller asked for
	Language string `json:"language" yaml:"language"`
	Text     string `json:"text" yaml:"text"`
	// Fallback is set when Text did not come from the requested language
	Fallback bool `json:"fallback" yaml:"fallback"`
}

// Matcher evaluates rules over a response catalog. The zero value is not usable; see New.
type Matcher struct {
	rules     []Rule
	responses i18n.Table
	fallback  Category
}

// New builds a matcher. Rules are evaluated in the given order and fallback is
// chosen when none of them match.
func New(rules []Rule, responses i18n.Table, fallback Category) *Matcher {
	return &Matcher{
		rules:     append([]Rule(nil), rules...),
		responses: responses,
		fallback:  fallback,
	}
}

var defaultMatcher = New(defaultRules, defaultResponses, General)

// Default returns the matcher backed by the built-in catalog
func Default() *Matcher {
	return defaultMatcher
}

// Classify returns the category of the first rule matching question
func (m *Matcher) Classify(question string) Category {
	lowered := strings.ToLower(question)
	for _, rule := range m.rules {
		if rule.Matches(lowered) {
			return rule.Category
		}
	}
	return m.fallback
}

// Text resolves a category: requested language, then the default language, then the raw key
func (m *Matcher) Text(category Category, language string) string {
	return m.responses.Lookup(string(category), language)
}

// Resolve classifies a request and resolves its text
func (m *Matcher) Resolve(req MatchRequest) Match {
	category := m.Classify(req.Question)
	lang := i18n.Normalize(req.Language)
	return Match{
		Category: category,
		Language: lang,
		Text:     m.Text(category, lang),
		Fallback: !m.responses.Has(string(category), lang),
	}
}

// MatchResponse returns the response text for question in language
func (m *Matcher) MatchResponse(question, language string) string {
	return m.Text(m.Classify(question), language)
}

// Rules returns a copy of the ordered rule list
func (m *Matcher) Rules() []Rule {
	return append([]Rule(nil), m.rules...)
}

// Categories lists the rule categories in evaluation order followed by the fallback
func (m *Matcher) Categories() []Category {
	out := make([]Category, 0, len(m.rules)+1)
	for _, r := range m.rules {
		out = append(out, r.Category)
	}
	return append(out, m.fallback)
}

// MatchResponse answers question with the built-in catalog
func MatchResponse(question, language string) string {
	return defaultMatcher.MatchResponse(question, language)
}

// Classify classifies question with the built-in rules
func Classify(question string) Category {
	return defaultMatcher.Classify(question)
}
