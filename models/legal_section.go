package models

// LegalSection represents one statutory reference from the penal code catalog
type LegalSection struct {
	Section             string   `json:"section" yaml:"section"`
	Title               string   `json:"title" yaml:"title"`
	Description         string   `json:"description" yaml:"description"`
	Punishment          string   `json:"punishment" yaml:"punishment"`
	ApplicableScenarios []string `json:"applicable_scenarios" yaml:"applicable_scenarios"`
	RelatedSections     []string `json:"related_sections" yaml:"related_sections"`
	Examples            []string `json:"examples" yaml:"examples"`
}

// Clone returns a deep copy so callers cannot mutate catalog entries
func (s LegalSection) Clone() LegalSection {
	s.ApplicableScenarios = append([]string(nil), s.ApplicableScenarios...)
	s.RelatedSections = append([]string(nil), s.RelatedSections...)
	s.Examples = append([]string(nil), s.Examples...)
	return s
}
