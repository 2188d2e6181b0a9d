package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"legalclarify-backend/matcher"
	"legalclarify-backend/models"
	"legalclarify-backend/sections"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// render writes v as json or yaml, or calls human for the default format
func render(w io.Writer, format string, v any, human func(*printer)) error {
	switch format {
	case "json":
		output, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(output))
		return err
	case "yaml":
		output, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, string(output))
		return err
	case "human", "":
		human(newPrinter(w))
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want human, json or yaml)", format)
	}
}

type printer struct {
	w io.Writer
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w}
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) heading(text string) {
	color.New(color.FgCyan, color.Bold).Fprintln(p.w, text)
}

func (p *printer) success(format string, args ...any) {
	color.New(color.FgGreen).Fprintf(p.w, "✓ "+format+"\n", args...)
}

func (p *printer) answer(question string, m matcher.Match) {
	p.line("")
	p.heading("❓ " + question)
	p.line("   %s", m.Text)
	p.line("")
	footer := fmt.Sprintf("topic: %s, language: %s", m.Category, m.Language)
	if m.Fallback {
		footer += " (shown in English)"
	}
	p.line("%s", color.HiBlackString(footer))
}

func (p *printer) sections(list []models.LegalSection) {
	if len(list) == 0 {
		p.line("No sections suggested for this document.")
		return
	}
	p.line("")
	for i, s := range list {
		color.New(color.FgYellow, color.Bold).Fprintf(p.w, "%d. Section %s: %s\n", i+1, s.Section, s.Title)
		p.line("   %s", s.Description)
		p.line("")
	}
	p.line("%s", strings.Repeat("─", 80))
	p.line("%s", color.HiBlackString(sections.Disclaimer))
}

func (p *printer) section(s models.LegalSection) {
	p.line("")
	color.New(color.FgYellow, color.Bold).Fprintf(p.w, "Section %s: %s\n", s.Section, s.Title)
	p.line("   %s", s.Description)
	if s.Punishment != "" {
		p.line("")
		p.heading("PENALTY:")
		p.line("   %s", color.RedString(s.Punishment))
	}
	if len(s.ApplicableScenarios) > 0 {
		p.line("")
		p.heading("APPLIES WHEN:")
		for _, sc := range s.ApplicableScenarios {
			p.line("   • %s", sc)
		}
	}
	if len(s.Examples) > 0 {
		p.line("")
		p.heading("EXAMPLES:")
		for _, ex := range s.Examples {
			p.line("   • %s", ex)
		}
	}
	p.line("")
}
