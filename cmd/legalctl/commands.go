package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"legalclarify-backend/i18n"
	"legalclarify-backend/matcher"
	"legalclarify-backend/models"
	"legalclarify-backend/sections"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	keyLanguage = "language"
	keyOutput   = "output"
	keyDelay    = "delay"
)

// app carries the per-invocation settings
type app struct {
	v       *viper.Viper
	cfgFile string
}

func newApp() *app {
	v := viper.New()
	v.SetDefault(keyLanguage, i18n.Default)
	v.SetDefault(keyOutput, "human")
	v.SetDefault(keyDelay, "0s")
	v.SetEnvPrefix("LEGALCTL")
	v.AutomaticEnv()
	return &app{v: v}
}

// initConfig reads $HOME/.legalctl.yaml unless --config names another file
func (a *app) initConfig() error {
	if a.cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to find home directory: %w", err)
		}
		a.cfgFile = filepath.Join(home, ".legalctl.yaml")
	}
	a.v.SetConfigFile(a.cfgFile)
	a.v.SetConfigType("yaml")

	if _, err := os.Stat(a.cfgFile); os.IsNotExist(err) {
		return nil
	}
	if err := a.v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read %s: %w", a.cfgFile, err)
	}
	return nil
}

func (a *app) language() string {
	return i18n.Normalize(a.v.GetString(keyLanguage))
}

func (a *app) output() string {
	return strings.ToLower(a.v.GetString(keyOutput))
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "legalctl",
		Short: "Plain-language answers about rental agreements",
		Long: `legalctl answers common tenant questions and lists the legal sections
worth reading for a document type, in English, Hindi, Tamil or Telugu.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
	}

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.legalctl.yaml)")
	flags.StringP("lang", "l", "", "answer language (en, hi, ta, te)")
	flags.StringP("output", "o", "", "Output format (human, json, yaml)")
	flags.Duration("delay", 0, "simulated thinking delay before answering")

	_ = a.v.BindPFlag(keyLanguage, flags.Lookup("lang"))
	_ = a.v.BindPFlag(keyOutput, flags.Lookup("output"))
	_ = a.v.BindPFlag(keyDelay, flags.Lookup("delay"))

	rootCmd.AddCommand(
		newAskCmd(a),
		newSectionsCmd(a),
		newSectionCmd(a),
		newLanguagesCmd(a),
		newLangCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

func newAskCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ask QUESTION",
		Short: "Answer a question about a rental agreement",
		Long: `Classify a free-text question and print the canned answer for its topic.

Examples:
  # Ask in English
  legalctl ask "Can my landlord keep the deposit?"

  # Ask for a Tamil answer
  legalctl ask "will my rent increase" -l ta`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")

			if delay := a.v.GetDuration(keyDelay); delay > 0 {
				s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
				s.Suffix = " Thinking..."
				s.Start()
				time.Sleep(delay)
				s.Stop()
			}

			match := matcher.Default().Resolve(matcher.MatchRequest{Question: question, Language: a.language()})
			return render(cmd.OutOrStdout(), a.output(), match, func(p *printer) {
				p.answer(question, match)
			})
		},
	}
}

func newSectionsCmd(a *app) *cobra.Command {
	var risk string
	cmd := &cobra.Command{
		Use:   "sections DOCUMENT_TYPE",
		Short: "List legal sections relevant to a document",
		Long: `Suggest up to three legal sections for a document type and risk level.

Examples:
  legalctl sections "Rental Agreement" --risk high
  legalctl sections "Employment Contract" -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := models.RiskLow
			if risk != "" {
				parsed, ok := models.ParseRiskLevel(risk)
				if !ok {
					return fmt.Errorf("unknown risk level %q (want low, medium or high)", risk)
				}
				level = parsed
			}

			advised := sections.AdviseSections(strings.Join(args, " "), level)
			return render(cmd.OutOrStdout(), a.output(), advised, func(p *printer) {
				p.sections(advised)
			})
		},
	}
	cmd.Flags().StringVarP(&risk, "risk", "r", "", "risk level (low, medium, high)")
	return cmd
}

func newSectionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "section ID",
		Short: "Show one legal section and its related sections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			section, ok := sections.Lookup(args[0])
			if !ok {
				return fmt.Errorf("section %s not found", args[0])
			}
			related := sections.Related(section.Section)
			out := struct {
				models.LegalSection `yaml:",inline"`
				Related             []models.LegalSection `json:"related" yaml:"related"`
			}{section, related}

			return render(cmd.OutOrStdout(), a.output(), out, func(p *printer) {
				p.section(section)
				if len(related) > 0 {
					p.heading("RELATED SECTIONS:")
					for _, r := range related {
						p.line("   %s  %s", r.Section, r.Title)
					}
				}
			})
		},
	}
}

func newLanguagesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported answer languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			langs := i18n.Languages()
			current := a.language()
			return render(cmd.OutOrStdout(), a.output(), langs, func(p *printer) {
				for _, l := range langs {
					marker := " "
					if l.Code == current {
						marker = "*"
					}
					p.line("%s %s  %-8s %s", marker, l.Code, l.Name, l.NativeName)
				}
			})
		},
	}
}

func newLangCmd(a *app) *cobra.Command {
	langCmd := &cobra.Command{
		Use:   "lang",
		Short: "Get or set the default answer language",
	}

	langCmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the default answer language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), a.language())
			return nil
		},
	}, &cobra.Command{
		Use:   "set CODE",
		Short: "Persist the default answer language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, ok := i18n.Match(args[0])
			if !ok {
				return fmt.Errorf("unsupported language %q", args[0])
			}
			a.v.Set(keyLanguage, code)
			if err := a.v.WriteConfigAs(a.cfgFile); err != nil {
				return fmt.Errorf("failed to write %s: %w", a.cfgFile, err)
			}
			p := newPrinter(cmd.OutOrStdout())
			p.success("Default language set to %s (%s)", i18n.Get(code).Name, code)
			return nil
		},
	})
	return langCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "legalctl version %s\n", version)
		},
	}
}
