package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"legalclarify-backend/matcher"
	"legalclarify-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes legalctl with a throwaway config file
func run(t *testing.T, cfgFile string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(newApp())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", cfgFile}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestAsk(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "legalctl.yaml")

	t.Run("JSON answer", func(t *testing.T) {
		out, err := run(t, cfg, "ask", "Can", "they", "keep", "my", "deposit?", "-o", "json")
		require.NoError(t, err)

		var m matcher.Match
		require.NoError(t, json.Unmarshal([]byte(out), &m))
		assert.Equal(t, matcher.SecurityDeposit, m.Category)
		assert.Equal(t, "en", m.Language)
		assert.NotEmpty(t, m.Text)
	})

	t.Run("Translated answer", func(t *testing.T) {
		out, err := run(t, cfg, "ask", "will my rent increase", "-l", "ta", "-o", "yaml")
		require.NoError(t, err)

		var m matcher.Match
		require.NoError(t, yaml.Unmarshal([]byte(out), &m))
		assert.Equal(t, matcher.RentIncrease, m.Category)
		assert.Equal(t, "ta", m.Language)
		assert.False(t, m.Fallback)
	})

	t.Run("Human answer", func(t *testing.T) {
		out, err := run(t, cfg, "ask", "hello there")
		require.NoError(t, err)
		assert.Contains(t, out, "hello there")
		assert.Contains(t, out, "topic: general")
	})

	t.Run("Unknown format", func(t *testing.T) {
		_, err := run(t, cfg, "ask", "deposit", "-o", "xml")
		assert.Error(t, err)
	})

	t.Run("Missing question", func(t *testing.T) {
		_, err := run(t, cfg, "ask")
		assert.Error(t, err)
	})
}

func TestSections(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "legalctl.yaml")

	out, err := run(t, cfg, "sections", "Rental", "Agreement", "--risk", "high", "-o", "json")
	require.NoError(t, err)

	var list []models.LegalSection
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list, 3)
	assert.Equal(t, []string{"420", "406", "506"}, []string{list[0].Section, list[1].Section, list[2].Section})

	t.Run("Bad risk", func(t *testing.T) {
		_, err := run(t, cfg, "sections", "lease", "--risk", "extreme")
		assert.Error(t, err)
	})

	t.Run("Nothing advised", func(t *testing.T) {
		out, err := run(t, cfg, "sections", "Shopping", "List")
		require.NoError(t, err)
		assert.Contains(t, out, "No sections suggested")
	})

	t.Run("Single section", func(t *testing.T) {
		out, err := run(t, cfg, "section", "420")
		require.NoError(t, err)
		assert.Contains(t, out, "Section 420")

		_, err = run(t, cfg, "section", "999")
		assert.Error(t, err)
	})
}

func TestLanguageSetting(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "legalctl.yaml")

	out, err := run(t, cfg, "lang", "get")
	require.NoError(t, err)
	assert.Equal(t, "en\n", out)

	_, err = run(t, cfg, "lang", "set", "te-IN")
	require.NoError(t, err)
	raw, err := os.ReadFile(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "language: te")

	out, err = run(t, cfg, "lang", "get")
	require.NoError(t, err)
	assert.Equal(t, "te\n", out)

	out, err = run(t, cfg, "languages")
	require.NoError(t, err)
	assert.Contains(t, out, "* te")

	_, err = run(t, cfg, "lang", "set", "fr")
	assert.Error(t, err)
}
