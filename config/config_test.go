package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORE", "AUTO_MIGRATE", "STORAGE_TYPE", "ANALYZER", "ANALYSIS_DELAY", "MAX_UPLOAD_BYTES", "DEFAULT_LANGUAGE", "AWS_REGION"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.Store)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, "local", cfg.StorageType)
	assert.Equal(t, "mock", cfg.Analyzer)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
	assert.Equal(t, 3*time.Second, cfg.AnalysisDelay)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Equal(t, "en", cfg.DefaultLanguage)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE", "Memory")
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("STORAGE_TYPE", "S3")
	t.Setenv("ANALYZER", "Gemini")
	t.Setenv("ANALYSIS_DELAY", "1500ms")
	t.Setenv("MAX_UPLOAD_BYTES", "2048")
	t.Setenv("DEFAULT_LANGUAGE", "hi-IN")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "memory", cfg.Store)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, "s3", cfg.StorageType)
	assert.Equal(t, "gemini", cfg.Analyzer)
	assert.Equal(t, 1500*time.Millisecond, cfg.AnalysisDelay)
	assert.Equal(t, int64(2048), cfg.MaxUploadBytes)
	assert.Equal(t, "hi", cfg.DefaultLanguage)
}

func TestInvalidNumbersFallBack(t *testing.T) {
	t.Run("Milliseconds", func(t *testing.T) {
		t.Setenv("ANALYSIS_DELAY", "250")
		assert.Equal(t, 250*time.Millisecond, Load().AnalysisDelay)
	})

	t.Run("Garbage delay", func(t *testing.T) {
		t.Setenv("ANALYSIS_DELAY", "soon")
		assert.Equal(t, defaultAnalysisDelay, Load().AnalysisDelay)
	})

	t.Run("Garbage bool", func(t *testing.T) {
		t.Setenv("AUTO_MIGRATE", "sometimes")
		assert.True(t, Load().AutoMigrate)
	})

	t.Run("Negative upload limit", func(t *testing.T) {
		t.Setenv("MAX_UPLOAD_BYTES", "-5")
		assert.Equal(t, int64(defaultMaxUploadBytes), Load().MaxUploadBytes)
	})
}
