package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(configPathEnv, "")
	t.Setenv(providerEnv, "")
	t.Setenv(openAIKeyEnv, "")
	t.Setenv(geminiKeyEnv, "")
	t.Setenv(outputDirEnv, "")

	cfg := Load()
	assert.Equal(t, "local", cfg.Provider.Name)
	assert.Equal(t, "http://localhost:11434/v1", cfg.Provider.Host)
	assert.Equal(t, "qwen2.5:3b", cfg.Provider.Model)
	assert.Equal(t, "executive", cfg.Summary.Type)
	assert.Equal(t, 1000, cfg.Summary.MaxLength)
	assert.Equal(t, 3, cfg.Pipeline.RetryAttempts)
	assert.Equal(t, "output", cfg.Output.Dir)
}

func TestLoad_FileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docmerge.yaml")
	raw := `
provider:
  name: openai
  model: gpt-4o-mini
  openaiKey: sk-from-file
summary:
  type: detailed
  maxLength: 500
pipeline:
  workers: 4
  deadline: 2m
output:
  title: Quarterly Rollup
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	t.Setenv(configPathEnv, path)
	t.Setenv(providerEnv, "")
	t.Setenv(openAIKeyEnv, "")
	t.Setenv(geminiKeyEnv, "")
	t.Setenv(outputDirEnv, "")

	cfg := Load()
	assert.Equal(t, "openai", cfg.Provider.Name)
	assert.Equal(t, "gpt-4o-mini", cfg.Provider.Model)
	assert.Equal(t, "sk-from-file", cfg.Provider.OpenAIKey)
	assert.Equal(t, "detailed", cfg.Summary.Type)
	assert.Equal(t, 500, cfg.Summary.MaxLength)
	assert.Equal(t, 4, cfg.Pipeline.Workers)
	assert.Equal(t, 2*time.Minute, cfg.Pipeline.Deadline)
	assert.Equal(t, "Quarterly Rollup", cfg.Output.Title)

	// Untouched settings keep their defaults.
	assert.Equal(t, "http://localhost:11434/v1", cfg.Provider.Host)
	assert.Equal(t, 3, cfg.Pipeline.RetryAttempts)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docmerge.yaml")
	raw := `
provider:
  name: local
  openaiKey: sk-from-file
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	t.Setenv(configPathEnv, path)
	t.Setenv(providerEnv, "googleai")
	t.Setenv(openAIKeyEnv, "sk-from-env")
	t.Setenv(geminiKeyEnv, "gm-from-env")
	t.Setenv(outputDirEnv, "/tmp/out")

	cfg := Load()
	assert.Equal(t, "googleai", cfg.Provider.Name)
	assert.Equal(t, "sk-from-env", cfg.Provider.OpenAIKey)
	assert.Equal(t, "gm-from-env", cfg.Provider.GeminiKey)
	assert.Equal(t, "/tmp/out", cfg.Output.Dir)
}

func TestLoad_BadFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: [not: valid"), 0o644))

	t.Setenv(configPathEnv, path)
	t.Setenv(providerEnv, "")
	t.Setenv(openAIKeyEnv, "")
	t.Setenv(geminiKeyEnv, "")
	t.Setenv(outputDirEnv, "")

	cfg := Load()
	assert.Equal(t, "local", cfg.Provider.Name)
}

func TestProviderConfig_APIKey(t *testing.T) {
	p := ProviderConfig{OpenAIKey: "sk", GeminiKey: "gm"}

	p.Name = "openai"
	assert.Equal(t, "sk", p.APIKey())

	p.Name = "googleai"
	assert.Equal(t, "gm", p.APIKey())

	p.Name = "local"
	assert.Equal(t, "sk", p.APIKey())
}
