// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package config loads application settings from a YAML file with
// environment overrides. Missing or unparsable files fall back to
// defaults so the tool stays usable with zero configuration.
package config

import (
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "DOCMERGE_CONFIG"
	providerEnv   = "DOCMERGE_PROVIDER"
	outputDirEnv  = "DOCMERGE_OUTPUT_DIR"
	openAIKeyEnv  = "OPENAI_API_KEY"
	geminiKeyEnv  = "GEMINI_API_KEY"
)

// Config holds high-level settings required across the application.
type Config struct {
	Provider ProviderConfig `yaml:"provider"`
	Summary  SummaryConfig  `yaml:"summary"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Output   OutputConfig   `yaml:"output"`
}

// ProviderConfig selects and parameterizes the summarization backend.
type ProviderConfig struct {
	Name           string        `yaml:"name"`
	Host           string        `yaml:"host"`
	Model          string        `yaml:"model"`
	OpenAIKey      string        `yaml:"openaiKey"`
	GeminiKey      string        `yaml:"geminiKey"`
	RequestTimeout time.Duration `yaml:"requestTimeout"`
}

// APIKey returns the credential matching the selected provider.
func (p ProviderConfig) APIKey() string {
	if p.Name == "googleai" {
		return p.GeminiKey
	}
	return p.OpenAIKey
}

// SummaryConfig holds the default generation parameters.
type SummaryConfig struct {
	Type            string   `yaml:"type"`
	MaxLength       int      `yaml:"maxLength"`
	MaxTokens       int      `yaml:"maxTokens"`
	Temperature     float64  `yaml:"temperature"`
	IncludeSections []string `yaml:"includeSections"`
}

// PipelineConfig bounds concurrency and retry behavior.
type PipelineConfig struct {
	Workers       int           `yaml:"workers"`
	RetryAttempts int           `yaml:"retryAttempts"`
	RetryBase     time.Duration `yaml:"retryBase"`
	RetryMax      time.Duration `yaml:"retryMax"`
	Deadline      time.Duration `yaml:"deadline"`
}

// OutputConfig controls where and how the artifact is written.
type OutputConfig struct {
	Dir   string `yaml:"dir"`
	Title string `yaml:"title"`
}

// Load reads YAML configuration (if present) and applies environment
// overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			slog.Warn("cannot read config file, using defaults", "path", path, "err", err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				slog.Warn("cannot parse config file, using defaults", "path", path, "err", err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(providerEnv); v != "" {
		c.Provider.Name = v
	}
	if v := os.Getenv(openAIKeyEnv); v != "" {
		c.Provider.OpenAIKey = v
	}
	if v := os.Getenv(geminiKeyEnv); v != "" {
		c.Provider.GeminiKey = v
	}
	if v := os.Getenv(outputDirEnv); v != "" {
		c.Output.Dir = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Provider.Name != "" {
		base.Provider.Name = override.Provider.Name
	}
	if override.Provider.Host != "" {
		base.Provider.Host = override.Provider.Host
	}
	if override.Provider.Model != "" {
		base.Provider.Model = override.Provider.Model
	}
	if override.Provider.OpenAIKey != "" {
		base.Provider.OpenAIKey = override.Provider.OpenAIKey
	}
	if override.Provider.GeminiKey != "" {
		base.Provider.GeminiKey = override.Provider.GeminiKey
	}
	if override.Provider.RequestTimeout > 0 {
		base.Provider.RequestTimeout = override.Provider.RequestTimeout
	}

	if override.Summary.Type != "" {
		base.Summary.Type = override.Summary.Type
	}
	if override.Summary.MaxLength > 0 {
		base.Summary.MaxLength = override.Summary.MaxLength
	}
	if override.Summary.MaxTokens > 0 {
		base.Summary.MaxTokens = override.Summary.MaxTokens
	}
	if override.Summary.Temperature > 0 {
		base.Summary.Temperature = override.Summary.Temperature
	}
	if len(override.Summary.IncludeSections) > 0 {
		base.Summary.IncludeSections = override.Summary.IncludeSections
	}

	if override.Pipeline.Workers > 0 {
		base.Pipeline.Workers = override.Pipeline.Workers
	}
	if override.Pipeline.RetryAttempts > 0 {
		base.Pipeline.RetryAttempts = override.Pipeline.RetryAttempts
	}
	if override.Pipeline.RetryBase > 0 {
		base.Pipeline.RetryBase = override.Pipeline.RetryBase
	}
	if override.Pipeline.RetryMax > 0 {
		base.Pipeline.RetryMax = override.Pipeline.RetryMax
	}
	if override.Pipeline.Deadline > 0 {
		base.Pipeline.Deadline = override.Pipeline.Deadline
	}

	if override.Output.Dir != "" {
		base.Output.Dir = override.Output.Dir
	}
	if override.Output.Title != "" {
		base.Output.Title = override.Output.Title
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Provider: ProviderConfig{
			Name:           "local",
			Host:           "http://localhost:11434/v1",
			Model:          "qwen2.5:3b",
			RequestTimeout: 60 * time.Second,
		},
		Summary: SummaryConfig{
			Type:        "executive",
			MaxLength:   1000,
			MaxTokens:   1000,
			Temperature: 0.7,
		},
		Pipeline: PipelineConfig{
			RetryAttempts: 3,
			RetryBase:     time.Second,
			RetryMax:      10 * time.Second,
		},
		Output: OutputConfig{
			Dir:   "output",
			Title: "Merged Document",
		},
	}
}
