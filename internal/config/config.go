package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Annotator   AnnotatorConfig   `yaml:"annotator"`
	Lookup      LookupConfig      `yaml:"lookup"`
	Playback    PlaybackConfig    `yaml:"playback"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type AnnotatorConfig struct {
	Python string `yaml:"python"`
	Model  string `yaml:"model"`
}

type LookupConfig struct {
	// URLTemplate is the dictionary lookup URL with a single %s
	// placeholder for the query-escaped surface form.
	URLTemplate string `yaml:"url_template"`
}

type PlaybackConfig struct {
	Port int `yaml:"port"`
}

type OutputConfig struct {
	DirName string `yaml:"dir_name"`
	Docx    bool   `yaml:"docx"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Validate checks constraints and fills in defaults. The zero Config
// validates to the stock setup: spaCy de_core_news_lg, verbformen.es
// lookups, localhost:8080 playback links and an "Analyse" output folder.
func (c *Config) Validate() error {
	if c.Annotator.Python == "" {
		c.Annotator.Python = "python3"
	}
	if c.Annotator.Model == "" {
		c.Annotator.Model = "de_core_news_lg"
	}
	if c.Lookup.URLTemplate == "" {
		c.Lookup.URLTemplate = "https://www.verbformen.es/?w=%s"
	}
	if !strings.Contains(c.Lookup.URLTemplate, "%s") {
		return fmt.Errorf("lookup.url_template must contain a %%s placeholder")
	}
	if c.Playback.Port == 0 {
		c.Playback.Port = 8080
	}
	if c.Playback.Port < 1 || c.Playback.Port > 65535 {
		return fmt.Errorf("playback.port %d out of range", c.Playback.Port)
	}
	if c.Output.DirName == "" {
		c.Output.DirName = "Analyse"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent <= 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault loads the config file if it exists and falls back to
// the defaults when it does not. The config file is optional.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return Default()
	}
	return cfg, err
}

// Default returns the validated zero configuration.
func Default() (*Config, error) {
	var cfg Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
