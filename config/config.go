package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"bleu/internal/domain"
)

// Config holds all configuration for the bleu tool.
type Config struct {
	Segment SegmentConfig `yaml:"segment"`
	Score   ScoreConfig   `yaml:"score"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// SegmentConfig holds tokenization configuration.
type SegmentConfig struct {
	Language string `yaml:"language"` // "en", "ja" or "zh"
}

// ScoreConfig holds scoring configuration.
type ScoreConfig struct {
	Digits int `yaml:"digits"` // decimals printed for the score
}

// OutputConfig holds output configuration.
type OutputConfig struct {
	Format   string `yaml:"format"` // "text" or "json"
	Progress bool   `yaml:"progress"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Segment: SegmentConfig{
			Language: string(domain.English),
		},
		Score: ScoreConfig{
			Digits: 3,
		},
		Output: OutputConfig{
			Format:   "text",
			Progress: false,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for bleu.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "bleu.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".bleu", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Validate checks values that cannot be fixed up silently.
func (c *Config) Validate() error {
	if _, err := domain.ParseLanguage(c.Segment.Language); err != nil {
		return err
	}
	if c.Score.Digits < 0 {
		return fmt.Errorf("score.digits must not be negative, got %d", c.Score.Digits)
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported output format: %s", c.Output.Format)
	}
	return nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
