package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/andywolf/skillseed/internal/skills"
)

// Default values used when neither a config file, the environment nor a flag
// sets a key.
const (
	DefaultInputDir = "refs/skills"
	DefaultOutput   = "database/seed_skills.sql"

	// FileName is the config file looked up in the working directory.
	FileName = ".skillseed.yaml"

	// Stdout as the output path writes the seed to standard output.
	Stdout = "-"
)

// Config represents the skillseed configuration
type Config struct {
	InputDir string   `mapstructure:"input_dir" yaml:"input_dir"`
	Output   string   `mapstructure:"output" yaml:"output"`
	Levels   []string `mapstructure:"levels" yaml:"levels"`
	Verbose  bool     `mapstructure:"verbose" yaml:"verbose"`
	LogJSON  bool     `mapstructure:"log_json" yaml:"log_json,omitempty"`
}

// Default returns a Config holding only default values.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load loads configuration from the global viper instance (file, environment
// and bound flags).
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom loads configuration from v.
func LoadFrom(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults sets default values for unset fields
func applyDefaults(cfg *Config) {
	if cfg.InputDir == "" {
		cfg.InputDir = DefaultInputDir
	}

	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}

	if len(cfg.Levels) == 0 {
		for _, level := range skills.Levels() {
			cfg.Levels = append(cfg.Levels, string(level))
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input_dir is required")
	}

	if c.Output == "" {
		return fmt.Errorf("output is required")
	}

	if len(c.Levels) == 0 {
		return fmt.Errorf("at least one level is required")
	}

	seen := make(map[string]bool, len(c.Levels))
	for _, l := range c.Levels {
		if _, err := skills.ParseLevel(l); err != nil {
			return fmt.Errorf("invalid levels: %w", err)
		}
		if seen[l] {
			return fmt.Errorf("invalid levels: %s is listed twice", l)
		}
		seen[l] = true
	}

	return nil
}

// SkillLevels returns the configured levels in order. Call Validate first.
func (c *Config) SkillLevels() []skills.Level {
	levels := make([]skills.Level, 0, len(c.Levels))
	for _, l := range c.Levels {
		levels = append(levels, skills.Level(l))
	}
	return levels
}

// WriteToStdout reports whether the seed goes to standard output.
func (c *Config) WriteToStdout() bool {
	return c.Output == Stdout
}

// WriteFile writes the configuration as YAML. An existing file is only
// replaced when overwrite is set.
func (c *Config) WriteFile(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := "# skillseed configuration\n# Paths are relative to the working directory.\n\n"

	if err := os.WriteFile(path, append([]byte(header), data...), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
