package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// FileName is the name of the configuration file
	FileName = "gnureadline.yaml"

	// HistoryFileEnv overrides History.File when set
	HistoryFileEnv = "GNUREADLINE_HISTFILE"
)

// Config represents the application configuration
type Config struct {
	Readline   ReadlineConfig   `yaml:"readline"`
	History    HistoryConfig    `yaml:"history"`
	Completion CompletionConfig `yaml:"completion"`
	UI         UIConfig         `yaml:"ui"`
}

// ReadlineConfig holds the values handed to the line editor at startup
type ReadlineConfig struct {
	Name                string   `yaml:"name"`
	Prompt              string   `yaml:"prompt"`
	WordBreakCharacters string   `yaml:"word_break_characters"`
	InitFile            string   `yaml:"init_file,omitempty"`
	Bindings            []string `yaml:"bindings,omitempty"`
	CompletionOver      bool     `yaml:"completion_over"`
}

// HistoryConfig controls the history list and its file
type HistoryConfig struct {
	File       string `yaml:"file"`
	MaxEntries int    `yaml:"max_entries"` // 0 keeps everything
	FileLines  int    `yaml:"file_lines"`  // truncate the file to this many lines on exit, 0 disables
}

// CompletionConfig configures the demo candidate sources
type CompletionConfig struct {
	Dictionary string   `yaml:"dictionary"`
	Fuzzy      bool     `yaml:"fuzzy"`
	CacheSize  int      `yaml:"cache_size"`
	Limit      int      `yaml:"limit"`
	Suffixes   []string `yaml:"suffixes"`
}

// UIConfig represents the UI configuration
type UIConfig struct {
	ColorEnabled bool   `yaml:"color_enabled"`
	LogLevel     string `yaml:"log_level"`
	LogFile      string `yaml:"log_file"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Readline: ReadlineConfig{
			Name:                "gnureadline",
			Prompt:              "> ",
			WordBreakCharacters: " \t\n\"\\'`@$><=;|&{(",
			CompletionOver:      true,
		},
		History: HistoryConfig{
			File:       "~/.gnureadline_history",
			MaxEntries: 1000,
			FileLines:  1000,
		},
		Completion: CompletionConfig{
			Dictionary: "/usr/share/dict/words",
			CacheSize:  128,
			Limit:      200,
			Suffixes:   []string{"s", "zz"},
		},
		UI: UIConfig{
			ColorEnabled: true,
			LogLevel:     "info",
			LogFile:      "~/.gnureadline/logs/gnureadline.log",
		},
	}
}

// DefaultPath returns ~/.gnureadline/gnureadline.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting user home directory: %w", err)
	}
	return filepath.Join(home, ".gnureadline", FileName), nil
}

// Load loads the configuration from path. With an empty path it looks
// for gnureadline.yaml in the current directory, then in ~/.gnureadline.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	if path == "" {
		path = FileName
		if _, err := os.Stat(path); os.IsNotExist(err) {
			path, err = DefaultPath()
			if err != nil {
				return cfg, nil // Return default if can't get home dir
			}
			if _, err := os.Stat(path); os.IsNotExist(err) {
				cfg.applyEnv()
				return cfg, nil
			}
		}
	}

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if file := os.Getenv(HistoryFileEnv); file != "" {
		c.History.File = file
	}
}

// Save saves the configuration to the specified path or ~/.gnureadline/gnureadline.yaml by default
func (c *Config) Save(path string) error {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating directory %s: %w", filepath.Dir(path), err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Marshal renders the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("error marshaling config: %w", err)
	}
	return data, nil
}

// ExpandPath expands a leading ~ to the user's home directory
func ExpandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, path[1:]), nil
}

// HistoryPath returns the expanded history file path
func (c *Config) HistoryPath() (string, error) {
	return ExpandPath(c.History.File)
}
