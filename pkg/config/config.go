// Package config assembles the application configuration from baked-in
// defaults, an optional YAML file, and environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"promptforge/internal/rewrite"
)

const (
	// Default configuration values
	DefaultPort        = 3000
	DefaultHistoryPath = "data/history.db"
	DefaultLogDir      = "logs"
	DefaultKeepRecent  = 20
	DefaultConfigFile  = "promptforge.yaml"
)

// Config holds all application configuration for promptforge. Rewrite
// defaults, history storage, and server settings live in a single struct.
type Config struct {
	Port        int    `yaml:"port"`         // HTTP server port for web mode
	HistoryPath string `yaml:"history_path"` // SQLite file, empty disables history
	LogDir      string `yaml:"log_dir"`      // usage log directory
	KeepRecent  int    `yaml:"keep_recent"`  // in-memory results kept per session

	Defaults DefaultsConfig `yaml:"defaults"`
}

// DefaultsConfig holds the initial rewrite options for new sessions.
type DefaultsConfig struct {
	Language    string `yaml:"language"`
	Objective   string `yaml:"objective"`
	Reasoning   string `yaml:"reasoning"`
	Role        string `yaml:"role"`
	ContentType string `yaml:"content_type"`
}

// Options converts the configured defaults into rewrite options.
func (d DefaultsConfig) Options() rewrite.Options {
	return rewrite.Options{
		Language:       d.Language,
		Objective:      rewrite.Objective(d.Objective),
		ReasoningLevel: rewrite.ReasoningLevel(d.Reasoning),
		Role:           d.Role,
		ContentType:    rewrite.ContentType(d.ContentType),
	}
}

// Address returns the listen address for the web server.
func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

var (
	validObjectives = map[string]bool{"": true, "precision": true, "brevity": true, "creativity": true, "safety": true, "speed": true}
	validReasoning  = map[string]bool{"": true, "low": true, "medium": true, "high": true}
	validContent    = map[string]bool{"": true, "text": true, "video": true, "image": true, "audio": true, "presentation": true}
)

// Validate checks the configuration for correctness. The rewrite pipeline
// itself defaults unknown values per call; validating here surfaces config
// typos at startup instead.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1-65535, got %d", c.Port)
	}
	if c.KeepRecent <= 0 {
		return fmt.Errorf("keep_recent must be positive, got %d", c.KeepRecent)
	}
	if !validObjectives[c.Defaults.Objective] {
		return fmt.Errorf("unknown default objective %q", c.Defaults.Objective)
	}
	if !validReasoning[c.Defaults.Reasoning] {
		return fmt.Errorf("unknown default reasoning %q", c.Defaults.Reasoning)
	}
	if !validContent[c.Defaults.ContentType] {
		return fmt.Errorf("unknown default content type %q", c.Defaults.ContentType)
	}
	return nil
}

// Load assembles the configuration and returns a fully populated Config.
// It writes warnings to w for any invalid environment variable values
// encountered.
func Load(w io.Writer) (*Config, error) {
	// Make .env values visible to os.Getenv; a missing file is fine
	_ = godotenv.Load()

	config := defaultConfig()

	if err := loadFile(config, configFilePath()); err != nil {
		return nil, err
	}

	loadEnv(config, w)

	// Validate the configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func defaultConfig() *Config {
	return &Config{
		Port:        DefaultPort,
		HistoryPath: DefaultHistoryPath,
		LogDir:      DefaultLogDir,
		KeepRecent:  DefaultKeepRecent,
		Defaults: DefaultsConfig{
			Language: rewrite.DefaultLanguage,
		},
	}
}

// configFilePath honors PROMPTFORGE_CONFIG, falling back to the default name.
func configFilePath() string {
	if path := os.Getenv("PROMPTFORGE_CONFIG"); path != "" {
		return path
	}
	return DefaultConfigFile
}

// loadFile overlays the YAML file onto cfg; a missing file is not an error.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// loadEnv overlays environment variables onto cfg, warning on bad values.
func loadEnv(cfg *Config, w io.Writer) {
	cfg.Port = loadPort(w, cfg.Port)

	if path, ok := os.LookupEnv("HISTORY_PATH"); ok {
		cfg.HistoryPath = path
	}
	if dir := os.Getenv("LOG_DIR"); dir != "" {
		cfg.LogDir = dir
	}
	if v := os.Getenv("KEEP_RECENT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.KeepRecent = n
		} else {
			fmt.Fprintf(w, "Warning: invalid KEEP_RECENT value '%s', keeping %d\n", v, cfg.KeepRecent)
		}
	}

	if v := os.Getenv("DEFAULT_LANGUAGE"); v != "" {
		cfg.Defaults.Language = v
	}
	if v := os.Getenv("DEFAULT_OBJECTIVE"); v != "" {
		cfg.Defaults.Objective = v
	}
	if v := os.Getenv("DEFAULT_REASONING"); v != "" {
		cfg.Defaults.Reasoning = v
	}
	if v := os.Getenv("DEFAULT_ROLE"); v != "" {
		cfg.Defaults.Role = v
	}
	if v := os.Getenv("DEFAULT_CONTENT_TYPE"); v != "" {
		cfg.Defaults.ContentType = v
	}
}

// loadPort reads and validates the PORT environment variable
func loadPort(w io.Writer, current int) int {
	portStr := os.Getenv("PORT")
	if portStr == "" {
		return current
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		fmt.Fprintf(w, "Warning: Invalid PORT value '%s': %v, using default %d\n",
			portStr, err, current)
		return current
	}

	if port <= 0 || port > 65535 {
		fmt.Fprintf(w, "Warning: PORT must be between 1-65535, got %d, using default %d\n",
			port, current)
		return current
	}

	return port
}
