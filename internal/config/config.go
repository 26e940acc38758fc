// Package config loads topicrun settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"mvdan.cc/sh/v3/shell"
)

// Cursor backends.
const (
	CursorFile = "file"
	CursorDB   = "db"
)

// Config holds every tunable of a run. Variable names for the model keep the
// OLLAMA_ prefix ollama users already export.
type Config struct {
	Model       string  `env:"OLLAMA_MODEL" envDefault:"mistral"`
	MaxTokens   int    `env:"OLLAMA_MAX_TOKENS" envDefault:"0"`
	Temperature string `env:"OLLAMA_TEMPERATURE" envDefault:"0.2"`
	NumCtx      int    `env:"OLLAMA_NUM_CTX" envDefault:"4096"`
	Command     string `env:"TOPICRUN_COMMAND" envDefault:"ollama run"`

	OutputDir string `env:"OUTPUT_DIR" envDefault:"outputs"`
	StateDir  string `env:"STATE_DIR" envDefault:"state"`
	SpaceFile string `env:"TOPICRUN_SPACE_FILE"`

	DBDriver string `env:"TOPICRUN_DB_DRIVER"`
	DBDSN    string `env:"TOPICRUN_DB_DSN"`
	Cursor   string `env:"TOPICRUN_CURSOR" envDefault:"file"`

	LogLevel string `env:"TOPICRUN_LOG_LEVEL" envDefault:"info"`

	SlackWebhook   string `env:"TOPICRUN_SLACK_WEBHOOK"`
	DiscordWebhook string `env:"TOPICRUN_DISCORD_WEBHOOK"`
}

// Load reads envFile into the process environment when it exists, then
// builds a Config from the environment. Variables already set win over the
// file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}
	return FromEnvironment(environ())
}

// FromEnvironment builds a validated Config from the given variables.
func FromEnvironment(vars map[string]string) (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// CommandArgs splits Command using shell quoting rules.
func (c *Config) CommandArgs() ([]string, error) {
	args, err := shell.Fields(c.Command, nil)
	if err != nil {
		return nil, fmt.Errorf("config: TOPICRUN_COMMAND: %w", err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("config: TOPICRUN_COMMAND is empty")
	}
	return args, nil
}

// DBEnabled reports whether a ledger database is configured.
func (c *Config) DBEnabled() bool {
	return c.DBDriver != ""
}

// applyDefaults fills in derived and default values.
func (c *Config) applyDefaults() {
	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))
	c.Cursor = strings.ToLower(strings.TrimSpace(c.Cursor))
	if c.DBDriver == "sqlite" && c.DBDSN == "" {
		c.DBDSN = filepath.Join(c.StateDir, "topicrun.db")
	}
}

// validate checks that all fields are present and consistent.
func (c *Config) validate() error {
	var errs []string
	if c.Model == "" {
		errs = append(errs, "OLLAMA_MODEL must not be empty")
	}
	if _, err := strconv.ParseFloat(c.Temperature, 64); err != nil {
		errs = append(errs, fmt.Sprintf("OLLAMA_TEMPERATURE %q is not a number", c.Temperature))
	}
	if c.NumCtx < 0 {
		errs = append(errs, "OLLAMA_NUM_CTX must be >= 0")
	}
	if _, err := c.CommandArgs(); err != nil {
		errs = append(errs, err.Error())
	}
	if c.OutputDir == "" {
		errs = append(errs, "OUTPUT_DIR must not be empty")
	}
	if c.StateDir == "" {
		errs = append(errs, "STATE_DIR must not be empty")
	}
	switch c.DBDriver {
	case "", "sqlite":
	case "mysql":
		if c.DBDSN == "" {
			errs = append(errs, "TOPICRUN_DB_DSN is required for mysql")
		}
	default:
		errs = append(errs, fmt.Sprintf("TOPICRUN_DB_DRIVER %q is not sqlite or mysql", c.DBDriver))
	}
	switch c.Cursor {
	case CursorFile:
	case CursorDB:
		if c.DBDriver == "" {
			errs = append(errs, "TOPICRUN_CURSOR=db requires TOPICRUN_DB_DRIVER")
		}
	default:
		errs = append(errs, fmt.Sprintf("TOPICRUN_CURSOR %q is not file or db", c.Cursor))
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		errs = append(errs, fmt.Sprintf("TOPICRUN_LOG_LEVEL %q is not a log level", c.LogLevel))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func environ() map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return vars
}
