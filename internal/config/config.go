// Package config loads the settings of the newicktree command.
//
// Settings are layered: built-in defaults, then a .env file in the working
// directory, then NEWICK_* environment variables, then an optional YAML
// file. Command line flags are applied on top by the caller.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// MaxWorkers bounds the number of inputs reduced at the same time.
const MaxWorkers = 64

// Formats lists the accepted output formats.
var Formats = []string{"text", "yaml", "json"}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Config holds the settings of a single newicktree run.
type Config struct {
	Format   string `yaml:"format" json:"format"`
	Divide   bool   `yaml:"divide" json:"divide"`
	Trace    bool   `yaml:"trace" json:"trace"`
	LogLevel string `yaml:"log_level" json:"log_level"`
	Workers  int    `yaml:"workers" json:"workers"`

	// Width of separators in text output. Zero means the terminal width,
	// or a fixed width when the output is not a terminal.
	Width int `yaml:"width" json:"width"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Format:   "text",
		LogLevel: "info",
		Workers:  4,
	}
}

// Load returns the settings from the environment and, if path is not empty,
// from the YAML file at path. A missing .env file is not an error.
func Load(path string) (*Config, error) {
	// A .env file is optional.
	_ = godotenv.Load()

	cfg := Default()
	if err := cfg.fromEnv(); err != nil {
		return nil, err
	}
	if len(path) > 0 {
		if err := cfg.fromFile(path); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func (c *Config) fromEnv() error {
	c.Format = getEnv("NEWICK_FORMAT", c.Format)
	c.LogLevel = strings.ToLower(getEnv("NEWICK_LOG_LEVEL", c.LogLevel))

	var err error
	if c.Divide, err = getBool("NEWICK_DIVIDE", c.Divide); err != nil {
		return err
	}
	if c.Trace, err = getBool("NEWICK_TRACE", c.Trace); err != nil {
		return err
	}
	if c.Workers, err = getInt("NEWICK_WORKERS", c.Workers); err != nil {
		return err
	}
	if c.Width, err = getInt("NEWICK_WIDTH", c.Width); err != nil {
		return err
	}
	return nil
}

func (c *Config) fromFile(path string) error {
	bs, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(bs, c); err != nil {
		return fmt.Errorf("parse config '%s': %w", path, err)
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
	return nil
}

// Validate reports every setting that is out of range.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Format,
			validation.Required,
			validation.In(toAny(Formats)...),
		),
		validation.Field(&c.LogLevel,
			validation.Required,
			validation.In("debug", "info", "warn", "error"),
		),
		validation.Field(&c.Workers,
			validation.Required,
			validation.Min(1),
			validation.Max(MaxWorkers),
		),
		validation.Field(&c.Width, validation.Min(0)),
	)
}

// Level returns the log level to use. Tracing implies debug.
func (c *Config) Level() slog.Level {
	if c.Trace {
		return slog.LevelDebug
	}
	if level, ok := levels[c.LogLevel]; ok {
		return level
	}
	return slog.LevelInfo
}

func toAny(ss []string) []interface{} {
	vs := make([]interface{}, len(ss))
	for i, s := range ss {
		vs[i] = s
	}
	return vs
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
