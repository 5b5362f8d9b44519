// Package config loads the converter settings from a YAML file, with
// environment overrides optionally read from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// ErrCodeNotFound means the configuration file does not exist.
	ErrCodeNotFound = "config_not_found"
	// ErrCodeInvalid means the file can't be read or parsed, or a value is out of range.
	ErrCodeInvalid = "config_invalid"
)

const (
	DefaultLogLevel     = "info"
	DefaultIndent       = 2
	DefaultServerAddr   = ":8080"
	DefaultServerMode   = "release"
	DefaultMaxBodyBytes = 10 << 20
)

var (
	logLevels   = []string{"debug", "info", "warn", "error"}
	serverModes = []string{"debug", "release", "test"}
)

// Config holds every setting of the CLI and the HTTP service.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Output  OutputConfig  `yaml:"output"`
	Convert ConvertConfig `yaml:"convert"`
	Server  ServerConfig  `yaml:"server"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type OutputConfig struct {
	// Indent is the XML and JSON indentation width; 0 writes compact output.
	Indent int `yaml:"indent"`
	// StripHTML removes markup from notes written to ISO. Defaults to true.
	StripHTML *bool `yaml:"strip_html,omitempty"`
}

type ConvertConfig struct {
	// Strict turns conversion warnings into a failure.
	Strict bool `yaml:"strict"`
}

type ServerConfig struct {
	Addr         string `yaml:"addr"`
	Mode         string `yaml:"mode"`
	MaxBodyBytes int64  `yaml:"max_body_bytes"`
}

// Error is a configuration error carrying an error code.
type Error struct {
	Code string
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch e.Code {
	case ErrCodeNotFound:
		return fmt.Sprintf("%s: configuration file %q not found", e.Code, e.Path)
	case ErrCodeInvalid:
		if e.Err != nil {
			return fmt.Sprintf("%s: %q is invalid: %v", e.Code, e.Path, e.Err)
		}

		return fmt.Sprintf("%s: %q is invalid", e.Code, e.Path)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Code, e.Err)
		}

		return e.Code
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Code extracts the error code of err, or "" when err is not an *Error.
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return ""
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := Config{Output: OutputConfig{Indent: DefaultIndent}}

	applyDefaults(&cfg)

	return &cfg
}

// Load reads the .env file of the working directory when present, then the
// YAML file at path (built-in defaults when path is empty), then applies the
// environment overrides.
func Load(path string) (*Config, error) {
	if err := LoadEnv(); err != nil {
		return nil, err
	}

	cfg := Default()

	if path != "" {
		var err error

		cfg, err = LoadFile(path)
		if err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile loads and parses a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &Error{Code: ErrCodeNotFound, Path: path, Err: err}
		}

		return nil, &Error{Code: ErrCodeInvalid, Path: path, Err: err}
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, &Error{Code: ErrCodeInvalid, Path: path, Err: err}
	}

	return cfg, nil
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	cfg := Config{Output: OutputConfig{Indent: DefaultIndent}}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}

	if cfg.Output.StripHTML == nil {
		strip := true
		cfg.Output.StripHTML = &strip
	}

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultServerAddr
	}

	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}

	if cfg.Server.MaxBodyBytes == 0 {
		cfg.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}
}

func (c *Config) validate() error {
	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	if !slices.Contains(serverModes, c.Server.Mode) {
		return fmt.Errorf("unknown server mode %q", c.Server.Mode)
	}

	if c.Output.Indent < 0 {
		return fmt.Errorf("negative indent %d", c.Output.Indent)
	}

	if c.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("negative max_body_bytes %d", c.Server.MaxBodyBytes)
	}

	return nil
}

// StripHTML reports whether markup is removed from ISO text.
func (c *Config) StripHTML() bool {
	return c.Output.StripHTML == nil || *c.Output.StripHTML
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// LoadEnv loads environment variables from files, ".env" when none is
// given. Missing files are ignored; variables already set are kept.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &Error{Code: ErrCodeInvalid, Path: ".env", Err: err}
	}

	return nil
}

// ApplyEnv overrides settings from MAPX_* environment variables.
func (c *Config) ApplyEnv() error {
	c.Log.Level = getEnv("MAPX_LOG_LEVEL", c.Log.Level)
	c.Server.Addr = getEnv("MAPX_SERVER_ADDR", c.Server.Addr)
	c.Server.Mode = getEnv("MAPX_SERVER_MODE", c.Server.Mode)

	if v := os.Getenv("MAPX_STRICT"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return &Error{Code: ErrCodeInvalid, Path: "MAPX_STRICT", Err: err}
		}

		c.Convert.Strict = strict
	}

	if v := os.Getenv("MAPX_INDENT"); v != "" {
		indent, err := strconv.Atoi(v)
		if err != nil {
			return &Error{Code: ErrCodeInvalid, Path: "MAPX_INDENT", Err: err}
		}

		c.Output.Indent = indent
	}

	if err := c.validate(); err != nil {
		return &Error{Code: ErrCodeInvalid, Path: "environment", Err: err}
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return defaultValue
}
