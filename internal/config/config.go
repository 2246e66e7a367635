package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/reoring/gojmap"
)

// Config holds jmapctl settings. Values come from defaults, then the
// optional YAML file, then JMAPCTL_* environment variables.
type Config struct {
	ServiceName  string `yaml:"service_name"`
	LogLevel     string `yaml:"log_level"`
	InputFormat  string `yaml:"input_format"`
	OutputFormat string `yaml:"output_format"`
	// DuplicateKeys is one of ignore, warn or error.
	DuplicateKeys string `yaml:"duplicate_keys"`
	MaxDepth      int    `yaml:"max_depth"`
	MaxBytes      int64  `yaml:"max_bytes"`
	Language      string `yaml:"language"`
}

var (
	inputFormats  = []string{"json", "jsonc", "yaml"}
	outputFormats = []string{"json", "yaml", "cbor"}
)

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		ServiceName:   "jmapctl",
		LogLevel:      "info",
		InputFormat:   "json",
		OutputFormat:  "json",
		DuplicateKeys: "error",
		MaxDepth:      64,
		MaxBytes:      16 << 20,
		Language:      "en",
	}
}

// Load builds the configuration. An empty path skips the file; a missing
// file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.LogLevel = getEnv("JMAPCTL_LOG_LEVEL", cfg.LogLevel)
	cfg.InputFormat = getEnv("JMAPCTL_INPUT_FORMAT", cfg.InputFormat)
	cfg.OutputFormat = getEnv("JMAPCTL_OUTPUT_FORMAT", cfg.OutputFormat)
	cfg.DuplicateKeys = getEnv("JMAPCTL_DUPLICATE_KEYS", cfg.DuplicateKeys)
	cfg.Language = getEnv("JMAPCTL_LANGUAGE", cfg.Language)

	var err error
	if cfg.MaxDepth, err = getEnvInt("JMAPCTL_MAX_DEPTH", cfg.MaxDepth); err != nil {
		return nil, err
	}
	maxBytes, err := getEnvInt("JMAPCTL_MAX_BYTES", int(cfg.MaxBytes))
	if err != nil {
		return nil, err
	}
	cfg.MaxBytes = int64(maxBytes)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports settings outside their allowed values.
func (c *Config) Validate() error {
	if !contains(inputFormats, c.InputFormat) {
		return fmt.Errorf("input format %q: want one of %s", c.InputFormat, strings.Join(inputFormats, ", "))
	}
	if !contains(outputFormats, c.OutputFormat) {
		return fmt.Errorf("output format %q: want one of %s", c.OutputFormat, strings.Join(outputFormats, ", "))
	}
	if _, err := severity(c.DuplicateKeys); err != nil {
		return err
	}
	if c.MaxDepth < 0 || c.MaxBytes < 0 {
		return errors.New("max_depth and max_bytes must not be negative")
	}
	return nil
}

// ParseOpt projects the enforcement settings onto decoder options.
func (c *Config) ParseOpt() gojmap.ParseOpt {
	sev, _ := severity(c.DuplicateKeys)
	return gojmap.ParseOpt{
		Strictness: gojmap.Strictness{OnDuplicateKey: sev},
		MaxDepth:   c.MaxDepth,
		MaxBytes:   c.MaxBytes,
	}
}

func severity(s string) (gojmap.Severity, error) {
	switch strings.ToLower(s) {
	case "ignore":
		return gojmap.Ignore, nil
	case "warn":
		return gojmap.Warn, nil
	case "error", "":
		return gojmap.Error, nil
	}
	return gojmap.Error, fmt.Errorf("duplicate keys %q: want ignore, warn or error", s)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
