// Package config loads wgolf configuration from defaults, a YAML file,
// WGOLF_ environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/feydor/semiotics/golf"
	"github.com/feydor/semiotics/strpool"
	"github.com/feydor/semiotics/wordlist"
)

// Output formats.
const (
	OutputText  = "text"
	OutputTable = "table"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "wgolf.yaml"

const envPrefix = "WGOLF_"

// ErrInvalid is wrapped by every Validate error.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all wgolf configuration options.
type Config struct {
	DictPath      string `koanf:"dict_path"`
	WordLength    int    `koanf:"word_length"` // 0 derives the length from the start word
	PoolCapacity  int    `koanf:"pool_capacity"`
	Alphabet      string `koanf:"alphabet"`
	RequireSorted bool   `koanf:"require_sorted"`
	Verbose       bool   `koanf:"verbose"`
	LogFile       string `koanf:"log_file"`
	MetricsFile   string `koanf:"metrics_file"`
	Output        string `koanf:"output"`

	// ConfigFile is the file the configuration was read from, if any.
	ConfigFile string `koanf:"-"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		DictPath:     wordlist.DefaultPath,
		PoolCapacity: strpool.DefaultCapacity,
		Alphabet:     golf.DefaultAlphabet,
		Output:       OutputText,
	}
}

// flagKeys maps flag names that differ from their config keys.
var flagKeys = map[string]string{
	"dict":     "dict_path",
	"length":   "word_length",
	"capacity": "pool_capacity",
}

// Load reads configuration. Precedence (highest to lowest):
// flags > env vars > config file > defaults.
// Only flags that were explicitly set override other sources.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	def := Default()

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]any{
		"dict_path":      def.DictPath,
		"word_length":    def.WordLength,
		"pool_capacity":  def.PoolCapacity,
		"alphabet":       def.Alphabet,
		"require_sorted": def.RequireSorted,
		"verbose":        def.Verbose,
		"log_file":       def.LogFile,
		"metrics_file":   def.MetricsFile,
		"output":         def.Output,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Environment: WGOLF_DICT_PATH -> dict_path
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				key = strings.ReplaceAll(f.Name, "-", "_")
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.ConfigFile = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// findConfigFile returns the explicit path, or DefaultFile if it exists.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile
	}
	return ""
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.DictPath == "" {
		return fmt.Errorf("%w: dict_path is required", ErrInvalid)
	}
	if c.WordLength < 0 {
		return fmt.Errorf("%w: word_length must not be negative, got %d", ErrInvalid, c.WordLength)
	}
	if c.PoolCapacity <= 0 {
		return fmt.Errorf("%w: pool_capacity must be positive, got %d", ErrInvalid, c.PoolCapacity)
	}
	if c.Alphabet == "" {
		return fmt.Errorf("%w: alphabet is empty", ErrInvalid)
	}
	for i := 0; i < len(c.Alphabet); i++ {
		if ch := c.Alphabet[i]; ch < 'a' || ch > 'z' {
			return fmt.Errorf("%w: alphabet byte %q at %d is not a lowercase ASCII letter", ErrInvalid, ch, i)
		}
	}
	switch c.Output {
	case OutputText, OutputTable:
	default:
		return fmt.Errorf("%w: output must be %q or %q, got %q", ErrInvalid, OutputText, OutputTable, c.Output)
	}
	return nil
}
