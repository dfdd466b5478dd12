// Package config resolves pathfinder settings from a YAML file, a .env file
// and PATHFINDER_* environment variables, in increasing order of precedence.
// Command-line flags are applied on top by the caller.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathfinder/loader"
	"github.com/katalvlaran/pathfinder/report"
)

// Config aggregates pathfinder configuration values.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Output  string        `yaml:"output"`  // text|table|json|yaml; empty selects by terminal
	Form    string        `yaml:"form"`    // default input form
	Timeout time.Duration `yaml:"timeout"` // zero disables the deadline
}

// LogConfig controls structured logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text|json
}

// Environment variables read by Load.
const (
	EnvLogLevel  = "PATHFINDER_LOG_LEVEL"
	EnvLogFormat = "PATHFINDER_LOG_FORMAT"
	EnvOutput    = "PATHFINDER_OUTPUT"
	EnvForm      = "PATHFINDER_FORM"
	EnvTimeout   = "PATHFINDER_TIMEOUT"
)

const (
	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
	defaultFileName  = ".pathfinder.yaml"
	defaultEnvFile   = ".env"
)

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Form: string(loader.FormLabeled),
	}
}

// Sources names where Load looks for settings. Empty paths select the
// defaults (~/.pathfinder.yaml and ./.env), which may be absent.
// Explicit paths must exist.
type Sources struct {
	File    string
	EnvFile string
}

// Load builds a Config from defaults, the YAML file, the .env file and the
// process environment. Variables already set in the environment win over .env.
func Load(src Sources) (Config, error) {
	cfg := Default()

	if err := loadFile(&cfg, src.File); err != nil {
		return Config{}, err
	}

	dotenv, err := readEnvFile(src.EnvFile)
	if err != nil {
		return Config{}, err
	}
	lookup := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}
	if err = applyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that enumerated values are known.
func (c Config) Validate() error {
	if c.Output != "" {
		if _, err := report.ParseFormat(c.Output); err != nil {
			return fmt.Errorf("invalid output: %w", err)
		}
	}
	if _, err := loader.ParseForm(c.Form); err != nil {
		return fmt.Errorf("invalid form: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: want text or json", c.Log.Format)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative (%s)", c.Timeout)
	}

	return nil
}

func loadFile(cfg *Config, path string) error {
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, defaultFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && err != io.EOF {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	return nil
}

func readEnvFile(path string) (map[string]string, error) {
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}

	vals, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("parse env file %s: %w", path, err)
	}

	return vals, nil
}

func applyEnv(cfg *Config, lookup func(string) string) error {
	if v := lookup(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := lookup(EnvLogFormat); v != "" {
		cfg.Log.Format = v
	}
	if v := lookup(EnvOutput); v != "" {
		cfg.Output = v
	}
	if v := lookup(EnvForm); v != "" {
		cfg.Form = v
	}
	if v := lookup(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
	}

	return nil
}
