// Package config resolves the run configuration from defaults, an optional YAML file,
// environment variables and the positional command-line arguments.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read from the working directory when WATCHTIME_CONFIG is not set.
const DefaultFile = "watchtime.yaml"

type Config struct {
	HistoryFile        string        `yaml:"history_file" validate:"required"`
	APIKey             string        `yaml:"api_key" validate:"required"`
	MaxDurationSeconds int           `yaml:"max_duration_seconds" default:"2400" validate:"gt=0"`
	BatchSize          int           `yaml:"batch_size" default:"50" validate:"min=1,max=50"`
	OutputPath         string        `yaml:"output_path" default:"./WatchHistoryWithDuration.json" validate:"required"`
	LogDir             string        `yaml:"log_dir" default:"logs" validate:"required"`
	LogLevel           string        `yaml:"log_level" default:"info" validate:"oneof=debug info warn warning error"`
	RequestTimeout     time.Duration `yaml:"request_timeout" default:"30s" validate:"gt=0"`
	Endpoint           string        `yaml:"endpoint" validate:"omitempty,url"`
}

// CLIArgs holds the positional arguments. Zero values mean "not given".
type CLIArgs struct {
	HistoryFile        string
	APIKey             string
	MaxDurationSeconds int
}

// Load builds the effective configuration. Positional arguments take precedence over
// environment variables, which take precedence over the YAML file.
func Load(args CLIArgs) (*Config, error) {
	var cfg Config

	path, explicit := resolvePath()
	if path != "" {
		if err := cfg.readFile(path, explicit); err != nil {
			return nil, err
		}
	}

	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}

	if err := cfg.overrideFromEnv(); err != nil {
		return nil, err
	}

	cfg.overrideFromArgs(args)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// resolvePath returns the YAML file to read and whether it was asked for explicitly.
func resolvePath() (string, bool) {
	if v := os.Getenv("WATCHTIME_CONFIG"); v != "" {
		return v, true
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile, false
	}
	return "", false
}

func (c *Config) readFile(path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to read config file %s", path)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "failed to parse config file %s", path)
	}

	return nil
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() error {
	if v := os.Getenv("YOUTUBE_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("WATCHTIME_OUTPUT"); v != "" {
		c.OutputPath = v
	}
	if v := os.Getenv("WATCHTIME_LOG_DIR"); v != "" {
		c.LogDir = v
	}
	if v := os.Getenv("WATCHTIME_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("WATCHTIME_MAX_DURATION"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "invalid WATCHTIME_MAX_DURATION %q", v)
		}
		c.MaxDurationSeconds = n
	}
	if v := os.Getenv("WATCHTIME_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrapf(err, "invalid WATCHTIME_TIMEOUT %q", v)
		}
		c.RequestTimeout = d
	}
	return nil
}

func (c *Config) overrideFromArgs(args CLIArgs) {
	if args.HistoryFile != "" {
		c.HistoryFile = args.HistoryFile
	}
	if args.APIKey != "" {
		c.APIKey = args.APIKey
	}
	if args.MaxDurationSeconds != 0 {
		c.MaxDurationSeconds = args.MaxDurationSeconds
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}
	return nil
}
