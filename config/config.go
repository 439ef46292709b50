package config

import (
	"errors"
	"fmt"
	"io/fs"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable read into Config.
const EnvPrefix = "LOANRATES"

type Config struct {
	TopN      int    `envconfig:"TOP_N" default:"3" validate:"min=1"`
	Format    string `envconfig:"FORMAT" default:"text" validate:"oneof=text table markdown csv"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn" validate:"oneof=debug info warn error"`
	Delimiter string `envconfig:"DELIMITER" default:"," validate:"len=1"`
}

// Load reads the optional env files (".env" when none are given) into the
// process environment, then fills and validates Config from LOANRATES_* variables.
// Missing env files are not an error; variables already set win over file values.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg := &Config{}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints; it is called again after flags override values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// DelimiterRune returns the configured field delimiter.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}
