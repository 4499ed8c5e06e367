// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles buildergen project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the name of the buildergen configuration file.
const FileName = "buildergen.yaml"

// Environment variables that override file settings.
const (
	EnvOptionalWrapper = "BUILDERGEN_OPTIONAL_WRAPPER"
	EnvFormat          = "BUILDERGEN_FORMAT"
	EnvTrace           = "BUILDERGEN_TRACE"
	EnvLogFormat       = "BUILDERGEN_LOG_FORMAT"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config represents the buildergen.yaml project configuration file.
type Config struct {
	Version int `yaml:"version"`
	// OptionalWrapper is the generic type name whose single-argument
	// instances are treated as optional fields.
	OptionalWrapper string   `yaml:"optional_wrapper,omitempty" validate:"omitempty,excludesall= <>[]"`
	Format          string   `yaml:"format,omitempty" validate:"omitempty,alphanum"`
	Output          string   `yaml:"output,omitempty"`
	Package         string   `yaml:"package,omitempty" validate:"omitempty,excludesall= ./-"`
	Imports         []string `yaml:"imports,omitempty" validate:"dive,required"`
	EmitType        bool     `yaml:"emit_type,omitempty"`
	Trace           bool     `yaml:"trace,omitempty"`
	LogFormat       string   `yaml:"log_format,omitempty" validate:"omitempty,oneof=text json"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Format:  "go",
	}
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: invalid value %q", fe.Namespace(), fmt.Sprint(fe.Value())))
			}
			return errors.New(strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// ApplyEnv overrides settings from environment variables read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		return
	}
	if v := getenv(EnvOptionalWrapper); v != "" {
		c.OptionalWrapper = v
	}
	if v := getenv(EnvFormat); v != "" {
		c.Format = v
	}
	if v := getenv(EnvLogFormat); v != "" {
		c.LogFormat = v
	}
	if v := getenv(EnvTrace); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Trace = b
		}
	}
}
