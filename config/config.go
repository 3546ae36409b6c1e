// Package config assembles the process-wide configuration the pipeline is
// started with: the API credential, model overrides, and the request
// timeout. Everything ambient (environment variables, the optional .env
// file, the optional config.yaml) is read here once; deep components only
// ever see the resulting Config value.
//
// Sources, in the order they are consulted:
//
//  1. Environment variables (GEMINI_API_KEY, MDTRANSLATE_MODEL,
//     MDTRANSLATE_TIMEOUT), with an optional .env file loaded first.
//  2. $XDG_CONFIG_HOME/mdtranslate/config.yaml (default
//     ~/.config/mdtranslate/config.yaml) for model and timeout defaults.
//
// Per-invocation flags outrank both; that precedence is applied by the
// caller, not here.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	// EnvAPIKey is the environment variable holding the API credential.
	EnvAPIKey = "GEMINI_API_KEY"
	// EnvModel is the environment-level model override.
	EnvModel = "MDTRANSLATE_MODEL"
	// EnvTimeout is the environment-level request timeout override.
	EnvTimeout = "MDTRANSLATE_TIMEOUT"

	configDirName  = "mdtranslate"
	configFileName = "config.yaml"
)

// DefaultTimeout bounds the single network call when nothing overrides it.
const DefaultTimeout = 120 * time.Second

// Override is an optional model identifier from one configuration tier.
// Set distinguishes "present but blank" (a configuration error downstream)
// from "absent" (fall through to the next tier).
type Override struct {
	Value  string
	Source string
	Set    bool
}

// Config is the explicit configuration value injected into the pipeline.
type Config struct {
	// APIKey is the credential from the environment. May be empty; the
	// caller decides whether a stored fallback applies before failing.
	APIKey string
	// EnvModel is the environment-tier model override.
	EnvModel Override
	// FileModel is the config-file-tier model override.
	FileModel Override
	// Timeout is the resolved request timeout (env > file > default).
	Timeout time.Duration
}

// envSettings is the envconfig schema for the variables above.
type envSettings struct {
	APIKey  string        `envconfig:"GEMINI_API_KEY"`
	Model   string        `envconfig:"MDTRANSLATE_MODEL"`
	Timeout time.Duration `envconfig:"MDTRANSLATE_TIMEOUT"`
}

// fileSettings is the config.yaml schema. Model is a pointer so a key that
// is present but blank is distinguishable from an absent key.
type fileSettings struct {
	Model   *string       `yaml:"model,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// Load reads the full configuration. A missing .env or config.yaml is not
// an error; malformed values are.
func Load() (*Config, error) {
	// Best effort: a .env in the working directory seeds the environment.
	_ = godotenv.Load()

	var env envSettings
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	file, err := loadFile(configFilePath())
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		APIKey:  env.APIKey,
		Timeout: DefaultTimeout,
	}

	// envconfig cannot tell an unset variable from one set to the empty
	// string, and the blank-but-present case must fail downstream.
	if _, ok := os.LookupEnv(EnvModel); ok {
		cfg.EnvModel = Override{Value: env.Model, Source: "environment", Set: true}
	}
	if file != nil && file.Model != nil {
		cfg.FileModel = Override{Value: *file.Model, Source: "config file", Set: true}
	}

	switch {
	case env.Timeout > 0:
		cfg.Timeout = env.Timeout
	case file != nil && file.Timeout > 0:
		cfg.Timeout = file.Timeout
	}

	return cfg, nil
}

// configFilePath returns the config.yaml location, honoring XDG_CONFIG_HOME.
func configFilePath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, configDirName, configFileName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", configDirName, configFileName)
}

// loadFile parses config.yaml. Returns nil if the file does not exist.
func loadFile(path string) (*fileSettings, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var fs fileSettings
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &fs, nil
}
