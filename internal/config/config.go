// Package config loads the client configuration file. Environment
// variables override the file so scripted use does not need one.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultServerURL = "http://localhost:8000"
	envServerURL     = "HAHEALTH_SERVER_URL"
)

type Config struct {
	// ServerURL is the base URL of the tracker API, without the
	// /api/v1 prefix.
	ServerURL string `yaml:"server_url"`
}

// Load reads the config file at path when it exists and applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{ServerURL: defaultServerURL}

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	if v := os.Getenv(envServerURL); v != "" {
		cfg.ServerURL = v
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = defaultServerURL
	}
	return cfg, nil
}
