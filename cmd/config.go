package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"frigosmart/internal/advisor"
	"frigosmart/internal/storage"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		// JWTSecret signs session tokens. A fixed default is fine for a
		// single-household localhost deployment.
		JWTSecret string `yaml:"jwt_secret"`
	} `yaml:"server"`
	Database storage.Config         `yaml:"database"`
	Advisor  advisor.ProviderConfig `yaml:"advisor"`
}

func defaultConfig() *Config {
	cfg := &Config{Advisor: advisor.DefaultProviderConfig()}
	cfg.Server.JWTSecret = "frigosmart-local"
	return cfg
}

// loadConfig reads the yaml config file. A missing file yields the
// defaults; a present but unreadable one is an error.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Advisor.Provider == "" {
		cfg.Advisor = advisor.DefaultProviderConfig()
	}
	return cfg, nil
}
