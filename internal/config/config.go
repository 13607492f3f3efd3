package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines client configuration.
type Config struct {
	API   APIConfig   `yaml:"api"`
	Store StoreConfig `yaml:"store"`
	Log   LogConfig   `yaml:"log"`
}

type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type StoreConfig struct {
	Path string `yaml:"path"`
	// Latency simulates network delay on local reads and writes.
	Latency time.Duration `yaml:"latency"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		API: APIConfig{
			BaseURL: "https://kitstart.ismit.ru/api",
			Timeout: 30 * time.Second,
		},
		Store: StoreConfig{
			Path: "kitstart.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("KITSTART_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if baseURL := os.Getenv("KITSTART_API_BASE_URL"); baseURL != "" {
		cfg.API.BaseURL = baseURL
	}
	if timeoutStr := os.Getenv("KITSTART_API_TIMEOUT"); timeoutStr != "" {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid KITSTART_API_TIMEOUT: %w", err)
		}
		cfg.API.Timeout = timeout
	}
	if storePath := os.Getenv("KITSTART_STORE_PATH"); storePath != "" {
		cfg.Store.Path = storePath
	}
	if latencyStr := os.Getenv("KITSTART_STORE_LATENCY"); latencyStr != "" {
		latency, err := time.ParseDuration(latencyStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid KITSTART_STORE_LATENCY: %w", err)
		}
		cfg.Store.Latency = latency
	}
	if level := os.Getenv("KITSTART_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
