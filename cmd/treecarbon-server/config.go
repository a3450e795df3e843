package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds settings for the estimate API server.
// Listen specifies the HTTP listen address, LogLevel the zerolog level,
// RequestTimeout the per-request handling limit, and ShutdownGrace the
// drain window on SIGINT/SIGTERM.
type Config struct {
	Listen         string        `yaml:"listen"`
	LogLevel       string        `yaml:"log_level"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	ShutdownGrace  time.Duration `yaml:"shutdown_grace"`
}

func defaultConfig() *Config {
	return &Config{
		Listen:         ":8080",
		LogLevel:       "info",
		RequestTimeout: 5 * time.Second,
		ShutdownGrace:  10 * time.Second,
	}
}

// parseConfig resolves configuration from, in increasing precedence:
// defaults, an optional YAML file (-config), TREECARBON_* environment
// variables, and explicitly passed flags.
func parseConfig(args []string) (*Config, error) {
	config := defaultConfig()

	fs := flag.NewFlagSet("treecarbon-server", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to YAML config file")
	listen := fs.String("listen", config.Listen, "Address to listen on for the estimate API")
	logLevel := fs.String("log-level", config.LogLevel, "Log level (trace, debug, info, warn, error)")
	requestTimeout := fs.Duration("request-timeout", config.RequestTimeout, "Timeout for handling individual requests")
	shutdownGrace := fs.Duration("shutdown-grace", config.ShutdownGrace, "Grace period for draining connections on shutdown")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *configPath != "" {
		if err := loadConfigFile(*configPath, config); err != nil {
			return nil, err
		}
	}

	applyEnv(config)

	// Explicit flags win over file and environment.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "listen":
			config.Listen = *listen
		case "log-level":
			config.LogLevel = *logLevel
		case "request-timeout":
			config.RequestTimeout = *requestTimeout
		case "shutdown-grace":
			config.ShutdownGrace = *shutdownGrace
		}
	})

	if config.Listen == "" {
		return nil, fmt.Errorf("listen address must not be empty")
	}
	if config.RequestTimeout <= 0 {
		return nil, fmt.Errorf("request timeout must be positive, got %s", config.RequestTimeout)
	}
	if config.ShutdownGrace <= 0 {
		return nil, fmt.Errorf("shutdown grace must be positive, got %s", config.ShutdownGrace)
	}

	return config, nil
}

func loadConfigFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(config *Config) {
	if v := os.Getenv("TREECARBON_LISTEN"); v != "" {
		config.Listen = v
	}
	if v := os.Getenv("TREECARBON_LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}
	if v := os.Getenv("TREECARBON_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.RequestTimeout = d
		}
	}
	if v := os.Getenv("TREECARBON_SHUTDOWN_GRACE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.ShutdownGrace = d
		}
	}
}
