package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Navigation delivery modes.
const (
	NavigationRedirect = "redirect"
	NavigationKafka    = "kafka"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Upstream notification API.
	APIBaseURL string
	APITimeout time.Duration

	// How /navigate hands a map URL to a viewing context.
	NavigationMode string

	KafkaBrokers         []string
	KafkaNavigationTopic string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	apiTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("API_TIMEOUT", "5s"))
	if err != nil || apiTimeout <= 0 {
		return nil, errors.New("invalid API_TIMEOUT")
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		APIBaseURL: sharedcfg.EnvOrDefault("API_BASE_URL", "http://localhost:8081"),
		APITimeout: apiTimeout,

		NavigationMode: sharedcfg.EnvOrDefault("NAVIGATION_MODE", NavigationRedirect),

		KafkaBrokers:         sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaNavigationTopic: sharedcfg.EnvOrDefault("KAFKA_NAVIGATION_TOPIC", "map-navigations"),
	}

	u, err := url.Parse(cfg.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API_BASE_URL %q", cfg.APIBaseURL)
	}

	switch cfg.NavigationMode {
	case NavigationRedirect:
	case NavigationKafka:
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_BROKERS is required when NAVIGATION_MODE is kafka")
		}
		if cfg.KafkaNavigationTopic == "" {
			return nil, errors.New("KAFKA_NAVIGATION_TOPIC is required when NAVIGATION_MODE is kafka")
		}
	default:
		return nil, fmt.Errorf("invalid NAVIGATION_MODE %q", cfg.NavigationMode)
	}

	return cfg, nil
}
