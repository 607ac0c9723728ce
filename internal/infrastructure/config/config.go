// internal/infrastructure/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Upstream PNR variants
const (
	PNRProviderIRCTC   = "irctc"
	PNRProviderSession = "session"
)

// Upstream live status variants
const (
	TrainProviderRailYatri = "railyatri"
	TrainProviderLegacy    = "legacy"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion       string `yaml:"app_version"`
	LogLevel         string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	MetricsNamespace string `yaml:"metrics_namespace" validate:"required"`

	// Server
	Port         string        `yaml:"port" validate:"required,number"`
	ReadTimeout  time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" validate:"gt=0"`

	// Upstreams
	UpstreamTimeout     time.Duration `yaml:"upstream_timeout" validate:"gt=0"`
	PNRProvider         string        `yaml:"pnr_provider" validate:"oneof=irctc session"`
	TrainStatusProvider string        `yaml:"train_status_provider" validate:"oneof=railyatri legacy"`
	SearchLimit         int           `yaml:"search_limit" validate:"gt=0,lte=50"`

	// IRCTC keyed API (variant A)
	IRCTCPNRAPIBase       string `yaml:"irctc_pnr_api_base" validate:"omitempty,url"`
	IRCTCPNRAPIKey        string `yaml:"irctc_pnr_api_key"`
	IRCTCPNRAPIHost       string `yaml:"irctc_pnr_api_host"`
	IRCTCPNRAPIHeaderKey  string `yaml:"irctc_pnr_api_header_key"`
	IRCTCPNRAPIHeaderHost string `yaml:"irctc_pnr_api_header_host"`

	// Session API with XSRF cookie handshake (variant B)
	SessionPNRAPIPath    string `yaml:"new_pnr_api_path" validate:"omitempty,url"`
	SessionPNRAPIKeyName string `yaml:"new_pnr_api_key_name"`

	// Live status and search
	TrainStatusAPIBase  string `yaml:"new_train_status_api_base" validate:"omitempty,url"`
	LegacyStatusAPIBase string `yaml:"train_status_api_base" validate:"omitempty,url"`
}

func defaults() *Config {
	return &Config{
		AppVersion:            "1.0.0",
		LogLevel:              "info",
		MetricsNamespace:      "railstatus",
		Port:                  "8080",
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		UpstreamTimeout:       30 * time.Second,
		PNRProvider:           PNRProviderSession,
		TrainStatusProvider:   TrainProviderRailYatri,
		SearchLimit:           8,
		IRCTCPNRAPIHeaderKey:  "x-rapidapi-key",
		IRCTCPNRAPIHeaderHost: "x-rapidapi-host",
		SessionPNRAPIKeyName:  "XSRF-TOKEN",
	}
}

// LoadConfig loads configuration from an optional YAML file named by CONFIG_FILE,
// then from a .env file, then from environment variables. Later sources win.
func LoadConfig() (*Config, error) {
	config := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Load .env file if it exists
	godotenv.Load()

	config.AppVersion = getEnv("APP_VERSION", config.AppVersion)
	config.LogLevel = getEnv("LOG_LEVEL", config.LogLevel)
	config.MetricsNamespace = getEnv("METRICS_NAMESPACE", config.MetricsNamespace)

	config.Port = getEnv("PORT", config.Port)
	config.ReadTimeout = getEnvAsSeconds("READ_TIMEOUT", config.ReadTimeout)
	config.WriteTimeout = getEnvAsSeconds("WRITE_TIMEOUT", config.WriteTimeout)

	config.UpstreamTimeout = getEnvAsSeconds("UPSTREAM_TIMEOUT", config.UpstreamTimeout)
	config.PNRProvider = getEnv("PNR_PROVIDER", config.PNRProvider)
	config.TrainStatusProvider = getEnv("TRAIN_STATUS_PROVIDER", config.TrainStatusProvider)
	config.SearchLimit = getEnvAsInt("SEARCH_LIMIT", config.SearchLimit)

	config.IRCTCPNRAPIBase = getEnv("IRCTC_PNR_API_BASE", config.IRCTCPNRAPIBase)
	config.IRCTCPNRAPIKey = getEnv("IRCTC_PNR_API_KEY", config.IRCTCPNRAPIKey)
	config.IRCTCPNRAPIHost = getEnv("IRCTC_PNR_API_HOST", config.IRCTCPNRAPIHost)
	config.IRCTCPNRAPIHeaderKey = getEnv("IRCTC_PNR_API_HEADER_KEY", config.IRCTCPNRAPIHeaderKey)
	config.IRCTCPNRAPIHeaderHost = getEnv("IRCTC_PNR_API_HEADER_HOST", config.IRCTCPNRAPIHeaderHost)

	config.SessionPNRAPIPath = getEnv("NEW_PNR_API_PATH", config.SessionPNRAPIPath)
	config.SessionPNRAPIKeyName = getEnv("NEW_PNR_API_KEY_NAME", config.SessionPNRAPIKeyName)

	config.TrainStatusAPIBase = getEnv("NEW_TRAIN_STATUS_API_BASE", config.TrainStatusAPIBase)
	config.LegacyStatusAPIBase = getEnv("TRAIN_STATUS_API_BASE", config.LegacyStatusAPIBase)

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsSeconds reads a whole number of seconds.
func getEnvAsSeconds(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(value) * time.Second
	}
	return defaultValue
}
