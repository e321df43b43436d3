package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// CRM Admin Gateway specifics
	Backend BackendConfig
	Cache   CacheConfig
	Gateway GatewayConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// BackendConfig describes the upstream OData CRM API.
type BackendConfig struct {
	BaseURL        string
	AuthMode       string // "token" or "oauth2"
	AccessToken    string
	TimeoutSeconds int

	// OAuth2 client-credentials grant, used when AuthMode == "oauth2".
	OAuth2 OAuth2Config
}

type OAuth2Config struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	Scopes       []string
}

// CacheConfig controls the in-process LRU for list responses.
type CacheConfig struct {
	Size       int
	ListTTLSec int
}

// GatewayConfig holds settings for the gateway's own HTTP surface.
type GatewayConfig struct {
	APIToken        string
	RateLimitPerMin int
	DefaultPageSize int
	MaxPageSize     int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Upstream CRM backend
	cfg.Backend.BaseURL = viper.GetString("backend.base_url")
	cfg.Backend.AuthMode = viper.GetString("backend.auth_mode")
	cfg.Backend.AccessToken = viper.GetString("backend.access_token")
	cfg.Backend.TimeoutSeconds = viper.GetInt("backend.timeout_seconds")
	if backendURL := viper.GetString("backend_url"); backendURL != "" {
		cfg.Backend.BaseURL = backendURL
	}
	if backendToken := viper.GetString("backend_access_token"); backendToken != "" {
		cfg.Backend.AccessToken = backendToken
	}

	cfg.Backend.OAuth2.ClientID = viper.GetString("backend.oauth2.client_id")
	cfg.Backend.OAuth2.ClientSecret = expandEnvVar(viper.GetString("backend.oauth2.client_secret"))
	cfg.Backend.OAuth2.TokenURL = viper.GetString("backend.oauth2.token_url")
	cfg.Backend.OAuth2.Scopes = splitAndTrim(viper.GetString("backend.oauth2.scopes"))

	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("backend.base_url is required - set it in config.yaml or BACKEND_URL")
	}
	if cfg.Backend.AuthMode == "oauth2" && cfg.Backend.OAuth2.TokenURL == "" {
		return nil, fmt.Errorf("backend.oauth2.token_url is required when auth_mode is oauth2")
	}

	// Cache
	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.ListTTLSec = viper.GetInt("cache.list_ttl_seconds")

	// Gateway surface
	cfg.Gateway.APIToken = expandEnvVar(viper.GetString("gateway.api_token"))
	cfg.Gateway.RateLimitPerMin = viper.GetInt("gateway.rate_limit_per_min")
	cfg.Gateway.DefaultPageSize = viper.GetInt("gateway.default_page_size")
	cfg.Gateway.MaxPageSize = viper.GetInt("gateway.max_page_size")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("backend.auth_mode", "token")
	viper.SetDefault("backend.timeout_seconds", 30)
	viper.SetDefault("cache.size", 512)
	viper.SetDefault("cache.list_ttl_seconds", 30)
	viper.SetDefault("gateway.rate_limit_per_min", 120)
	viper.SetDefault("gateway.default_page_size", 20)
	viper.SetDefault("gateway.max_page_size", 100)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// splitAndTrim splits a comma-separated list since viper might not parse
// arrays seamlessly from env vars.
func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
