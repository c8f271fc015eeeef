package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Reference ReferenceConfig
	Cache     CacheConfig
	Matching  MatchingConfig
	Extract   ExtractConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ReferenceConfig holds the food reference data source configuration.
// An empty or missing path is not fatal: matching degrades to defaults.
type ReferenceConfig struct {
	Path string `mapstructure:"path"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// MatchingConfig holds shelf-life matcher configuration
type MatchingConfig struct {
	FuzzyThreshold       float64 `mapstructure:"fuzzy_threshold"`
	DefaultShelfLifeDays int     `mapstructure:"default_shelf_life_days"`
	EnableDebugLogging   bool    `mapstructure:"enable_debug_logging"`
}

// ExtractConfig holds extractor configuration. Stoplists are data: retailer
// layouts vary, so the non-item keywords are configurable rather than
// hardcoded.
type ExtractConfig struct {
	ReceiptStoplist    []string `mapstructure:"receipt_stoplist"`
	ScreenshotStoplist []string `mapstructure:"screenshot_stoplist"`
	LookbackLines      int      `mapstructure:"lookback_lines"`
	LookaheadLines     int      `mapstructure:"lookahead_lines"`
	EnableDebugLogging bool     `mapstructure:"enable_debug_logging"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/smart-pantry/")

	v.SetEnvPrefix("PANTRY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Reference defaults
	v.SetDefault("reference.path", "./data/foodkeeper.json")

	// Cache defaults
	v.SetDefault("cache.ttl", "168h")

	// Matching defaults
	v.SetDefault("matching.fuzzy_threshold", 0.6)
	v.SetDefault("matching.default_shelf_life_days", 7)
	v.SetDefault("matching.enable_debug_logging", false)

	// Extract defaults; stoplists default to the built-in lists when empty
	v.SetDefault("extract.receipt_stoplist", []string{})
	v.SetDefault("extract.screenshot_stoplist", []string{})
	v.SetDefault("extract.lookback_lines", 3)
	v.SetDefault("extract.lookahead_lines", 4)
	v.SetDefault("extract.enable_debug_logging", false)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	switch config.Server.Environment {
	case "development", "test", "production":
	default:
		return fmt.Errorf("environment must be development, test, or production, got: %s", config.Server.Environment)
	}

	if config.Matching.FuzzyThreshold <= 0 || config.Matching.FuzzyThreshold >= 1 {
		return fmt.Errorf("matching fuzzy threshold must be between 0 and 1 exclusive, got: %v", config.Matching.FuzzyThreshold)
	}

	if config.Extract.LookbackLines < 1 {
		return fmt.Errorf("extract lookback lines must be at least 1, got: %d", config.Extract.LookbackLines)
	}
	if config.Extract.LookaheadLines < 1 {
		return fmt.Errorf("extract lookahead lines must be at least 1, got: %d", config.Extract.LookaheadLines)
	}

	return nil
}
