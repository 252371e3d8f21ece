package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/TeodorSim/TransfIT/internal/shared/config"
)

type Config struct {
	Server     sharedConfig.ServerConfig     `mapstructure:"server"`
	Database   sharedConfig.DatabaseConfig   `mapstructure:"database"`
	Logger     sharedConfig.LoggerConfig     `mapstructure:"logger"`
	OAuth      sharedConfig.OAuthConfig      `mapstructure:"oauth"`
	Automation sharedConfig.AutomationConfig `mapstructure:"automation"`
	Security   sharedConfig.SecurityConfig   `mapstructure:"security"`
	Cookie     sharedConfig.CookieConfig     `mapstructure:"cookie"`
	Redis      sharedConfig.RedisConfig      `mapstructure:"redis"`
	RateLimit  sharedConfig.RateLimitConfig  `mapstructure:"rate_limit"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("TRANSFIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional when everything comes from the environment
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// Validate refuses startup when any identity or automation secret is absent.
// Every other setting has a workable default; these do not.
func (c *Config) Validate() error {
	var missing []string

	if c.OAuth.Google.ClientID == "" {
		missing = append(missing, "oauth.google.client_id")
	}
	if c.OAuth.Google.ClientSecret == "" {
		missing = append(missing, "oauth.google.client_secret")
	}
	if c.Automation.APIKey == "" {
		missing = append(missing, "automation.api_key")
	}
	if c.Security.CookieSecret == "" {
		missing = append(missing, "security.cookie_secret")
	}
	if c.Security.EncryptionKey == "" {
		missing = append(missing, "security.encryption_key")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 3000)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.base_url", "http://localhost:3000")

	// Database defaults
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.username", "postgres")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.database", "transfit")
	viper.SetDefault("database.ssl_mode", "disable")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 20)
	viper.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// OAuth defaults (secrets empty by default, must be configured)
	viper.SetDefault("oauth.google.client_id", "")
	viper.SetDefault("oauth.google.client_secret", "")
	viper.SetDefault("oauth.google.redirect_url", "http://localhost:3000/auth/google/callback")

	// Automation engine defaults
	viper.SetDefault("automation.base_url", "http://localhost:5678")
	viper.SetDefault("automation.api_key", "")
	viper.SetDefault("automation.template_path", "./templates/workflow_template.json")

	// Security defaults (must be configured)
	viper.SetDefault("security.cookie_secret", "")
	viper.SetDefault("security.encryption_key", "")

	// Cookie defaults
	viper.SetDefault("cookie.domain", "")
	viper.SetDefault("cookie.path", "/")
	viper.SetDefault("cookie.secure", false)
	viper.SetDefault("cookie.same_site", "Lax")

	// Redis defaults
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Rate limit defaults
	viper.SetDefault("rate_limit.enabled", false)
	viper.SetDefault("rate_limit.requests_per_minute", 60)
}
