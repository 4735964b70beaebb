package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Scheduling
	LLM            LLMConfig
	GoogleCalendar GoogleCalendarConfig
	Scheduler      SchedulerConfig

	// Middleware
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// LLMConfig holds configuration for the text-completion provider used by the query parser.
type LLMConfig struct {
	Provider  string
	APIKey    string
	BaseURL   string
	Model     string
	Timeout   time.Duration
	MaxTokens int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	Timeout         time.Duration
}

type SchedulerConfig struct {
	Timezone      string
	UpcomingLimit int
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
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
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// LLM
	cfg.LLM.Provider = strings.ToLower(viper.GetString("llm.provider"))
	cfg.LLM.APIKey = expandEnvVar(viper.GetString("llm.api_key"))
	cfg.LLM.BaseURL = viper.GetString("llm.base_url")
	cfg.LLM.Model = viper.GetString("llm.model")
	cfg.LLM.Timeout = viper.GetDuration("llm.timeout")
	cfg.LLM.MaxTokens = viper.GetInt("llm.max_tokens")
	// OPENAI_API_KEY only belongs to the openai provider.
	if openaiKey := viper.GetString("openai_api_key"); openaiKey != "" && cfg.LLM.Provider == "openai" {
		cfg.LLM.APIKey = openaiKey
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timeout = viper.GetDuration("google_calendar.timeout")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Scheduler
	cfg.Scheduler.Timezone = viper.GetString("scheduler.timezone")
	cfg.Scheduler.UpcomingLimit = viper.GetInt("scheduler.upcoming_limit")

	// Rate limit
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 5000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// LLM defaults
	viper.SetDefault("llm.provider", "openai")
	viper.SetDefault("llm.model", "gpt-3.5-turbo")
	viper.SetDefault("llm.timeout", "30s")
	viper.SetDefault("llm.max_tokens", 512)

	viper.SetDefault("google_calendar.credentials_path", "credentials.json")
	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.timeout", "15s")

	viper.SetDefault("scheduler.timezone", "America/Los_Angeles")
	viper.SetDefault("scheduler.upcoming_limit", 10)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)
}

// validate rejects configurations the service cannot start with.
func validate(cfg *Config) error {
	if cfg.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key is required (set OPENAI_API_KEY)")
	}
	switch cfg.LLM.Provider {
	case "openai", "deepseek", "qwen", "gemini":
	default:
		return fmt.Errorf("llm.provider %q is not supported", cfg.LLM.Provider)
	}
	if cfg.LLM.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be positive")
	}
	if cfg.GoogleCalendar.Timeout <= 0 {
		return fmt.Errorf("google_calendar.timeout must be positive")
	}
	if _, err := time.LoadLocation(cfg.Scheduler.Timezone); err != nil {
		return fmt.Errorf("scheduler.timezone %q: %w", cfg.Scheduler.Timezone, err)
	}
	if cfg.Scheduler.UpcomingLimit <= 0 {
		return fmt.Errorf("scheduler.upcoming_limit must be positive")
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}
