package config

import (
	"fmt"
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
	RateLimit  RateLimitConfig

	// Extraction specifics
	Extractor ExtractorConfig
	Usage     UsageConfig
	Telegram  TelegramConfig
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

type RateLimitConfig struct {
	RequestsPerMin int
}

type ExtractorConfig struct {
	Timezone          string
	WeekdayResolution string // "next_occurrence" or "unresolved"
}

type UsageConfig struct {
	TasksPerDay          int
	TranscriptionsPerDay int
	RetentionDays        int
	PremiumUsers         []string
	MaxUsers             int
}

type TelegramConfig struct {
	BotToken     string
	WebhookURL   string
	SecretToken  string
	TunnelAPIURL string // ngrok local API, used when WebhookURL is empty
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance,
// applying defaults and environment overrides first.
func FromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Extraction
	cfg.Extractor.Timezone = v.GetString("extractor.timezone")
	cfg.Extractor.WeekdayResolution = v.GetString("extractor.weekday_resolution")

	cfg.Usage.TasksPerDay = v.GetInt("usage.tasks_per_day")
	cfg.Usage.TranscriptionsPerDay = v.GetInt("usage.transcriptions_per_day")
	cfg.Usage.RetentionDays = v.GetInt("usage.retention_days")
	cfg.Usage.MaxUsers = v.GetInt("usage.max_users")
	cfg.Usage.PremiumUsers = splitList(v.GetString("usage.premium_users"))
	if len(cfg.Usage.PremiumUsers) == 0 {
		cfg.Usage.PremiumUsers = v.GetStringSlice("usage.premium_users")
	}

	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = v.GetString("telegram.secret_token")
	cfg.Telegram.TunnelAPIURL = v.GetString("telegram.tunnel_api_url")
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 60)

	v.SetDefault("extractor.timezone", "UTC")
	v.SetDefault("extractor.weekday_resolution", "next_occurrence")

	// Free tier of the journaling app.
	v.SetDefault("usage.tasks_per_day", 7)
	v.SetDefault("usage.transcriptions_per_day", 3)
	v.SetDefault("usage.retention_days", 30)
	v.SetDefault("usage.max_users", 10000)
}

func (cfg *Config) validate() error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", cfg.HTTPServer.Port)
	}
	if _, err := time.LoadLocation(cfg.Extractor.Timezone); err != nil {
		return fmt.Errorf("extractor.timezone: %w", err)
	}
	switch cfg.Extractor.WeekdayResolution {
	case "next_occurrence", "unresolved":
	default:
		return fmt.Errorf("extractor.weekday_resolution must be next_occurrence or unresolved, got %q", cfg.Extractor.WeekdayResolution)
	}
	if cfg.Usage.TasksPerDay < 0 || cfg.Usage.TranscriptionsPerDay < 0 {
		return fmt.Errorf("usage limits must not be negative")
	}
	if cfg.Usage.RetentionDays <= 0 {
		return fmt.Errorf("usage.retention_days must be positive, got %d", cfg.Usage.RetentionDays)
	}
	if cfg.Usage.MaxUsers <= 0 {
		return fmt.Errorf("usage.max_users must be positive, got %d", cfg.Usage.MaxUsers)
	}
	if cfg.RateLimit.RequestsPerMin < 0 {
		return fmt.Errorf("rate_limit.requests_per_min must not be negative")
	}
	return nil
}

// splitList splits a comma separated value; viper hands env lists over as one string.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
