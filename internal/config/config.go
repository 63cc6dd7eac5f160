package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	API    APIConfig    `mapstructure:"api"`
	Labels LabelsConfig `mapstructure:"labels"`
	Log    LogConfig    `mapstructure:"log"`
	Notify NotifyConfig `mapstructure:"notify"`
}

// APIConfig holds the character API client configuration
type APIConfig struct {
	BaseURL              string   `mapstructure:"base_url"`
	Timeout              int      `mapstructure:"timeout"`
	MaxRequestsPerSecond int      `mapstructure:"max_requests_per_second"`
	UserAgent            string   `mapstructure:"user_agent"`
	Proxies              []string `mapstructure:"proxies"`
	InsecureSkipVerify   bool     `mapstructure:"insecure_skip_verify"`
}

// LabelsConfig selects the language used for display labels
type LabelsConfig struct {
	Language string `mapstructure:"language"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type NotifyConfig struct {
	Redis RedisConfig `mapstructure:"redis"`
}

// RedisConfig holds Redis connection details for load notifications
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
	Channel  string `mapstructure:"channel"`
	Timeout  int    `mapstructure:"timeout"`
}

// Load loads configuration from a YAML file with environment variable overrides.
// An empty path looks for config.yaml in the working directory, which may be absent.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.SetEnvPrefix("rickmorty")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "https://rickandmortyapi.com/api")
	v.SetDefault("api.timeout", 30)
	v.SetDefault("api.max_requests_per_second", 5)
	v.SetDefault("api.user_agent", "rickmorty-catalog/1.0")
	v.SetDefault("api.proxies", []string{})
	v.SetDefault("api.insecure_skip_verify", false)

	v.SetDefault("labels.language", "es")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetDefault("notify.redis.enabled", false)
	v.SetDefault("notify.redis.host", "localhost")
	v.SetDefault("notify.redis.port", 6379)
	v.SetDefault("notify.redis.password", "")
	v.SetDefault("notify.redis.database", 0)
	v.SetDefault("notify.redis.channel", "rickmorty:catalog:loaded")
	v.SetDefault("notify.redis.timeout", 5)
}
