package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// Postgres connection string for queue, records and device configs.
	DatabaseURL    string `mapstructure:"database_url"`
	MigrationsPath string `mapstructure:"migrations_path"`

	// Kafka bus carrying record_created domain events.
	KafkaBrokers       string `mapstructure:"kafka_brokers"`
	RecordCreatedTopic string `mapstructure:"record_created_topic"`
	NotifierGroupID    string `mapstructure:"notifier_group_id"`

	HTTPAddr string `mapstructure:"http_addr"`

	// Poller behaviour.
	DefaultPollIntervalSeconds int `mapstructure:"default_poll_interval_seconds"`
	MaxPagesPerCycle           int `mapstructure:"max_pages_per_cycle"`
	PageSize                   int `mapstructure:"page_size"`

	// Worker pool behaviour.
	WorkerCount       int `mapstructure:"worker_count"`
	WorkerMaxRetries  int `mapstructure:"worker_max_retries"`
	PopTimeoutSeconds int `mapstructure:"pop_timeout_seconds"`

	// Notification retry behaviour.
	NotifyMaxRetries int `mapstructure:"notify_max_retries"`

	LogLevel string `mapstructure:"log_level"`
}

func defaults() map[string]any {
	return map[string]any{
		"migrations_path":               "internal/db/migrations",
		"kafka_brokers":                 "localhost:9092",
		"record_created_topic":          "attendance_record_created",
		"notifier_group_id":             "notifier-group",
		"http_addr":                     ":8080",
		"default_poll_interval_seconds": 60,
		"max_pages_per_cycle":           1000,
		"page_size":                     100,
		"worker_count":                  4,
		"worker_max_retries":            3,
		"pop_timeout_seconds":           5,
		"notify_max_retries":            5,
		"log_level":                     "info",
	}
}

// Load reads configuration from environment variables, applying defaults for
// everything except the database URL.
func Load() (*Config, error) {
	v := viper.New()
	for key, val := range defaults() {
		v.SetDefault(key, val)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv alone does not bind keys that are absent from defaults.
	if err := v.BindEnv("database_url"); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	return &cfg, nil
}
