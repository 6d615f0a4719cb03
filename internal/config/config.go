package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Points   PointsConfig   `yaml:"points"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings (health endpoints only;
// the business API is served by an external layer).
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RabbitMQConfig holds notification broker settings.
// An empty URL disables the dispatcher (a no-op notifier is used instead).
type RabbitMQConfig struct {
	URL         string        `yaml:"url"          env:"RABBITMQ_URL"`
	Exchange    string        `yaml:"exchange"     env:"RABBITMQ_EXCHANGE"     env-default:"closetswap.events"`
	DialTimeout time.Duration `yaml:"dial_timeout" env:"RABBITMQ_DIAL_TIMEOUT" env-default:"10s"`
}

// PointsConfig holds the flat award amounts of the points economy.
// Both awards are intentionally independent of an item's point value.
type PointsConfig struct {
	UploadApprovalAward int `yaml:"upload_approval_award" env:"POINTS_UPLOAD_APPROVAL_AWARD" env-default:"10"`
	SwapCompletionAward int `yaml:"swap_completion_award" env:"POINTS_SWAP_COMPLETION_AWARD" env-default:"10"`
	HistoryPageSize     int `yaml:"history_page_size"     env:"POINTS_HISTORY_PAGE_SIZE"     env-default:"10"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
