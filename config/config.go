package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Database drivers accepted in DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Monitor  MonitorConfig  `mapstructure:"monitor"`
}

type ServerConfig struct {
	Port      int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel  string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=json text"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=postgres sqlite memory"`
	// URL is the Postgres DSN or the sqlite file path.
	URL string `mapstructure:"url" validate:"required_unless=Driver memory"`

	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" validate:"gte=0"`
}

type AuthConfig struct {
	JWTSecret      string `mapstructure:"jwt_secret" validate:"required"`
	JWTExpiryHours int    `mapstructure:"jwt_expiry_hours" validate:"gt=0"`
}

// TokenTTL is how long issued access tokens stay valid.
func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.JWTExpiryHours) * time.Hour
}

// KafkaConfig enables change events when Brokers is non-empty.
type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic" validate:"required_with=Brokers"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type MonitorConfig struct {
	// PoolStatsSchedule is a cron spec; empty disables the pool stats job.
	PoolStatsSchedule string `mapstructure:"pool_stats_schedule"`
}

var envBindings = []struct {
	key    string
	envVar string
}{
	{"server.port", "PORT"},
	{"server.log_level", "LOG_LEVEL"},
	{"server.log_format", "LOG_FORMAT"},
	{"database.driver", "DB_DRIVER"},
	{"database.url", "DB_URL"},
	{"database.max_open_conns", "DB_MAX_OPEN_CONNS"},
	{"database.max_idle_conns", "DB_MAX_IDLE_CONNS"},
	{"database.conn_max_lifetime", "DB_CONN_MAX_LIFETIME"},
	{"auth.jwt_secret", "JWT_SECRET"},
	{"auth.jwt_expiry_hours", "JWT_EXPIRY_HOURS"},
	{"kafka.brokers", "KAFKA_BROKERS"},
	{"kafka.topic", "KAFKA_TOPIC"},
	{"cors.allowed_origins", "CORS_ALLOWED_ORIGINS"},
	{"monitor.pool_stats_schedule", "POOL_STATS_SCHEDULE"},
}

// Load reads defaults, then the optional config file, then the environment.
// configPath may be empty, in which case ./config.yaml is used when present.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_format", "json")
	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 25)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)
	v.SetDefault("auth.jwt_expiry_hours", 1)
	v.SetDefault("kafka.topic", "menu.events")
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("monitor.pool_stats_schedule", "@every 5m")

	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, b := range envBindings {
		if err := v.BindEnv(b.key, b.envVar); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", b.envVar, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
