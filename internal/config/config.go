package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath переменная окружения с путём к конфигу
const EnvConfigPath = "CONFIG_PATH"

var (
	// ErrReadConfig файл конфигурации не прочитан или не разобран
	ErrReadConfig = errors.New("config: failed to read config")

	// ErrInvalidConfig конфигурация не прошла валидацию
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	RabbitMQ RabbitMQConfig `toml:"rabbitmq"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig HTTP-сервер, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто - только stdout
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RabbitMQConfig брокер для событий о подтверждённых бронированиях
type RabbitMQConfig struct {
	Enabled        bool   `toml:"enabled"`
	URL            string `toml:"url"`
	Queue          string `toml:"queue"`
	PublishTimeout int    `toml:"publish_timeout"` // секунды
	ReconnectDelay int    `toml:"reconnect_delay"` // секунды
}

// BookingConfig параметры движка бронирования
type BookingConfig struct {
	TimelineLockKey     int64 `toml:"timeline_lock_key"`
	SerializableRetries int   `toml:"serializable_retries"`
}

// Load читает конфиг из path (или из CONFIG_PATH, если задан), применяет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		path = envPath
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию, поверх которой декодируется файл
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "karting-service",
		},
		RabbitMQ: RabbitMQConfig{
			Queue:          "reservation.confirmed",
			PublishTimeout: 5,
			ReconnectDelay: 5,
		},
		Booking: BookingConfig{
			TimelineLockKey:     7301,
			SerializableRetries: 3,
		},
	}
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("%w: database host, dbname and user are required", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}
	if c.RabbitMQ.Enabled && (c.RabbitMQ.URL == "" || c.RabbitMQ.Queue == "") {
		return fmt.Errorf("%w: rabbitmq url and queue are required when enabled", ErrInvalidConfig)
	}
	if c.Booking.SerializableRetries < 0 {
		return fmt.Errorf("%w: booking.serializable_retries must be >= 0", ErrInvalidConfig)
	}
	return nil
}
