package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix префикс переменных окружения, перекрывающих config.toml.
// Пример: COURTS_DATABASE_PASSWORD, COURTS_ADMIN_JWT_SECRET.
const EnvPrefix = "COURTS"

var (
	// ErrReadConfig возвращается, если файл конфигурации не прочитан
	ErrReadConfig = errors.New("config: failed to read configuration")

	// ErrInvalidConfig возвращается при невалидных значениях
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
	Admin    AdminConfig    `toml:"admin"`
	Redis    RedisConfig    `toml:"redis"`
	RabbitMQ RabbitMQConfig `toml:"rabbitmq"`
	Backup   BackupConfig   `toml:"backup"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" split_words:"true"`
	ReadTimeout     int `toml:"read_timeout" split_words:"true"`     // секунды
	WriteTimeout    int `toml:"write_timeout" split_words:"true"`    // секунды
	IdleTimeout     int `toml:"idle_timeout" split_words:"true"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout" split_words:"true"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" split_words:"true"`
	SSLMode         string `toml:"sslmode" split_words:"true"`
	MaxOpenConns    int    `toml:"max_open_conns" split_words:"true"`
	MaxIdleConns    int    `toml:"max_idle_conns" split_words:"true"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" split_words:"true"` // секунды
	AutoMigrate     bool   `toml:"auto_migrate" split_words:"true"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name" split_words:"true"`
	Path        string `toml:"path"`
}

type BookingConfig struct {
	Timezone   string `toml:"timezone"`
	BookingURL string `toml:"booking_url" split_words:"true"`
}

// Location часовой пояс комплекса, по нему определяется "сегодня"
func (c BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

type AdminConfig struct {
	PasswordHash    string `toml:"password_hash" split_words:"true"` // bcrypt
	JWTSecret       string `toml:"jwt_secret" split_words:"true"`
	TokenTTLMinutes int    `toml:"token_ttl_minutes" split_words:"true"`
}

type RedisConfig struct {
	Enabled         bool   `toml:"enabled"`
	Addr            string `toml:"addr"`
	Password        string `toml:"password"`
	DB              int    `toml:"db"`
	KeyPrefix       string `toml:"key_prefix" split_words:"true"`
	CacheTTLSeconds int    `toml:"cache_ttl_seconds" split_words:"true"`
}

type RabbitMQConfig struct {
	Enabled  bool   `toml:"enabled"`
	URL      string `toml:"url"`
	Exchange string `toml:"exchange"`
}

type BackupConfig struct {
	Dir           string `toml:"dir"`
	RetentionDays int    `toml:"retention_days" split_words:"true"`
}

// Default значения, которые действуют, если их нет в файле и окружении
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
			ServiceName: "court-booking-service",
			Path:        "/metrics",
		},
		Booking: BookingConfig{
			Timezone: "America/Asuncion",
		},
		Admin: AdminConfig{
			TokenTTLMinutes: 480,
		},
		Redis: RedisConfig{
			Addr:            "localhost:6379",
			CacheTTLSeconds: 300,
		},
		RabbitMQ: RabbitMQConfig{
			Exchange: "court_booking.events",
		},
		Backup: BackupConfig{
			Dir:           "backups",
			RetentionDays: 30,
		},
	}
}

// Load читает конфигурацию: значения по умолчанию, затем config.toml,
// затем .env (если есть) и переменные окружения COURTS_*
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: .env: %v", ErrReadConfig, err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("%w: environment: %v", ErrReadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные значения
func (c *Config) Validate() error {
	switch {
	case c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535:
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	case c.Database.DBName == "":
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	case c.Admin.PasswordHash == "":
		return fmt.Errorf("%w: admin.password_hash is required", ErrInvalidConfig)
	case c.Admin.JWTSecret == "":
		return fmt.Errorf("%w: admin.jwt_secret is required", ErrInvalidConfig)
	case c.Admin.TokenTTLMinutes <= 0:
		return fmt.Errorf("%w: admin.token_ttl_minutes must be positive", ErrInvalidConfig)
	case c.Backup.RetentionDays <= 0:
		return fmt.Errorf("%w: backup.retention_days must be positive", ErrInvalidConfig)
	case c.RabbitMQ.Enabled && c.RabbitMQ.URL == "":
		return fmt.Errorf("%w: rabbitmq.url is required when rabbitmq is enabled", ErrInvalidConfig)
	}

	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}

	return nil
}
