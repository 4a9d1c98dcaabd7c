package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
// Порядок источников: значения по умолчанию -> TOML файл -> .env -> переменные окружения
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	CORS     CORSConfig     `toml:"cors"`
	Notifier NotifierConfig `toml:"notifier"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
// Если задан URL, он используется вместо отдельных полей
type DatabaseConfig struct {
	URL             string `toml:"url"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	QueryTimeout    int    `toml:"query_timeout"`     // секунды, 0 - без ограничения
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"` // пусто - только stdout
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CORSConfig настройки CORS
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// NotifierConfig настройки Email Microservice
type NotifierConfig struct {
	URL         string `toml:"url"`
	Timeout     int    `toml:"timeout"`      // секунды, на одну попытку
	MaxAttempts int    `toml:"max_attempts"` // 1 - без повторов
	BackoffMS   int    `toml:"backoff_ms"`
}

// envOverrides переменные окружения, переопределяющие файл конфигурации
// Незаданная переменная оставляет значение из файла
type envOverrides struct {
	DatabaseURL          *string  `envconfig:"DATABASE_URL"`
	CORSOrigins          []string `envconfig:"CORS_ORIGINS"`
	EmailServiceURL      *string  `envconfig:"EMAIL_SERVICE_URL"`
	EmailMicroserviceURL *string  `envconfig:"EMAIL_MICROSERVICE_URL"`
	Port                 *int     `envconfig:"PORT"`
	LogLevel             *string  `envconfig:"LOG_LEVEL"`
	MetricsEnabled       *bool    `envconfig:"METRICS_ENABLED"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        5006,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Password:        "postgres",
			DBName:          "slot_booking",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			QueryTimeout:    5,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "slot-booking-service",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:5173", "http://localhost:5000"},
		},
		Notifier: NotifierConfig{
			URL:         "http://127.0.0.1:5002/send-email",
			Timeout:     5,
			MaxAttempts: 1,
			BackoffMS:   200,
		},
	}
}

// Load загружает конфигурацию
// Отсутствующий файл не является ошибкой: используются значения по умолчанию и окружение
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	cfg.applyEnv(&env)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv(env *envOverrides) {
	if env.DatabaseURL != nil {
		c.Database.URL = *env.DatabaseURL
	}
	if len(env.CORSOrigins) > 0 {
		c.CORS.AllowedOrigins = splitOrigins(env.CORSOrigins)
	}
	if env.EmailMicroserviceURL != nil {
		c.Notifier.URL = *env.EmailMicroserviceURL
	}
	if env.EmailServiceURL != nil {
		c.Notifier.URL = *env.EmailServiceURL
	}
	if env.Port != nil {
		c.Server.HTTPPort = *env.Port
	}
	if env.LogLevel != nil {
		c.Logs.Level = *env.LogLevel
	}
	if env.MetricsEnabled != nil {
		c.Metrics.Enabled = *env.MetricsEnabled
	}
}

func splitOrigins(raw []string) []string {
	origins := make([]string, 0, len(raw))
	for _, o := range raw {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// Validate проверяет корректность значений
func (c *Config) Validate() error {
	switch {
	case c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535:
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	case c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.IdleTimeout < 0 || c.Server.ShutdownTimeout < 0:
		return fmt.Errorf("%w: server timeouts must not be negative", ErrInvalidConfig)
	case c.Database.URL == "" && c.Database.Host == "":
		return fmt.Errorf("%w: database.url or database.host is required", ErrInvalidConfig)
	case c.Database.QueryTimeout < 0:
		return fmt.Errorf("%w: database.query_timeout must not be negative", ErrInvalidConfig)
	case c.Notifier.Timeout <= 0:
		return fmt.Errorf("%w: notifier.timeout must be positive, got %d", ErrInvalidConfig, c.Notifier.Timeout)
	case c.Notifier.MaxAttempts < 1:
		return fmt.Errorf("%w: notifier.max_attempts must be at least 1, got %d", ErrInvalidConfig, c.Notifier.MaxAttempts)
	case c.Notifier.BackoffMS < 0:
		return fmt.Errorf("%w: notifier.backoff_ms must not be negative", ErrInvalidConfig)
	case c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/"):
		return fmt.Errorf("%w: metrics.path must start with '/', got %q", ErrInvalidConfig, c.Metrics.Path)
	}
	return nil
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// QueryTimeoutDuration таймаут одного запроса к БД
func (d DatabaseConfig) QueryTimeoutDuration() time.Duration {
	return time.Duration(d.QueryTimeout) * time.Second
}

// TimeoutDuration таймаут одной попытки отправки
func (n NotifierConfig) TimeoutDuration() time.Duration {
	return time.Duration(n.Timeout) * time.Second
}

// BackoffDuration пауза перед первой повторной попыткой
func (n NotifierConfig) BackoffDuration() time.Duration {
	return time.Duration(n.BackoffMS) * time.Millisecond
}
