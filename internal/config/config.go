package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/m04kA/SMC-SlotPaymentService/internal/domain"
)

// EnvPrefix префикс переменных окружения для секретов
const EnvPrefix = "booking"

var (
	ErrLoad     = errors.New("config: failed to load config")
	ErrInvalid  = errors.New("config: invalid config")
	ErrTimezone = errors.New("config: unknown timezone")
)

type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	PayPal        PayPalConfig        `toml:"paypal"`
	Notifications NotificationsConfig `toml:"notifications"`
	Booking       BookingConfig       `toml:"booking"`
	Admin         AdminConfig         `toml:"admin"`
}

type ServerConfig struct {
	HTTPPort           int `toml:"http_port"`
	ReadTimeout        int `toml:"read_timeout"`          // секунды
	WriteTimeout       int `toml:"write_timeout"`         // секунды
	IdleTimeout        int `toml:"idle_timeout"`          // секунды
	ShutdownTimeout    int `toml:"shutdown_timeout"`      // секунды
	RateLimitPerMinute int `toml:"rate_limit_per_minute"` // 0 - без ограничения
	RateLimitBurst     int `toml:"rate_limit_burst"`
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

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type PayPalConfig struct {
	BaseURL      string `toml:"base_url"`
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	Currency     string `toml:"currency"`
	ReturnURL    string `toml:"return_url"`
	CancelURL    string `toml:"cancel_url"`
	Timeout      int    `toml:"timeout"` // секунды
}

type NotificationsConfig struct {
	Enabled        bool   `toml:"enabled"`
	AMQPURL        string `toml:"amqp_url"`
	Exchange       string `toml:"exchange"`
	PublishTimeout int    `toml:"publish_timeout"` // секунды
}

type BookingConfig struct {
	Timezone string `toml:"timezone"`

	location *time.Location
}

type AdminConfig struct {
	Token string `toml:"token"`
}

// envOverrides секреты, которые можно переопределить из окружения (BOOKING_*)
type envOverrides struct {
	DBPassword         string `envconfig:"DB_PASSWORD"`
	PayPalClientID     string `envconfig:"PAYPAL_CLIENT_ID"`
	PayPalClientSecret string `envconfig:"PAYPAL_CLIENT_SECRET"`
	AMQPURL            string `envconfig:"AMQP_URL"`
	AdminToken         string `envconfig:"ADMIN_TOKEN"`
}

// Load читает TOML файл, применяет значения по умолчанию, переменные окружения и валидирует результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:           8080,
			ReadTimeout:        15,
			WriteTimeout:       15,
			IdleTimeout:        60,
			ShutdownTimeout:    10,
			RateLimitPerMinute: 120,
			RateLimitBurst:     20,
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
			Path:        "/metrics",
			ServiceName: "slot-payment-service",
		},
		PayPal: PayPalConfig{
			BaseURL:  "https://api-m.sandbox.paypal.com",
			Currency: "GBP",
			Timeout:  15,
		},
		Notifications: NotificationsConfig{
			Exchange:       "booking.events",
			PublishTimeout: 5,
		},
		Booking: BookingConfig{
			Timezone: domain.DefaultTimezone,
		},
	}
}

func (c *Config) applyEnv() error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("%w: env: %v", ErrLoad, err)
	}

	if env.DBPassword != "" {
		c.Database.Password = env.DBPassword
	}
	if env.PayPalClientID != "" {
		c.PayPal.ClientID = env.PayPalClientID
	}
	if env.PayPalClientSecret != "" {
		c.PayPal.ClientSecret = env.PayPalClientSecret
	}
	if env.AMQPURL != "" {
		c.Notifications.AMQPURL = env.AMQPURL
	}
	if env.AdminToken != "" {
		c.Admin.Token = env.AdminToken
	}
	return nil
}

// Validate проверяет обязательные значения и загружает часовой пояс
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d", ErrInvalid, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("%w: database host, dbname and user are required", ErrInvalid)
	}
	if _, err := url.ParseRequestURI(c.PayPal.BaseURL); err != nil {
		return fmt.Errorf("%w: paypal.base_url: %v", ErrInvalid, err)
	}
	if c.PayPal.ClientID == "" || c.PayPal.ClientSecret == "" {
		return fmt.Errorf("%w: paypal client_id and client_secret are required", ErrInvalid)
	}
	if len(c.PayPal.Currency) != 3 {
		return fmt.Errorf("%w: paypal.currency must be an ISO 4217 code", ErrInvalid)
	}
	if c.PayPal.Timeout <= 0 {
		return fmt.Errorf("%w: paypal.timeout must be positive, got %d", ErrInvalid, c.PayPal.Timeout)
	}
	if c.Notifications.PublishTimeout <= 0 {
		return fmt.Errorf("%w: notifications.publish_timeout must be positive, got %d", ErrInvalid, c.Notifications.PublishTimeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: server.shutdown_timeout must be positive, got %d", ErrInvalid, c.Server.ShutdownTimeout)
	}
	if c.Notifications.Enabled && c.Notifications.AMQPURL == "" {
		return fmt.Errorf("%w: notifications.amqp_url is required when notifications are enabled", ErrInvalid)
	}
	if c.Admin.Token == "" {
		return fmt.Errorf("%w: admin.token is required", ErrInvalid)
	}

	tz := c.Booking.Timezone
	if tz == "" {
		tz = domain.DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTimezone, tz, err)
	}
	c.Booking.Timezone = tz
	c.Booking.location = loc

	return nil
}

// DSN строка подключения к PostgreSQL для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Location часовой пояс мастерской. До Validate возвращает UTC.
func (b BookingConfig) Location() *time.Location {
	if b.location == nil {
		return time.UTC
	}
	return b.location
}
