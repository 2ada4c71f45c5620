package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

var (
	// ErrMissingWebhookSecret возвращается при отсутствии секрета вебхуков Shopify
	ErrMissingWebhookSecret = errors.New("config: shopify.webhook_secret is required")

	// ErrMissingJWTSecret возвращается при отсутствии секрета подписи токенов
	ErrMissingJWTSecret = errors.New("config: auth.jwt_secret is required")

	// ErrMissingStoreURL возвращается при отсутствии адреса магазина Shopify
	ErrMissingStoreURL = errors.New("config: shopify.store_url is required")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Shopify  ShopifyConfig  `toml:"shopify"`
	Auth     AuthConfig     `toml:"auth"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
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

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ShopifyConfig настройки интеграции с Shopify
type ShopifyConfig struct {
	StoreURL        string `toml:"store_url"`        // например, mystore.myshopify.com
	StorefrontToken string `toml:"storefront_token"` // Storefront API access token
	AdminToken      string `toml:"admin_token"`      // Admin API access token
	WebhookSecret   string `toml:"webhook_secret"`   // секрет подписи вебхуков
	Timeout         int    `toml:"timeout"`          // секунды
}

// AuthConfig настройки аутентификации пользователей
type AuthConfig struct {
	JWTSecret    string `toml:"jwt_secret"`
	TokenTTLDays int    `toml:"token_ttl_days"`
}

// Load загружает и валидирует конфигурацию из toml-файла.
// Отсутствие обязательных секретов — фатальная ошибка конфигурации:
// лучше упасть на старте, чем возвращать 500 на каждый запрос.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Shopify.WebhookSecret == "" {
		return nil, ErrMissingWebhookSecret
	}
	if cfg.Shopify.StoreURL == "" {
		return nil, ErrMissingStoreURL
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	// Значения по умолчанию
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Auth.TokenTTLDays == 0 {
		cfg.Auth.TokenTTLDays = 90
	}
	if cfg.Shopify.Timeout == 0 {
		cfg.Shopify.Timeout = 10
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	return &cfg, nil
}
