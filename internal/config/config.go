package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig возвращается, если конфигурация не прошла проверку
var ErrInvalidConfig = errors.New("invalid config")

// Способы доставки уведомлений владельцу
const (
	NotifierNone     = "none"
	NotifierTelegram = "telegram"
	NotifierWebhook  = "webhook"
	NotifierRabbitMQ = "rabbitmq"
)

// Бэкенды ограничителя частоты заявок
const (
	RateLimitRedis  = "redis"
	RateLimitMemory = "memory"
)

// Config конфигурация приложения
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Session   SessionConfig   `toml:"session"`
	Redis     RedisConfig     `toml:"redis"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Notifier  NotifierConfig  `toml:"notifier"`
	Pricing   PricingConfig   `toml:"pricing"`
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
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SessionConfig настройки проверки сессионного JWT
type SessionConfig struct {
	JWTSecret    string `toml:"jwt_secret"`
	CookieName   string `toml:"cookie_name"`
	SecureCookie bool   `toml:"secure_cookie"`
}

// RedisConfig настройки подключения к Redis
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// RateLimitConfig ограничение частоты отправки заявок с одного IP
type RateLimitConfig struct {
	Enabled         bool    `toml:"enabled"`
	Backend         string  `toml:"backend"`
	Capacity        int     `toml:"capacity"`
	RefillPerMinute float64 `toml:"refill_per_minute"`
	// IP или CIDR прокси, чьим X-Forwarded-For / X-Real-IP можно верить
	TrustedProxies []string `toml:"trusted_proxies"`
}

// NotifierConfig настройки уведомлений владельцу (timeout в секундах)
type NotifierConfig struct {
	Kind     string         `toml:"kind"`
	Timeout  int            `toml:"timeout"`
	Telegram TelegramConfig `toml:"telegram"`
	Webhook  WebhookConfig  `toml:"webhook"`
	RabbitMQ RabbitMQConfig `toml:"rabbitmq"`
}

// TelegramConfig настройки Telegram бота
type TelegramConfig struct {
	BotToken string `toml:"bot_token"`
	ChatID   int64  `toml:"chat_id"`
}

// WebhookConfig настройки webhook получателя
type WebhookConfig struct {
	URL    string `toml:"url"`
	APIKey string `toml:"api_key"`
}

// RabbitMQConfig настройки очереди уведомлений
type RabbitMQConfig struct {
	URL   string `toml:"url"`
	Queue string `toml:"queue"`
}

// PricingConfig цены в HKD
type PricingConfig struct {
	Base       int `toml:"base"`
	PerVehicle int `toml:"per_vehicle"`
	PerVideo   int `toml:"per_video"`
}

// Load загружает конфигурацию из TOML файла
// Секреты из .env и переменных окружения перекрывают значения из файла
func Load(path string) (*Config, error) {
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		path = env
	}

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	// .env не обязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "mddroner-booking",
		},
		Session: SessionConfig{CookieName: "mddroner_session"},
		Redis:   RedisConfig{Addr: "localhost:6379"},
		RateLimit: RateLimitConfig{
			Backend:         RateLimitMemory,
			Capacity:        5,
			RefillPerMinute: 1,
		},
		Notifier: NotifierConfig{
			Kind:    NotifierNone,
			Timeout: 5,
		},
		Pricing: PricingConfig{
			Base:       2800,
			PerVehicle: 800,
			PerVideo:   500,
		},
	}
}

func applyEnv(cfg *Config) error {
	overrides := map[string]*string{
		"DB_PASSWORD":        &cfg.Database.Password,
		"SESSION_JWT_SECRET": &cfg.Session.JWTSecret,
		"TELEGRAM_BOT_TOKEN": &cfg.Notifier.Telegram.BotToken,
		"WEBHOOK_API_KEY":    &cfg.Notifier.Webhook.APIKey,
		"RABBITMQ_URL":       &cfg.Notifier.RabbitMQ.URL,
		"REDIS_PASSWORD":     &cfg.Redis.Password,
	}
	for key, dst := range overrides {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	if v, ok := os.LookupEnv("TELEGRAM_CHAT_ID"); ok {
		chatID, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: TELEGRAM_CHAT_ID: %v", ErrInvalidConfig, err)
		}
		cfg.Notifier.Telegram.ChatID = chatID
	}

	return nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Session.JWTSecret == "" {
		return fmt.Errorf("%w: session.jwt_secret is required (or SESSION_JWT_SECRET)", ErrInvalidConfig)
	}

	switch c.Notifier.Kind {
	case NotifierNone:
	case NotifierTelegram:
		if c.Notifier.Telegram.BotToken == "" || c.Notifier.Telegram.ChatID == 0 {
			return fmt.Errorf("%w: notifier.telegram requires bot_token and chat_id", ErrInvalidConfig)
		}
	case NotifierWebhook:
		if c.Notifier.Webhook.URL == "" {
			return fmt.Errorf("%w: notifier.webhook requires url", ErrInvalidConfig)
		}
	case NotifierRabbitMQ:
		if c.Notifier.RabbitMQ.URL == "" {
			return fmt.Errorf("%w: notifier.rabbitmq requires url", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown notifier.kind %q", ErrInvalidConfig, c.Notifier.Kind)
	}
	if c.Notifier.Timeout <= 0 {
		return fmt.Errorf("%w: notifier.timeout must be positive", ErrInvalidConfig)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.Backend != RateLimitRedis && c.RateLimit.Backend != RateLimitMemory {
			return fmt.Errorf("%w: unknown rate_limit.backend %q", ErrInvalidConfig, c.RateLimit.Backend)
		}
		if c.RateLimit.Capacity <= 0 || c.RateLimit.RefillPerMinute <= 0 {
			return fmt.Errorf("%w: rate_limit.capacity and refill_per_minute must be positive", ErrInvalidConfig)
		}
		for _, proxy := range c.RateLimit.TrustedProxies {
			if !validProxy(proxy) {
				return fmt.Errorf("%w: rate_limit.trusted_proxies: invalid entry %q", ErrInvalidConfig, proxy)
			}
		}
	}

	if c.Pricing.Base < 0 || c.Pricing.PerVehicle < 0 || c.Pricing.PerVideo < 0 {
		return fmt.Errorf("%w: pricing values must not be negative", ErrInvalidConfig)
	}

	return nil
}

func validProxy(entry string) bool {
	entry = strings.TrimSpace(entry)
	if net.ParseIP(entry) != nil {
		return true
	}
	_, _, err := net.ParseCIDR(entry)
	return err == nil
}
