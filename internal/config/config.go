// Package config предоставляет структуры и функции для загрузки конфигурации
// шлюза мини-приложения из YAML-файла с переопределением через переменные окружения.
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек.
type Config struct {
	Env             string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer      `yaml:"http_server"`
	Backend         `yaml:"backend"`
	Telegram        `yaml:"telegram"`
	RedisConnection `yaml:"redis_connection"`
	ImageProxy      `yaml:"image_proxy"`
	RateLimit       `yaml:"rate_limit"`
	CacheTTL        `yaml:"cache"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"HTTP_ADDRESS" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"15s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
	PublicURL   string        `yaml:"public_url" env:"PUBLIC_URL"`        // Внешний адрес шлюза, нужен для ссылок через прокси
	TrustProxy  bool          `yaml:"trust_proxy" env:"HTTP_TRUST_PROXY"` // Доверять X-Forwarded-For/X-Real-IP (только за своим прокси)
}

// Backend настройки REST-бэкенда.
type Backend struct {
	BaseURL string        `yaml:"base_url" env:"BACKEND_BASE_URL" env-required:"true"`
	Timeout time.Duration `yaml:"timeout" env-default:"10s"`
}

// Telegram настройки бота и проверки данных запуска.
type Telegram struct {
	BotToken    string        `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN"`
	BotUsername string        `yaml:"bot_username" env:"TELEGRAM_BOT_USERNAME" env-default:"giftoutfit_bot"`
	InitDataTTL time.Duration `yaml:"init_data_ttl" env-default:"24h"`
}

// RedisConnection структура для настройки подключения к redis.
// Пустой адрес означает кэш в памяти процесса.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis" env:"REDIS_ADDRESS"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeoutredis"`
}

// ImageProxy настройки прокси изображений CDN.
type ImageProxy struct {
	AllowedHosts []string      `yaml:"allowed_hosts" env-default:"cdn.changes.tg"`
	CDNBaseURL   string        `yaml:"cdn_base_url" env-default:"https://cdn.changes.tg"`
	CacheEntries int           `yaml:"cache_entries" env-default:"512"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" env-default:"5242880"`
	Timeout      time.Duration `yaml:"timeout" env-default:"15s"`
	MaxAge       time.Duration `yaml:"max_age" env-default:"24h"`
}

// RateLimit настройки ограничения частоты запросов на пользователя.
type RateLimit struct {
	RPS   float64 `yaml:"rps" env-default:"10"`
	Burst int     `yaml:"burst" env-default:"20"`
}

// CacheTTL время жизни закэшированных запросов.
type CacheTTL struct {
	Catalog  time.Duration `yaml:"catalog" env-default:"24h"`
	Grids    time.Duration `yaml:"grids" env-default:"5m"`
	Profiles time.Duration `yaml:"profiles" env-default:"1m"`
}

// Load читает конфиг из файла path.
func Load(path string) (*Config, error) {
	const op = "config.Load"
	if path == "" {
		return nil, fmt.Errorf("%s: config path is empty", op)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: file %s does not exist", op, path)
	}
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%s: backend.base_url is required", op)
	}
	return &cfg, nil
}

// MustLoad функция для загрузки конфига по пути из CONFIG_PATH, завершает процесс при ошибке.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

// String возвращает конфиг без секретов, пригодный для логирования.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"  PublicURL: %s\n"+
			"Backend:\n"+
			"  BaseURL: %s\n"+
			"  Timeout: %s\n"+
			"Telegram:\n"+
			"  BotToken: %s\n"+
			"  BotUsername: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  DB: %d\n"+
			"ImageProxy:\n"+
			"  AllowedHosts: %v\n"+
			"  CacheEntries: %d\n",
		c.Env,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.PublicURL,
		c.BaseURL,
		c.Backend.Timeout,
		mask(c.BotToken),
		c.BotUsername,
		c.AddressRedis,
		c.DB,
		c.AllowedHosts,
		c.CacheEntries,
	)
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return "***"
}
