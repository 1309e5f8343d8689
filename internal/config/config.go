package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config содержит настройки приложения. Значения берутся из переменных
// окружения, флаги командной строки имеют приоритет.
type Config struct {
	// Адрес HTTP сервера
	ServerAddress NetworkAddress `env:"SERVER_ADDRESS"`
	// Базовый адрес результирующей короткой ссылки
	BaseURL URLPrefix `env:"BASE_URL"`
	// DSN PostgreSQL; пустое значение включает хранилище в памяти
	DatabaseDSN string `env:"DATABASE_DSN"`
	// Секрет подписи JWT токенов сессий
	JWTSecret string `env:"JWT_SECRET" envDefault:"dev-secret"`
	// Выдавать dev-сессии запросам без токена (только для локальной разработки)
	AuthDevSessions bool `env:"AUTH_DEV_SESSIONS"`
	// Максимум попыток вставки при генерации короткого кода
	CodeMaxAttempts int `env:"CODE_MAX_ATTEMPTS" envDefault:"10"`
}

// NewDefaultConfig возвращает конфигурацию по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress:   NetworkAddress{Host: "localhost", Port: 8080},
		BaseURL:         URLPrefix("http://localhost:8080"),
		JWTSecret:       "dev-secret",
		CodeMaxAttempts: 10,
	}
}

// Load читает конфигурацию из окружения и флагов командной строки
func Load() (*Config, error) {
	cfg := NewDefaultConfig()

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment config: %w", err)
	}

	flag.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	flag.Var(&cfg.BaseURL, "b", "base URL for shortened links")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL DSN")
	flag.Parse()

	if cfg.CodeMaxAttempts <= 0 {
		return nil, fmt.Errorf("invalid CODE_MAX_ATTEMPTS: %d", cfg.CodeMaxAttempts)
	}

	return cfg, nil
}
