package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/aidar/localtime-bot/internal/domain"
)

// Config содержит всю конфигурацию приложения
type Config struct {
	Bot      BotConfig    // Настройки Telegram бота
	Roster   RosterConfig // Источник состава команды
	Server   ServerConfig // Настройки HTTP сервера
	JWT      JWTConfig    // Настройки JWT авторизации
	LogLevel string       `envconfig:"LOG_LEVEL" default:"info"`
}

// BotConfig содержит настройки Telegram бота
type BotConfig struct {
	Token       string        `envconfig:"BOT_TOKEN"`
	PollTimeout time.Duration `envconfig:"BOT_POLL_TIMEOUT" default:"60s"`
	SkipPending bool          `envconfig:"BOT_SKIP_PENDING" default:"true"`
	Debug       bool          `envconfig:"BOT_DEBUG" default:"false"`
}

// RosterConfig содержит путь к файлу состава команды
type RosterConfig struct {
	File string `envconfig:"ROSTER_FILE" default:"team_members.json"`
}

// ServerConfig содержит настройки HTTP сервера.
// Явно пустой SERVER_PORT отключает сервер.
type ServerConfig struct {
	Port string `envconfig:"SERVER_PORT" default:"8080"`
	Host string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
}

// JWTConfig содержит настройки JWT авторизации.
// Пустой секрет отключает группу /api.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET"`
}

// Enabled сообщает, задан ли секрет
func (j JWTConfig) Enabled() bool {
	return j.Secret != ""
}

// Enabled сообщает, нужно ли запускать HTTP сервер
func (s ServerConfig) Enabled() bool {
	return s.Port != ""
}

// Addr возвращает адрес для HTTP сервера

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// SlogLevel возвращает уровень логирования, info по умолчанию
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Load читает конфигурацию из .env файла и переменных окружения.
// Отсутствие токена бота является фатальной ошибкой.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Bot.Token == "" {
		return nil, fmt.Errorf("failed to load config: BOT_TOKEN: %w", domain.ErrMissingToken)
	}

	return &cfg, nil
}

// LoadRoster читает только настройки состава, токен бота не требуется
func LoadRoster() (*RosterConfig, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	var cfg RosterConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadJWT читает только настройки JWT
func LoadJWT() (*JWTConfig, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	var cfg JWTConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// loadDotEnv подгружает .env из рабочей директории, если он есть.
// Уже заданные переменные окружения не перезаписываются.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}
