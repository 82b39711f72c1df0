// Package config загружает конфигурацию сервиса из TOML файла
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Database  DatabaseConfig  `toml:"database"`
	Storage   StorageConfig   `toml:"storage"`
	Calendar  CalendarConfig  `toml:"calendar"`
	Contact   ContactConfig   `toml:"contact"`
	Chat      ChatConfig      `toml:"chat"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"` // "" или "stdout" пишет в stdout
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// DatabaseConfig настройки PostgreSQL. При enabled = false снапшоты
// записей хранятся в файлах каталога storage.dir.
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
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

// DSN собирает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// StorageConfig настройки снапшотов записей
type StorageConfig struct {
	SnapshotKey string `toml:"snapshot_key"`
	Dir         string `toml:"dir"` // каталог файловых снапшотов
}

// CalendarConfig настройки интеграции с Google Calendar
type CalendarConfig struct {
	Timezone string `toml:"timezone"`
	Timeout  int    `toml:"timeout"` // секунды
}

// ContactConfig настройки пересылки контактной формы
type ContactConfig struct {
	FromEmail      string `toml:"from_email"`
	RecipientEmail string `toml:"recipient_email"`
	Timeout        int    `toml:"timeout"` // секунды
}

// ChatConfig настройки AI ассистента
type ChatConfig struct {
	Model       string  `toml:"model"`
	MaxTokens   int     `toml:"max_tokens"`
	Temperature float64 `toml:"temperature"`
	TopP        float64 `toml:"top_p"`
	Timeout     int     `toml:"timeout"` // секунды
	Referer     string  `toml:"referer"`
	Title       string  `toml:"title"`
}

// RateLimitConfig настройки ограничения частоты запросов
type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
}

// Load читает и разбирает конфигурацию из файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}
	return &cfg, nil
}
