package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Overlay storage engines
const (
	OverlayEngineFile     = "file"
	OverlayEnginePostgres = "postgres"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Platform PlatformConfig `toml:"platform"`
	Overlay  OverlayConfig  `toml:"overlay"`
	Database DatabaseConfig `toml:"database"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// PlatformConfig настройки клиента авторитетного сервиса платформы
type PlatformConfig struct {
	URL       string `toml:"url"`
	Timeout   int    `toml:"timeout"` // секунды, ограничивает каждый удаленный вызов
	AuthToken string `toml:"auth_token"`
}

// OverlayConfig настройки локального overlay хранилища (Tier 1)
type OverlayConfig struct {
	Engine   string `toml:"engine"`    // "file" или "postgres"
	FilePath string `toml:"file_path"` // путь к JSON файлу для engine = "file"
}

// DatabaseConfig настройки PostgreSQL (используется при overlay.engine = "postgres")
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

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "restaurant-service",
		},
		Platform: PlatformConfig{
			Timeout: 5,
		},
		Overlay: OverlayConfig{
			Engine:   OverlayEngineFile,
			FilePath: "overlay.json",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
	}
}

func (c *Config) validate() error {
	if c.Platform.URL == "" {
		return fmt.Errorf("config: platform.url is required")
	}

	switch c.Overlay.Engine {
	case OverlayEngineFile:
		if c.Overlay.FilePath == "" {
			return fmt.Errorf("config: overlay.file_path is required for the file engine")
		}
	case OverlayEnginePostgres:
		if c.Database.DBName == "" {
			return fmt.Errorf("config: database.dbname is required for the postgres engine")
		}
	default:
		return fmt.Errorf("config: unknown overlay engine %q", c.Overlay.Engine)
	}

	return nil
}
