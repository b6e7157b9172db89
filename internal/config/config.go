package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	SourceAPI      = "api"
	SourcePostgres = "postgres"

	envHallServiceToken = "HALL_SERVICE_TOKEN"
	envDBPassword       = "DB_PASSWORD"
	envConfigPath       = "CONFIG_PATH"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Source      SourceConfig      `toml:"source"`
	HallService HallServiceConfig `toml:"hall_service"`
	Database    DatabaseConfig    `toml:"database"`
	Calendar    CalendarConfig    `toml:"calendar"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
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

// SourceConfig откуда берутся бронирования: upstream API или PostgreSQL
type SourceConfig struct {
	Kind string `toml:"kind"`
}

type HallServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
	Token   string `toml:"-"` // HALL_SERVICE_TOKEN
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"-"` // DB_PASSWORD
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

type CalendarConfig struct {
	ExportPerCell int `toml:"export_per_cell"`
}

// Load читает TOML-файл, подгружает .env (если есть) и секреты из окружения.
// Путь можно переопределить переменной CONFIG_PATH.
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	if p := os.Getenv(envConfigPath); p != "" {
		path = p
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default значения по умолчанию, поверх которых читается файл
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "venue_calendar",
		},
		Source:      SourceConfig{Kind: SourceAPI},
		HallService: HallServiceConfig{Timeout: 10},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Calendar: CalendarConfig{ExportPerCell: 2},
	}
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(envHallServiceToken); ok {
		c.HallService.Token = v
	}
	if v, ok := os.LookupEnv(envDBPassword); ok {
		c.Database.Password = v
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, fmt.Sprintf("server.http_port %d out of range", c.Server.HTTPPort))
	}
	if c.Calendar.ExportPerCell <= 0 {
		problems = append(problems, "calendar.export_per_cell must be positive")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		problems = append(problems, "metrics.path must start with /")
	}

	switch c.Source.Kind {
	case SourceAPI:
		if c.HallService.URL == "" {
			problems = append(problems, "hall_service.url is required for source api")
		}
		if c.HallService.Timeout <= 0 {
			problems = append(problems, "hall_service.timeout must be positive")
		}
	case SourcePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			problems = append(problems, "database.host and database.dbname are required for source postgres")
		}
	default:
		problems = append(problems, fmt.Sprintf("source.kind %q is not one of api, postgres", c.Source.Kind))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}
