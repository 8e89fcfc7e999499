package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	"github.com/m04kA/SMC-SpaBoard/pkg/types"
)

const (
	CatalogSourceStatic   = "static"
	CatalogSourcePostgres = "postgres"

	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// Переменные окружения, переопределяющие секреты из файла
const (
	EnvDatabasePassword = "SPA_DB_PASSWORD"
	EnvRedisPassword    = "SPA_REDIS_PASSWORD"
	EnvJWTSecret        = "SPA_JWT_SECRET"
	EnvHTTPPort         = "SPA_HTTP_PORT"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Database DatabaseConfig `toml:"database"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Redis    RedisConfig    `toml:"redis"`
	Session  SessionConfig  `toml:"session"`
	Schedule ScheduleConfig `toml:"schedule"`
	CORS     CORSConfig     `toml:"cors"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig параметры Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DatabaseConfig параметры PostgreSQL (используется справочником при source = "postgres")
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

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// CatalogConfig источник справочника
type CatalogConfig struct {
	Source string `toml:"source"`
}

// RedisConfig параметры Redis (используется хранилищем сессий при store = "redis")
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// SessionConfig параметры сессий и токенов
type SessionConfig struct {
	Store      string `toml:"store"`
	Prefix     string `toml:"prefix"`
	TTLMinutes int    `toml:"ttl_minutes"`
	JWTSecret  string `toml:"jwt_secret"`
	Issuer     string `toml:"issuer"`
	BcryptCost int    `toml:"bcrypt_cost"`
}

// TTL время жизни сессии
func (s SessionConfig) TTL() time.Duration {
	return time.Duration(s.TTLMinutes) * time.Minute
}

// ScheduleConfig сетка расписания доски
type ScheduleConfig struct {
	GridStart           types.TimeOfDay `toml:"grid_start"`
	GridSlotCount       int             `toml:"grid_slot_count"`
	SlotDurationMinutes int             `toml:"slot_duration_minutes"`
	SlotPixelHeight     int             `toml:"slot_pixel_height"`
	GapPixels           int             `toml:"gap_pixels"`
	MinHeightPixels     int             `toml:"min_height_pixels"`
}

// Grid конвертирует настройки в domain.GridConfig
func (s ScheduleConfig) Grid() domain.GridConfig {
	return domain.GridConfig{
		Start:               s.GridStart,
		SlotCount:           s.GridSlotCount,
		SlotDurationMinutes: s.SlotDurationMinutes,
		SlotPixelHeight:     s.SlotPixelHeight,
		GapPixels:           s.GapPixels,
		MinHeightPixels:     s.MinHeightPixels,
	}
}

// CORSConfig разрешенные источники браузерного UI
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	grid := domain.DefaultGridConfig()
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
			ServiceName: "spa-board",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Catalog: CatalogConfig{Source: CatalogSourceStatic},
		Redis:   RedisConfig{Addr: "localhost:6379"},
		Session: SessionConfig{
			Store:      SessionStoreMemory,
			Prefix:     "spa:session:",
			TTLMinutes: 480,
			Issuer:     "spa-board",
			BcryptCost: 10,
		},
		Schedule: ScheduleConfig{
			GridStart:           grid.Start,
			GridSlotCount:       grid.SlotCount,
			SlotDurationMinutes: grid.SlotDurationMinutes,
			SlotPixelHeight:     grid.SlotPixelHeight,
			GapPixels:           grid.GapPixels,
			MinHeightPixels:     grid.MinHeightPixels,
		},
		CORS: CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию.
// Секреты можно переопределить переменными окружения или файлом .env рядом с процессом.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	// .env необязателен
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvDatabasePassword); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv(EnvRedisPassword); ok {
		c.Redis.Password = v
	}
	if v, ok := os.LookupEnv(EnvJWTSecret); ok {
		c.Session.JWTSecret = v
	}
	if v, ok := os.LookupEnv(EnvHTTPPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHTTPPort, err)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	var errs []error

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("server.http_port %d is out of range", c.Server.HTTPPort))
	}
	switch c.Catalog.Source {
	case CatalogSourceStatic, CatalogSourcePostgres:
	default:
		errs = append(errs, fmt.Errorf("catalog.source must be %q or %q, got %q",
			CatalogSourceStatic, CatalogSourcePostgres, c.Catalog.Source))
	}
	switch c.Session.Store {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		errs = append(errs, fmt.Errorf("session.store must be %q or %q, got %q",
			SessionStoreMemory, SessionStoreRedis, c.Session.Store))
	}
	if c.Session.JWTSecret == "" {
		errs = append(errs, fmt.Errorf("session.jwt_secret is empty (set it in config or %s)", EnvJWTSecret))
	}
	if c.Session.TTLMinutes <= 0 {
		errs = append(errs, fmt.Errorf("session.ttl_minutes must be positive"))
	}
	if c.Session.BcryptCost < 4 || c.Session.BcryptCost > 31 {
		errs = append(errs, fmt.Errorf("session.bcrypt_cost must be within [4, 31], got %d", c.Session.BcryptCost))
	}
	if err := c.Schedule.Grid().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("schedule: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
