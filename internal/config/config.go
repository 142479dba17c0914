package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/Vinayak4780/Guard/pkg/validator"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string          `json:"env"`
	Http      HttpConfig      `json:"http"`
	Postgres  PostgresConfig  `json:"postgres"`
	Redis     RedisConfig     `json:"redis"`
	Auth      AuthConfig      `json:"auth"`
	Scan      ScanConfig      `json:"scan"`
	Geocode   GeocodeConfig   `json:"geocode"`
	Export    ExportConfig    `json:"export"`
	RateLimit RateLimitConfig `json:"rate_limit"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type AuthConfig struct {
	JWTSecret string        `json:"-"`
	JWTIssuer string        `json:"jwt_issuer"`
	AccessTTL time.Duration `json:"access_ttl"`

	// bootstrap admin, created on startup when both are set
	AdminEmail    string `json:"admin_email,omitempty"`
	AdminPassword string `json:"-"`
}

type ScanConfig struct {
	RadiusMeters float64 `json:"radius_meters" validate:"radius_m"`
}

type GeocodeConfig struct {
	TomTomAPIKey string        `json:"-"`
	BaseURL      string        `json:"base_url"`
	Timeout      time.Duration `json:"timeout"`
	CacheTTL     time.Duration `json:"cache_ttl"`
}

func (g GeocodeConfig) Enabled() bool { return g.TomTomAPIKey != "" }

type ExportConfig struct {
	URL      string `json:"url"`
	Disabled bool   `json:"disabled"`
	QueueKey string `json:"queue_key"`
	Workers  int    `json:"workers"`
}

type RateLimitConfig struct {
	ScanRPS   int `json:"scan_rps"`
	ScanBurst int `json:"scan_burst"`
	AuthRPS   int `json:"auth_rps"`
	AuthBurst int `json:"auth_burst"`
}

func LoadConfig() (*Config, error) {
	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "guard_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        int32(getEnvInt("POSTGRES_MAX_CONNS", 20)),
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			JWTIssuer: getEnv("JWT_ISSUER", "guard-patrol"),
			AccessTTL: getEnvDuration("JWT_ACCESS_TTL", 12*time.Hour),

			AdminEmail:    getEnv("ADMIN_EMAIL", ""),
			AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		},
		Scan: ScanConfig{
			RadiusMeters: getEnvFloat("SCAN_RADIUS_METERS", 100),
		},
		Geocode: GeocodeConfig{
			TomTomAPIKey: getEnv("TOMTOM_API_KEY", ""),
			BaseURL:      getEnv("TOMTOM_BASE_URL", "https://api.tomtom.com"),
			Timeout:      getEnvDuration("GEOCODE_TIMEOUT", 3*time.Second),
			CacheTTL:     getEnvDuration("GEOCODE_CACHE_TTL", 24*time.Hour),
		},
		Export: ExportConfig{
			URL:      getEnv("EXPORT_WEBHOOK_URL", ""),
			Disabled: getEnvBool("EXPORT_DISABLED", false),
			QueueKey: getEnv("EXPORT_QUEUE_KEY", "scans:export"),
			Workers:  getEnvInt("EXPORT_WORKERS", 1),
		},
		RateLimit: RateLimitConfig{
			ScanRPS:   getEnvInt("RATE_SCAN_RPS", 5),
			ScanBurst: getEnvInt("RATE_SCAN_BURST", 10),
			AuthRPS:   getEnvInt("RATE_AUTH_RPS", 1),
			AuthBurst: getEnvInt("RATE_AUTH_BURST", 5),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.Float64("scan_radius_m", cfg.Scan.RadiusMeters),
		slog.Bool("geocode_enabled", cfg.Geocode.Enabled()),
		slog.Bool("export_disabled", cfg.Export.Disabled))

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}

	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET required")
	}

	if (c.Auth.AdminEmail == "") != (c.Auth.AdminPassword == "") {
		return errors.New("ADMIN_EMAIL and ADMIN_PASSWORD must be set together")
	}

	if err := validator.ValidateStruct(c.Scan); err != nil {
		return errors.New("SCAN_RADIUS_METERS must be between 1 and 10000")
	}

	if !c.Export.Disabled && c.Export.URL == "" {
		return errors.New("EXPORT_WEBHOOK_URL required unless EXPORT_DISABLED=true")
	}

	if c.Export.Workers < 1 {
		c.Export.Workers = 1
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
