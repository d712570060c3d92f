package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ModeDebug   = "debug"
	ModeRelease = "release"
	ModeTest    = "test"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Storage   StorageConfig
	Content   ContentConfig
	Log       LogConfig
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Watch     bool            `mapstructure:"watch"`

	// 运行时标志（非配置文件，通过命令行参数设置）
	ForceMigrate bool   `mapstructure:"-"`
	MigrateOnly  bool   `mapstructure:"-"`
	File         string `mapstructure:"-"` // config file actually read, empty when running on defaults
}

type ServerConfig struct {
	Port         string
	Mode         string
	MaxBodyBytes int64 `mapstructure:"max_body_bytes"`
}

type DatabaseConfig struct {
	Type         string // sqlite, postgres, mysql
	URL          string `mapstructure:"url"`
	Path         string `mapstructure:"path"`
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string `mapstructure:"dbname"`
	Charset      string
	ParseTime    bool   `mapstructure:"parse_time"`
	SSLMode      string `mapstructure:"sslmode"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	LogLevel     string `mapstructure:"log_level"`
}

type StorageConfig struct {
	Type          string `mapstructure:"type"`
	LocalPath     string `mapstructure:"local_path"`
	PublicPrefix  string `mapstructure:"public_prefix"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
	MinioUseSSL   bool   `mapstructure:"minio_use_ssl"`
	MinioPublic   string `mapstructure:"minio_public_url"`
}

// ContentConfig controls where course definitions come from.
type ContentConfig struct {
	Dir     string `mapstructure:"dir"`
	Builtin bool   `mapstructure:"builtin"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
	ServiceName       string `mapstructure:"service_name"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", ModeDebug)
	v.SetDefault("server.max_body_bytes", 1<<20)

	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.path", "instance/app.db")
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.parse_time", true)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.log_level", "warn")

	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.local_path", "static")
	v.SetDefault("storage.public_prefix", "/static")

	v.SetDefault("content.dir", "content")
	v.SetDefault("content.builtin", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "logs/app.log")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 30)

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "learnhub")

	v.SetDefault("cors.allowed_origins", []string{"http://localhost:8080"})

	v.SetDefault("rate_limit.max_requests", 600)
	v.SetDefault("rate_limit.window_minutes", 1)

	v.SetDefault("watch", false)
}

// LoadConfig reads <path>/config.yaml (optional), a .env file next to the working
// directory (optional) and the environment, in increasing order of precedence.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	setDefaults(v)

	v.SetEnvPrefix("LEARNHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server
	_ = v.BindEnv("server.port", "LEARNHUB_SERVER_PORT", "PORT")
	_ = v.BindEnv("server.mode", "LEARNHUB_SERVER_MODE", "SERVER_MODE")

	// Database
	_ = v.BindEnv("database.type", "LEARNHUB_DATABASE_TYPE", "DB_TYPE")
	_ = v.BindEnv("database.url", "LEARNHUB_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("database.path", "LEARNHUB_DATABASE_PATH", "DATABASE_PATH")
	_ = v.BindEnv("database.host", "DATABASE_HOST")
	_ = v.BindEnv("database.port", "DATABASE_PORT")
	_ = v.BindEnv("database.user", "DATABASE_USER")
	_ = v.BindEnv("database.password", "DATABASE_PASSWORD")
	_ = v.BindEnv("database.dbname", "DATABASE_NAME")

	// Storage / MinIO
	_ = v.BindEnv("storage.type", "LEARNHUB_STORAGE_TYPE", "STORAGE_TYPE")
	_ = v.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	_ = v.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	_ = v.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	_ = v.BindEnv("storage.minio_bucket", "MINIO_BUCKET")

	// Content
	_ = v.BindEnv("content.dir", "LEARNHUB_CONTENT_DIR", "CONTENT_DIR")

	// Tracing
	_ = v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	_ = v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.Storage.Type == "local" {
		if _, err := os.Stat(cfg.Storage.LocalPath); os.IsNotExist(err) {
			os.MkdirAll(cfg.Storage.LocalPath, 0755)
		}
	}

	if cfg.Database.Type == "sqlite" && cfg.Database.Path != ":memory:" {
		if dir := filepath.Dir(cfg.Database.Path); dir != "." {
			os.MkdirAll(dir, 0755)
		}
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Server.Mode {
	case ModeDebug, ModeRelease, ModeTest:
	default:
		return fmt.Errorf("unknown server mode %q", c.Server.Mode)
	}

	switch c.Database.Type {
	case "sqlite", "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported database type %q", c.Database.Type)
	}

	if c.Database.Type == "postgres" && c.Database.URL == "" && c.Database.Host == "" {
		return errors.New("postgres requires DATABASE_URL or database.host")
	}

	if c.Storage.Type == "minio" && (c.Storage.MinioEndpoint == "" || c.Storage.MinioBucket == "") {
		return errors.New("minio storage requires minio_endpoint and minio_bucket")
	}

	return nil
}

// AutoMigrate reports whether migrations run on startup.
func (c *Config) AutoMigrate() bool {
	return c.ForceMigrate || c.Server.Mode != ModeRelease
}
