package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Log      LogConfig
	Thread   ThreadConfig
}

type ServerConfig struct {
	Address        string        `validate:"required"`
	ContextTimeout time.Duration `validate:"gt=0"`
}

type DatabaseConfig struct {
	Host     string `validate:"required"`
	Port     string `validate:"required,numeric"`
	User     string `validate:"required"`
	Password string
	Name     string `validate:"required"`
	Timezone string
	Migrate  bool
}

type CacheConfig struct {
	Host         string `validate:"required"`
	Port         string `validate:"required,numeric"`
	Password     string
	DB           int    `validate:"gte=0"`
	BloomBitSize uint64 `validate:"gt=0"`
}

type AuthConfig struct {
	JWTSecret string `validate:"required"`
}

type LogConfig struct {
	Level  string `validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `validate:"oneof=text json"`
}

// ThreadConfig holds the placeholders shown for deleted content
type ThreadConfig struct {
	CommentDeletedMarker string
	ReplyDeletedMarker   string
}

const (
	defaultTimeout      = 30 * time.Second
	defaultAddress      = ":9090"
	defaultCacheDB      = 0
	defaultBloomBitSize = 10000000
	defaultTimezone     = "Asia/Jakarta"
)

// Load reads .env when present, then the environment, and validates the
// result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Address:        getEnv("SERVER_ADDRESS", defaultAddress),
			ContextTimeout: time.Duration(getIntEnv("CONTEXT_TIMEOUT", int(defaultTimeout/time.Second))) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     os.Getenv("DATABASE_HOST"),
			Port:     getEnv("DATABASE_PORT", "3306"),
			User:     os.Getenv("DATABASE_USER"),
			Password: os.Getenv("DATABASE_PASS"),
			Name:     os.Getenv("DATABASE_NAME"),
			Timezone: getEnv("DATABASE_TIMEZONE", defaultTimezone),
			Migrate:  getBoolEnv("DATABASE_MIGRATE", true),
		},
		Cache: CacheConfig{
			Host:         getEnv("CACHE_HOST", "localhost"),
			Port:         getEnv("CACHE_PORT", "6379"),
			Password:     os.Getenv("CACHE_PASS"),
			DB:           getIntEnv("CACHE_DB", defaultCacheDB),
			BloomBitSize: getUint64Env("BLOOM_FILTER_SIZE", defaultBloomBitSize),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		Thread: ThreadConfig{
			CommentDeletedMarker: os.Getenv("COMMENT_DELETED_MARKER"),
			ReplyDeletedMarker:   os.Getenv("REPLY_DELETED_MARKER"),
		},
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// DSN returns the go-sql-driver DSN. clientFoundRows makes an UPDATE that
// changes nothing still report the matched row.
func (c *DatabaseConfig) DSN() string {
	dsn := mysqlDriver.NewConfig()
	dsn.User = c.User
	dsn.Passwd = c.Password
	dsn.Net = "tcp"
	dsn.Addr = c.Host + ":" + c.Port
	dsn.DBName = c.Name
	dsn.ParseTime = true
	dsn.ClientFoundRows = true
	dsn.Loc = c.location()
	return dsn.FormatDSN()
}

// MigrateDSN is DSN with multiStatements enabled for migration files
func (c *DatabaseConfig) MigrateDSN() string {
	dsn, err := mysqlDriver.ParseDSN(c.DSN())
	if err != nil {
		return c.DSN()
	}
	dsn.MultiStatements = true
	return dsn.FormatDSN()
}

func (c *DatabaseConfig) location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		logrus.Warnf("unknown timezone %q, using UTC: %v", c.Timezone, err)
		return time.UTC
	}
	return loc
}

// CacheAddr is host:port for the redis client
func (c *CacheConfig) CacheAddr() string {
	return c.Host + ":" + c.Port
}

// Setup configures the package level logrus logger
func (c *LogConfig) Setup() {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if c.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
		logrus.Warnf("failed to parse %s, using default %d", key, defaultValue)
	}
	return defaultValue
}

func getUint64Env(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.ParseUint(value, 10, 64); err == nil {
			return v
		}
		logrus.Warnf("failed to parse %s, using default %d", key, defaultValue)
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.ParseBool(value); err == nil {
			return v
		}
	}
	return defaultValue
}
