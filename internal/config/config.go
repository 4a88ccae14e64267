package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

const (
	envPort                  = "PORT"
	envServerReadTimeout     = "SERVER_READ_TIMEOUT"
	envServerWriteTimeout    = "SERVER_WRITE_TIMEOUT"
	envServerShutdownTimeout = "SERVER_SHUTDOWN_TIMEOUT"
	envMongoURI              = "MONGODB_URI"
	envMongoDBName           = "MONGODB_DB_NAME"
	envResendAPIKey          = "RESEND_API_KEY"
	envNotificationEmail     = "NOTIFICATION_EMAIL"
	envNotificationFrom      = "NOTIFICATION_FROM_EMAIL"
	envRedisHost             = "REDIS_HOST"
	envRedisPassword         = "REDIS_PASSWORD"
	envCacheTTL              = "CACHE_TTL"
	envKafkaBroker           = "KAFKA_BROKER"
	envSentryDSN             = "SENTRY_DSN"
	envAppEnv                = "APP_ENV"
)

const (
	defaultServerPort         = "8080"
	defaultServerReadTimeout  = 10 * time.Second
	defaultServerWriteTimeout = 10 * time.Second
	defaultServerShutdown     = 10 * time.Second
	defaultDatabaseName       = "campusconnect"
	defaultNotificationFrom   = "ATC Client Hub <onboarding@resend.dev>"
	defaultCacheTTL           = 30 * time.Second
	defaultRedisPort          = ":6379"

	errMongoURIRequiredFmt     = "%s must be set"
	errInvalidConfigurationFmt = "invalid configuration: %w"
)

type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Notify NotifyConfig
	Cache  CacheConfig
	Events EventsConfig
	Sentry SentryConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type MongoConfig struct {
	// URI is the full connection string. It is the one mandatory piece
	// of configuration; startup fails without it.
	URI string
	// DBName overrides the database name embedded in the URI path.
	DBName string
}

type NotifyConfig struct {
	ResendAPIKey string
	Recipient    string
	From         string
}

// CacheConfig is optional: an empty RedisHost disables the list cache.
type CacheConfig struct {
	RedisHost     string
	RedisPassword string
	TTL           time.Duration
}

// EventsConfig is optional: an empty Broker disables event publishing.
type EventsConfig struct {
	Broker string
}

// SentryConfig is optional: an empty DSN disables error reporting.
type SentryConfig struct {
	DSN         string
	Environment string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv(envPort, defaultServerPort),
			ReadTimeout:     getDurationEnv(envServerReadTimeout, defaultServerReadTimeout),
			WriteTimeout:    getDurationEnv(envServerWriteTimeout, defaultServerWriteTimeout),
			ShutdownTimeout: getDurationEnv(envServerShutdownTimeout, defaultServerShutdown),
		},
		Mongo: MongoConfig{
			URI:    os.Getenv(envMongoURI),
			DBName: strings.TrimSpace(os.Getenv(envMongoDBName)),
		},
		Notify: NotifyConfig{
			ResendAPIKey: os.Getenv(envResendAPIKey),
			Recipient:    os.Getenv(envNotificationEmail),
			From:         getEnv(envNotificationFrom, defaultNotificationFrom),
		},
		Cache: CacheConfig{
			RedisHost:     normalizeRedisHost(os.Getenv(envRedisHost)),
			RedisPassword: os.Getenv(envRedisPassword),
			TTL:           getDurationEnv(envCacheTTL, defaultCacheTTL),
		},
		Events: EventsConfig{
			Broker: os.Getenv(envKafkaBroker),
		},
		Sentry: SentryConfig{
			DSN:         os.Getenv(envSentryDSN),
			Environment: os.Getenv(envAppEnv),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf(errInvalidConfigurationFmt, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Mongo.URI == "" {
		return fmt.Errorf(errMongoURIRequiredFmt, envMongoURI)
	}
	return nil
}

// DatabaseName resolves the logical database, in order: the explicit
// override, the path component of the connection URI, then a fixed
// fallback name.
func (c *MongoConfig) DatabaseName() string {
	if c.DBName != "" {
		return c.DBName
	}

	if parsed, err := url.Parse(c.URI); err == nil {
		if name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/")); name != "" {
			return name
		}
	}

	return defaultDatabaseName
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// normalizeRedisHost appends the default Redis port when only a host is
// given, matching how the cache expects its address.
func normalizeRedisHost(host string) string {
	if host == "" {
		return ""
	}
	if !strings.Contains(host, ":") {
		return host + defaultRedisPort
	}
	return host
}
