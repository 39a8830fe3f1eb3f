// Package config handles application configuration loading and management
package config

import (
	"errors"
	"io/fs"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/shivam970806/VMS/pkg/kafka"
	"github.com/shivam970806/VMS/pkg/redis"
)

// Database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// EnvPrefix prefixes every environment override, e.g. VMS_SERVER_PORT
const EnvPrefix = "VMS"

// Config holds the entire application configuration
type Config struct {
	// Application contains application-level settings
	Application ApplicationConfig `mapstructure:"application"`
	// Server contains HTTP server settings
	Server ServerConfig `mapstructure:"server"`
	// Logger contains log level and format
	Logger LoggerConfig `mapstructure:"logger"`
	// Metrics contains Prometheus exposition settings
	Metrics MetricsConfig `mapstructure:"metrics"`
	// Infrastructure contains infrastructure connection settings
	Infrastructure InfrastructureConfig `mapstructure:"infrastructure"`
	// Security contains security-related settings
	Security SecurityConfig `mapstructure:"security"`
}

// ApplicationConfig holds the application-level configuration
type ApplicationConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// ServerConfig holds the server configuration
type ServerConfig struct {
	// Port specifies the port number the server will listen on
	Port int `mapstructure:"port"`
	// ReadTimeout defines the maximum duration for reading the entire request, including the body, in seconds
	ReadTimeout int `mapstructure:"read_timeout"` // seconds
	// WriteTimeout defines the maximum duration before timing out writes of the response, in seconds
	WriteTimeout int `mapstructure:"write_timeout"` // seconds
	// ShutdownTimeout defines the maximum duration the server will wait for active connections to finish during shutdown, in seconds
	ShutdownTimeout int `mapstructure:"shutdown_timeout"` // seconds
	// RateLimit throttles write routes per caller
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig holds the sliding window limiter settings. It needs redis.
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// LoggerConfig holds the logger configuration
type LoggerConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`
	// Format is json or text
	Format string `mapstructure:"format"`
}

// MetricsConfig holds the Prometheus configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Prefix  string `mapstructure:"prefix"`
}

// InfrastructureConfig holds the infrastructure configuration
type InfrastructureConfig struct {
	// Driver selects the database: postgres or sqlite
	Driver   string         `mapstructure:"driver"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	SQLite   SQLiteConfig   `mapstructure:"sqlite"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
}

// PostgresConfig holds the PostgreSQL database configuration
type PostgresConfig struct {
	// Host specifies the database server host
	Host string `mapstructure:"host"`
	// Port specifies the database server port
	Port int `mapstructure:"port"`
	// User specifies the database user
	User string `mapstructure:"user"`
	// Password specifies the database password
	Password string `mapstructure:"password"`
	// DBName specifies the database name
	DBName string `mapstructure:"dbname"`
	// Schema specifies the database schema
	Schema string `mapstructure:"schema"`
	// SSLMode specifies the SSL mode for database connection
	SSLMode string `mapstructure:"sslmode"`
	// MaxIdleConns specifies the maximum number of idle connections in the pool
	MaxIdleConns int `mapstructure:"max_idle_conns"`
	// MaxOpenConns specifies the maximum number of open connections to the database
	MaxOpenConns int `mapstructure:"max_open_conns"`
	// ConnMaxIdleTime specifies the maximum amount of time a connection may be idle, in minutes
	ConnMaxIdleTime int `mapstructure:"conn_max_idle_time"` // minutes
	// ConnMaxLifetime specifies the maximum amount of time a connection may be reused, in minutes
	ConnMaxLifetime int `mapstructure:"conn_max_lifetime"` // minutes
	// ConnectTimeout specifies the connection timeout in seconds
	ConnectTimeout int `mapstructure:"connect_timeout"`
	// Debug enables or disables debug mode for database operations
	Debug bool `mapstructure:"debug"`
	// IsUseMigrate specifies whether to use database migration
	IsUseMigrate bool `mapstructure:"is_use_migrate"`
}

// SQLiteConfig holds the embedded database configuration
type SQLiteConfig struct {
	DSN          string `mapstructure:"dsn"`
	Debug        bool   `mapstructure:"debug"`
	IsUseMigrate bool   `mapstructure:"is_use_migrate"`
}

// RedisConfig holds the optional redis connection
type RedisConfig struct {
	redis.Config `mapstructure:",squash"`

	Enabled bool `mapstructure:"enabled"`
}

// KafkaConfig holds the optional event broker connection
type KafkaConfig struct {
	kafka.Config `mapstructure:",squash"`

	Enabled bool        `mapstructure:"enabled"`
	Topics  KafkaTopics `mapstructure:"topics"`
}

// KafkaTopics names the topics the service produces to
type KafkaTopics struct {
	PerformanceUpdated string `mapstructure:"performance_updated"`
}

// SecurityConfig holds the security configuration
type SecurityConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

// JWTConfig holds the access token verification settings
type JWTConfig struct {
	AccessTokenSecret string        `mapstructure:"access_token_secret"`
	AccessTokenExpiry time.Duration `mapstructure:"access_token_expiry"`
	Issuer            string        `mapstructure:"issuer"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("application.name", "Vendor Management Service")
	v.SetDefault("application.version", "1.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15)     // seconds
	v.SetDefault("server.write_timeout", 15)    // seconds
	v.SetDefault("server.shutdown_timeout", 30) // seconds
	v.SetDefault("server.rate_limit.enabled", false)
	v.SetDefault("server.rate_limit.requests", 60)
	v.SetDefault("server.rate_limit.window", "1m")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.prefix", "vms")
	v.SetDefault("infrastructure.driver", DriverPostgres)
	v.SetDefault("infrastructure.postgres.host", "localhost")
	v.SetDefault("infrastructure.postgres.port", 5432)
	// No defaults for user and password - they must be provided
	v.SetDefault("infrastructure.postgres.dbname", "vendor_management")
	v.SetDefault("infrastructure.postgres.schema", "public")
	v.SetDefault("infrastructure.postgres.sslmode", "disable")
	v.SetDefault("infrastructure.postgres.max_idle_conns", 10)
	v.SetDefault("infrastructure.postgres.max_open_conns", 100)
	v.SetDefault("infrastructure.postgres.conn_max_idle_time", 5) // minutes
	v.SetDefault("infrastructure.postgres.conn_max_lifetime", 60) // minutes
	v.SetDefault("infrastructure.postgres.connect_timeout", 10)   // seconds
	v.SetDefault("infrastructure.postgres.debug", false)
	v.SetDefault("infrastructure.postgres.is_use_migrate", true)
	v.SetDefault("infrastructure.sqlite.dsn", "file:vendor_management.db?_foreign_keys=on")
	v.SetDefault("infrastructure.sqlite.is_use_migrate", true)
	v.SetDefault("infrastructure.redis.enabled", false)
	v.SetDefault("infrastructure.redis.addrs", []string{"localhost:6379"})
	v.SetDefault("infrastructure.redis.db", 0)
	v.SetDefault("infrastructure.redis.dial_timeout", "5s")
	v.SetDefault("infrastructure.redis.pool_size", 10)
	v.SetDefault("infrastructure.kafka.enabled", false)
	v.SetDefault("infrastructure.kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("infrastructure.kafka.client_id", "vendor-management-service")
	v.SetDefault("infrastructure.kafka.topics.performance_updated", "vendor.performance.updated")
	v.SetDefault("security.jwt.issuer", "vendor-management-service")
	v.SetDefault("security.jwt.access_token_expiry", "15m")
}

// secretKeys have no defaults, so they are bound explicitly to be visible to Unmarshal
var secretKeys = []string{
	"security.jwt.access_token_secret",
	"infrastructure.postgres.user",
	"infrastructure.postgres.password",
	"infrastructure.redis.username",
	"infrastructure.redis.password",
	"infrastructure.kafka.sasl_user",
	"infrastructure.kafka.sasl_password",
}

// LoadConfig loads the application configuration from various sources
// It reads a local .env file if present, then vendor-management.yaml from the config directories,
// then VMS_ prefixed environment variables. Missing files fall back to defaults.
// Returns a Config struct and an error if loading fails or a required secret is missing
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("vendor-management")
	v.SetConfigType("yaml")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")
	v.AddConfigPath("configs")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range secretKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, err
		}
		log.Println("Config file not found, using environment variables and defaults")
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks required secrets and enumerated settings
func (c *Config) Validate() error {
	if c.Security.JWT.AccessTokenSecret == "" {
		return errors.New("jwt access token secret is required")
	}

	switch c.Infrastructure.Driver {
	case DriverPostgres:
		if c.Infrastructure.Postgres.User == "" {
			return errors.New("database user is required")
		}
		if c.Infrastructure.Postgres.Password == "" {
			return errors.New("database password is required")
		}
	case DriverSQLite:
		if c.Infrastructure.SQLite.DSN == "" {
			return errors.New("sqlite dsn is required")
		}
	default:
		return errors.New("infrastructure driver must be postgres or sqlite")
	}

	if c.Server.RateLimit.Enabled {
		if !c.Infrastructure.Redis.Enabled {
			return errors.New("rate limiting requires redis to be enabled")
		}
		if c.Server.RateLimit.Requests <= 0 || c.Server.RateLimit.Window <= 0 {
			return errors.New("rate limit requests and window must be positive")
		}
	}
	return nil
}
