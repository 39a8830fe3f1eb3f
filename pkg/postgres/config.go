package postgres

import "fmt"

// Config holds the PostgreSQL database configuration
type Config struct {
	// Host specifies the database server host
	Host string
	// Port specifies the database server port
	Port int
	// User specifies the database user
	User string
	// Password specifies the database password
	Password string
	// DBName specifies the database name
	DBName string
	// Schema specifies the database schema
	Schema string
	// SSLMode specifies the SSL mode for database connection
	SSLMode string
	// MaxIdleConns specifies the maximum number of idle connections in the pool
	MaxIdleConns int
	// MaxOpenConns specifies the maximum number of open connections to the database
	MaxOpenConns int
	// ConnMaxIdleTime specifies the maximum amount of time a connection may be idle, in minutes
	ConnMaxIdleTime int
	// ConnMaxLifetime specifies the maximum amount of time a connection may be reused, in minutes
	ConnMaxLifetime int
	// Debug enables SQL statement logging
	Debug bool
	// ConnectTimeout specifies the connection timeout in seconds
	ConnectTimeout int
}

// DSN builds the libpq keyword/value connection string
func (c Config) DSN() string {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s search_path=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.Schema, c.SSLMode)
	if c.ConnectTimeout > 0 {
		dsn += fmt.Sprintf(" connect_timeout=%d", c.ConnectTimeout)
	}
	return dsn
}

// SQLiteConfig holds the embedded database configuration used for local runs and tests
type SQLiteConfig struct {
	// DSN is the sqlite data source, e.g. "file:vms.db?_foreign_keys=on"
	DSN string
	// Debug enables SQL statement logging
	Debug bool
}
