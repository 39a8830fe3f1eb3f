// Package postgres provides the relational database infrastructure components
package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PostgresClient defines the interface for relational database operations
// It provides methods for database migration, health checks, getting the database instance, and closing connections
type PostgresClient interface {
	// Migrate runs auto-migration for the given models
	Migrate(dst ...any) error
	// Ping verifies that the database is reachable
	Ping(ctx context.Context) error
	// GetDB returns the underlying gorm.DB instance
	GetDB() *gorm.DB
	// Close closes the database connection
	Close() error
}

// postgresClient manages database connections and operations
type postgresClient struct {
	// DB is the GORM database instance
	DB *gorm.DB
}

// NewPostgresClient creates a new database client based on the configuration
// Returns a PostgresClient interface and an error if initialization fails
func NewPostgresClient(cfg Config) (PostgresClient, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormLogger(cfg.Debug),
	})
	if err != nil {
		return nil, err
	}

	dbSQL, err := db.DB()
	if err != nil {
		return nil, err
	}

	dbSQL.SetMaxIdleConns(cfg.MaxIdleConns)
	dbSQL.SetMaxOpenConns(cfg.MaxOpenConns)
	dbSQL.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Minute)
	dbSQL.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)

	if err := dbSQL.Ping(); err != nil {
		return nil, err
	}

	return &postgresClient{
		DB: db,
	}, nil
}

func gormLogger(debug bool) logger.Interface {
	if debug {
		return logger.Default.LogMode(logger.Info)
	}
	return logger.Default.LogMode(logger.Silent)
}

// Migrate runs auto-migration for all models
func (c *postgresClient) Migrate(dst ...any) error {
	if err := c.DB.AutoMigrate(dst...); err != nil {
		return fmt.Errorf("failed to auto-migrate models: %w", err)
	}
	return nil
}

// Ping verifies that the database is reachable
func (c *postgresClient) Ping(ctx context.Context) error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// GetDB returns the underlying gorm.DB instance
func (c *postgresClient) GetDB() *gorm.DB {
	return c.DB
}

// Close closes the database connection
func (c *postgresClient) Close() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
