package postgres

import (
	"errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewSQLiteClient opens an embedded sqlite database behind the same client interface.
// Row locks requested through clause.Locking are ignored by the sqlite dialect.
func NewSQLiteClient(cfg SQLiteConfig) (PostgresClient, error) {
	if cfg.DSN == "" {
		return nil, errors.New("sqlite dsn is required")
	}

	db, err := gorm.Open(sqlite.Open(cfg.DSN), &gorm.Config{
		Logger: gormLogger(cfg.Debug),
	})
	if err != nil {
		return nil, err
	}

	dbSQL, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := dbSQL.Ping(); err != nil {
		return nil, err
	}

	return &postgresClient{
		DB: db,
	}, nil
}
