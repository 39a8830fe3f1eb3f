// Package postgres provides GORM implementations of the repositories
package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/shivam970806/VMS/domain/repository"
	"github.com/shivam970806/VMS/pkg/logger"
)

type txKey struct{}

// conn returns the transaction carried by ctx, or db when there is none
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

type transactor struct {
	db     *gorm.DB
	logger logger.LoggerInterface
}

// NewTransactor creates a Transactor backed by db
func NewTransactor(db *gorm.DB, logger logger.LoggerInterface) repository.Transactor {
	return &transactor{
		db:     db,
		logger: logger,
	}
}

// ExecuteInTransaction executes a function within a database transaction.
// The function receives a transaction context that should be used for all operations.
// Nested calls join the outer transaction.
func (t *transactor) ExecuteInTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	t.logger.DebugContext(ctx, "Executing operation in transaction")
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}
