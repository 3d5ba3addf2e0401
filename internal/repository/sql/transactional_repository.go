package sql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/odelgado/product-catalog/internal/repository"
)

// TxManager implements repository.TxManager by binding fresh product and
// event repositories to one database transaction.
type TxManager struct {
	db *sql.DB
}

// NewTxManager creates a new TxManager instance.
func NewTxManager(db *sql.DB) *TxManager {
	return &TxManager{db: db}
}

// WithinTransaction executes fn with transaction-bound repositories. The
// transaction commits when fn returns nil and rolls back otherwise.
func (m *TxManager) WithinTransaction(ctx context.Context, fn func(products repository.Products, events repository.Events) error) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	products := &ProductRepository{db: m.db, txn: tx}
	events := &EventRepository{db: m.db, txn: tx}

	if err := fn(products, events); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("failed to rollback transaction: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
