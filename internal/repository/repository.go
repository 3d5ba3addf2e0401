// Package repository defines the persistence interfaces of the catalog
// backend and its shared error types.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/odelgado/product-catalog/internal/model"
)

var (
	// ErrNotFound is returned when the requested product does not exist.
	ErrNotFound = errors.New("product not found")
)

// Products manages the persisted product catalog.
type Products interface {
	Create(ctx context.Context, product *model.Product) error
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
	Update(ctx context.Context, id string, product *model.Product) error
	DeleteByID(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)
}

// Events manages the outbox table of catalog change events.
type Events interface {
	Create(ctx context.Context, event *model.Event) error
	ListPending(ctx context.Context, limit int) ([]model.Event, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.EventStatus) error
}

// TxManager runs a function against transaction-bound repositories so a
// product mutation and its outbox event commit or roll back together.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(products Products, events Events) error) error
}

// UniqueConstraintError represents a database unique constraint violation.
type UniqueConstraintError struct {
	Detail string
}

func (u *UniqueConstraintError) Error() string {
	return "resource must be unique: " + u.Detail
}
