// Package service implements the catalog backend's business operations:
// product CRUD with transactional outbox events, plus the worker publishing
// those events to SQS.
package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/odelgado/product-catalog/internal/metrics"
	"github.com/odelgado/product-catalog/internal/model"
	"github.com/odelgado/product-catalog/internal/repository"
	"github.com/odelgado/product-catalog/internal/sqs"
)

// ProductService coordinates product persistence and outbox event recording.
type ProductService struct {
	products repository.Products
	txm      repository.TxManager
}

// NewProductService creates a ProductService.
func NewProductService(products repository.Products, txm repository.TxManager) *ProductService {
	return &ProductService{
		products: products,
		txm:      txm,
	}
}

// CreateProduct persists a new product and records a product.created event
// in the same transaction.
func (ps *ProductService) CreateProduct(ctx context.Context, product *model.Product) error {
	err := ps.txm.WithinTransaction(ctx, func(products repository.Products, events repository.Events) error {
		if err := products.Create(ctx, product); err != nil {
			return err
		}
		return recordEvent(ctx, events, model.EventTypeProductCreated, product)
	})
	if err != nil {
		return err
	}

	metrics.ProductsCreated.Inc()
	return nil
}

// UpdateProduct replaces the product with the given id and records a
// product.updated event in the same transaction.
func (ps *ProductService) UpdateProduct(ctx context.Context, id string, product *model.Product) (*model.Product, error) {
	product.ID = id
	err := ps.txm.WithinTransaction(ctx, func(products repository.Products, events repository.Events) error {
		if err := products.Update(ctx, id, product); err != nil {
			return err
		}
		return recordEvent(ctx, events, model.EventTypeProductUpdated, product)
	})
	if err != nil {
		return nil, err
	}

	metrics.ProductsUpdated.Inc()
	return product, nil
}

// DeleteProduct removes the product with the given id and records a
// product.deleted event in the same transaction.
func (ps *ProductService) DeleteProduct(ctx context.Context, id string) error {
	err := ps.txm.WithinTransaction(ctx, func(products repository.Products, events repository.Events) error {
		product, err := products.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := products.DeleteByID(ctx, id); err != nil {
			return err
		}
		return recordEvent(ctx, events, model.EventTypeProductDeleted, product)
	})
	if err != nil {
		return err
	}

	metrics.ProductsDeleted.Inc()
	return nil
}

// ListProducts returns every product in the catalog.
func (ps *ProductService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return ps.products.List(ctx)
}

// ExistsByID reports whether a product with the given id exists.
func (ps *ProductService) ExistsByID(ctx context.Context, id string) (bool, error) {
	return ps.products.ExistsByID(ctx, id)
}

// recordEvent writes a catalog event into the outbox within the caller's
// transaction.
func recordEvent(ctx context.Context, events repository.Events, eventType string, product *model.Product) error {
	payload, err := json.Marshal(sqs.CatalogEventMessage{
		Action:    eventType,
		ProductID: product.ID,
		Name:      product.Name,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	event := &model.Event{
		EventType: eventType,
		EventData: payload,
	}
	if err := events.Create(ctx, event); err != nil {
		return fmt.Errorf("failed to record outbox event: %w", err)
	}
	return nil
}
