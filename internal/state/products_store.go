// Package state holds the reactive view-state containers of the catalog
// page: the product store plus one store per modal dialog. All slice state
// is replaced copy-on-write so observers never see a partial mutation.
package state

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/odelgado/product-catalog/internal/client"
	"github.com/odelgado/product-catalog/internal/model"
	"github.com/odelgado/product-catalog/internal/signal"
)

// Fallback error texts used when a failure carries no user-facing message.
const (
	errLoadingProducts = "Error loading products"
	errUpdatingProduct = "Error updating product"
	errDeletingProduct = "Error deleting product"
)

// ProductsStore is the single source of truth for the product collection and
// its search/loading/error status.
type ProductsStore struct {
	products   *signal.Signal[[]model.Product]
	searchTerm *signal.Signal[string]
	loading    *signal.Signal[bool]
	err        *signal.Signal[string]

	getAllService *client.GetAllProductsService
	updateService *client.UpdateProductService
	deleteService *client.DeleteProductService
}

// NewProductsStore creates a ProductsStore backed by the given API services.
func NewProductsStore(
	getAllService *client.GetAllProductsService,
	updateService *client.UpdateProductService,
	deleteService *client.DeleteProductService,
) *ProductsStore {
	return &ProductsStore{
		products:      signal.New([]model.Product{}),
		searchTerm:    signal.New(""),
		loading:       signal.New(false),
		err:           signal.New(""),
		getAllService: getAllService,
		updateService: updateService,
		deleteService: deleteService,
	}
}

// Products holds the canonical product list.
func (s *ProductsStore) Products() *signal.Signal[[]model.Product] {
	return s.products
}

// SearchTerm holds the current search term.
func (s *ProductsStore) SearchTerm() *signal.Signal[string] {
	return s.searchTerm
}

// Loading reports whether an asynchronous operation is in flight.
func (s *ProductsStore) Loading() *signal.Signal[bool] {
	return s.loading
}

// Error holds the message of the last failed operation, empty when clear.
func (s *ProductsStore) Error() *signal.Signal[string] {
	return s.err
}

// FilteredProducts returns the products whose name or description contains
// the trimmed, lowercased search term. An empty term yields every product.
func (s *ProductsStore) FilteredProducts() []model.Product {
	products := s.products.Get()
	term := strings.ToLower(strings.TrimSpace(s.searchTerm.Get()))

	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// LoadProducts replaces the product list with the API result. Failures are
// absorbed into the error state instead of being returned: the page observes
// the store reactively and no caller expects a rejection at mount time.
func (s *ProductsStore) LoadProducts(ctx context.Context) {
	s.loading.Set(true)
	s.err.Set("")
	defer s.loading.Set(false)

	if err := s.getAllService.Exec(ctx); err != nil {
		s.err.Set(errorMessage(err, errLoadingProducts))
		return
	}

	if products := s.getAllService.Products().Get(); products != nil {
		s.SetProducts(products)
	}
}

// SetProducts replaces the product list.
func (s *ProductsStore) SetProducts(products []model.Product) {
	s.products.Set(products)
}

// SetSearchTerm replaces the search term.
func (s *ProductsStore) SetSearchTerm(term string) {
	s.searchTerm.Set(term)
}

// AddProduct appends a product to the list.
func (s *ProductsStore) AddProduct(product model.Product) {
	s.products.Update(func(products []model.Product) []model.Product {
		next := make([]model.Product, 0, len(products)+1)
		next = append(next, products...)
		return append(next, product)
	})
}

// UpdateProduct replaces the product with the given id; a missing id is a
// silent no-op.
func (s *ProductsStore) UpdateProduct(id string, updated model.Product) {
	s.products.Update(func(products []model.Product) []model.Product {
		next := make([]model.Product, len(products))
		for i, p := range products {
			if p.ID == id {
				next[i] = updated
			} else {
				next[i] = p
			}
		}
		return next
	})
}

// RemoveProduct drops the product with the given id; a missing id is a
// silent no-op.
func (s *ProductsStore) RemoveProduct(id string) {
	s.products.Update(func(products []model.Product) []model.Product {
		next := make([]model.Product, 0, len(products))
		for _, p := range products {
			if p.ID != id {
				next = append(next, p)
			}
		}
		return next
	})
}

// SetLoading replaces the loading flag.
func (s *ProductsStore) SetLoading(loading bool) {
	s.loading.Set(loading)
}

// SetError replaces the error message.
func (s *ProductsStore) SetError(message string) {
	s.err.Set(message)
}

// UpdateProductAsync updates the product remotely and patches the local list
// on success. The error is recorded in the store and also returned so the
// caller can react.
func (s *ProductsStore) UpdateProductAsync(ctx context.Context, id string, product model.Product) error {
	s.loading.Set(true)
	s.err.Set("")
	defer s.loading.Set(false)

	updated, err := s.updateService.UpdateProduct(ctx, id, product)
	if err != nil {
		s.err.Set(errorMessage(err, errUpdatingProduct))
		return err
	}

	s.UpdateProduct(id, updated)
	return nil
}

// DeleteProductAsync deletes the product remotely and drops it from the
// local list on success. The error is recorded in the store and also
// returned so the caller can react.
func (s *ProductsStore) DeleteProductAsync(ctx context.Context, id string) error {
	s.loading.Set(true)
	s.err.Set("")
	defer s.loading.Set(false)

	if _, err := s.deleteService.DeleteProduct(ctx, id); err != nil {
		s.err.Set(errorMessage(err, errDeletingProduct))
		return err
	}

	s.RemoveProduct(id)
	return nil
}

// errorMessage surfaces the user-facing message of a normalized API error
// and falls back to a fixed text for anything else.
func errorMessage(err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	slog.Error("Unrecognized error type", slog.Any("err", err))
	return fallback
}
