// Package facade composes the product store, the modal stores and the API
// services into the operations and computed values the catalog page needs.
package facade

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/odelgado/product-catalog/internal/client"
	"github.com/odelgado/product-catalog/internal/mapper"
	"github.com/odelgado/product-catalog/internal/model"
	"github.com/odelgado/product-catalog/internal/state"
)

// Modal error texts shown inside the dialogs when an operation fails.
const (
	errDeleteProductModal = "Failed to delete the product"
	errUpdateProductModal = "Failed to update the product"
)

// ErrInvalidProduct is returned when a submitted product violates the field
// or date constraints.
var ErrInvalidProduct = errors.New("invalid product data")

// ErrNoTargetProduct is returned when a modal operation runs without a
// target product.
var ErrNoTargetProduct = errors.New("no target product")

// ProductsFacade is the composition layer behind the catalog page.
type ProductsFacade struct {
	productsStore    *state.ProductsStore
	addModalStore    *state.AddProductModalStore
	editModalStore   *state.EditProductModalStore
	deleteModalStore *state.DeleteProductModalStore

	addService    *client.AddProductService
	verifyService *client.VerifyProductIDService
}

// NewProductsFacade wires the facade to its stores and services.
func NewProductsFacade(
	productsStore *state.ProductsStore,
	addModalStore *state.AddProductModalStore,
	editModalStore *state.EditProductModalStore,
	deleteModalStore *state.DeleteProductModalStore,
	addService *client.AddProductService,
	verifyService *client.VerifyProductIDService,
) *ProductsFacade {
	return &ProductsFacade{
		productsStore:    productsStore,
		addModalStore:    addModalStore,
		editModalStore:   editModalStore,
		deleteModalStore: deleteModalStore,
		addService:       addService,
		verifyService:    verifyService,
	}
}

// Loading reports whether the product store has an operation in flight.
func (f *ProductsFacade) Loading() bool {
	return f.productsStore.Loading().Get()
}

// Error returns the product store's current error message.
func (f *ProductsFacade) Error() string {
	return f.productsStore.Error().Get()
}

// ModalVisible reports whether the add dialog is shown.
func (f *ProductsFacade) ModalVisible() bool {
	return f.addModalStore.Visible().Get()
}

// EditModal exposes the edit dialog store.
func (f *ProductsFacade) EditModal() *state.EditProductModalStore {
	return f.editModalStore
}

// DeleteModal exposes the delete dialog store.
func (f *ProductsFacade) DeleteModal() *state.DeleteProductModalStore {
	return f.deleteModalStore
}

// TableData projects the current (filtered) product list into the table
// structure the page renders.
func (f *ProductsFacade) TableData() model.TableData {
	if f.productsStore.SearchTerm().Get() != "" {
		return mapper.ToTableData(f.productsStore.FilteredProducts())
	}
	return mapper.ToTableData(f.productsStore.Products().Get())
}

// LoadProducts refreshes the product list; failures land in the store error.
func (f *ProductsFacade) LoadProducts(ctx context.Context) {
	f.productsStore.LoadProducts(ctx)
}

// UpdateSearchTerm replaces the search term driving the table projection.
func (f *ProductsFacade) UpdateSearchTerm(term string) {
	f.productsStore.SetSearchTerm(term)
}

// AddProduct appends a product to the local list.
func (f *ProductsFacade) AddProduct(product model.Product) {
	f.productsStore.AddProduct(product)
}

// UpdateProduct patches the local list.
func (f *ProductsFacade) UpdateProduct(id string, product model.Product) {
	f.productsStore.UpdateProduct(id, product)
}

// RemoveProduct drops a product from the local list.
func (f *ProductsFacade) RemoveProduct(id string) {
	f.productsStore.RemoveProduct(id)
}

// ShowModal opens the add dialog.
func (f *ProductsFacade) ShowModal() {
	f.addModalStore.ShowModal()
}

// HideModal closes the add dialog.
func (f *ProductsFacade) HideModal() {
	f.addModalStore.HideModal()
}

// ResetModalState clears the add dialog and the retained create result.
func (f *ProductsFacade) ResetModalState() {
	f.addModalStore.ResetState()
	f.addService.Reset()
}

// SubmitProduct validates the draft, creates it remotely, reconciles the
// local list and closes the add dialog. On failure the create result is
// cleared and the error is returned to the caller.
func (f *ProductsFacade) SubmitProduct(ctx context.Context, product model.Product) error {
	if !isValidProduct(product) {
		return ErrInvalidProduct
	}

	f.addModalStore.SetProduct(&product)
	if err := f.addService.Exec(ctx, product); err != nil {
		f.addService.Reset()
		slog.Error("Failed to submit product", slog.String("id", product.ID), slog.Any("err", err))
		return err
	}

	f.AddProduct(product)
	f.LoadProducts(ctx)

	f.HideModal()
	f.ResetModalState()
	return nil
}

// ValidateProductID reports whether the id is already taken. A failed check
// is treated as "does not exist" so typing is never blocked by the network.
func (f *ProductsFacade) ValidateProductID(ctx context.Context, id string) bool {
	exists, err := f.verifyService.Exec(ctx, id)
	if err != nil {
		slog.Error("Failed to validate product id", slog.String("id", id), slog.Any("err", err))
		return false
	}
	return exists
}

// FindProductByID looks a product up in the local list.
func (f *ProductsFacade) FindProductByID(id string) (model.Product, bool) {
	for _, p := range f.productsStore.Products().Get() {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// DeleteProduct deletes the product remotely and locally.
func (f *ProductsFacade) DeleteProduct(ctx context.Context, id string) error {
	if err := f.productsStore.DeleteProductAsync(ctx, id); err != nil {
		slog.Error("Failed to delete product", slog.String("id", id), slog.Any("err", err))
		return err
	}
	return nil
}

// UpdateProductAsync updates the product remotely and locally.
func (f *ProductsFacade) UpdateProductAsync(ctx context.Context, id string, product model.Product) error {
	if err := f.productsStore.UpdateProductAsync(ctx, id, product); err != nil {
		slog.Error("Failed to update product", slog.String("id", id), slog.Any("err", err))
		return err
	}
	return nil
}

// ShowDeleteModal opens the delete confirmation for the given product.
func (f *ProductsFacade) ShowDeleteModal(productID, productName string) {
	f.deleteModalStore.ShowModal(productID, productName)
}

// HideDeleteModal closes the delete confirmation.
func (f *ProductsFacade) HideDeleteModal() {
	f.deleteModalStore.HideModal()
}

// ResetDeleteModalState clears the delete confirmation state.
func (f *ProductsFacade) ResetDeleteModalState() {
	f.deleteModalStore.ResetState()
}

// ConfirmDeleteProduct runs the deletion targeted by the delete dialog.
// On success the dialog closes and the list reloads; on failure the dialog
// stays open showing the error.
func (f *ProductsFacade) ConfirmDeleteProduct(ctx context.Context) error {
	productID := f.deleteModalStore.ProductID().Get()
	if productID == "" {
		slog.Error("No product id set for deletion")
		return ErrNoTargetProduct
	}

	f.deleteModalStore.SetLoading(true)
	f.deleteModalStore.SetError("")
	defer f.deleteModalStore.SetLoading(false)

	if err := f.DeleteProduct(ctx, productID); err != nil {
		f.deleteModalStore.SetError(modalErrorMessage(err, errDeleteProductModal))
		return err
	}

	f.HideDeleteModal()
	f.LoadProducts(ctx)
	return nil
}

// ShowEditModal opens the edit dialog for the given product.
func (f *ProductsFacade) ShowEditModal(product model.Product) {
	f.editModalStore.ShowModal(product)
}

// HideEditModal closes the edit dialog.
func (f *ProductsFacade) HideEditModal() {
	f.editModalStore.HideModal()
}

// ResetEditModalState clears the edit dialog state.
func (f *ProductsFacade) ResetEditModalState() {
	f.editModalStore.ResetState()
}

// UpdateProductFromModal runs the update targeted by the edit dialog.
// On success the dialog closes and the list reloads; on failure the dialog
// stays open showing the error.
func (f *ProductsFacade) UpdateProductFromModal(ctx context.Context, product model.Product) error {
	current := f.editModalStore.Product().Get()
	if current == nil {
		slog.Error("No product set for update")
		return ErrNoTargetProduct
	}

	f.editModalStore.SetLoading(true)
	f.editModalStore.SetError("")
	defer f.editModalStore.SetLoading(false)

	if err := f.UpdateProductAsync(ctx, current.ID, product); err != nil {
		f.editModalStore.SetError(modalErrorMessage(err, errUpdateProductModal))
		return err
	}

	f.HideEditModal()
	f.LoadProducts(ctx)
	return nil
}

// isValidProduct enforces the submit-time constraints: field lengths plus
// release date >= today and revision date after release date, compared at
// day granularity.
func isValidProduct(p model.Product) bool {
	today := time.Now().Format(model.WireDateLayout)
	releaseDate := p.DateReleased.Format(model.WireDateLayout)
	revisionDate := p.DateRevision.Format(model.WireDateLayout)

	return p.ID != "" &&
		p.Name != "" &&
		p.Description != "" &&
		p.Logo != "" &&
		!p.DateReleased.IsZero() &&
		!p.DateRevision.IsZero() &&
		len(p.ID) >= 3 && len(p.ID) <= 10 &&
		len(p.Name) >= 5 && len(p.Name) <= 100 &&
		len(p.Description) >= 10 && len(p.Description) <= 200 &&
		releaseDate >= today &&
		revisionDate > releaseDate
}

func modalErrorMessage(err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return fallback
}
