package state

import (
	"github.com/odelgado/product-catalog/internal/model"
	"github.com/odelgado/product-catalog/internal/signal"
)

// EditProductModalStore holds the view-state of the edit-product dialog.
type EditProductModalStore struct {
	visible *signal.Signal[bool]
	product *signal.Signal[*model.Product]
	loading *signal.Signal[bool]
	err     *signal.Signal[string]
}

// NewEditProductModalStore creates an EditProductModalStore in its hidden state.
func NewEditProductModalStore() *EditProductModalStore {
	return &EditProductModalStore{
		visible: signal.New(false),
		product: signal.New[*model.Product](nil),
		loading: signal.New(false),
		err:     signal.New(""),
	}
}

// Visible reports whether the dialog is shown.
func (s *EditProductModalStore) Visible() *signal.Signal[bool] {
	return s.visible
}

// Product holds the product being edited, nil when none.
func (s *EditProductModalStore) Product() *signal.Signal[*model.Product] {
	return s.product
}

// Loading reports whether the update operation is in flight.
func (s *EditProductModalStore) Loading() *signal.Signal[bool] {
	return s.loading
}

// Error holds the message of a failed update, empty when clear.
func (s *EditProductModalStore) Error() *signal.Signal[string] {
	return s.err
}

// ShowModal makes the dialog visible for the given product and clears
// loading and error state.
func (s *EditProductModalStore) ShowModal(product model.Product) {
	s.visible.Set(true)
	s.product.Set(&product)
	s.loading.Set(false)
	s.err.Set("")
}

// HideModal hides the dialog and clears its state.
func (s *EditProductModalStore) HideModal() {
	s.visible.Set(false)
	s.product.Set(nil)
	s.loading.Set(false)
	s.err.Set("")
}

// SetLoading replaces the loading flag.
func (s *EditProductModalStore) SetLoading(loading bool) {
	s.loading.Set(loading)
}

// SetError replaces the error message.
func (s *EditProductModalStore) SetError(message string) {
	s.err.Set(message)
}

// ResetState returns the dialog to its defaults.
func (s *EditProductModalStore) ResetState() {
	s.HideModal()
}
