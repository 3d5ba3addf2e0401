package state

import (
	"github.com/odelgado/product-catalog/internal/model"
	"github.com/odelgado/product-catalog/internal/signal"
)

// AddProductModalStore holds the view-state of the add-product dialog.
type AddProductModalStore struct {
	visible *signal.Signal[bool]
	product *signal.Signal[*model.Product]
}

// NewAddProductModalStore creates an AddProductModalStore in its hidden state.
func NewAddProductModalStore() *AddProductModalStore {
	return &AddProductModalStore{
		visible: signal.New(false),
		product: signal.New[*model.Product](nil),
	}
}

// Visible reports whether the dialog is shown.
func (s *AddProductModalStore) Visible() *signal.Signal[bool] {
	return s.visible
}

// Product holds the draft product being submitted, nil when none.
func (s *AddProductModalStore) Product() *signal.Signal[*model.Product] {
	return s.product
}

// ShowModal makes the dialog visible.
func (s *AddProductModalStore) ShowModal() {
	s.visible.Set(true)
}

// HideModal hides the dialog.
func (s *AddProductModalStore) HideModal() {
	s.visible.Set(false)
}

// SetProduct stores the draft product.
func (s *AddProductModalStore) SetProduct(product *model.Product) {
	s.product.Set(product)
}

// ResetState returns the dialog to its defaults.
func (s *AddProductModalStore) ResetState() {
	s.visible.Set(false)
	s.product.Set(nil)
}
