package state

import "github.com/odelgado/product-catalog/internal/signal"

// DeleteProductModalStore holds the view-state of the delete confirmation
// dialog.
type DeleteProductModalStore struct {
	visible     *signal.Signal[bool]
	productID   *signal.Signal[string]
	productName *signal.Signal[string]
	loading     *signal.Signal[bool]
	err         *signal.Signal[string]
}

// NewDeleteProductModalStore creates a DeleteProductModalStore in its hidden
// state.
func NewDeleteProductModalStore() *DeleteProductModalStore {
	return &DeleteProductModalStore{
		visible:     signal.New(false),
		productID:   signal.New(""),
		productName: signal.New(""),
		loading:     signal.New(false),
		err:         signal.New(""),
	}
}

// Visible reports whether the dialog is shown.
func (s *DeleteProductModalStore) Visible() *signal.Signal[bool] {
	return s.visible
}

// ProductID holds the id of the product targeted for deletion.
func (s *DeleteProductModalStore) ProductID() *signal.Signal[string] {
	return s.productID
}

// ProductName holds the name of the product targeted for deletion.
func (s *DeleteProductModalStore) ProductName() *signal.Signal[string] {
	return s.productName
}

// Loading reports whether the delete operation is in flight.
func (s *DeleteProductModalStore) Loading() *signal.Signal[bool] {
	return s.loading
}

// Error holds the message of a failed deletion, empty when clear.
func (s *DeleteProductModalStore) Error() *signal.Signal[string] {
	return s.err
}

// ShowModal makes the dialog visible for the given product and clears
// loading and error state.
func (s *DeleteProductModalStore) ShowModal(productID, productName string) {
	s.visible.Set(true)
	s.productID.Set(productID)
	s.productName.Set(productName)
	s.loading.Set(false)
	s.err.Set("")
}

// HideModal hides the dialog and clears its state.
func (s *DeleteProductModalStore) HideModal() {
	s.visible.Set(false)
	s.productID.Set("")
	s.productName.Set("")
	s.loading.Set(false)
	s.err.Set("")
}

// SetLoading replaces the loading flag.
func (s *DeleteProductModalStore) SetLoading(loading bool) {
	s.loading.Set(loading)
}

// SetError replaces the error message.
func (s *DeleteProductModalStore) SetError(message string) {
	s.err.Set(message)
}

// ResetState returns the dialog to its defaults.
func (s *DeleteProductModalStore) ResetState() {
	s.HideModal()
}
