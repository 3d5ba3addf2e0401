package state_test

import (
	"testing"

	"github.com/odelgado/product-catalog/internal/model"
	"github.com/odelgado/product-catalog/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddProductModalStore(t *testing.T) {
	store := state.NewAddProductModalStore()

	assert.False(t, store.Visible().Get())
	assert.Nil(t, store.Product().Get())

	store.ShowModal()
	assert.True(t, store.Visible().Get())

	product := &model.Product{ID: "card-01"}
	store.SetProduct(product)
	assert.Equal(t, product, store.Product().Get())

	store.HideModal()
	assert.False(t, store.Visible().Get())
	// Hiding alone keeps the draft; only a reset clears it.
	assert.NotNil(t, store.Product().Get())

	store.ResetState()
	assert.False(t, store.Visible().Get())
	assert.Nil(t, store.Product().Get())
}

func TestEditProductModalStore(t *testing.T) {
	store := state.NewEditProductModalStore()
	product := model.Product{ID: "card-01", Name: "Credit Card Gold"}

	t.Run("show sets the product and clears loading and error", func(t *testing.T) {
		store.SetLoading(true)
		store.SetError("stale error")

		store.ShowModal(product)

		assert.True(t, store.Visible().Get())
		require.NotNil(t, store.Product().Get())
		assert.Equal(t, "card-01", store.Product().Get().ID)
		assert.False(t, store.Loading().Get())
		assert.Empty(t, store.Error().Get())
	})

	t.Run("hide clears everything", func(t *testing.T) {
		store.ShowModal(product)
		store.SetError("update failed")

		store.HideModal()

		assert.False(t, store.Visible().Get())
		assert.Nil(t, store.Product().Get())
		assert.Empty(t, store.Error().Get())
	})

	t.Run("reset matches hide", func(t *testing.T) {
		store.ShowModal(product)
		store.ResetState()

		assert.False(t, store.Visible().Get())
		assert.Nil(t, store.Product().Get())
	})
}

func TestDeleteProductModalStore(t *testing.T) {
	store := state.NewDeleteProductModalStore()

	t.Run("show targets the product", func(t *testing.T) {
		store.ShowModal("card-01", "Credit Card Gold")

		assert.True(t, store.Visible().Get())
		assert.Equal(t, "card-01", store.ProductID().Get())
		assert.Equal(t, "Credit Card Gold", store.ProductName().Get())
		assert.False(t, store.Loading().Get())
		assert.Empty(t, store.Error().Get())
	})

	t.Run("show clears a stale error", func(t *testing.T) {
		store.SetError("previous failure")
		store.ShowModal("sav-01", "Savings Plus")
		assert.Empty(t, store.Error().Get())
	})

	t.Run("hide clears the target", func(t *testing.T) {
		store.ShowModal("card-01", "Credit Card Gold")
		store.HideModal()

		assert.False(t, store.Visible().Get())
		assert.Empty(t, store.ProductID().Get())
		assert.Empty(t, store.ProductName().Get())
	})
}
