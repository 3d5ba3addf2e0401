package form_test

import (
	"strings"
	"testing"
	"time"

	"github.com/odelgado/product-catalog/internal/form"
	"github.com/odelgado/product-catalog/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func futureDate(t *testing.T, days int) string {
	t.Helper()
	return time.Now().AddDate(0, 0, days).Format(model.WireDateLayout)
}

func fillValidForm(t *testing.T, f *form.ProductForm) {
	t.Helper()
	f.UpdateField(form.FieldID, "card-01")
	f.UpdateField(form.FieldName, "Credit Card Gold")
	f.UpdateField(form.FieldDescription, "Premium credit card with rewards")
	f.UpdateField(form.FieldLogo, "https://cdn.example.com/gold.png")
	f.UpdateField(form.FieldDateReleased, futureDate(t, 1))
}

func TestProductForm_IDValidation(t *testing.T) {
	t.Run("empty id is required", func(t *testing.T) {
		f := form.NewProductForm(nil)
		f.UpdateField(form.FieldID, "")
		assert.Equal(t, "ID is required", f.FieldError(form.FieldID))
	})

	t.Run("two characters are below the minimum", func(t *testing.T) {
		f := form.NewProductForm(nil)
		f.UpdateField(form.FieldID, "ab")
		assert.Equal(t, "ID must have minimum 3 characters", f.FieldError(form.FieldID))
	})

	t.Run("eleven characters exceed the maximum", func(t *testing.T) {
		f := form.NewProductForm(nil)
		f.UpdateField(form.FieldID, strings.Repeat("x", 11))
		assert.Equal(t, "ID must have maximum 10 characters", f.FieldError(form.FieldID))
	})

	t.Run("remote check triggers at three characters in create mode", func(t *testing.T) {
		var checked []string
		f := form.NewProductForm(func(id string) {
			checked = append(checked, id)
		})

		f.UpdateField(form.FieldID, "ab")
		assert.Empty(t, checked)
		assert.False(t, f.IDValidating())

		f.UpdateField(form.FieldID, "abc")
		assert.Equal(t, []string{"abc"}, checked)
		assert.True(t, f.IDValidating())
	})

	t.Run("remote check does not trigger in edit mode", func(t *testing.T) {
		var checked []string
		f := form.NewProductForm(func(id string) {
			checked = append(checked, id)
		})
		f.SetEditMode(true, &model.Product{ID: "card-01"})

		f.UpdateField(form.FieldName, "Credit Card Gold")
		f.UpdateField(form.FieldID, "card-01")

		assert.Empty(t, checked)
	})

	t.Run("taken id surfaces the exists message", func(t *testing.T) {
		f := form.NewProductForm(func(string) {})
		f.UpdateField(form.FieldID, "card-01")

		f.SetIDExistsValidation(true)
		assert.True(t, f.IDExists())
		assert.False(t, f.IDValidating())
		assert.Equal(t, "This ID already exists", f.FieldError(form.FieldID))

		f.SetIDExistsValidation(false)
		assert.Empty(t, f.FieldError(form.FieldID))
	})

	t.Run("existing id is not an error in edit mode", func(t *testing.T) {
		f := form.NewProductForm(nil)
		f.SetEditMode(true, &model.Product{
			ID:           "card-01",
			Name:         "Credit Card Gold",
			Description:  "Premium credit card with rewards",
			Logo:         "logo.png",
			DateReleased: time.Now().AddDate(0, 0, 1),
			DateRevision: time.Now().AddDate(1, 0, 1),
		})
		f.SetIDExistsValidation(true)

		assert.Empty(t, f.FieldError(form.FieldID))
	})
}

func TestProductForm_FieldValidation(t *testing.T) {
	tests := []struct {
		name    string
		field   form.Field
		value   string
		message string
	}{
		{"name required", form.FieldName, "   ", "Name is required"},
		{"name too short", form.FieldName, "abcd", "Name must have minimum 5 characters"},
		{"name too long", form.FieldName, strings.Repeat("x", 101), "Name must have maximum 100 characters"},
		{"description required", form.FieldDescription, "", "Description is required"},
		{"description too short", form.FieldDescription, "short", "Description must have minimum 10 characters"},
		{"description too long", form.FieldDescription, strings.Repeat("x", 201), "Description must have maximum 200 characters"},
		{"logo required", form.FieldLogo, " ", "Logo is required"},
		{"release date required", form.FieldDateReleased, "", "Release date is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := form.NewProductForm(nil)
			f.UpdateField(tt.field, tt.value)
			assert.Equal(t, tt.message, f.FieldError(tt.field))
		})
	}

	t.Run("release date in the past", func(t *testing.T) {
		f := form.NewProductForm(nil)
		f.UpdateField(form.FieldDateReleased, futureDate(t, -1))
		assert.Equal(t, "Release date must be today or later", f.FieldError(form.FieldDateReleased))
	})

	t.Run("release date today is accepted", func(t *testing.T) {
		f := form.NewProductForm(nil)
		f.UpdateField(form.FieldDateReleased, futureDate(t, 0))
		assert.Empty(t, f.FieldError(form.FieldDateReleased))
	})
}

func TestProductForm_RevisionDerivation(t *testing.T) {
	t.Run("revision date follows the release date by one year", func(t *testing.T) {
		f := form.NewProductForm(nil)

		f.UpdateField(form.FieldDateReleased, "2026-09-01")
		assert.Equal(t, "2027-09-01", f.Value(form.FieldDateRevision))

		f.UpdateField(form.FieldDateReleased, "2026-12-31")
		assert.Equal(t, "2027-12-31", f.Value(form.FieldDateRevision))
	})

	t.Run("calculate revision date handles empty and invalid input", func(t *testing.T) {
		assert.Empty(t, form.CalculateRevisionDate(""))
		assert.Empty(t, form.CalculateRevisionDate("31/12/2026"))
		assert.Equal(t, "2027-02-28", form.CalculateRevisionDate("2026-02-28"))
	})
}

func TestProductForm_SubmitForm(t *testing.T) {
	t.Run("valid form yields the product", func(t *testing.T) {
		f := form.NewProductForm(func(string) {})
		fillValidForm(t, f)
		f.SetIDExistsValidation(false)

		product, ok := f.SubmitForm()
		require.True(t, ok)

		assert.Equal(t, "card-01", product.ID)
		assert.Equal(t, "Credit Card Gold", product.Name)
		assert.Equal(t, futureDate(t, 1), product.DateReleased.Format(model.WireDateLayout))
		// Derived revision date is release + 1 year.
		expected := product.DateReleased.AddDate(1, 0, 0)
		assert.Equal(t, expected, product.DateRevision)
	})

	t.Run("submit on an empty form surfaces every error", func(t *testing.T) {
		f := form.NewProductForm(nil)

		_, ok := f.SubmitForm()
		require.False(t, ok)

		assert.True(t, f.HasErrors())
		assert.Equal(t, "ID is required", f.FieldError(form.FieldID))
		assert.Equal(t, "Name is required", f.FieldError(form.FieldName))
		assert.Equal(t, "Description is required", f.FieldError(form.FieldDescription))
		assert.Equal(t, "Logo is required", f.FieldError(form.FieldLogo))
		assert.Equal(t, "Release date is required", f.FieldError(form.FieldDateReleased))
		assert.Equal(t, "Revision date is required", f.FieldError(form.FieldDateRevision))
	})

	t.Run("taken id blocks submission", func(t *testing.T) {
		f := form.NewProductForm(func(string) {})
		fillValidForm(t, f)
		f.SetIDExistsValidation(true)

		_, ok := f.SubmitForm()
		assert.False(t, ok)
		assert.False(t, f.IsFormValid())
	})
}

func TestProductForm_ModeSwitching(t *testing.T) {
	product := model.Product{
		ID:           "card-01",
		Name:         "Credit Card Gold",
		Description:  "Premium credit card with rewards",
		Logo:         "logo.png",
		DateReleased: time.Now().AddDate(0, 0, 1),
		DateRevision: time.Now().AddDate(1, 0, 1),
	}

	t.Run("entering edit mode populates the draft", func(t *testing.T) {
		f := form.NewProductForm(nil)
		f.SetEditMode(true, &product)

		assert.True(t, f.EditMode())
		assert.Equal(t, "card-01", f.Value(form.FieldID))
		assert.Equal(t, product.DateReleased.Format(model.WireDateLayout), f.Value(form.FieldDateReleased))
		assert.False(t, f.HasErrors())
	})

	t.Run("leaving edit mode resets the draft", func(t *testing.T) {
		f := form.NewProductForm(nil)
		f.SetEditMode(true, &product)
		f.SetEditMode(false, nil)

		assert.False(t, f.EditMode())
		assert.Empty(t, f.Value(form.FieldID))
	})

	t.Run("reset clears values errors and id state", func(t *testing.T) {
		f := form.NewProductForm(func(string) {})
		f.UpdateField(form.FieldID, "card-01")
		f.SetIDExistsValidation(true)

		f.ResetForm()

		assert.Empty(t, f.Value(form.FieldID))
		assert.False(t, f.IDExists())
		assert.False(t, f.HasErrors())
	})
}
