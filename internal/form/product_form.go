// Package form implements the add/edit product form: a draft record with
// per-field validation, revision-date derivation and asynchronous id
// uniqueness checking.
package form

import (
	"strings"
	"time"

	"github.com/odelgado/product-catalog/internal/model"
)

// Field names the inputs of the product form.
type Field string

const (
	FieldID           Field = "id"
	FieldName         Field = "name"
	FieldDescription  Field = "description"
	FieldLogo         Field = "logo"
	FieldDateReleased Field = "date_released"
	FieldDateRevision Field = "date_revision"
)

// fields lists every form field in rendering order.
var fields = []Field{
	FieldID,
	FieldName,
	FieldDescription,
	FieldLogo,
	FieldDateReleased,
	FieldDateRevision,
}

// Validation messages rendered beneath the fields.
const (
	msgIDRequired          = "ID is required"
	msgIDMin               = "ID must have minimum 3 characters"
	msgIDMax               = "ID must have maximum 10 characters"
	msgIDExists            = "This ID already exists"
	msgNameRequired        = "Name is required"
	msgNameMin             = "Name must have minimum 5 characters"
	msgNameMax             = "Name must have maximum 100 characters"
	msgDescriptionRequired = "Description is required"
	msgDescriptionMin      = "Description must have minimum 10 characters"
	msgDescriptionMax      = "Description must have maximum 200 characters"
	msgLogoRequired        = "Logo is required"
	msgDateReleaseRequired = "Release date is required"
	msgDateReleasePast     = "Release date must be today or later"
	msgDateRevisionReq     = "Revision date is required"
)

// ValidateIDFunc is invoked when the id field needs a remote existence
// check. The result arrives later through SetIDExistsValidation.
type ValidateIDFunc func(id string)

// ProductForm maintains the form draft and its per-field errors. Dates are
// held as YYYY-MM-DD strings until submission.
type ProductForm struct {
	data   map[Field]string
	errors map[Field]string

	idExists     bool
	idValidating bool
	editMode     bool

	onValidateID ValidateIDFunc
}

// NewProductForm creates an empty form in create mode. onValidateID may be
// nil when id uniqueness checking is not wired.
func NewProductForm(onValidateID ValidateIDFunc) *ProductForm {
	f := &ProductForm{onValidateID: onValidateID}
	f.reset()
	return f
}

func (f *ProductForm) reset() {
	f.data = map[Field]string{}
	f.errors = map[Field]string{}
	for _, field := range fields {
		f.data[field] = ""
		f.errors[field] = ""
	}
	f.idExists = false
	f.idValidating = false
}

// Value returns the current draft value of a field.
func (f *ProductForm) Value(field Field) string {
	return f.data[field]
}

// FieldError returns the current validation message of a field, empty when
// the field is valid.
func (f *ProductForm) FieldError(field Field) string {
	return f.errors[field]
}

// IDExists reports whether the remote check flagged the id as taken.
func (f *ProductForm) IDExists() bool {
	return f.idExists
}

// IDValidating reports whether a remote id check is pending.
func (f *ProductForm) IDValidating() bool {
	return f.idValidating
}

// EditMode reports whether the form edits an existing product.
func (f *ProductForm) EditMode() bool {
	return f.editMode
}

// SetEditMode switches between create and edit mode. Entering edit mode with
// a product populates the draft and clears all validation state; switching
// to create mode resets the draft.
func (f *ProductForm) SetEditMode(edit bool, product *model.Product) {
	f.editMode = edit
	if edit && product != nil {
		f.SetFormData(*product)
		return
	}
	if !edit {
		f.ResetForm()
	}
}

// UpdateField stores a field value, re-derives the revision date when the
// release date changes, validates the field, and triggers the remote id
// check once the id reaches 3 characters in create mode.
func (f *ProductForm) UpdateField(field Field, value string) {
	f.data[field] = value

	if field == FieldDateReleased && value != "" {
		f.data[FieldDateRevision] = CalculateRevisionDate(value)
		f.validateField(FieldDateRevision)
	}

	f.validateField(field)

	if field == FieldID && len(value) >= 3 && !f.editMode {
		f.idValidating = true
		if f.onValidateID != nil {
			f.onValidateID(value)
		}
	}
}

// SetIDExistsValidation merges the result of the remote id check into the
// id field's error state.
func (f *ProductForm) SetIDExistsValidation(exists bool) {
	f.idExists = exists
	f.idValidating = false
	f.validateField(FieldID)
}

func (f *ProductForm) validateField(field Field) {
	value := f.data[field]
	message := ""

	switch field {
	case FieldID:
		switch {
		case strings.TrimSpace(value) == "":
			message = msgIDRequired
		case len(value) < 3:
			message = msgIDMin
		case len(value) > 10:
			message = msgIDMax
		case !f.editMode && f.idExists:
			message = msgIDExists
		}
	case FieldName:
		switch {
		case strings.TrimSpace(value) == "":
			message = msgNameRequired
		case len(value) < 5:
			message = msgNameMin
		case len(value) > 100:
			message = msgNameMax
		}
	case FieldDescription:
		switch {
		case strings.TrimSpace(value) == "":
			message = msgDescriptionRequired
		case len(value) < 10:
			message = msgDescriptionMin
		case len(value) > 200:
			message = msgDescriptionMax
		}
	case FieldLogo:
		if strings.TrimSpace(value) == "" {
			message = msgLogoRequired
		}
	case FieldDateReleased:
		if value == "" {
			message = msgDateReleaseRequired
		} else if selected, err := time.Parse(model.WireDateLayout, value); err != nil {
			message = msgDateReleaseRequired
		} else if selected.Format(model.WireDateLayout) < time.Now().Format(model.WireDateLayout) {
			message = msgDateReleasePast
		}
	case FieldDateRevision:
		if value == "" {
			message = msgDateRevisionReq
		}
	}

	f.errors[field] = message
}

// CalculateRevisionDate derives the revision date as the release date plus
// exactly one calendar year; an empty input yields an empty output.
func CalculateRevisionDate(releaseDate string) string {
	if releaseDate == "" {
		return ""
	}
	date, err := time.Parse(model.WireDateLayout, releaseDate)
	if err != nil {
		return ""
	}
	return date.AddDate(1, 0, 0).Format(model.WireDateLayout)
}

// IsFormValid reports whether every field is non-empty and error-free and
// the id is not flagged as existing.
func (f *ProductForm) IsFormValid() bool {
	for _, field := range fields {
		if strings.TrimSpace(f.data[field]) == "" || f.errors[field] != "" {
			return false
		}
	}
	return !f.idExists
}

// HasErrors reports whether any field currently carries an error.
func (f *ProductForm) HasErrors() bool {
	for _, field := range fields {
		if f.errors[field] != "" {
			return true
		}
	}
	return false
}

// SetFormData populates the draft from an existing product and clears all
// validation state.
func (f *ProductForm) SetFormData(product model.Product) {
	f.reset()
	f.data[FieldID] = product.ID
	f.data[FieldName] = product.Name
	f.data[FieldDescription] = product.Description
	f.data[FieldLogo] = product.Logo
	f.data[FieldDateReleased] = product.DateReleased.Format(model.WireDateLayout)
	f.data[FieldDateRevision] = product.DateRevision.Format(model.WireDateLayout)
}

// ResetForm clears the draft and all validation state.
func (f *ProductForm) ResetForm() {
	f.reset()
}

// SubmitForm gates submission: when the form is valid it returns the
// constructed product and true; otherwise every field is re-validated so the
// errors surface, and it returns false.
func (f *ProductForm) SubmitForm() (model.Product, bool) {
	if !f.IsFormValid() {
		for _, field := range fields {
			f.validateField(field)
		}
		return model.Product{}, false
	}

	released, err := time.Parse(model.WireDateLayout, f.data[FieldDateReleased])
	if err != nil {
		f.validateField(FieldDateReleased)
		return model.Product{}, false
	}
	revision, err := time.Parse(model.WireDateLayout, f.data[FieldDateRevision])
	if err != nil {
		f.validateField(FieldDateRevision)
		return model.Product{}, false
	}

	return model.Product{
		ID:           f.data[FieldID],
		Name:         f.data[FieldName],
		Description:  f.data[FieldDescription],
		Logo:         f.data[FieldLogo],
		DateReleased: released,
		DateRevision: revision,
	}, true
}
