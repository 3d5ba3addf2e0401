// Package mapper holds the pure transforms between the wire representation
// of products (flat JSON, string dates) and the view model, plus the table
// projection used by the product list page. Mappers keep no state.
package mapper

import (
	"fmt"
	"time"

	"github.com/odelgado/product-catalog/internal/model"
)

// ToWireProduct converts a product into its wire shape, truncating dates to
// calendar days.
func ToWireProduct(p model.Product) WireProduct {
	return WireProduct{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Logo:         p.Logo,
		DateRelease:  p.DateReleased.Format(model.WireDateLayout),
		DateRevision: p.DateRevision.Format(model.WireDateLayout),
	}
}

// ToUpdateRequest converts a product into the PUT request body.
func ToUpdateRequest(p model.Product) UpdateProductRequest {
	return UpdateProductRequest{
		Name:         p.Name,
		Description:  p.Description,
		Logo:         p.Logo,
		DateRelease:  p.DateReleased.Format(model.WireDateLayout),
		DateRevision: p.DateRevision.Format(model.WireDateLayout),
	}
}

// FromWireProduct converts a wire product back into the view model.
func FromWireProduct(w WireProduct) (model.Product, error) {
	released, err := time.Parse(model.WireDateLayout, w.DateRelease)
	if err != nil {
		return model.Product{}, fmt.Errorf("invalid date_release %q: %w", w.DateRelease, err)
	}
	revision, err := time.Parse(model.WireDateLayout, w.DateRevision)
	if err != nil {
		return model.Product{}, fmt.Errorf("invalid date_revision %q: %w", w.DateRevision, err)
	}
	return model.Product{
		ID:           w.ID,
		Name:         w.Name,
		Description:  w.Description,
		Logo:         w.Logo,
		DateReleased: released,
		DateRevision: revision,
	}, nil
}

// FromWireProducts converts a list of wire products into view models.
func FromWireProducts(wire []WireProduct) ([]model.Product, error) {
	products := make([]model.Product, 0, len(wire))
	for _, w := range wire {
		p, err := FromWireProduct(w)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
