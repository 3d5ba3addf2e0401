package client

import (
	"context"

	"github.com/odelgado/product-catalog/internal/mapper"
	"github.com/odelgado/product-catalog/internal/model"
)

// UpdateProductService updates a product through the API.
type UpdateProductService struct {
	http *HTTPService
	urls URLResources
}

// NewUpdateProductService creates an UpdateProductService.
func NewUpdateProductService(http *HTTPService, urls URLResources) *UpdateProductService {
	return &UpdateProductService{http: http, urls: urls}
}

// UpdateProduct sends the product update and returns the updated view model.
// The response body carries no id, so the requested id is carried over.
func (s *UpdateProductService) UpdateProduct(ctx context.Context, id string, product model.Product) (model.Product, error) {
	requestBody := mapper.ToUpdateRequest(product)

	var response mapper.MutationResponse
	if err := s.http.Put(ctx, s.urls.Update(id), requestBody, &response); err != nil {
		return model.Product{}, err
	}

	response.Data.ID = id
	return mapper.FromWireProduct(response.Data)
}
