package client

import (
	"context"

	"github.com/odelgado/product-catalog/internal/mapper"
)

// DeleteProductService deletes a product through the API.
type DeleteProductService struct {
	http *HTTPService
	urls URLResources
}

// NewDeleteProductService creates a DeleteProductService.
func NewDeleteProductService(http *HTTPService, urls URLResources) *DeleteProductService {
	return &DeleteProductService{http: http, urls: urls}
}

// DeleteProduct deletes the product and returns the backend message.
func (s *DeleteProductService) DeleteProduct(ctx context.Context, id string) (string, error) {
	var response mapper.DeleteProductResponse
	if err := s.http.Delete(ctx, s.urls.Delete(id), &response); err != nil {
		return "", err
	}
	return response.Message, nil
}
