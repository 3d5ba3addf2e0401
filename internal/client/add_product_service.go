package client

import (
	"context"

	"github.com/odelgado/product-catalog/internal/mapper"
	"github.com/odelgado/product-catalog/internal/model"
	"github.com/odelgado/product-catalog/internal/signal"
)

// AddProductResult is the mapped outcome of a successful create operation.
type AddProductResult struct {
	Message string
	Product model.Product
}

// AddProductService creates products through the API and retains the mapped
// response of the last successful call.
type AddProductService struct {
	http   *HTTPService
	urls   URLResources
	result *signal.Signal[*AddProductResult]
}

// NewAddProductService creates an AddProductService.
func NewAddProductService(http *HTTPService, urls URLResources) *AddProductService {
	return &AddProductService{
		http:   http,
		urls:   urls,
		result: signal.New[*AddProductResult](nil),
	}
}

// Result holds the outcome of the last successful Exec, nil after a failure
// or Reset.
func (s *AddProductService) Result() *signal.Signal[*AddProductResult] {
	return s.result
}

// Loading reports whether a request is in flight.
func (s *AddProductService) Loading() *signal.Signal[bool] {
	return s.http.Loading()
}

// LastError holds the error of the most recent failed request.
func (s *AddProductService) LastError() *signal.Signal[*APIError] {
	return s.http.LastError()
}

// Exec creates the product and stores the mapped response.
func (s *AddProductService) Exec(ctx context.Context, product model.Product) error {
	requestBody := mapper.ToWireProduct(product)

	var response mapper.MutationResponse
	if err := s.http.Post(ctx, s.urls.Create(), requestBody, &response); err != nil {
		s.result.Set(nil)
		return err
	}

	created, err := mapper.FromWireProduct(response.Data)
	if err != nil {
		s.result.Set(nil)
		return err
	}

	s.result.Set(&AddProductResult{Message: response.Message, Product: created})
	return nil
}

// Reset clears the retained result.
func (s *AddProductService) Reset() {
	s.result.Set(nil)
}
