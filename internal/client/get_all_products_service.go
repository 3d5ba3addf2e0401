package client

import (
	"context"

	"github.com/odelgado/product-catalog/internal/mapper"
	"github.com/odelgado/product-catalog/internal/model"
	"github.com/odelgado/product-catalog/internal/signal"
)

// GetAllProductsService fetches the full product list and retains the most
// recent successful result as observable state.
type GetAllProductsService struct {
	http     *HTTPService
	urls     URLResources
	products *signal.Signal[[]model.Product]
}

// NewGetAllProductsService creates a GetAllProductsService.
func NewGetAllProductsService(http *HTTPService, urls URLResources) *GetAllProductsService {
	return &GetAllProductsService{
		http:     http,
		urls:     urls,
		products: signal.New[[]model.Product](nil),
	}
}

// Products holds the result of the last successful Exec, nil after a failure.
func (s *GetAllProductsService) Products() *signal.Signal[[]model.Product] {
	return s.products
}

// Loading reports whether a request is in flight.
func (s *GetAllProductsService) Loading() *signal.Signal[bool] {
	return s.http.Loading()
}

// LastError holds the error of the most recent failed request.
func (s *GetAllProductsService) LastError() *signal.Signal[*APIError] {
	return s.http.LastError()
}

// Exec fetches all products, maps them into the view model and stores them.
func (s *GetAllProductsService) Exec(ctx context.Context) error {
	var response mapper.ListProductsResponse
	if err := s.http.Get(ctx, s.urls.GetAll(), &response); err != nil {
		s.products.Set(nil)
		return err
	}

	products, err := mapper.FromWireProducts(response.Data)
	if err != nil {
		s.products.Set(nil)
		return err
	}

	s.products.Set(products)
	return nil
}
