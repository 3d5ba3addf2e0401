package client

import (
	"context"
	"log/slog"
)

// VerifyProductIDService checks whether a product id already exists.
type VerifyProductIDService struct {
	http *HTTPService
	urls URLResources
}

// NewVerifyProductIDService creates a VerifyProductIDService.
func NewVerifyProductIDService(http *HTTPService, urls URLResources) *VerifyProductIDService {
	return &VerifyProductIDService{http: http, urls: urls}
}

// Exec returns true when the given id is already taken.
func (s *VerifyProductIDService) Exec(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := s.http.Get(ctx, s.urls.Verify(id), &exists); err != nil {
		slog.Error("Failed to verify product id", slog.String("id", id), slog.Any("err", err))
		return false, err
	}
	return exists, nil
}
