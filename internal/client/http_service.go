package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/odelgado/product-catalog/internal/signal"
)

// HTTPService issues JSON requests against the products API. It tracks a
// loading flag that is true from call start to settlement and retains the
// last normalized error; failures are forwarded to the ErrorsService.
type HTTPService struct {
	httpClient *http.Client
	errors     *ErrorsService
	loading    *signal.Signal[bool]
	lastError  *signal.Signal[*APIError]
}

// NewHTTPService creates an HTTPService. A nil httpClient falls back to
// http.DefaultClient.
func NewHTTPService(httpClient *http.Client, errors *ErrorsService) *HTTPService {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPService{
		httpClient: httpClient,
		errors:     errors,
		loading:    signal.New(false),
		lastError:  signal.New[*APIError](nil),
	}
}

// Loading reports whether a request is currently in flight.
func (s *HTTPService) Loading() *signal.Signal[bool] {
	return s.loading
}

// LastError holds the normalized error of the most recent failed request,
// or nil after a successful one.
func (s *HTTPService) LastError() *signal.Signal[*APIError] {
	return s.lastError
}

// Get issues a GET request and decodes the JSON response into out.
func (s *HTTPService) Get(ctx context.Context, url string, out any) error {
	return s.do(ctx, http.MethodGet, url, nil, out)
}

// Post issues a POST request with a JSON body and decodes the response into out.
func (s *HTTPService) Post(ctx context.Context, url string, body, out any) error {
	return s.do(ctx, http.MethodPost, url, body, out)
}

// Put issues a PUT request with a JSON body and decodes the response into out.
func (s *HTTPService) Put(ctx context.Context, url string, body, out any) error {
	return s.do(ctx, http.MethodPut, url, body, out)
}

// Delete issues a DELETE request and decodes the JSON response into out.
func (s *HTTPService) Delete(ctx context.Context, url string, out any) error {
	return s.do(ctx, http.MethodDelete, url, nil, out)
}

func (s *HTTPService) do(ctx context.Context, method, url string, body, out any) error {
	s.loading.Set(true)
	s.lastError.Set(nil)
	defer s.loading.Set(false)

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return s.fail(s.errors.ExtractTransport(fmt.Errorf("failed to encode request body: %w", err)))
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return s.fail(s.errors.ExtractTransport(fmt.Errorf("failed to build request: %w", err)))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return s.fail(s.errors.ExtractTransport(err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return s.fail(s.errors.ExtractTransport(fmt.Errorf("failed to read response body: %w", err)))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return s.fail(s.errors.Extract(resp.StatusCode, respBody))
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return s.fail(s.errors.ExtractTransport(fmt.Errorf("failed to decode response body: %w", err)))
		}
	}

	return nil
}

func (s *HTTPService) fail(apiErr *APIError) error {
	s.lastError.Set(apiErr)
	return apiErr
}
