// Package client implements the consumer side of the products API: a thin
// HTTP wrapper with observable loading/error state, an error normalizer for
// the backend error envelope, and one service per catalog operation.
package client

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// ErrorDetail is one entry of the backend error envelope.
type ErrorDetail struct {
	ErrorMessage string `json:"errorMessage"`
}

// APIError is the normalized form of a failed API call. Message carries the
// user-facing text; Envelope retains the original backend payload and Cause
// the underlying transport error, if any.
type APIError struct {
	Message  string
	Status   int
	Envelope []ErrorDetail
	Cause    error
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("products api: %s (status %d)", e.Message, e.Status)
	}
	return "products api: " + e.Message
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// Alerter receives the user-facing message of every normalized error.
// The UI layer installs a blocking alert here; the default logs the message.
type Alerter func(message string)

// ErrorsService extracts user-facing messages from failed API responses.
type ErrorsService struct {
	alert Alerter
}

// NewErrorsService creates an ErrorsService. A nil alerter falls back to
// structured logging.
func NewErrorsService(alert Alerter) *ErrorsService {
	if alert == nil {
		alert = func(message string) {
			slog.Error("API error", slog.String("message", message))
		}
	}
	return &ErrorsService{alert: alert}
}

// Extract normalizes a failed HTTP response into an APIError. The first
// envelope entry's message is surfaced through the alerter; when the body is
// not a recognized envelope the HTTP status text is used instead.
func (s *ErrorsService) Extract(status int, body []byte) *APIError {
	apiErr := &APIError{
		Message: fmt.Sprintf("request failed with status %d", status),
		Status:  status,
	}

	var envelope []ErrorDetail
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope) > 0 && envelope[0].ErrorMessage != "" {
		apiErr.Envelope = envelope
		apiErr.Message = envelope[0].ErrorMessage
	}

	s.alert(apiErr.Message)
	return apiErr
}

// ExtractTransport normalizes a network-level failure where no HTTP response
// was received.
func (s *ErrorsService) ExtractTransport(err error) *APIError {
	apiErr := &APIError{
		Message: err.Error(),
		Cause:   err,
	}
	s.alert(apiErr.Message)
	return apiErr
}
