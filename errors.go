package embeddings

import (
	"context"
	"errors"
)

type Error struct {
	Provider  string
	Code      string
	Status    int
	Message   string
	Retryable bool
	Cause     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Provider != "" && e.Message != "" {
		return e.Provider + ": " + e.Message
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Provider != "" {
		return e.Provider + ": error"
	}
	return "error"
}

func (e *Error) Unwrap() error { return e.Cause }

// IsRateLimited reports whether err is a 429 whose retry hint could not be
// used; a 429 that carried a parseable hint never surfaces as an error.
func IsRateLimited(err error) bool {
	var e *Error
	return errors.As(err, &e) && (e.Status == 429 || e.Code == "rate_limited")
}

func IsAuth(err error) bool {
	var e *Error
	return errors.As(err, &e) && (e.Status == 401 || e.Status == 403 || e.Code == "unauthorized")
}

func IsTimeout(err error) bool {
	var e *Error
	if errors.As(err, &e) && e.Code == "timeout" {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

func IsCanceled(err error) bool {
	var e *Error
	if errors.As(err, &e) && e.Code == "canceled" {
		return true
	}
	return errors.Is(err, context.Canceled)
}

// IsTransport reports whether err failed below the HTTP layer: connection
// errors, timeouts, or cancellation before any response arrived.
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e) && (e.Code == "network_error" || e.Code == "timeout" || e.Code == "canceled")
}

// IsResponseShape reports whether err came from a well-formed 200 response
// whose embedding count did not match the submitted documents.
func IsResponseShape(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == "invalid_response"
}
