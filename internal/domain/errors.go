package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUpstream         = errors.New("upstream error")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrAuthFatal        = errors.New("credential rejected")
	ErrInvalidThreshold = errors.New("invalid threshold")
)

// Error codes meaning the credential itself is unusable.
var authFatalCodes = map[string]struct{}{
	"invalid_auth":     {},
	"missing_scope":    {},
	"not_authed":       {},
	"token_expired":    {},
	"token_revoked":    {},
	"account_inactive": {},
}

// IsAuthFatalCode reports whether code halts the whole batch.
func IsAuthFatalCode(code string) bool {
	_, ok := authFatalCodes[code]
	return ok
}

// APIError is a structured failure returned by an API method.
type APIError struct {
	Method string
	Code   string
	Err    error
}

func (e *APIError) Error() string {
	if e.Code == "" && e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Method, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Method, e.Code)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUpstream:
		return true
	case ErrAuthFatal:
		return IsAuthFatalCode(e.Code)
	}
	return false
}

// RateLimitError is returned when the API asks the caller to back off.
type RateLimitError struct {
	Method     string
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s: rate limited, retry after %s", e.Method, e.RetryAfter)
}

// IsRateLimited extracts a rate limit error from err.
func IsRateLimited(err error) (*RateLimitError, bool) {
	var rl *RateLimitError
	if errors.As(err, &rl) {
		return rl, true
	}
	return nil, false
}
