package xapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the vendor, carrying whatever the
// payload offered as title/detail.
type APIError struct {
	StatusCode int
	Title      string
	Detail     string
}

func (e *APIError) Error() string {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return withDetail("invalid request", e)
	case http.StatusUnauthorized:
		return "unauthorized: invalid or expired access token"
	case http.StatusForbidden:
		return withDetail("forbidden", e)
	case http.StatusNotFound:
		return withDetail("not found", e)
	case http.StatusTooManyRequests:
		return "rate limit exceeded, try again later"
	default:
		if e.StatusCode >= 500 {
			return fmt.Sprintf("vendor server error (status %d)", e.StatusCode)
		}
		return withDetail(fmt.Sprintf("request failed (status %d)", e.StatusCode), e)
	}
}

func withDetail(prefix string, e *APIError) string {
	if e.Detail != "" {
		return prefix + ": " + e.Detail
	}
	if e.Title != "" {
		return prefix + ": " + e.Title
	}
	return prefix
}

// v2 error payloads come either as a top-level problem document or as an
// errors array; both carry title/detail.
type errorPayload struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Errors []struct {
		Title   string `json:"title"`
		Detail  string `json:"detail"`
		Message string `json:"message"`
	} `json:"errors"`
}

func newAPIError(status int, body []byte) *APIError {
	e := &APIError{StatusCode: status}
	var p errorPayload
	if err := json.Unmarshal(body, &p); err == nil {
		e.Title, e.Detail = p.Title, p.Detail
		if e.Detail == "" && len(p.Errors) > 0 {
			e.Title = p.Errors[0].Title
			e.Detail = p.Errors[0].Detail
			if e.Detail == "" {
				e.Detail = p.Errors[0].Message
			}
		}
	}
	return e
}

// ErrorString converts any failure from this package into the single
// human-readable string the blocks surface on their error output.
func ErrorString(err error) string {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Error()
	}
	return err.Error()
}
