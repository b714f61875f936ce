package twitter

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the platform, decoded from the
// v2 problem body when one is present.
type APIError struct {
	StatusCode int
	Title      string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("twitter: %s (status %d): %s", e.Title, e.StatusCode, e.Detail)
	}
	if e.Title != "" {
		return fmt.Sprintf("twitter: %s (status %d)", e.Title, e.StatusCode)
	}
	return fmt.Sprintf("twitter: request failed (status %d)", e.StatusCode)
}

// PermissionDenied reports whether the platform rejected the call for
// lack of API access tier or write permission.
func (e *APIError) PermissionDenied() bool {
	return e.StatusCode == http.StatusForbidden
}

// errorBody is the v2 problem response shape.
type errorBody struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// newAPIError builds an APIError from a response status and raw body.
// An undecodable body still yields a usable error with the status code.
func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		apiErr.Title = eb.Title
		apiErr.Detail = eb.Detail
		if apiErr.Detail == "" && len(eb.Errors) > 0 {
			apiErr.Detail = eb.Errors[0].Message
		}
	}

	return apiErr
}
