package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "github.com/jrsteele09/dept-console/internal/errors"
)

// Error is a non-2xx answer from the API. Every such answer counts as a
// rejection.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("api error: %d: %s", e.StatusCode, e.Message)
}

func (e *Error) Unwrap() error {
	return apperrors.ErrAuthRejected
}

// MessageOf returns the message the API attached to err, or "" when err did not
// come from an API answer or the answer carried none.
func MessageOf(err error) string {
	var apiErr *Error
	if apperrors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

func messageFromBody(b []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(b, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}
