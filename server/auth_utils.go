package server

import (
	"net/http"
	"net/url"

	"github.com/jrsteele09/dept-console/api"
	apperrors "github.com/jrsteele09/dept-console/internal/errors"
)

const msgFetchFailed = "could not load the data"

// redirectSuccess helper for htmx-aware success redirects
func redirectSuccess(w http.ResponseWriter, r *http.Request, path string) {
	if isHTMXRequest(r) {
		w.Header().Set("HX-Redirect", path)
		w.WriteHeader(http.StatusNoContent) // 204 - no content, just redirect instruction
		return
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// redirectWithMessage carries a one-off notice to the next page
func redirectWithMessage(w http.ResponseWriter, r *http.Request, path, key, msg string) {
	redirectSuccess(w, r, path+"?"+key+"="+url.QueryEscape(msg))
}

// isHTMXRequest checks if the request was initiated by HTMX
func isHTMXRequest(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// statusFor maps an error of the taxonomy to the status of the page that
// shows it.
func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case apperrors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case apperrors.Is(err, apperrors.ErrAuthRejected):
		return http.StatusUnauthorized
	case apperrors.Is(err, apperrors.ErrTransport):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// fetchErrorMessage is the inline text for a failed list fetch.
func fetchErrorMessage(err error) string {
	if msg := api.MessageOf(err); msg != "" {
		return msg
	}
	return msgFetchFailed
}
