package response

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/obfuscation/core/handler"
	"github.com/dmitrymomot/obfuscation/core/router"
)

// convertToHTTPError converts any error to an HTTPError.
// The cause is attached to client errors only; server errors never echo
// internal messages back to the caller.
func convertToHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := router.StatusOf(err)
	baseErr, ok := httpErrorsByStatus[status]
	if !ok {
		baseErr = ErrInternalServerError
	}

	if baseErr.Status >= http.StatusInternalServerError {
		return baseErr
	}
	return baseErr.WithError(err)
}

// ErrorHandler is the default error handler that returns plain text errors.
func ErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := convertToHTTPError(err)
	Render(ctx, StringWithStatus(httpErr.Error(), httpErr.Status))
}

// JSONErrorHandler returns errors as JSON responses.
func JSONErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := convertToHTTPError(err)
	Render(ctx, JSONWithStatus(httpErr, httpErr.Status))
}
