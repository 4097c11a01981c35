// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// apiError carries the status and envelope for a failed request.
type apiError struct {
	Status  int
	Message string
	Details string
}

func newAPIError(status int, message, details string) *apiError {
	return &apiError{Status: status, Message: message, Details: details}
}

func (e *apiError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// handleError writes err as an errorResponse. echo's own errors (404, 405,
// bind failures) use the same envelope.
func handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	body := errorResponse{Error: "Internal server error"}

	var ae *apiError
	var he *echo.HTTPError
	switch {
	case errors.As(err, &ae):
		status = ae.Status
		body = errorResponse{Error: ae.Message, Details: ae.Details}
	case errors.As(err, &he):
		status = he.Code
		if msg, ok := he.Message.(string); ok {
			body.Error = msg
		} else {
			body.Error = http.StatusText(status)
		}
	default:
		slog.ErrorContext(c.Request().Context(), "unhandled error", "error", err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		slog.ErrorContext(c.Request().Context(), "failed to send error response", "error", err)
	}
}
