// Package handler contains the echo handlers of the gateway API.
package handler

import (
	"net/http"
	"strconv"

	"pushgate/internal/delivery/api/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	codeInvalidInput     = "INVALID_INPUT"
	codeInvalidID        = "INVALID_ID"
	codeValidationFailed = "VALIDATION_FAILED"
)

// bindAndValidate binds the request into req and runs the echo validator. On failure it has
// already written the 400 response, and the returned error is the result of that write.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, codeInvalidInput, "Malformed request body")
	}

	if err := c.Validate(req); err != nil {
		return false, response.BadRequestWithDetails(c, codeValidationFailed, "Request validation failed", err.Error())
	}

	return true, nil
}

// pathID parses the named path parameter as a UUID.
func pathID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))

	return id, err == nil
}

// queryInt reads a non-negative integer query parameter, falling back to def when absent.
func queryInt(c echo.Context, name string, def int) (int, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, false
	}

	return value, true
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
