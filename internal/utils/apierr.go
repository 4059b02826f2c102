package utils

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/viebus/viebus/services/api"
)

// UpstreamErrorResponse maps an error from the booking API onto the local
// response. APIError keeps its server status and message (with the
// field-level map when present, so forms can render per-input errors);
// anything else is a transport failure reported as 502 for the retry banner.
func UpstreamErrorResponse(c echo.Context, err error) error {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		if fields := apiErr.FieldErrors(); fields != nil {
			return FieldErrorResponse(c, apiErr.Status, apiErr.Message, fields)
		}
		return ErrorResponseHandler(c, apiErr.Status, apiErr.Message)
	}
	if errors.Is(err, api.ErrSessionExpired) {
		return UnauthorizedResponse(c, "Session expired, please log in again")
	}
	return BadGatewayResponse(c, "")
}
