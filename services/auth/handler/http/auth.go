// Package http exposes the session endpoints consumed by the web UI.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/viebus/viebus/internal/pkg/logger"
	"github.com/viebus/viebus/internal/pkg/models"
	"github.com/viebus/viebus/internal/utils"
	"github.com/viebus/viebus/services/auth/usecase"
)

// AuthHandler handles HTTP requests for the auth session
type AuthHandler struct {
	session *usecase.Session
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(session *usecase.Session) *AuthHandler {
	return &AuthHandler{session: session}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles login requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.session.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrMissingCredentials) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Warn("login failed", logger.String("username", req.Username), logger.Err(err))
		return utils.UpstreamErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged in", user)
}

// Register handles registration requests
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.session.Register(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, usecase.ErrMissingCredentials) || errors.Is(err, usecase.ErrPasswordMismatch) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.UpstreamErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Registered", user)
}

// Logout handles logout requests; safe to call when already logged out
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.session.Logout(); err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to clear session")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// Session reports the current authentication state
func (h *AuthHandler) Session(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", map[string]interface{}{
		"authenticated": h.session.IsAuthenticated(),
		"user":          h.session.CurrentUser(),
	})
}
