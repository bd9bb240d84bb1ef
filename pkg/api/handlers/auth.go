package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/menuqr/menuqr/pkg/api/errors"
	"github.com/menuqr/menuqr/pkg/auth"
	"github.com/menuqr/menuqr/pkg/metrics"
	"github.com/menuqr/menuqr/pkg/middleware"
	"github.com/menuqr/menuqr/pkg/models"
)

// AuthHandler handles staff authentication endpoints
type AuthHandler struct {
	authService *auth.Service
	metrics     *metrics.Metrics
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{authService: authService, metrics: m}
}

// Login authenticates a staff account and returns a JWT
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	token, user, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.metrics.RecordLoginAttempt(false)
		return errors.FromDomain(c, err)
	}
	h.metrics.RecordLoginAttempt(true)

	return c.JSON(http.StatusOK, models.LoginResponse{
		Token:      token,
		UserID:     user.ID,
		BusinessID: user.BusinessID,
		Email:      user.Email,
		Role:       string(user.Role),
	})
}

// Register creates a staff account for the authenticated business.
// Only owners can reach this route.
func (h *AuthHandler) Register(c echo.Context) error {
	var req auth.RegisterInput
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	req.BusinessID = middleware.BusinessID(c)
	if err := c.Validate(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.authService.Register(ctx, req)
	if err != nil {
		return errors.FromDomain(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
	})
}
