package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/menuqr/menuqr/pkg/alerts"
	"github.com/menuqr/menuqr/pkg/api/errors"
	"github.com/menuqr/menuqr/pkg/metrics"
	"github.com/menuqr/menuqr/pkg/middleware"
)

// AlertHandler handles waiter call endpoints
type AlertHandler struct {
	alertService *alerts.Service
	metrics      *metrics.Metrics
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(alertService *alerts.Service, m *metrics.Metrics) *AlertHandler {
	return &AlertHandler{alertService: alertService, metrics: m}
}

// Raise lets a customer call a waiter from a table QR page
func (h *AlertHandler) Raise(c echo.Context) error {
	businessID, err := strconv.Atoi(c.Param("businessID"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	var req alerts.RaiseInput
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.alertService.Raise(ctx, businessID, req)
	if err != nil {
		return errors.FromDomain(c, err)
	}
	h.metrics.RecordWaiterAlert()

	return c.JSON(http.StatusCreated, a)
}

// ListPending returns the authenticated business's open alerts
func (h *AlertHandler) ListPending(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.alertService.ListPending(ctx, middleware.BusinessID(c))
	if err != nil {
		return errors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"alerts": list,
		"count":  len(list),
	})
}

// Acknowledge marks an alert as seen
func (h *AlertHandler) Acknowledge(c echo.Context) error {
	return h.setStatus(c, "acknowledge")
}

// Resolve marks an alert as handled
func (h *AlertHandler) Resolve(c echo.Context) error {
	return h.setStatus(c, "resolve")
}

func (h *AlertHandler) setStatus(c echo.Context, action string) error {
	alertID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	businessID := middleware.BusinessID(c)

	var a interface{}
	if action == "acknowledge" {
		a, err = h.alertService.Acknowledge(ctx, businessID, alertID)
	} else {
		a, err = h.alertService.Resolve(ctx, businessID, alertID)
	}
	if err != nil {
		return errors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, a)
}
