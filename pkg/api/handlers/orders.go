package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/menuqr/menuqr/ent/order"
	"github.com/menuqr/menuqr/pkg/api/errors"
	"github.com/menuqr/menuqr/pkg/metrics"
	"github.com/menuqr/menuqr/pkg/middleware"
	"github.com/menuqr/menuqr/pkg/models"
	"github.com/menuqr/menuqr/pkg/orders"
)

// OrderHandler handles customer ordering and the staff order workflow
type OrderHandler struct {
	orderService *orders.Service
	metrics      *metrics.Metrics
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *orders.Service, m *metrics.Metrics) *OrderHandler {
	return &OrderHandler{orderService: orderService, metrics: m}
}

// Create places a new customer order
func (h *OrderHandler) Create(c echo.Context) error {
	var req orders.CreateOrderInput
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	o, err := h.orderService.Create(ctx, req)
	if err != nil {
		return errors.FromDomain(c, err)
	}
	h.metrics.RecordOrderPlaced()

	return c.JSON(http.StatusCreated, o)
}

// Get returns one order with its lines, for customer order tracking
func (h *OrderHandler) Get(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	o, err := h.orderService.Get(ctx, orderID)
	if err != nil {
		return errors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, o)
}

// List returns the authenticated business's orders
func (h *OrderHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	limit := 0
	if l := c.QueryParam("limit"); l != "" {
		// bad values fall back to the service default
		limit, _ = parseInt(l)
	}

	list, err := h.orderService.ListByBusiness(ctx, middleware.BusinessID(c), c.QueryParam("status"), limit)
	if err != nil {
		return errors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"orders": list,
		"count":  len(list),
	})
}

// UpdateStatus moves an order through the workflow
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	var req models.StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	newStatus := order.Status(req.Status)
	if err := order.StatusValidator(newStatus); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	o, err := h.orderService.UpdateStatus(ctx, middleware.BusinessID(c), orderID, newStatus)
	if err != nil {
		return errors.FromDomain(c, err)
	}
	if newStatus == order.StatusCompleted {
		h.metrics.RecordOrderCompleted()
	}

	return c.JSON(http.StatusOK, o)
}
