package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/menuqr/menuqr/ent/table"
	"github.com/menuqr/menuqr/pkg/api/errors"
	"github.com/menuqr/menuqr/pkg/middleware"
	"github.com/menuqr/menuqr/pkg/models"
	"github.com/menuqr/menuqr/pkg/tables"
)

// TableHandler handles staff table management endpoints
type TableHandler struct {
	tableService *tables.Service
}

// NewTableHandler creates a new table handler
func NewTableHandler(tableService *tables.Service) *TableHandler {
	return &TableHandler{tableService: tableService}
}

// Create registers a new table for the authenticated business
func (h *TableHandler) Create(c echo.Context) error {
	var req tables.CreateInput
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	t, err := h.tableService.Create(ctx, middleware.BusinessID(c), req)
	if err != nil {
		return errors.FromDomain(c, err)
	}

	return c.JSON(http.StatusCreated, t)
}

// List returns all tables of the authenticated business
func (h *TableHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.tableService.List(ctx, middleware.BusinessID(c))
	if err != nil {
		return errors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"tables": list,
		"count":  len(list),
	})
}

// SetStatus changes a table's seating status
func (h *TableHandler) SetStatus(c echo.Context) error {
	tableID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	var req models.TableStatusRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	status := table.Status(req.Status)
	if err := table.StatusValidator(status); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	t, err := h.tableService.SetStatus(ctx, middleware.BusinessID(c), tableID, status)
	if err != nil {
		return errors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, t)
}
