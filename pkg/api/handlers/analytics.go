package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/menuqr/menuqr/ent"
	"github.com/menuqr/menuqr/pkg/api/errors"
	"github.com/menuqr/menuqr/pkg/export"
	"github.com/menuqr/menuqr/pkg/middleware"
	"github.com/menuqr/menuqr/pkg/recommendations"
)

// AnalyticsHandler serves recommendation performance reports to staff
type AnalyticsHandler struct {
	analytics     *recommendations.Analytics
	exportService *export.Service
	db            *ent.Client
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analytics *recommendations.Analytics, exportService *export.Service, db *ent.Client) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics, exportService: exportService, db: db}
}

func daysParam(c echo.Context) int {
	days := 30
	if d := c.QueryParam("days"); d != "" {
		if v, err := strconv.Atoi(d); err == nil && v > 0 && v <= 365 {
			days = v
		}
	}
	return days
}

// GetSummary returns the business's recommendation performance summary
func (h *AnalyticsHandler) GetSummary(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	summary, err := h.analytics.GetPerformanceSummary(ctx, middleware.BusinessID(c), daysParam(c))
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

// GetTopPairs returns the business's best converting item pairs
func (h *AnalyticsHandler) GetTopPairs(c echo.Context) error {
	limit := 10
	if l := c.QueryParam("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	pairs, err := h.analytics.GetTopPerformingPairs(ctx, middleware.BusinessID(c), limit)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"pairs": pairs,
		"count": len(pairs),
	})
}

// CompareToNetwork contrasts the business against similar businesses
func (h *AnalyticsHandler) CompareToNetwork(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	cmp, err := h.analytics.CompareToNetwork(ctx, middleware.BusinessID(c), daysParam(c))
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, cmp)
}

// ExportReport downloads the performance report as an XLSX file
func (h *AnalyticsHandler) ExportReport(c echo.Context) error {
	businessID := middleware.BusinessID(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	biz, err := h.db.Business.Get(ctx, businessID)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	summary, err := h.analytics.GetPerformanceSummary(ctx, businessID, daysParam(c))
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	pairs, err := h.analytics.GetTopPerformingPairs(ctx, businessID, 100)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	buf, err := h.exportService.PairReport(biz.Name, summary, pairs)
	if err != nil {
		return errors.InternalError(c, err)
	}

	filename := fmt.Sprintf("recommendations-%s-%s.xlsx", biz.Slug, time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
