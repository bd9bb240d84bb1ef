package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/menuqr/menuqr/pkg/api/errors"
	"github.com/menuqr/menuqr/pkg/metrics"
	"github.com/menuqr/menuqr/pkg/models"
	"github.com/menuqr/menuqr/pkg/recommendations"
)

// RecommendationHandler serves "frequently bought together" suggestions
// and tracks their outcomes
type RecommendationHandler struct {
	engine  *recommendations.Engine
	metrics *metrics.Metrics
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(engine *recommendations.Engine, m *metrics.Metrics) *RecommendationHandler {
	return &RecommendationHandler{engine: engine, metrics: m}
}

// GetForItem returns suggestions for a menu item
func (h *RecommendationHandler) GetForItem(c echo.Context) error {
	businessID, err := strconv.Atoi(c.Param("businessID"))
	if err != nil {
		return errors.ValidationError(c, err)
	}
	itemID, err := strconv.Atoi(c.Param("itemID"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	limit := 0
	if l := c.QueryParam("limit"); l != "" {
		limit, _ = parseInt(l)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	recs, err := h.engine.GetRecommendations(ctx, businessID, itemID, limit)
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	h.metrics.RecordRecommendationsServed()

	return c.JSON(http.StatusOK, map[string]interface{}{
		"recommendations": recs,
		"count":           len(recs),
	})
}

// TrackImpression records that a suggestion was shown to a customer
func (h *RecommendationHandler) TrackImpression(c echo.Context) error {
	businessID, err := strconv.Atoi(c.Param("businessID"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	var req models.ImpressionRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.engine.TrackImpression(ctx, businessID, req.SourceItemID, req.RecommendedItemID); err != nil {
		return errors.DatabaseError(c, err)
	}
	h.metrics.RecordImpression()

	return c.NoContent(http.StatusAccepted)
}

// TrackConversion records that a suggested item ended up in an order
func (h *RecommendationHandler) TrackConversion(c echo.Context) error {
	businessID, err := strconv.Atoi(c.Param("businessID"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	var req models.ConversionRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.engine.TrackConversion(ctx, businessID, req.RecommendedItemID, orderID, req.Revenue); err != nil {
		return errors.DatabaseError(c, err)
	}
	h.metrics.RecordConversion()

	return c.NoContent(http.StatusAccepted)
}

// parseInt parses a positive integer query parameter
func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, err
	}
	return v, nil
}
