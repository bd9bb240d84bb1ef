package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/menuqr/menuqr/pkg/api/errors"
	"github.com/menuqr/menuqr/pkg/menu"
	"github.com/menuqr/menuqr/pkg/middleware"
	"github.com/menuqr/menuqr/pkg/models"
	"github.com/menuqr/menuqr/pkg/storage"
)

// MenuHandler handles public menu and staff menu management endpoints
type MenuHandler struct {
	menuService *menu.Service
	storage     *storage.Service
}

// NewMenuHandler creates a new menu handler. storageService may be nil when
// no object storage is configured.
func NewMenuHandler(menuService *menu.Service, storageService *storage.Service) *MenuHandler {
	return &MenuHandler{menuService: menuService, storage: storageService}
}

// GetPublicMenu returns the customer-facing menu for a business slug
func (h *MenuHandler) GetPublicMenu(c echo.Context) error {
	slug := c.Param("slug")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m, err := h.menuService.GetPublicMenu(ctx, slug)
	if err != nil {
		return errors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, m)
}

// CreateCategory adds a menu section for the authenticated business
func (h *MenuHandler) CreateCategory(c echo.Context) error {
	var req menu.CreateCategoryInput
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cat, err := h.menuService.CreateCategory(ctx, middleware.BusinessID(c), req)
	if err != nil {
		return errors.FromDomain(c, err)
	}

	return c.JSON(http.StatusCreated, cat)
}

// CreateItem adds a menu item for the authenticated business
func (h *MenuHandler) CreateItem(c echo.Context) error {
	var req menu.CreateItemInput
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	item, err := h.menuService.CreateItem(ctx, middleware.BusinessID(c), req)
	if err != nil {
		return errors.FromDomain(c, err)
	}

	return c.JSON(http.StatusCreated, item)
}

// SetAvailability toggles an item's availability
func (h *MenuHandler) SetAvailability(c echo.Context) error {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	var req models.AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	item, err := h.menuService.SetAvailability(ctx, middleware.BusinessID(c), itemID, req.IsAvailable)
	if err != nil {
		return errors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, item)
}

// UploadItemImage stores a menu item image and records its key
func (h *MenuHandler) UploadItemImage(c echo.Context) error {
	if h.storage == nil {
		return errors.ForbiddenError(c, "Image uploads are not configured.")
	}

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errors.ValidationError(c, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return errors.ValidationError(c, err)
	}

	src, err := file.Open()
	if err != nil {
		return errors.InternalError(c, err)
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	businessID := middleware.BusinessID(c)
	key := storage.ImageKey(businessID, itemID, file.Filename)
	contentType := file.Header.Get("Content-Type")

	if _, err := h.storage.Upload(ctx, key, contentType, src); err != nil {
		return errors.InternalError(c, err)
	}

	item, err := h.menuService.SetImageKey(ctx, businessID, itemID, key)
	if err != nil {
		return errors.FromDomain(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"item_id":   item.ID,
		"image_key": key,
		"image_url": h.storage.PublicURL(key),
	})
}
