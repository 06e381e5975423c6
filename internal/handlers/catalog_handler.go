package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bandboard/bandboard/internal/cache"
	"github.com/bandboard/bandboard/internal/httperr"
	"github.com/bandboard/bandboard/internal/httpresp"
	"github.com/bandboard/bandboard/internal/models"
)

// CatalogHandler serves the reference data behind the directory filters.
// Reads go through redis; a cache miss or redis outage falls back to the
// database.
type CatalogHandler struct {
	db    *gorm.DB
	cache *cache.CatalogCache
}

func NewCatalogHandler(db *gorm.DB, cc *cache.CatalogCache) *CatalogHandler {
	return &CatalogHandler{db: db, cache: cc}
}

func (h *CatalogHandler) ListCities(c *gin.Context) {
	ctx := c.Request.Context()

	var cities []models.City
	if h.cache.Get(ctx, cache.KeyCities, &cities) {
		httpresp.List(c, cities)
		return
	}

	if err := h.db.Order("name ASC").Find(&cities).Error; err != nil {
		httperr.Internal(c, "failed_to_list_cities", "Could not list cities.")
		return
	}

	h.cache.Set(ctx, cache.KeyCities, cities)
	httpresp.List(c, cities)
}

func (h *CatalogHandler) ListInstruments(c *gin.Context) {
	ctx := c.Request.Context()

	var instruments []models.Instrument
	if h.cache.Get(ctx, cache.KeyInstruments, &instruments) {
		httpresp.List(c, instruments)
		return
	}

	if err := h.db.
		Preload("Category").
		Order("name ASC").
		Find(&instruments).Error; err != nil {

		httperr.Internal(c, "failed_to_list_instruments", "Could not list instruments.")
		return
	}

	h.cache.Set(ctx, cache.KeyInstruments, instruments)
	httpresp.List(c, instruments)
}

func (h *CatalogHandler) ListStyles(c *gin.Context) {
	ctx := c.Request.Context()

	var styles []models.Style
	if h.cache.Get(ctx, cache.KeyStyles, &styles) {
		httpresp.List(c, styles)
		return
	}

	if err := h.db.Order("name ASC").Find(&styles).Error; err != nil {
		httperr.Internal(c, "failed_to_list_styles", "Could not list styles.")
		return
	}

	h.cache.Set(ctx, cache.KeyStyles, styles)
	httpresp.List(c, styles)
}
