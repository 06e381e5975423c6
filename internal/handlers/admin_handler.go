package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bandboard/bandboard/internal/audit"
	"github.com/bandboard/bandboard/internal/cache"
	"github.com/bandboard/bandboard/internal/httperr"
	"github.com/bandboard/bandboard/internal/httpresp"
	"github.com/bandboard/bandboard/internal/models"
)

// AdminHandler carries the administrative surface: the one-way musician
// activation gate and reference-catalog writes.
type AdminHandler struct {
	db    *gorm.DB
	cache *cache.CatalogCache
	audit *audit.Logger
}

func NewAdminHandler(db *gorm.DB, cc *cache.CatalogCache) *AdminHandler {
	return &AdminHandler{
		db:    db,
		cache: cc,
		audit: audit.New(db),
	}
}

// --------- Requests ---------

type CreateNamedRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateInstrumentRequest struct {
	Name       string `json:"name" binding:"required"`
	CategoryID *uint  `json:"category_id"`
}

// --------- Activation ---------

// ActivateMusician flips the activation gate on. There is no reverse
// operation; deactivation would be a separate product decision.
func (h *AdminHandler) ActivateMusician(c *gin.Context) {
	adminID := actorID(c)

	musicianID, ok := pathID(c)
	if !ok {
		return
	}

	var musician models.Musician
	if err := h.db.First(&musician, musicianID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "musician_not_found", "Musician not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_musician", "Could not load musician.")
		return
	}

	if !musician.Activated {
		musician.Activated = true
		if err := h.db.Omit("Instruments", "Bands").Save(&musician).Error; err != nil {
			httperr.Internal(c, "failed_to_activate", "Could not activate musician.")
			return
		}

		h.audit.Log(&adminID, "musician_activated", "musician", &musician.ID, nil)
	}

	httpresp.OK(c, musician)
}

// --------- Catalog writes ---------

func (h *AdminHandler) CreateCity(c *gin.Context) {
	var req CreateNamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	city := models.City{Name: strings.TrimSpace(req.Name)}
	if err := h.db.Create(&city).Error; err != nil {
		httperr.Internal(c, "failed_to_create_city", "Could not create city.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyCities)
	httpresp.Created(c, city)
}

func (h *AdminHandler) CreateStyle(c *gin.Context) {
	var req CreateNamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	style := models.Style{Name: strings.TrimSpace(req.Name)}
	if err := h.db.Create(&style).Error; err != nil {
		httperr.Internal(c, "failed_to_create_style", "Could not create style.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyStyles)
	httpresp.Created(c, style)
}

func (h *AdminHandler) CreateInstrument(c *gin.Context) {
	var req CreateInstrumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.CategoryID != nil {
		var count int64
		h.db.Model(&models.InstrumentCategory{}).
			Where("id = ?", *req.CategoryID).
			Count(&count)
		if count == 0 {
			httperr.BadRequest(c, "category_not_found", "Instrument category does not exist.")
			return
		}
	}

	instrument := models.Instrument{
		Name:       strings.TrimSpace(req.Name),
		CategoryID: req.CategoryID,
	}
	if err := h.db.Create(&instrument).Error; err != nil {
		httperr.Internal(c, "failed_to_create_instrument", "Could not create instrument.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyInstruments)
	httpresp.Created(c, instrument)
}

func (h *AdminHandler) CreateInstrumentCategory(c *gin.Context) {
	var req CreateNamedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	category := models.InstrumentCategory{Name: strings.TrimSpace(req.Name)}
	if err := h.db.Create(&category).Error; err != nil {
		httperr.Internal(c, "failed_to_create_category", "Could not create category.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyInstruments)
	httpresp.Created(c, category)
}
