package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bandboard/bandboard/internal/domain/listing"
	"github.com/bandboard/bandboard/internal/dto"
	"github.com/bandboard/bandboard/internal/httperr"
	"github.com/bandboard/bandboard/internal/httpresp"
	"github.com/bandboard/bandboard/internal/models"
	ucband "github.com/bandboard/bandboard/internal/usecase/band"
)

// ======================================================
// HANDLER
// ======================================================

type BandHandler struct {
	db *gorm.DB

	createUC *ucband.CreateBand
	updateUC *ucband.UpdateBand
	deleteUC *ucband.DeleteBand
}

func NewBandHandler(
	db *gorm.DB,
	createUC *ucband.CreateBand,
	updateUC *ucband.UpdateBand,
	deleteUC *ucband.DeleteBand,
) *BandHandler {
	return &BandHandler{
		db:       db,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBandRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	CityID      *uint  `json:"city_id"`
	StyleIDs    []uint `json:"style_ids"`
	MusicianIDs []uint `json:"musician_ids"`
}

type UpdateBandRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	CityID      *uint   `json:"city_id,omitempty"`
	StyleIDs    []uint  `json:"style_ids,omitempty"`
	MusicianIDs []uint  `json:"musician_ids,omitempty"`
}

// ======================================================
// PUBLIC LISTING
// ======================================================

// List is the public band directory. Bands have no activation gate;
// optional city/style filters apply.
func (h *BandHandler) List(c *gin.Context) {
	var bands []models.Band
	if err := h.db.
		Preload("City").
		Preload("Styles").
		Order("id ASC").
		Find(&bands).Error; err != nil {

		httperr.Internal(c, "failed_to_list_bands", "Could not list bands.")
		return
	}

	bands = listing.FilterBands(bands, listing.BandFilters{
		CityID:  queryUintPtr(c, "city"),
		StyleID: queryUintPtr(c, "style"),
	})

	items := make([]dto.BandListDTO, len(bands))
	for i, b := range bands {
		items[i] = dto.ToBandListDTO(b)
	}

	httpresp.List(c, items)
}

// ======================================================
// DASHBOARD (OWNED BANDS)
// ======================================================

func (h *BandHandler) ListOwn(c *gin.Context) {
	id := actorID(c)

	var bands []models.Band
	if err := h.db.
		Preload("City").
		Preload("Styles").
		Preload("Musicians").
		Where("owner_id = ?", id).
		Order("id ASC").
		Find(&bands).Error; err != nil {

		httperr.Internal(c, "failed_to_list_bands", "Could not list your bands.")
		return
	}

	httpresp.List(c, bands)
}

// ======================================================
// MUTATIONS
// ======================================================

func (h *BandHandler) Create(c *gin.Context) {
	id := actorID(c)

	var req CreateBandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), id, ucband.CreateBandInput{
		Name:        req.Name,
		Description: req.Description,
		CityID:      req.CityID,
		StyleIDs:    req.StyleIDs,
		MusicianIDs: req.MusicianIDs,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_create_band", "Could not create band.")
		return
	}

	httpresp.Created(c, b)
}

func (h *BandHandler) Update(c *gin.Context) {
	id := actorID(c)

	bandID, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateBandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.updateUC.Execute(c.Request.Context(), id, bandID, ucband.UpdateBandInput{
		Name:        req.Name,
		Description: req.Description,
		CityID:      req.CityID,
		StyleIDs:    req.StyleIDs,
		MusicianIDs: req.MusicianIDs,
	})
	if err != nil {
		writeBandError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BandHandler) Delete(c *gin.Context) {
	id := actorID(c)

	bandID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id, bandID); err != nil {
		writeBandError(c, err)
		return
	}

	c.JSON(200, gin.H{"status": "deleted"})
}

// ======================================================
// HELPERS
// ======================================================

func pathID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid record id.")
		return 0, false
	}
	return uint(v), true
}

func writeBandError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "band_not_found"):
		httperr.NotFound(c, "band_not_found", "Band not found.")
	case httperr.IsBusiness(err, "forbidden"):
		httperr.Forbidden(c, "forbidden", "You are not the owner of this band.")
	default:
		httperr.Internal(c, "band_operation_failed", "Could not complete the operation.")
	}
}
