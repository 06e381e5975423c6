package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bandboard/bandboard/internal/domain/listing"
	"github.com/bandboard/bandboard/internal/dto"
	"github.com/bandboard/bandboard/internal/httperr"
	"github.com/bandboard/bandboard/internal/models"
)

type MusicianHandler struct {
	db *gorm.DB
}

func NewMusicianHandler(db *gorm.DB) *MusicianHandler {
	return &MusicianHandler{db: db}
}

// List is the public musician directory: activated profiles only,
// optional city/instrument filters, available-first ordering, 9 per page.
func (h *MusicianHandler) List(c *gin.Context) {
	var musicians []models.Musician
	if err := h.db.
		Preload("City").
		Preload("Instruments").
		Find(&musicians).Error; err != nil {

		httperr.Internal(c, "failed_to_list_musicians", "Could not list musicians.")
		return
	}

	musicians = listing.VisibleMusicians(musicians)
	musicians = listing.FilterMusicians(musicians, listing.MusicianFilters{
		CityID:       queryUintPtr(c, "city"),
		InstrumentID: queryUintPtr(c, "instrument"),
	})
	listing.SortByAvailability(musicians)

	items := make([]dto.MusicianListDTO, len(musicians))
	for i, m := range musicians {
		items[i] = dto.ToMusicianListDTO(m)
	}

	page := listing.Paginate(
		items,
		listing.MusicianPageSize,
		listing.ParsePageParam(c.Query("page")),
	)

	c.JSON(200, page)
}
