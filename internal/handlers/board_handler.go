package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bandboard/bandboard/internal/clock"
	"github.com/bandboard/bandboard/internal/domain/listing"
	"github.com/bandboard/bandboard/internal/httperr"
	"github.com/bandboard/bandboard/internal/httpresp"
	"github.com/bandboard/bandboard/internal/models"
	ucboard "github.com/bandboard/bandboard/internal/usecase/board"
)

// ======================================================
// HANDLER
// ======================================================

type BoardHandler struct {
	db  *gorm.DB
	clk clock.Clock

	createUC *ucboard.CreateAnnouncement
	updateUC *ucboard.UpdateAnnouncement
	deleteUC *ucboard.DeleteAnnouncement
	bumpUC   *ucboard.BumpAnnouncement
}

func NewBoardHandler(
	db *gorm.DB,
	clk clock.Clock,
	createUC *ucboard.CreateAnnouncement,
	updateUC *ucboard.UpdateAnnouncement,
	deleteUC *ucboard.DeleteAnnouncement,
	bumpUC *ucboard.BumpAnnouncement,
) *BoardHandler {
	return &BoardHandler{
		db:       db,
		clk:      clk,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		bumpUC:   bumpUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAnnouncementRequest struct {
	Title    string `json:"title" binding:"required"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

type UpdateAnnouncementRequest struct {
	Title    *string `json:"title,omitempty"`
	Text     *string `json:"text,omitempty"`
	Category *string `json:"category,omitempty"`
}

// ======================================================
// LISTINGS
// ======================================================

// List is the public feed: announcements bumped within 30 days, newest
// bump first, optionally narrowed to one category.
func (h *BoardHandler) List(c *gin.Context) {
	var announcements []models.Announcement
	if err := h.db.
		Order("bumped_at DESC").
		Find(&announcements).Error; err != nil {

		httperr.Internal(c, "failed_to_list_announcements", "Could not list announcements.")
		return
	}

	announcements = listing.FreshAnnouncements(announcements, h.clk.Now())
	announcements = listing.FilterAnnouncements(announcements, listing.AnnouncementFilters{
		Category: strings.TrimSpace(c.Query("category")),
	})

	httpresp.List(c, announcements)
}

// ListOwn backs the dashboard: the author sees all of their
// announcements, expired ones included.
func (h *BoardHandler) ListOwn(c *gin.Context) {
	id := actorID(c)

	var announcements []models.Announcement
	if err := h.db.
		Where("owner_id = ?", id).
		Order("created_at DESC").
		Find(&announcements).Error; err != nil {

		httperr.Internal(c, "failed_to_list_announcements", "Could not list your announcements.")
		return
	}

	httpresp.List(c, announcements)
}

// ======================================================
// MUTATIONS
// ======================================================

func (h *BoardHandler) Create(c *gin.Context) {
	id := actorID(c)

	var req CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	a, err := h.createUC.Execute(c.Request.Context(), id, ucboard.CreateAnnouncementInput{
		Title:    req.Title,
		Text:     req.Text,
		Category: req.Category,
	})
	if err != nil {
		writeBoardError(c, err)
		return
	}

	httpresp.Created(c, a)
}

func (h *BoardHandler) Update(c *gin.Context) {
	id := actorID(c)

	announcementID, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	a, err := h.updateUC.Execute(c.Request.Context(), id, announcementID, ucboard.UpdateAnnouncementInput{
		Title:    req.Title,
		Text:     req.Text,
		Category: req.Category,
	})
	if err != nil {
		writeBoardError(c, err)
		return
	}

	httpresp.OK(c, a)
}

func (h *BoardHandler) Delete(c *gin.Context) {
	id := actorID(c)

	announcementID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id, announcementID); err != nil {
		writeBoardError(c, err)
		return
	}

	c.JSON(200, gin.H{"status": "deleted"})
}

func (h *BoardHandler) Bump(c *gin.Context) {
	id := actorID(c)

	announcementID, ok := pathID(c)
	if !ok {
		return
	}

	a, res, err := h.bumpUC.Execute(c.Request.Context(), id, announcementID)
	if err != nil {
		writeBoardError(c, err)
		return
	}

	if !res.Accepted {
		c.JSON(409, gin.H{
			"error_code":          "bump_too_soon",
			"message":             "This announcement was bumped recently.",
			"retry_after_seconds": int(res.Remaining.Seconds()),
		})
		return
	}

	httpresp.OK(c, a)
}

// ======================================================
// HELPERS
// ======================================================

func writeBoardError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "announcement_not_found"):
		httperr.NotFound(c, "announcement_not_found", "Announcement not found.")
	case httperr.IsBusiness(err, "forbidden"):
		httperr.Forbidden(c, "forbidden", "You are not the author of this announcement.")
	case httperr.IsBusiness(err, "invalid_category"):
		httperr.BadRequest(c, "invalid_category", "Unknown announcement category.")
	default:
		httperr.Internal(c, "announcement_operation_failed", "Could not complete the operation.")
	}
}
