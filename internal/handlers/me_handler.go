package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/bandboard/bandboard/internal/clock"
	"github.com/bandboard/bandboard/internal/httperr"
	"github.com/bandboard/bandboard/internal/models"
	"github.com/bandboard/bandboard/internal/validators"
)

type MeHandler struct {
	db  *gorm.DB
	clk clock.Clock
}

func NewMeHandler(db *gorm.DB, clk clock.Clock) *MeHandler {
	return &MeHandler{db: db, clk: clk}
}

// --------- Requests ---------

// UpdateProfileRequest covers self-service edits only. The activated flag
// is an administrative gate and is not reachable from here.
type UpdateProfileRequest struct {
	FirstName     *string `json:"first_name,omitempty"`
	LastName      *string `json:"last_name,omitempty"`
	Bio           *string `json:"bio,omitempty"`
	BirthDate     *string `json:"birth_date,omitempty"`
	Busy          *bool   `json:"busy,omitempty"`
	CityID        *uint   `json:"city_id,omitempty"`
	InstrumentIDs []uint  `json:"instrument_ids,omitempty"`
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password" binding:"required"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// --------- Handlers ---------

func (h *MeHandler) GetMe(c *gin.Context) {
	id := actorID(c)

	var account models.Account
	if err := h.db.
		Preload("Musician").
		Preload("Musician.City").
		Preload("Musician.Instruments").
		First(&account, id).Error; err != nil {

		httperr.Internal(c, "account_not_found", "Could not load account.")
		return
	}

	c.JSON(200, gin.H{
		"account": gin.H{
			"id":       account.ID,
			"username": account.Username,
			"email":    account.Email,
			"role":     account.Role,
		},
		"musician": account.Musician,
	})
}

func (h *MeHandler) UpdateProfile(c *gin.Context) {
	id := actorID(c)

	var musician models.Musician
	if err := h.db.Where("account_id = ?", id).First(&musician).Error; err != nil {
		httperr.Internal(c, "profile_not_found", "Could not load profile.")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var birthDate *time.Time
	if req.BirthDate != nil && *req.BirthDate != "" {
		t, ok := validators.ParseBirthDate(*req.BirthDate, h.clk.Now())
		if !ok {
			httperr.BadRequest(c, "invalid_birth_date", "Birth date must be YYYY-MM-DD and not in the future.")
			return
		}
		birthDate = &t
	}

	if req.FirstName != nil {
		musician.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		musician.LastName = *req.LastName
	}
	if req.Bio != nil {
		musician.Bio = *req.Bio
	}
	if birthDate != nil {
		musician.BirthDate = birthDate
	}
	if req.Busy != nil {
		musician.Busy = *req.Busy
	}
	if req.CityID != nil {
		musician.CityID = req.CityID
	}

	if err := h.db.Omit("Instruments", "Bands").Save(&musician).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Could not update profile.")
		return
	}

	if req.InstrumentIDs != nil {
		instruments := make([]models.Instrument, len(req.InstrumentIDs))
		for i, instID := range req.InstrumentIDs {
			instruments[i] = models.Instrument{ID: instID}
		}
		if err := h.db.Model(&musician).
			Association("Instruments").
			Replace(instruments); err != nil {
			httperr.Internal(c, "failed_to_update_instruments", "Could not update instruments.")
			return
		}
	}

	var fresh models.Musician
	h.db.Preload("City").Preload("Instruments").First(&fresh, musician.ID)

	c.JSON(200, fresh)
}

func (h *MeHandler) ChangePassword(c *gin.Context) {
	id := actorID(c)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Password != req.ConfirmPassword {
		httperr.BadRequest(c, "passwords_dont_match", "Passwords don't match.")
		return
	}

	var account models.Account
	if err := h.db.First(&account, id).Error; err != nil {
		httperr.Internal(c, "account_not_found", "Could not load account.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.OldPassword)); err != nil {
		httperr.BadRequest(c, "wrong_old_password", "Old password is incorrect.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process password.")
		return
	}

	account.PasswordHash = string(hashed)
	if err := h.db.Save(&account).Error; err != nil {
		httperr.Internal(c, "failed_to_change_password", "Could not change password.")
		return
	}

	c.JSON(200, gin.H{"status": "password_changed"})
}
