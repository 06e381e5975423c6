package board

import "github.com/bandboard/bandboard/internal/httperr"

// ===============================
// Announcement Category
// ===============================

type Category string

const (
	CategoryBandIsLooking     Category = "BAND_IS_LOOKING"
	CategoryMusicianIsLooking Category = "MUSICIAN_IS_LOOKING"
	CategoryLookingForWork    Category = "LOOKING_FOR_WORK"
	CategoryWorkIsLooking     Category = "WORK_IS_LOOKING"
)

func DefaultCategory() Category {
	return CategoryBandIsLooking
}

func IsValidCategory(raw string) bool {
	switch Category(raw) {
	case CategoryBandIsLooking,
		CategoryMusicianIsLooking,
		CategoryLookingForWork,
		CategoryWorkIsLooking:
		return true
	}
	return false
}

// ValidateCategory accepts an empty value (defaulting is the caller's
// business) and rejects anything outside the known set.
func ValidateCategory(raw string) error {
	if raw == "" || IsValidCategory(raw) {
		return nil
	}
	return httperr.ErrBusiness("invalid_category")
}
