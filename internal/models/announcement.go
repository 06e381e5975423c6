package models

import "time"

type Announcement struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint    `gorm:"not null" json:"owner_id"`
	Owner   Account `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	Title    string `gorm:"type:text;not null" json:"title"`
	Text     string `gorm:"type:text" json:"text"`
	Category string `gorm:"size:50;not null" json:"category"`

	// BumpedAt drives the 30-day public-feed window; editing does not touch it
	BumpedAt time.Time `json:"bumped_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Announcement) OwnerAccountID() uint {
	return a.OwnerID
}
