package models

import "time"

type Band struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	CityID *uint `json:"city_id"`
	City   *City `gorm:"constraint:OnDelete:SET NULL;" json:"city,omitempty"`

	OwnerID uint    `gorm:"not null" json:"owner_id"`
	Owner   Account `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	Styles    []Style    `gorm:"many2many:band_styles;" json:"styles"`
	Musicians []Musician `gorm:"many2many:band_musicians;" json:"musicians,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Band) OwnerAccountID() uint {
	return b.OwnerID
}
