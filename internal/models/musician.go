package models

import "time"

type Musician struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	AccountID uint `gorm:"uniqueIndex;not null" json:"account_id"`

	FirstName string     `gorm:"size:50" json:"first_name"`
	LastName  string     `gorm:"size:50" json:"last_name"`
	Bio       string     `gorm:"type:text" json:"bio"`
	BirthDate *time.Time `json:"birth_date"`

	Busy bool `gorm:"default:false" json:"busy"`

	// one-way administrative gate, hidden from all public listings until set
	Activated bool `gorm:"default:false" json:"activated"`

	CityID *uint `json:"city_id"`
	City   *City `gorm:"constraint:OnDelete:SET NULL;" json:"city,omitempty"`

	Instruments []Instrument `gorm:"many2many:musician_instruments;" json:"instruments"`
	Bands       []Band       `gorm:"many2many:band_musicians;" json:"bands,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
