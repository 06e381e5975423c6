package models

type City struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;not null" json:"name"`
}

type InstrumentCategory struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;not null" json:"name"`

	Instruments []Instrument `gorm:"foreignKey:CategoryID" json:"instruments,omitempty"`
}

type Instrument struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;not null" json:"name"`

	// category is optional, an instrument may be uncategorized
	CategoryID *uint               `json:"category_id"`
	Category   *InstrumentCategory `gorm:"constraint:OnDelete:SET NULL;" json:"category,omitempty"`
}

type Style struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;not null" json:"name"`
}
