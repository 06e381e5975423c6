package models

import "time"

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

type Account struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username     string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Active       bool   `gorm:"default:true" json:"active"`
	Role         string `gorm:"size:20;default:'member'" json:"role"`

	Musician Musician `gorm:"constraint:OnDelete:CASCADE;" json:"musician"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
