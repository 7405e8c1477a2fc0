package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Room adalah lokasi bernama; Item mengacu lewat kolom location (by name),
// bukan foreign key.
type Room struct {
	ID              string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Description     string    `gorm:"type:text" json:"description"`
	Hidden          bool      `gorm:"not null;default:false" json:"hidden"`
	ReplacesDefault *string   `gorm:"type:varchar(255)" json:"replaces_default,omitempty"`
	Icon            string    `gorm:"type:varchar(100)" json:"icon"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
