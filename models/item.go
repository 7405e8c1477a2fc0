package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Item struct {
	ID          string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Information string          `gorm:"type:text" json:"information"`
	Location    string          `gorm:"type:varchar(255);not null" json:"location"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
	Codes       []InventoryCode `gorm:"foreignKey:ItemID" json:"codes,omitempty"`
}

// BeforeCreate -> generate ID baru, ID tidak pernah dipakai ulang
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
