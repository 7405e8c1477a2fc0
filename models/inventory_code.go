package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusGood   = "good"
	StatusBroken = "broken"
)

type InventoryCode struct {
	ID     string `gorm:"type:varchar(36);primaryKey" json:"id"`
	ItemID string `gorm:"type:varchar(36);not null;index" json:"item_id"`
	// Omitting Item field from JSON to avoid recursive nesting
	Item           Item      `gorm:"foreignKey:ItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	KodeInventaris string    `gorm:"type:varchar(100);not null;default:''" json:"kode_inventaris"`
	Spesifikasi    string    `gorm:"type:text;not null;default:''" json:"spesifikasi"`
	Status         string    `gorm:"type:varchar(20);not null;default:'good'" json:"status"`
	DateAdded      time.Time `gorm:"not null" json:"date_added"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate -> isi ID baru dan nilai default sebelum insert
func (ic *InventoryCode) BeforeCreate(tx *gorm.DB) error {
	if ic.ID == "" {
		ic.ID = uuid.NewString()
	}
	if ic.Status == "" {
		ic.Status = StatusGood
	}
	if ic.DateAdded.IsZero() {
		ic.DateAdded = time.Now()
	}
	return nil
}
