package database

import (
	"github.com/yeremiapane/lab-inventory/models"
	"gorm.io/gorm"
)

// Migrate membuat tabel items, inventory_codes, dan rooms bila belum ada.
// Idempotent: boleh dipanggil berulang kali tanpa error.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Item{},
		&models.InventoryCode{},
		&models.Room{},
	)
}
