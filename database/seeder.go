package database

import (
	"encoding/json"
	"os"
	"time"

	"github.com/yeremiapane/lab-inventory/models"
	"github.com/yeremiapane/lab-inventory/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemSeed struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Information string     `json:"information"`
	Location    string     `json:"location"`
	Codes       []CodeSeed `json:"codes"`
}

type CodeSeed struct {
	ID             string `json:"id"`
	KodeInventaris string `json:"kode_inventaris"`
	Spesifikasi    string `json:"spesifikasi"`
	Status         string `json:"status"`
	DateAdded      string `json:"date_added"`
}

// SeedIfEmpty mengisi data contoh dari file JSON, hanya sekali ketika tabel
// items masih kosong. Insert memakai ON CONFLICT DO NOTHING supaya aman
// dijalankan ulang.
func SeedIfEmpty(db *gorm.DB, filePath string) error {
	var count int64
	if err := db.Model(&models.Item{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	raw, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			utils.InfoLogger.Printf("Seed file %s not found, skipping seed", filePath)
			return nil
		}
		return err
	}

	var seeds []ItemSeed
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return err
	}

	for _, s := range seeds {
		item := models.Item{
			ID:          s.ID,
			Name:        s.Name,
			Information: s.Information,
			Location:    s.Location,
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&item).Error; err != nil {
			return err
		}

		for _, cs := range s.Codes {
			code := models.InventoryCode{
				ID:             cs.ID,
				ItemID:         item.ID,
				KodeInventaris: cs.KodeInventaris,
				Spesifikasi:    cs.Spesifikasi,
				Status:         cs.Status,
				DateAdded:      parseSeedDate(cs.DateAdded),
			}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&code).Error; err != nil {
				return err
			}
		}
	}

	utils.InfoLogger.Printf("Seeded %d items from %s", len(seeds), filePath)
	return nil
}

func parseSeedDate(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Now()
}
