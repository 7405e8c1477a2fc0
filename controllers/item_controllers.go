package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/lab-inventory/models"
	"github.com/yeremiapane/lab-inventory/utils"
)

type ItemController struct {
	DB *gorm.DB
}

func NewItemController(db *gorm.DB) *ItemController {
	return &ItemController{DB: db}
}

// ItemWithCounts -> baris item plus agregat jumlah kode per status
type ItemWithCounts struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Information string    `json:"information"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	TotalCodes  int64     `json:"total_codes"`
	GoodCount   int64     `json:"good_count"`
	BrokenCount int64     `json:"broken_count"`
}

// GetAllItems -> list item terbaru dulu, dengan jumlah kode (total/good/broken)
func (ic *ItemController) GetAllItems(c *gin.Context) {
	var items []ItemWithCounts
	err := ic.DB.Raw(`
		SELECT i.id, i.name, i.information, i.location, i.created_at, i.updated_at,
			COUNT(ic.id) AS total_codes,
			COALESCE(SUM(CASE WHEN ic.status = 'good' THEN 1 ELSE 0 END), 0) AS good_count,
			COALESCE(SUM(CASE WHEN ic.status = 'broken' THEN 1 ELSE 0 END), 0) AS broken_count
		FROM items i
		LEFT JOIN inventory_codes ic ON ic.item_id = i.id
		GROUP BY i.id, i.name, i.information, i.location, i.created_at, i.updated_at
		ORDER BY i.created_at DESC
	`).Scan(&items).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of items", items)
}

// GetItemByID -> detail 1 item beserta kode-kodenya (urut date_added)
func (ic *ItemController) GetItemByID(c *gin.Context) {
	itemID := c.Param("item_id")

	var item models.Item
	err := ic.DB.Preload("Codes", func(db *gorm.DB) *gorm.DB {
		return db.Order("date_added ASC")
	}).First(&item, "id = ?", itemID).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrItemNotFound)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item detail", item)
}

// CreateItem -> buat item, sekaligus `quantity` kode kosong dalam satu transaksi.
// Gagal di tengah = rollback total, tidak boleh ada item setengah jadi.
func (ic *ItemController) CreateItem(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Information string `json:"information"`
		Location    string `json:"location" binding:"required"`
		Quantity    int    `json:"quantity"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Quantity < 0 {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("quantity must not be negative"))
		return
	}

	tx := ic.DB.Begin()
	if tx.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, tx.Error)
		return
	}

	item := models.Item{
		Name:        req.Name,
		Information: req.Information,
		Location:    req.Location,
	}
	if err := tx.Create(&item).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// Kode kosong: label & spesifikasi "", status default "good"
	for i := 0; i < req.Quantity; i++ {
		code := models.InventoryCode{
			ItemID:    item.ID,
			DateAdded: time.Now(),
		}
		if err := tx.Create(&code).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	// Verifikasi jumlah kode yang benar-benar tersimpan
	var persisted int64
	if err := tx.Model(&models.InventoryCode{}).Where("item_id = ?", item.ID).Count(&persisted).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if persisted != int64(req.Quantity) {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError,
			fmt.Errorf("expected %d inventory codes, persisted %d", req.Quantity, persisted))
		return
	}

	// Baca kembali item yang dibuat beserta kodenya
	var created models.Item
	err := tx.Preload("Codes", func(db *gorm.DB) *gorm.DB {
		return db.Order("date_added ASC")
	}).First(&created, "id = ?", item.ID).Error
	if err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Item %s created with %d codes", created.ID, req.Quantity)
	utils.RespondJSON(c, http.StatusCreated, "Item created successfully", created)
}

// UpdateItem -> ganti field item; updated_at selalu di-refresh
func (ic *ItemController) UpdateItem(c *gin.Context) {
	itemID := c.Param("item_id")

	var req struct {
		Name        string  `json:"name" binding:"required"`
		Location    string  `json:"location" binding:"required"`
		Information *string `json:"information"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var item models.Item
	if err := ic.DB.First(&item, "id = ?", itemID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrItemNotFound)
		return
	}

	item.Name = req.Name
	item.Location = req.Location
	if req.Information != nil {
		item.Information = *req.Information
	}
	item.UpdatedAt = time.Now()

	if err := ic.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item updated", item)
}

// DeleteItem -> hapus item dan seluruh kodenya dalam satu transaksi
func (ic *ItemController) DeleteItem(c *gin.Context) {
	itemID := c.Param("item_id")

	tx := ic.DB.Begin()
	if tx.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, tx.Error)
		return
	}

	var item models.Item
	if err := tx.First(&item, "id = ?", itemID).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusNotFound, ErrItemNotFound)
		return
	}

	if err := tx.Where("item_id = ?", item.ID).Delete(&models.InventoryCode{}).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := tx.Delete(&item).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Item %s deleted", item.ID)
	utils.RespondJSON(c, http.StatusOK, "Item deleted", gin.H{
		"id": item.ID,
	})
}
