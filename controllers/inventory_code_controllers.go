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

type InventoryCodeController struct {
	DB *gorm.DB
}

func NewInventoryCodeController(db *gorm.DB) *InventoryCodeController {
	return &InventoryCodeController{DB: db}
}

// CodeWithItem -> baris kode di-join dengan nama & lokasi item pemiliknya
type CodeWithItem struct {
	ID             string    `json:"id"`
	ItemID         string    `json:"item_id"`
	KodeInventaris string    `json:"kode_inventaris"`
	Spesifikasi    string    `json:"spesifikasi"`
	Status         string    `json:"status"`
	DateAdded      time.Time `json:"date_added"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	ItemName       string    `json:"item_name"`
	ItemLocation   string    `json:"item_location"`
}

// GetAllCodes -> seluruh serial number, terbaru dulu
func (cc *InventoryCodeController) GetAllCodes(c *gin.Context) {
	var codes []CodeWithItem
	err := cc.DB.Raw(`
		SELECT ic.id, ic.item_id, ic.kode_inventaris, ic.spesifikasi, ic.status,
			ic.date_added, ic.created_at, ic.updated_at,
			i.name AS item_name, i.location AS item_location
		FROM inventory_codes ic
		JOIN items i ON i.id = ic.item_id
		ORDER BY ic.created_at DESC
	`).Scan(&codes).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of serial numbers", codes)
}

// CreateCode -> tambah serial number untuk item yang sudah ada
func (cc *InventoryCodeController) CreateCode(c *gin.Context) {
	var req struct {
		ItemID       string  `json:"itemId" binding:"required"`
		SerialNumber *string `json:"serialNumber"`
		Specs        *string `json:"specs"`
		Status       *string `json:"status"`
		DateAdded    *string `json:"dateAdded"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	// Pastikan item pemiliknya ada; echo itemId supaya jelas referensi mana yang salah
	var item models.Item
	if err := cc.DB.First(&item, "id = ?", req.ItemID).Error; err != nil {
		utils.RespondJSON(c, http.StatusNotFound,
			fmt.Sprintf("Item %s not found", req.ItemID), gin.H{
				"itemId": req.ItemID,
			})
		return
	}

	code := models.InventoryCode{
		ItemID: item.ID,
	}
	if req.SerialNumber != nil {
		code.KodeInventaris = *req.SerialNumber
	}
	if req.Specs != nil {
		code.Spesifikasi = *req.Specs
	}
	if req.Status != nil {
		code.Status = *req.Status
	}
	if req.DateAdded != nil {
		t, err := parseDateAdded(*req.DateAdded)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		code.DateAdded = t
	}

	if err := cc.DB.Create(&code).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Serial number created", code)
}

// UpdateCode -> ganti sebagian field kode; field yang tidak dikirim tidak berubah
func (cc *InventoryCodeController) UpdateCode(c *gin.Context) {
	codeID := c.Param("code_id")

	var req struct {
		SerialNumber *string `json:"serialNumber"`
		Specs        *string `json:"specs"`
		Status       *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var code models.InventoryCode
	if err := cc.DB.First(&code, "id = ?", codeID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrCodeNotFound)
		return
	}

	if req.SerialNumber != nil {
		code.KodeInventaris = *req.SerialNumber
	}
	if req.Specs != nil {
		code.Spesifikasi = *req.Specs
	}
	if req.Status != nil {
		code.Status = *req.Status
	}
	code.UpdatedAt = time.Now()

	if err := cc.DB.Save(&code).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Serial number updated", code)
}

// DeleteCode
func (cc *InventoryCodeController) DeleteCode(c *gin.Context) {
	codeID := c.Param("code_id")

	var code models.InventoryCode
	if err := cc.DB.First(&code, "id = ?", codeID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrCodeNotFound)
		return
	}

	if err := cc.DB.Delete(&code).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Serial number deleted", gin.H{
		"id": code.ID,
	})
}

// GetCodesByItem -> serial number milik 1 item, urut tanggal masuk
func (cc *InventoryCodeController) GetCodesByItem(c *gin.Context) {
	itemID := c.Param("item_id")

	var item models.Item
	if err := cc.DB.First(&item, "id = ?", itemID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrItemNotFound)
		return
	}

	var codes []models.InventoryCode
	err := cc.DB.Where("item_id = ?", item.ID).
		Order("date_added ASC").
		Find(&codes).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	type codeView struct {
		ID           string `json:"id"`
		SerialNumber string `json:"serialNumber"`
		Specs        string `json:"specs"`
		Status       string `json:"status"`
	}
	views := make([]codeView, 0, len(codes))
	for _, code := range codes {
		views = append(views, codeView{
			ID:           code.ID,
			SerialNumber: code.KodeInventaris,
			Specs:        code.Spesifikasi,
			Status:       code.Status,
		})
	}

	utils.RespondJSON(c, http.StatusOK, "Serial numbers of item", views)
}

// parseDateAdded menormalkan tanggal kiriman client ke time.Time
func parseDateAdded(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid dateAdded: %s", s)
}
