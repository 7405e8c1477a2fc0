package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/lab-inventory/models"
	"github.com/yeremiapane/lab-inventory/utils"
)

type RoomController struct {
	DB *gorm.DB
}

func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{DB: db}
}

// GetAllRooms -> list ruangan, terbaru dulu
func (rc *RoomController) GetAllRooms(c *gin.Context) {
	var rooms []models.Room
	if err := rc.DB.Order("created_at DESC").Find(&rooms).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of rooms", rooms)
}

// GetRoomByID
func (rc *RoomController) GetRoomByID(c *gin.Context) {
	roomID := c.Param("room_id")
	var room models.Room
	if err := rc.DB.First(&room, "id = ?", roomID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrRoomNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Room detail", room)
}

// CreateRoom
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req struct {
		Name            string  `json:"name" binding:"required"`
		Description     string  `json:"description"`
		Hidden          bool    `json:"hidden"`
		ReplacesDefault *string `json:"replaces_default"`
		Icon            string  `json:"icon"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	room := models.Room{
		Name:            req.Name,
		Description:     req.Description,
		Hidden:          req.Hidden,
		ReplacesDefault: req.ReplacesDefault,
		Icon:            req.Icon,
	}
	if err := rc.DB.Create(&room).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Room %s created (name=%s)", room.ID, room.Name)
	utils.RespondJSON(c, http.StatusCreated, "Room created successfully", room)
}

// UpdateRoom -> ganti sebagian field ruangan
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	roomID := c.Param("room_id")

	var req struct {
		Name            *string `json:"name"`
		Description     *string `json:"description"`
		Hidden          *bool   `json:"hidden"`
		ReplacesDefault *string `json:"replaces_default"`
		Icon            *string `json:"icon"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var room models.Room
	if err := rc.DB.First(&room, "id = ?", roomID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrRoomNotFound)
		return
	}

	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.Hidden != nil {
		room.Hidden = *req.Hidden
	}
	if req.ReplacesDefault != nil {
		room.ReplacesDefault = req.ReplacesDefault
	}
	if req.Icon != nil {
		room.Icon = *req.Icon
	}
	room.UpdatedAt = time.Now()

	if err := rc.DB.Save(&room).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Room updated", room)
}

// DeleteRoom -> hapus ruangan beserta semua item (dan kode item) yang
// location-nya sama dengan nama ruangan, dalam satu transaksi.
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	roomID := c.Param("room_id")

	tx := rc.DB.Begin()
	if tx.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, tx.Error)
		return
	}

	var room models.Room
	if err := tx.First(&room, "id = ?", roomID).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusNotFound, ErrRoomNotFound)
		return
	}

	// Item di ruangan ini dicari lewat kolom location (by name)
	var itemIDs []string
	if err := tx.Model(&models.Item{}).Where("location = ?", room.Name).Pluck("id", &itemIDs).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if len(itemIDs) > 0 {
		if err := tx.Where("item_id IN ?", itemIDs).Delete(&models.InventoryCode{}).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		if err := tx.Where("id IN ?", itemIDs).Delete(&models.Item{}).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	if err := tx.Delete(&room).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Room %s deleted, %d items removed", room.ID, len(itemIDs))
	utils.RespondJSON(c, http.StatusOK, "Room deleted", gin.H{
		"id":            room.ID,
		"items_removed": len(itemIDs),
	})
}
