package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/lab-inventory/models"
	"github.com/yeremiapane/lab-inventory/utils"
)

type StatsController struct {
	DB *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db}
}

// HealthCheck -> liveness plus ping ke database
func (sc *StatsController) HealthCheck(c *gin.Context) {
	dbStatus := "up"
	sqlDB, err := sc.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		dbStatus = "down"
	}

	utils.RespondJSON(c, http.StatusOK, "Service is healthy", gin.H{
		"database": dbStatus,
	})
}

// CountByLocation -> jumlah serial number pada satu lokasi
func (sc *StatsController) CountByLocation(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingLocation)
		return
	}

	var total int64
	err := sc.DB.Model(&models.InventoryCode{}).
		Joins("JOIN items ON items.id = inventory_codes.item_id").
		Where("items.location = ?", location).
		Count(&total).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Inventory count by location", gin.H{
		"location": location,
		"total":    total,
	})
}
