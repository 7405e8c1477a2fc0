package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/lab-inventory/controllers"
	"github.com/yeremiapane/lab-inventory/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	itemCtrl := controllers.NewItemController(db)
	codeCtrl := controllers.NewInventoryCodeController(db)
	roomCtrl := controllers.NewRoomController(db)
	statsCtrl := controllers.NewStatsController(db)

	r.GET("/health", statsCtrl.HealthCheck)

	items := r.Group("/items")
	{
		items.GET("", itemCtrl.GetAllItems)
		items.POST("", itemCtrl.CreateItem)
		items.GET("/:item_id", itemCtrl.GetItemByID)
		items.PUT("/:item_id", itemCtrl.UpdateItem)
		items.DELETE("/:item_id", itemCtrl.DeleteItem)
		items.GET("/:item_id/serial-numbers", codeCtrl.GetCodesByItem)
	}

	serials := r.Group("/serial-numbers")
	{
		serials.GET("", codeCtrl.GetAllCodes)
		serials.POST("", codeCtrl.CreateCode)
		serials.PUT("/:code_id", codeCtrl.UpdateCode)
		serials.DELETE("/:code_id", codeCtrl.DeleteCode)
	}

	r.GET("/inventory-count/by-location", statsCtrl.CountByLocation)

	rooms := r.Group("/rooms")
	{
		rooms.GET("", roomCtrl.GetAllRooms)
		rooms.POST("", roomCtrl.CreateRoom)
		rooms.GET("/:room_id", roomCtrl.GetRoomByID)
		rooms.PUT("/:room_id", roomCtrl.UpdateRoom)
		rooms.DELETE("/:room_id", roomCtrl.DeleteRoom)
	}

	return r
}
