package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/lab-inventory/controllers"
	"github.com/yeremiapane/lab-inventory/models"
	"github.com/yeremiapane/lab-inventory/utils"
)

func setupTestDBForCodes() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(&models.Item{}, &models.InventoryCode{})
	if err != nil {
		panic(err)
	}
	return db
}

func setupCodeRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	codeCtrl := controllers.NewInventoryCodeController(db)
	router.GET("/serial-numbers", codeCtrl.GetAllCodes)
	router.POST("/serial-numbers", codeCtrl.CreateCode)
	router.PUT("/serial-numbers/:code_id", codeCtrl.UpdateCode)
	router.DELETE("/serial-numbers/:code_id", codeCtrl.DeleteCode)
	router.GET("/items/:item_id/serial-numbers", codeCtrl.GetCodesByItem)
	return router
}

func TestCreateCodeUnknownItem(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCodes()
	router := setupCodeRouter(db)

	payload := map[string]interface{}{"itemId": "missing"}
	payloadBytes, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", "/serial-numbers", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// itemId yang salah ikut di-echo di body
	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "missing", data["itemId"])
}

func TestCreateCodeMissingItemID(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCodes()
	router := setupCodeRouter(db)

	payload := map[string]interface{}{"serialNumber": "INV-001"}
	payloadBytes, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", "/serial-numbers", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.InventoryCode{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateCodeWithDefaults(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCodes()
	router := setupCodeRouter(db)

	item := models.Item{Name: "PC Desktop", Location: "Lab 1"}
	db.Create(&item)

	payload := map[string]interface{}{"itemId": item.ID}
	payloadBytes, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", "/serial-numbers", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "good", data["status"])
	assert.Equal(t, "", data["kode_inventaris"])
	assert.Equal(t, "", data["spesifikasi"])
	assert.NotEmpty(t, data["date_added"])
}

func TestCreateCodeWithExplicitDate(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCodes()
	router := setupCodeRouter(db)

	item := models.Item{Name: "PC Desktop", Location: "Lab 1"}
	db.Create(&item)

	payload := map[string]interface{}{
		"itemId":       item.ID,
		"serialNumber": "INV-005",
		"specs":        "i7, RAM 32GB",
		"status":       "broken",
		"dateAdded":    "2024-03-01",
	}
	payloadBytes, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", "/serial-numbers", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var code models.InventoryCode
	db.First(&code, "kode_inventaris = ?", "INV-005")
	assert.Equal(t, "broken", code.Status)
	assert.Equal(t, 2024, code.DateAdded.Year())
}

func TestCreateCodeInvalidDate(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCodes()
	router := setupCodeRouter(db)

	item := models.Item{Name: "PC Desktop", Location: "Lab 1"}
	db.Create(&item)

	payload := map[string]interface{}{
		"itemId":    item.ID,
		"dateAdded": "bukan-tanggal",
	}
	payloadBytes, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", "/serial-numbers", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCodePartial(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCodes()
	router := setupCodeRouter(db)

	item := models.Item{Name: "PC Desktop", Location: "Lab 1"}
	db.Create(&item)
	code := models.InventoryCode{ItemID: item.ID, KodeInventaris: "INV-001", Spesifikasi: "i5"}
	db.Create(&code)

	// Hanya status yang dikirim; field lain tidak boleh berubah
	payload := map[string]interface{}{"status": "broken"}
	payloadBytes, _ := json.Marshal(payload)

	req, _ := http.NewRequest("PUT", "/serial-numbers/"+code.ID, bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.InventoryCode
	db.First(&stored, "id = ?", code.ID)
	assert.Equal(t, "broken", stored.Status)
	assert.Equal(t, "INV-001", stored.KodeInventaris)
	assert.Equal(t, "i5", stored.Spesifikasi)
}

func TestUpdateCodeNotFound(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCodes()
	router := setupCodeRouter(db)

	payload := map[string]interface{}{"status": "broken"}
	payloadBytes, _ := json.Marshal(payload)

	req, _ := http.NewRequest("PUT", "/serial-numbers/missing", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCodeNotFound(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCodes()
	router := setupCodeRouter(db)

	req, _ := http.NewRequest("DELETE", "/serial-numbers/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCodesByItemOrderedByDate(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCodes()
	router := setupCodeRouter(db)

	item := models.Item{Name: "PC Desktop", Location: "Lab 1"}
	db.Create(&item)

	older := models.InventoryCode{ItemID: item.ID, KodeInventaris: "INV-OLD", DateAdded: mustParse("2024-01-01")}
	newer := models.InventoryCode{ItemID: item.ID, KodeInventaris: "INV-NEW", DateAdded: mustParse("2024-06-01")}
	// Insert dibalik supaya urutan hasil benar-benar dari date_added
	db.Create(&newer)
	db.Create(&older)

	req, _ := http.NewRequest("GET", "/items/"+item.ID+"/serial-numbers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	data := response["data"].([]interface{})
	assert.Len(t, data, 2)

	first := data[0].(map[string]interface{})
	second := data[1].(map[string]interface{})
	assert.Equal(t, "INV-OLD", first["serialNumber"])
	assert.Equal(t, "INV-NEW", second["serialNumber"])
	// Shape response: id, serialNumber, specs, status
	assert.Contains(t, first, "specs")
	assert.Contains(t, first, "status")
	assert.NotContains(t, first, "kode_inventaris")
}

func mustParse(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestGetCodesJoinedWithItem(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCodes()
	router := setupCodeRouter(db)

	item := models.Item{Name: "Proyektor", Location: "Lab 2"}
	db.Create(&item)
	db.Create(&models.InventoryCode{ItemID: item.ID, KodeInventaris: "INV-PRJ-001"})

	req, _ := http.NewRequest("GET", "/serial-numbers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	data := response["data"].([]interface{})
	assert.Len(t, data, 1)
	row := data[0].(map[string]interface{})
	assert.Equal(t, "Proyektor", row["item_name"])
	assert.Equal(t, "Lab 2", row["item_location"])
}
