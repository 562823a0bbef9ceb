package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tannehbartee/dujar-system/controllers"
	"github.com/tannehbartee/dujar-system/database"
	"github.com/tannehbartee/dujar-system/models"
	"github.com/tannehbartee/dujar-system/utils"
)

func setupTestDBForFacilities(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(testDSN(t)), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{}, &models.Facility{}, &models.Event{}, &models.SystemSetting{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	if err := database.Seed(db); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}
	return db
}

func setupFacilityRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	router.Use(fakeSession())
	facilityCtrl := controllers.NewFacilityController(db)
	router.GET("/facilities", facilityCtrl.GetAllFacilities)
	router.GET("/api/facility-events", facilityCtrl.FacilityEvents)
	router.PATCH("/facilities/:facility_id", facilityCtrl.UpdateFacility)
	return router
}

func TestFacilityEventsFiltering(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForFacilities(t)
	router := setupFacilityRouter(db)

	// Facility 2 is the Conference Room: Wedding, Party and Rally are
	// allowed there, Catering Service is not.
	req, _ := http.NewRequest("GET", "/api/facility-events?facility_id=2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var allowed []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &allowed))

	names := make([]string, 0, len(allowed))
	for _, event := range allowed {
		names = append(names, event["name"].(string))
	}
	assert.ElementsMatch(t, []string{"Wedding", "Party", "Rally"}, names)
	assert.NotContains(t, names, "Catering Service")
}

func TestFacilityEventsWithoutParameter(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForFacilities(t)
	router := setupFacilityRouter(db)

	req, _ := http.NewRequest("GET", "/api/facility-events", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var allowed []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &allowed))
	assert.Empty(t, allowed)
}

func TestUpdateFacilityFee(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForFacilities(t)
	router := setupFacilityRouter(db)

	body := []byte(`{"usd_fee": 350.0, "status": "maintenance"}`)
	req, _ := http.NewRequest("PATCH", "/facilities/2", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var facility models.Facility
	assert.NoError(t, db.First(&facility, 2).Error)
	assert.Equal(t, 350.0, facility.USDFee)
	assert.Equal(t, "maintenance", facility.Status)
	// Untouched fields survive a partial update.
	assert.Equal(t, "Conference Room", facility.Name)
	assert.Equal(t, 50, facility.Capacity)
}
