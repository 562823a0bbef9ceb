package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tannehbartee/dujar-system/models"
	"github.com/tannehbartee/dujar-system/utils"
)

type FacilityController struct {
	DB *gorm.DB
}

func NewFacilityController(db *gorm.DB) *FacilityController {
	return &FacilityController{DB: db}
}

// GetAllFacilities -> optionally filtered by ?status=.
func (fc *FacilityController) GetAllFacilities(c *gin.Context) {
	query := fc.DB.Order("name")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var facilities []models.Facility
	if err := query.Find(&facilities).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of facilities", facilities)
}

// UpdateFacility -> admin-only maintenance of fees and status. Fee
// changes never touch existing bookings; the fee is copied at booking
// time.
func (fc *FacilityController) UpdateFacility(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("facility_id"))

	var facility models.Facility
	if err := fc.DB.First(&facility, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		Type               *string  `json:"type"`
		Capacity           *int     `json:"capacity"`
		USDFee             *float64 `json:"usd_fee"`
		Status             *string  `json:"status"`
		AvailabilityStatus *string  `json:"availability_status"`
		Description        *string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Type != nil {
		facility.Type = *req.Type
	}
	if req.Capacity != nil {
		facility.Capacity = *req.Capacity
	}
	if req.USDFee != nil {
		facility.USDFee = *req.USDFee
	}
	if req.Status != nil {
		facility.Status = *req.Status
	}
	if req.AvailabilityStatus != nil {
		facility.AvailabilityStatus = *req.AvailabilityStatus
	}
	if req.Description != nil {
		facility.Description = *req.Description
	}

	if err := fc.DB.Save(&facility).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("facility updated (ID=%d) by user=%d", facility.ID, sessionUserID(c))
	utils.RespondJSON(c, http.StatusOK, "Facility updated", facility)
}

// GetAllEvents -> the seeded event types.
func (fc *FacilityController) GetAllEvents(c *gin.Context) {
	var eventTypes []models.Event
	if err := fc.DB.Order("name").Find(&eventTypes).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of events", eventTypes)
}

// FacilityEvents -> events that may be held in the given facility, as
// a bare array for the booking form's event selector.
func (fc *FacilityController) FacilityEvents(c *gin.Context) {
	facilityParam := c.Query("facility_id")
	if facilityParam == "" {
		c.JSON(http.StatusOK, []gin.H{})
		return
	}
	facilityID, err := strconv.ParseUint(facilityParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusOK, []gin.H{})
		return
	}

	var eventTypes []models.Event
	if err := fc.DB.Find(&eventTypes).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	allowed := make([]gin.H, 0)
	for _, event := range eventTypes {
		if event.AllowedFacilities.Contains(uint(facilityID)) {
			allowed = append(allowed, gin.H{
				"id":          event.ID,
				"name":        event.Name,
				"description": event.Description,
			})
		}
	}
	c.JSON(http.StatusOK, allowed)
}
