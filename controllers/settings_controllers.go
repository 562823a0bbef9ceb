package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tannehbartee/dujar-system/events"
	"github.com/tannehbartee/dujar-system/models"
	"github.com/tannehbartee/dujar-system/utils"
)

type SettingsController struct {
	DB *gorm.DB
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{DB: db}
}

// GetSettings -> system settings plus the facility and user lists the
// admin screen manages. Password hashes are never serialized.
func (sc *SettingsController) GetSettings(c *gin.Context) {
	var (
		settings   []models.SystemSetting
		facilities []models.Facility
		users      []models.User
	)
	if err := sc.DB.Order("setting_key").Find(&settings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := sc.DB.Order("name").Find(&facilities).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := sc.DB.Order("username").Find(&users).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Settings", gin.H{
		"settings":   settings,
		"facilities": facilities,
		"users":      users,
	})
}

// UpdateSetting -> values are plain strings; the consumer parses them.
func (sc *SettingsController) UpdateSetting(c *gin.Context) {
	key := c.Param("key")

	var setting models.SystemSetting
	if err := sc.DB.Where("setting_key = ?", key).First(&setting).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		Value       string  `json:"value" binding:"required"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	setting.SettingValue = req.Value
	if req.Description != nil {
		setting.Description = *req.Description
	}
	setting.UpdatedBy = sessionUserID(c)

	if err := sc.DB.Save(&setting).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("setting %s updated by user=%d", key, setting.UpdatedBy)
	events.BroadcastMessage(events.Message{Event: events.EventSettingUpdated, Data: setting})

	utils.RespondJSON(c, http.StatusOK, "Setting updated", setting)
}
