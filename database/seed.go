package database

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tannehbartee/dujar-system/models"
	"github.com/tannehbartee/dujar-system/utils"
)

// Seed inserts the default admin account, facilities, event types and
// system settings. Safe to run on every start; existing rows are left
// untouched.
func Seed(db *gorm.DB) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:     "admin",
		PasswordHash: string(hashed),
		Role:         models.RoleAdmin,
		FullName:     "System Administrator",
		Email:        "admin@dujar.com",
		IsActive:     true,
	}
	if err := db.Where(models.User{Username: admin.Username}).FirstOrCreate(&admin).Error; err != nil {
		utils.ErrorLogger.Printf("failed to seed admin user: %v", err)
		return err
	}

	facilities := []models.Facility{
		{Name: "Auditorium", Type: "Event Hall", Capacity: 500, USDFee: 1500.00, Description: "Large auditorium for major events"},
		{Name: "Conference Room", Type: "Meeting Room", Capacity: 50, USDFee: 300.00, Description: "Professional conference room"},
		{Name: "Cafeteria", Type: "Dining Hall", Capacity: 200, USDFee: 500.00, Description: "Cafeteria for catering services"},
		{Name: "Classroom", Type: "Educational", Capacity: 30, USDFee: 150.00, Description: "Standard classroom for educational activities"},
		{Name: "Office", Type: "Workspace", Capacity: 10, USDFee: 200.00, Description: "Private office space"},
	}
	for _, facility := range facilities {
		facility.Status = "active"
		facility.AvailabilityStatus = "available"
		if err := db.Where(models.Facility{Name: facility.Name}).FirstOrCreate(&facility).Error; err != nil {
			utils.ErrorLogger.Printf("failed to seed facility %s: %v", facility.Name, err)
			return err
		}
	}

	events := []models.Event{
		{Name: "Wedding", Description: "Wedding reception ceremony", AllowedFacilities: models.FacilityIDList{1, 2}},
		{Name: "Party", Description: "Private party or celebration", AllowedFacilities: models.FacilityIDList{1, 2}},
		{Name: "Rally", Description: "Public rally or gathering", AllowedFacilities: models.FacilityIDList{1, 2}},
		{Name: "Catering Service", Description: "Food service and catering", AllowedFacilities: models.FacilityIDList{3}},
		{Name: "Schooling", Description: "Educational activities", AllowedFacilities: models.FacilityIDList{4, 5}},
		{Name: "Office Work", Description: "Business and office activities", AllowedFacilities: models.FacilityIDList{5}},
	}
	for _, event := range events {
		if err := db.Where(models.Event{Name: event.Name}).FirstOrCreate(&event).Error; err != nil {
			utils.ErrorLogger.Printf("failed to seed event %s: %v", event.Name, err)
			return err
		}
	}

	settings := []models.SystemSetting{
		{SettingKey: models.SettingUSDToLRDRate, SettingValue: "190.00", Description: "Exchange rate from USD to LRD"},
		{SettingKey: models.SettingCompanyName, SettingValue: "DUJAR Facility Management", Description: "Company name for reports"},
		{SettingKey: models.SettingCompanyAddress, SettingValue: "Monrovia, Liberia", Description: "Company address"},
		{SettingKey: models.SettingAdvancePercentage, SettingValue: "50", Description: "Minimum advance payment percentage required"},
	}
	for _, setting := range settings {
		if err := db.Where(models.SystemSetting{SettingKey: setting.SettingKey}).FirstOrCreate(&setting).Error; err != nil {
			utils.ErrorLogger.Printf("failed to seed setting %s: %v", setting.SettingKey, err)
			return err
		}
	}

	return nil
}
