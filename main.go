package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/tannehbartee/dujar-system/config"
	"github.com/tannehbartee/dujar-system/database"
	"github.com/tannehbartee/dujar-system/models"
	"github.com/tannehbartee/dujar-system/router"
	"github.com/tannehbartee/dujar-system/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Facility{},
		&models.Event{},
		&models.Booking{},
		&models.Revenue{},
		&models.Expense{},
		&models.CashManagement{},
		&models.SystemSetting{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if err := database.Seed(db); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	r := router.SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	utils.InfoLogger.Printf("server listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
