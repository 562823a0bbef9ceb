package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tannehbartee/dujar-system/controllers"
	"github.com/tannehbartee/dujar-system/middlewares"
)

// SetupRouter wires every route. Everything except /ping and /login
// sits behind the auth middleware; settings and facility maintenance
// additionally require the admin role.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	userController := controllers.NewUserController(db)
	bookingController := controllers.NewBookingController(db)
	customerController := controllers.NewCustomerController(db)
	revenueController := controllers.NewRevenueController(db)
	expenseController := controllers.NewExpenseController(db)
	facilityController := controllers.NewFacilityController(db)
	dashboardController := controllers.NewDashboardController(db)
	reportController := controllers.NewReportController(db)
	settingsController := controllers.NewSettingsController(db)
	cashController := controllers.NewCashController(db)
	eventsController := controllers.NewEventsController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.POST("/login", middlewares.LoginRateLimiter(), userController.Login)

	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/logout", userController.Logout)
		auth.GET("/profile", userController.GetProfile)

		auth.GET("/dashboard", dashboardController.GetDashboard)

		auth.GET("/bookings", bookingController.GetAllBookings)
		auth.GET("/bookings/new", bookingController.GetBookingForm)
		auth.POST("/bookings", bookingController.CreateBooking)
		auth.GET("/bookings/:booking_id", bookingController.GetBookingByID)
		auth.GET("/api/check-availability", bookingController.CheckAvailability)

		auth.GET("/customers", customerController.GetAllCustomers)
		auth.POST("/customers", customerController.CreateCustomer)
		auth.GET("/customers/:customer_id", customerController.GetCustomerByID)

		auth.GET("/facilities", facilityController.GetAllFacilities)
		auth.GET("/events", facilityController.GetAllEvents)
		auth.GET("/api/facility-events", facilityController.FacilityEvents)

		auth.GET("/revenue", revenueController.GetAllRevenue)
		auth.GET("/revenue/new", revenueController.GetRevenueForm)
		auth.POST("/revenue", revenueController.CreateRevenue)

		auth.GET("/expenses", expenseController.GetAllExpenses)
		auth.GET("/expenses/new", expenseController.GetExpenseForm)
		auth.POST("/expenses", expenseController.CreateExpense)

		auth.GET("/cash-management", cashController.GetAllCashTransactions)
		auth.POST("/cash-management", cashController.CreateCashTransaction)

		auth.GET("/reports", reportController.GetReports)
		auth.GET("/reports/income-expense", reportController.GetIncomeExpenseReport)
		auth.GET("/reports/income-expense/export-pdf", reportController.ExportIncomeExpensePDF)

		auth.GET("/ws", eventsController.StreamEvents)

		admin := auth.Group("/")
		admin.Use(middlewares.AdminRequired())
		{
			admin.GET("/settings", settingsController.GetSettings)
			admin.PATCH("/settings/:key", settingsController.UpdateSetting)
			admin.PATCH("/facilities/:facility_id", facilityController.UpdateFacility)
		}
	}

	return r
}
