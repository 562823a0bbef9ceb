package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tannehbartee/dujar-system/models"
	"github.com/tannehbartee/dujar-system/utils"
)

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

// GetAllCustomers -> alphabetical, paginated.
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	page, perPage, offset := pagination(c)

	var total int64
	if err := cc.DB.Model(&models.Customer{}).Count(&total).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var customers []models.Customer
	if err := cc.DB.Order("name").Limit(perPage).Offset(offset).Find(&customers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of customers", gin.H{
		"customers": customers,
		"page":      page,
		"per_page":  perPage,
		"total":     total,
	})
}

// CreateCustomer -> only the name is required.
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req struct {
		Name    string `json:"name" form:"name" binding:"required"`
		Address string `json:"address" form:"address"`
		Phone   string `json:"phone" form:"phone"`
		Email   string `json:"email" form:"email"`
	}
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer := models.Customer{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	}
	if err := cc.DB.Create(&customer).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("customer created (ID=%d) %s", customer.ID, customer.Name)
	utils.RespondJSON(c, http.StatusCreated, "Customer added successfully!", customer)
}

// GetCustomerByID -> detail with booking history.
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("customer_id"))

	var customer models.Customer
	if err := cc.DB.First(&customer, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var bookings []models.Booking
	if err := cc.DB.Preload("Facility").Preload("Event").
		Where("customer_id = ?", customer.ID).
		Order("booking_date DESC").Find(&bookings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer detail", gin.H{
		"customer": customer,
		"bookings": bookings,
	})
}
