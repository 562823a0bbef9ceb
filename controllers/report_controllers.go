package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-pdf/fpdf"
	"gorm.io/gorm"

	"github.com/tannehbartee/dujar-system/models"
	"github.com/tannehbartee/dujar-system/services"
	"github.com/tannehbartee/dujar-system/utils"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// GetReports -> the report catalog the reports page renders.
func (rc *ReportController) GetReports(c *gin.Context) {
	reports := []gin.H{
		{
			"id":          "income-expense",
			"name":        "Income & Expense Report",
			"description": "Revenue and expense entries over a date range with per-currency totals",
			"endpoint":    "/reports/income-expense",
		},
	}
	utils.RespondJSON(c, http.StatusOK, "Available reports", reports)
}

type incomeExpenseReport struct {
	StartDate       string           `json:"start_date"`
	EndDate         string           `json:"end_date"`
	Revenue         []models.Revenue `json:"revenue"`
	Expenses        []models.Expense `json:"expenses"`
	TotalRevenueUSD float64          `json:"total_revenue_usd"`
	TotalRevenueLRD float64          `json:"total_revenue_lrd"`
	TotalExpenseUSD float64          `json:"total_expense_usd"`
	TotalExpenseLRD float64          `json:"total_expense_lrd"`
	ExchangeRate    float64          `json:"exchange_rate"`
	NetUSD          float64          `json:"net_usd_equivalent"`
}

// reportRange parses ?start_date=&end_date=, defaulting to the last
// thirty days.
func reportRange(c *gin.Context) (time.Time, time.Time, error) {
	end := services.Today()
	start := end.AddDate(0, 0, -30)

	if v := c.Query("start_date"); v != "" {
		parsed, err := services.ParseDate(v)
		if err != nil {
			return start, end, fmt.Errorf("start_date must be YYYY-MM-DD")
		}
		start = parsed
	}
	if v := c.Query("end_date"); v != "" {
		parsed, err := services.ParseDate(v)
		if err != nil {
			return start, end, fmt.Errorf("end_date must be YYYY-MM-DD")
		}
		end = parsed
	}
	return start, end, nil
}

func (rc *ReportController) buildIncomeExpense(c *gin.Context) (*incomeExpenseReport, error) {
	start, end, err := reportRange(c)
	if err != nil {
		return nil, err
	}
	endExclusive := end.AddDate(0, 0, 1)

	report := incomeExpenseReport{
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
	}

	if err := rc.DB.Preload("Booking.Customer").Preload("Booking.Facility").Preload("Booking.Event").
		Joins("JOIN bookings ON bookings.id = revenue.booking_id").
		Joins("JOIN facilities ON facilities.id = bookings.facility_id").
		Joins("JOIN events ON events.id = bookings.event_id").
		Joins("JOIN customers ON customers.id = bookings.customer_id").
		Where("revenue.payment_date >= ? AND revenue.payment_date < ?", start, endExclusive).
		Order("facilities.name, events.name, customers.name").
		Find(&report.Revenue).Error; err != nil {
		return nil, err
	}
	if err := rc.DB.Preload("Facility").Preload("Event").Preload("Customer").
		Joins("LEFT JOIN facilities ON facilities.id = expenses.facility_id").
		Joins("LEFT JOIN events ON events.id = expenses.event_id").
		Joins("LEFT JOIN customers ON customers.id = expenses.customer_id").
		Where("expenses.expense_date >= ? AND expenses.expense_date < ?", start, endExclusive).
		Order("facilities.name, events.name, customers.name").
		Find(&report.Expenses).Error; err != nil {
		return nil, err
	}

	for _, entry := range report.Revenue {
		report.TotalRevenueUSD += entry.AmountUSD
		report.TotalRevenueLRD += entry.AmountLRD
	}
	for _, entry := range report.Expenses {
		report.TotalExpenseUSD += entry.AmountUSD
		report.TotalExpenseLRD += entry.AmountLRD
	}

	report.ExchangeRate = services.ExchangeRate(rc.DB)
	revenueUSD := report.TotalRevenueUSD + services.ToUSD(report.TotalRevenueLRD, models.CurrencyLRD, report.ExchangeRate)
	expenseUSD := report.TotalExpenseUSD + services.ToUSD(report.TotalExpenseLRD, models.CurrencyLRD, report.ExchangeRate)
	report.NetUSD = revenueUSD - expenseUSD
	return &report, nil
}

// GetIncomeExpenseReport -> JSON rendition of the income/expense
// report over the requested range.
func (rc *ReportController) GetIncomeExpenseReport(c *gin.Context) {
	report, err := rc.buildIncomeExpense(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Income and expense report", report)
}

// ExportIncomeExpensePDF -> the same report as a downloadable PDF.
func (rc *ReportController) ExportIncomeExpensePDF(c *gin.Context) {
	report, err := rc.buildIncomeExpense(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	companyName := settingValue(rc.DB, models.SettingCompanyName, "DUJAR Facility Management")
	companyAddress := settingValue(rc.DB, models.SettingCompanyAddress, "")

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Income & Expense Report", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, companyName, "", 1, "C", false, 0, "")
	if companyAddress != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, companyAddress, "", 1, "C", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, fmt.Sprintf("Income & Expense Report: %s to %s", report.StartDate, report.EndDate), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 8, "Revenue", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(30, 7, "Date", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 7, "Customer", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, "Facility", "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 7, "Amount", "1", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, entry := range report.Revenue {
		customer := entry.Booking.Customer.Name
		facility := entry.Booking.Facility.Name
		amount := utils.FormatAmount(entry.AmountUSD, models.CurrencyUSD)
		if entry.CurrencyType == models.CurrencyLRD {
			amount = utils.FormatAmount(entry.AmountLRD, models.CurrencyLRD)
		}
		pdf.CellFormat(30, 6, entry.PaymentDate.Format("2006-01-02"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, customer, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, facility, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 6, amount, "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 8, "Expenses", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(30, 7, "Date", "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 7, "Category", "1", 0, "L", false, 0, "")
	pdf.CellFormat(65, 7, "Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 7, "Amount", "1", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, entry := range report.Expenses {
		amount := utils.FormatAmount(entry.AmountUSD, models.CurrencyUSD)
		if entry.CurrencyType == models.CurrencyLRD {
			amount = utils.FormatAmount(entry.AmountLRD, models.CurrencyLRD)
		}
		pdf.CellFormat(30, 6, entry.ExpenseDate.Format("2006-01-02"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 6, entry.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(65, 6, entry.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 6, amount, "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 6, "Total Revenue: "+utils.FormatAmount(report.TotalRevenueUSD, models.CurrencyUSD)+" / "+utils.FormatAmount(report.TotalRevenueLRD, models.CurrencyLRD), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Total Expenses: "+utils.FormatAmount(report.TotalExpenseUSD, models.CurrencyUSD)+" / "+utils.FormatAmount(report.TotalExpenseLRD, models.CurrencyLRD), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Net (USD equivalent at rate %.2f): %s", report.ExchangeRate, utils.FormatAmount(report.NetUSD, models.CurrencyUSD)), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	filename := fmt.Sprintf("income-expense-%s-%s.pdf", report.StartDate, report.EndDate)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func settingValue(db *gorm.DB, key, fallback string) string {
	var setting models.SystemSetting
	if err := db.Where("setting_key = ?", key).First(&setting).Error; err != nil {
		return fallback
	}
	if setting.SettingValue == "" {
		return fallback
	}
	return setting.SettingValue
}
