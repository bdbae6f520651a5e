// controllers/report.go
package controllers

import (
	"encoding/csv"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/elsebastiann/agenda-detalling/config"
	"github.com/elsebastiann/agenda-detalling/models"
	"github.com/elsebastiann/agenda-detalling/utils"
)

// ReportController handles all reporting functions
type ReportController struct{}

// ReportSummary represents the monthly report data
type ReportSummary struct {
	MonthRevenue  int              `json:"monthRevenue"`
	MonthExpenses int              `json:"monthExpenses"`
	MonthNet      int              `json:"monthNet"`
	SalesCount    int              `json:"salesCount"`
	TopServices   []ServiceSummary `json:"topServices"`
}

type ServiceSummary struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// GetReportSummary returns revenue, expenses and top services for the
// current month. Revenue only counts completed sales.
func (rc *ReportController) GetReportSummary(c *gin.Context) {
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	firstOfNext := firstOfMonth.AddDate(0, 1, 0)

	var sales []models.ServiceSale
	if err := config.DB.
		Where("service_date >= ? AND service_date < ?", firstOfMonth, firstOfNext).
		Find(&sales).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get monthly sales")
		return
	}

	revenue := 0
	serviceCounts := map[string]int{}
	for _, sale := range sales {
		if sale.Status != models.SaleStatusCompleted {
			continue
		}
		revenue += sale.FinalAmount
		for _, name := range strings.Split(sale.Services, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				serviceCounts[name]++
			}
		}
	}

	var expenses int
	if err := config.DB.Model(&models.Expense{}).
		Where("expense_date >= ? AND expense_date < ?", firstOfMonth, firstOfNext).
		Select("COALESCE(SUM(amount), 0)").Scan(&expenses).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get monthly expenses")
		return
	}

	topServices := make([]ServiceSummary, 0, len(serviceCounts))
	for name, count := range serviceCounts {
		topServices = append(topServices, ServiceSummary{Name: name, Count: count})
	}
	sort.Slice(topServices, func(i, j int) bool {
		if topServices[i].Count != topServices[j].Count {
			return topServices[i].Count > topServices[j].Count
		}
		return topServices[i].Name < topServices[j].Name
	})
	if len(topServices) > 5 {
		topServices = topServices[:5]
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "report": ReportSummary{
		MonthRevenue:  revenue,
		MonthExpenses: expenses,
		MonthNet:      revenue - expenses,
		SalesCount:    len(sales),
		TopServices:   topServices,
	}})
}

// ExportSalesCSV streams the full sale ledger as CSV.
func (rc *ReportController) ExportSalesCSV(c *gin.Context) {
	var sales []models.ServiceSale
	if err := config.DB.Order("service_date, created_at").Find(&sales).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve sales")
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="ventas.csv"`)

	w := csv.NewWriter(c.Writer)
	w.Write([]string{"service_date", "customer", "plate", "vehicle_type", "services",
		"base_amount", "discount_amount", "final_amount", "payment_method", "status", "notes"})
	for _, sale := range sales {
		w.Write([]string{
			sale.ServiceDate.Format("2006-01-02"),
			sale.CustomerName,
			sale.Plate,
			sale.VehicleTypeName,
			sale.Services,
			strconv.Itoa(sale.BaseAmount),
			strconv.Itoa(sale.DiscountAmount),
			strconv.Itoa(sale.FinalAmount),
			sale.PaymentMethod,
			sale.Status,
			sale.Notes,
		})
	}
	w.Flush()
}

// ExportExpensesCSV streams the expense ledger as CSV.
func (rc *ReportController) ExportExpensesCSV(c *gin.Context) {
	var expenses []models.Expense
	if err := config.DB.Preload("Category").Order("expense_date, created_at").
		Find(&expenses).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve expenses")
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="gastos.csv"`)

	w := csv.NewWriter(c.Writer)
	w.Write([]string{"expense_date", "category", "description", "amount", "notes"})
	for _, expense := range expenses {
		category := ""
		if expense.Category != nil {
			category = expense.Category.Name
		}
		w.Write([]string{
			expense.ExpenseDate.Format("2006-01-02"),
			category,
			expense.Description,
			strconv.Itoa(expense.Amount),
			expense.Notes,
		})
	}
	w.Flush()
}
