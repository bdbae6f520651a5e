package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/elsebastiann/agenda-detalling/config"
	"github.com/elsebastiann/agenda-detalling/models"
	"github.com/elsebastiann/agenda-detalling/utils"
)

type DashboardOverview struct {
	TodayAppointments []models.Appointment `json:"todayAppointments"`
	MonthRevenue      int                  `json:"monthRevenue"`
	TotalClients      int64                `json:"totalClients"`
	RecentSales       []models.ServiceSale `json:"recentSales"`
}

func GetDashboardOverview(c *gin.Context) {
	now := time.Now()
	today := utils.BeginningOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	// Today's agenda
	var todayAppointments []models.Appointment
	config.DB.Preload("VehicleType").
		Where("start_time >= ? AND start_time < ?", today, tomorrow).
		Order("start_time").
		Find(&todayAppointments)

	// This month's revenue (completed sales only)
	var monthRevenue int
	config.DB.Model(&models.ServiceSale{}).
		Where("service_date >= ? AND status = ?", firstOfMonth, models.SaleStatusCompleted).
		Select("COALESCE(SUM(final_amount), 0)").Scan(&monthRevenue)

	// Known clients
	var totalClients int64
	config.DB.Model(&models.Client{}).Count(&totalClients)

	// Latest ledger entries
	var recentSales []models.ServiceSale
	config.DB.Order("created_at DESC").Limit(5).Find(&recentSales)

	c.JSON(http.StatusOK, gin.H{"ok": true, "dashboard": DashboardOverview{
		TodayAppointments: todayAppointments,
		MonthRevenue:      monthRevenue,
		TotalClients:      totalClients,
		RecentSales:       recentSales,
	}})
}
