// controllers/client.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/elsebastiann/agenda-detalling/config"
	"github.com/elsebastiann/agenda-detalling/models"
	"github.com/elsebastiann/agenda-detalling/utils"
)

// GetClients lists the plate-keyed client directory. Rows are maintained by
// the scheduler as a side effect of booking, so there is no create route.
func GetClients(c *gin.Context) {
	var clients []models.Client
	if err := config.DB.Order("plate").Find(&clients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "clients": clients})
}

// GetClient looks up one client by plate, with their appointment history.
func GetClient(c *gin.Context) {
	plate := utils.NormalizePlate(c.Param("plate"))
	if plate == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Plate is required")
		return
	}

	var client models.Client
	if err := config.DB.Where("plate = ?", plate).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var appointments []models.Appointment
	config.DB.Where("plate = ?", plate).Order("start_time DESC").Find(&appointments)

	c.JSON(http.StatusOK, gin.H{"ok": true, "client": client, "appointments": appointments})
}
