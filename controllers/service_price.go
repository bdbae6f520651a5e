// controllers/service_price.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elsebastiann/agenda-detalling/config"
	"github.com/elsebastiann/agenda-detalling/models"
	"github.com/elsebastiann/agenda-detalling/utils"
)

type CreateServicePriceInput struct {
	ServiceID       uuid.UUID `json:"serviceId" binding:"required"`
	VehicleTypeID   uuid.UUID `json:"vehicleTypeId" binding:"required"`
	Price           int       `json:"price" binding:"min=0"`
	DurationMinutes int       `json:"durationMinutes" binding:"required,min=1"`
}

type UpdateServicePriceInput struct {
	Price           *int  `json:"price"`
	DurationMinutes *int  `json:"durationMinutes"`
	IsActive        *bool `json:"isActive"`
}

// CreateServicePrice registers the price and real duration of a service for
// one vehicle type. The composite unique index keeps one row per pair.
func CreateServicePrice(c *gin.Context) {
	var input CreateServicePriceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var service models.Service
	if err := config.DB.Where("id = ?", input.ServiceID).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var vehicleType models.VehicleType
	if err := config.DB.Where("id = ?", input.VehicleTypeID).First(&vehicleType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Vehicle type not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	price := models.ServicePrice{
		ServiceID:       input.ServiceID,
		VehicleTypeID:   input.VehicleTypeID,
		Price:           input.Price,
		DurationMinutes: input.DurationMinutes,
		IsActive:        true,
	}

	if err := config.DB.Create(&price).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "Price already configured for this service and vehicle type")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service price")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "servicePrice": price})
}

func GetServicePrices(c *gin.Context) {
	query := config.DB.Order("service_id")
	if serviceID := c.Query("serviceId"); serviceID != "" {
		serviceUUID, err := uuid.Parse(serviceID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
			return
		}
		query = query.Where("service_id = ?", serviceUUID)
	}

	var prices []models.ServicePrice
	if err := query.Find(&prices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve service prices")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "servicePrices": prices})
}

func UpdateServicePrice(c *gin.Context) {
	priceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service price ID format")
		return
	}

	var input UpdateServicePriceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var price models.ServicePrice
	if err := config.DB.Where("id = ?", priceUUID).First(&price).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service price not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Price != nil {
		price.Price = *input.Price
	}
	if input.DurationMinutes != nil {
		price.DurationMinutes = *input.DurationMinutes
	}
	if input.IsActive != nil {
		price.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&price).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service price")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "servicePrice": price})
}

func DeleteServicePrice(c *gin.Context) {
	priceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service price ID format")
		return
	}

	result := config.DB.Where("id = ?", priceUUID).Delete(&models.ServicePrice{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service price")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service price not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Service price deleted successfully"})
}
