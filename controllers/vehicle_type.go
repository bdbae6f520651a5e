// controllers/vehicle_type.go
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

type CreateVehicleTypeInput struct {
	Name string `json:"name" binding:"required"`
}

type UpdateVehicleTypeInput struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"isActive"`
}

func CreateVehicleType(c *gin.Context) {
	var input CreateVehicleTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	vehicleType := models.VehicleType{Name: input.Name, IsActive: true}
	if err := config.DB.Create(&vehicleType).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "Vehicle type name already exists")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create vehicle type")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "vehicleType": vehicleType})
}

func GetVehicleTypes(c *gin.Context) {
	var vehicleTypes []models.VehicleType
	if err := config.DB.Order("name").Find(&vehicleTypes).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve vehicle types")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "vehicleTypes": vehicleTypes})
}

func UpdateVehicleType(c *gin.Context) {
	vehicleTypeUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid vehicle type ID format")
		return
	}

	var input UpdateVehicleTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var vehicleType models.VehicleType
	if err := config.DB.Where("id = ?", vehicleTypeUUID).First(&vehicleType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Vehicle type not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		vehicleType.Name = *input.Name
	}
	if input.IsActive != nil {
		vehicleType.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&vehicleType).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update vehicle type")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "vehicleType": vehicleType})
}

func DeleteVehicleType(c *gin.Context) {
	vehicleTypeUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid vehicle type ID format")
		return
	}

	result := config.DB.Where("id = ?", vehicleTypeUUID).Delete(&models.VehicleType{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete vehicle type")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Vehicle type not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Vehicle type deleted successfully"})
}
