// controllers/payment_method.go
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

type CreatePaymentMethodInput struct {
	Name string `json:"name" binding:"required"`
}

type UpdatePaymentMethodInput struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"isActive"`
}

func CreatePaymentMethod(c *gin.Context) {
	var input CreatePaymentMethodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	method := models.PaymentMethod{Name: input.Name, IsActive: true}
	if err := config.DB.Create(&method).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "Payment method name already exists")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create payment method")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "paymentMethod": method})
}

func GetPaymentMethods(c *gin.Context) {
	var methods []models.PaymentMethod
	if err := config.DB.Order("name").Find(&methods).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payment methods")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "paymentMethods": methods})
}

func UpdatePaymentMethod(c *gin.Context) {
	methodUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment method ID format")
		return
	}

	var input UpdatePaymentMethodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var method models.PaymentMethod
	if err := config.DB.Where("id = ?", methodUUID).First(&method).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Payment method not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		method.Name = *input.Name
	}
	if input.IsActive != nil {
		method.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&method).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update payment method")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "paymentMethod": method})
}

func DeletePaymentMethod(c *gin.Context) {
	methodUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment method ID format")
		return
	}

	result := config.DB.Where("id = ?", methodUUID).Delete(&models.PaymentMethod{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete payment method")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Payment method not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Payment method deleted successfully"})
}
