// controllers/appointment.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elsebastiann/agenda-detalling/config"
	"github.com/elsebastiann/agenda-detalling/models"
	"github.com/elsebastiann/agenda-detalling/services"
	"github.com/elsebastiann/agenda-detalling/utils"
)

// AppointmentInput defines the expected JSON structure for creating or
// updating an appointment. End time is always derived, never accepted.
type AppointmentInput struct {
	CustomerName  string      `json:"customerName"`
	Plate         string      `json:"plate"`
	Phone         string      `json:"phone"`
	ServiceIDs    []uuid.UUID `json:"serviceIds" binding:"required,min=1"`
	VehicleTypeID *uuid.UUID  `json:"vehicleTypeId"`
	StartTime     time.Time   `json:"startTime" binding:"required"`
	Notes         string      `json:"notes"`
}

// EstimateInput defines the JSON structure for a duration/price preview.
type EstimateInput struct {
	ServiceIDs    []uuid.UUID `json:"serviceIds" binding:"required,min=1"`
	VehicleTypeID *uuid.UUID  `json:"vehicleTypeId"`
}

// CloseAppointmentInput defines the JSON structure for closing an
// appointment into a sale.
type CloseAppointmentInput struct {
	PaymentMethod string     `json:"paymentMethod"`
	Status        string     `json:"status" binding:"required"`
	Discount      int        `json:"discount"`
	ServiceDate   *time.Time `json:"serviceDate"`
	Notes         string     `json:"notes"`
}

// respondSchedulingError maps service-layer errors onto HTTP codes.
func respondSchedulingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
	case errors.Is(err, services.ErrAlreadyClosed):
		utils.RespondWithError(c, http.StatusConflict, "Appointment is already closed")
	case errors.Is(err, services.ErrInvalidStatus):
		utils.RespondWithError(c, http.StatusUnprocessableEntity, "Status must be completed or cancelled")
	case services.IsValidationError(err):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}

// Estimate previews the occupied time and price for a service selection.
func Estimate(c *gin.Context) {
	var input EstimateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	minutes, price, err := services.NewScheduler(config.DB).Estimate(input.ServiceIDs, input.VehicleTypeID)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "durationMinutes": minutes, "price": price})
}

// CreateAppointment books a new appointment
func CreateAppointment(c *gin.Context) {
	var input AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	appt, err := services.NewScheduler(config.DB).Create(services.AppointmentInput{
		CustomerName:  input.CustomerName,
		Plate:         input.Plate,
		Phone:         input.Phone,
		ServiceIDs:    input.ServiceIDs,
		VehicleTypeID: input.VehicleTypeID,
		StartTime:     input.StartTime,
		Notes:         input.Notes,
	})
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "appointment": appt})
}

// GetAppointments lists appointments ordered by start time
func GetAppointments(c *gin.Context) {
	var appointments []models.Appointment
	if err := config.DB.Preload("VehicleType").Order("start_time").
		Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "appointments": appointments})
}

// GetAppointment retrieves one appointment together with its closed state
func GetAppointment(c *gin.Context) {
	apptUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var appt models.Appointment
	if err := config.DB.Preload("VehicleType").Where("id = ?", apptUUID).
		First(&appt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Closed is derived from sale existence, not a stored flag
	var saleCount int64
	config.DB.Model(&models.ServiceSale{}).Where("appointment_id = ?", apptUUID).Count(&saleCount)

	c.JSON(http.StatusOK, gin.H{"ok": true, "appointment": appt, "closed": saleCount > 0})
}

// UpdateAppointment edits an appointment and recomputes its end time
func UpdateAppointment(c *gin.Context) {
	apptUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	appt, err := services.NewScheduler(config.DB).Update(apptUUID, services.AppointmentInput{
		CustomerName:  input.CustomerName,
		Plate:         input.Plate,
		Phone:         input.Phone,
		ServiceIDs:    input.ServiceIDs,
		VehicleTypeID: input.VehicleTypeID,
		StartTime:     input.StartTime,
		Notes:         input.Notes,
	})
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "appointment": appt})
}

// DeleteAppointment removes an appointment
func DeleteAppointment(c *gin.Context) {
	apptUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	if err := services.NewScheduler(config.DB).Delete(apptUUID); err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Appointment deleted successfully"})
}

// CloseAppointment turns an appointment into a permanent sale record
func CloseAppointment(c *gin.Context) {
	apptUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input CloseAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	closeInput := services.CloseSaleInput{
		PaymentMethod: input.PaymentMethod,
		Status:        input.Status,
		Discount:      input.Discount,
		Notes:         input.Notes,
	}
	if input.ServiceDate != nil {
		closeInput.ServiceDate = *input.ServiceDate
	}

	sale, err := services.NewSaleCloser(config.DB).Close(apptUUID, closeInput)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "sale": sale})
}
