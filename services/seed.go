// services/seed.go
package services

import (
	"log"

	"gorm.io/gorm"

	"github.com/elsebastiann/agenda-detalling/models"
)

// Seed creates the baseline catalog rows when their tables are empty. It is
// idempotent and safe to run on every boot.
func Seed(db *gorm.DB) error {
	if err := seedServices(db); err != nil {
		return err
	}
	if err := seedVehicleTypes(db); err != nil {
		return err
	}
	if err := seedPaymentMethods(db); err != nil {
		return err
	}
	return seedExpenseCategories(db)
}

func seedServices(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Service{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	baseline := []models.Service{
		{Name: "Wash Amarillo", DurationMinutes: 60, IsActive: true},
		{Name: "Wash Rosa", DurationMinutes: 120, IsActive: true},
		{Name: "Wash Morado", DurationMinutes: 160, IsActive: true},
		{Name: "Chasis", DurationMinutes: 60, IsActive: true},
		{Name: "Motor", DurationMinutes: 60, IsActive: true},
		{Name: "Porcelanizado", DurationMinutes: 180, IsActive: true},
		{Name: "Efecto Bross", DurationMinutes: 300, IsActive: true},
		{Name: "Desmanchado Interno", DurationMinutes: 360, IsActive: true},
	}
	if err := db.Create(&baseline).Error; err != nil {
		return err
	}
	log.Println("Baseline services created")
	return nil
}

func seedVehicleTypes(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.VehicleType{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	baseline := []models.VehicleType{
		{Name: "Automóvil", IsActive: true},
		{Name: "Camioneta", IsActive: true},
		{Name: "Moto", IsActive: true},
	}
	return db.Create(&baseline).Error
}

func seedPaymentMethods(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.PaymentMethod{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	baseline := []models.PaymentMethod{
		{Name: "Efectivo", IsActive: true},
		{Name: "Tarjeta", IsActive: true},
		{Name: "Transferencia", IsActive: true},
	}
	return db.Create(&baseline).Error
}

func seedExpenseCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.ExpenseCategory{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	baseline := []models.ExpenseCategory{
		{Name: "Insumos", IsActive: true},
		{Name: "Arriendo", IsActive: true},
		{Name: "Servicios públicos", IsActive: true},
		{Name: "Nómina", IsActive: true},
		{Name: "Otros", IsActive: true},
	}
	return db.Create(&baseline).Error
}
