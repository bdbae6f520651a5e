package services

import (
	"testing"

	"github.com/elsebastiann/agenda-detalling/models"
)

func TestSeedIdempotent(t *testing.T) {
	db := setupTestDB(t)

	if err := Seed(db); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var svcCount, vtCount, pmCount, ecCount int64
	db.Model(&models.Service{}).Count(&svcCount)
	db.Model(&models.VehicleType{}).Count(&vtCount)
	db.Model(&models.PaymentMethod{}).Count(&pmCount)
	db.Model(&models.ExpenseCategory{}).Count(&ecCount)
	if svcCount != 8 || vtCount != 3 || pmCount != 3 || ecCount != 5 {
		t.Fatalf("unexpected counts: services=%d vehicleTypes=%d paymentMethods=%d categories=%d",
			svcCount, vtCount, pmCount, ecCount)
	}

	// Baseline rows exist exactly once
	var c int64
	db.Model(&models.Service{}).Where("name = ?", "Wash Morado").Count(&c)
	if c != 1 {
		t.Fatalf("baseline service duplicated or missing: %d", c)
	}
}
