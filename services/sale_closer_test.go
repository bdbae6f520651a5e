package services

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elsebastiann/agenda-detalling/models"
)

// bookAppointment seeds a priced two-service appointment: Wash Rosa (45) and
// Motor (30) on an Automóvil, base amount 75.
func bookAppointment(t *testing.T, db *gorm.DB) *models.Appointment {
	t.Helper()
	wash := createService(t, db, "Wash Rosa", 120)
	motor := createService(t, db, "Motor", 60)
	auto := createVehicleType(t, db, "Automóvil")
	createPrice(t, db, wash.ID, auto.ID, 45, 120)
	createPrice(t, db, motor.ID, auto.ID, 30, 60)

	appt, err := NewScheduler(db).Create(AppointmentInput{
		CustomerName:  "Ana",
		Plate:         "XYZ789",
		Phone:         "3009876543",
		ServiceIDs:    []uuid.UUID{wash.ID, motor.ID},
		VehicleTypeID: &auto.ID,
		StartTime:     time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("book appointment: %v", err)
	}
	return appt
}

func TestCloseCompletedSale(t *testing.T) {
	db := setupTestDB(t)
	appt := bookAppointment(t, db)

	sale, err := NewSaleCloser(db).Close(appt.ID, CloseSaleInput{
		PaymentMethod: "Efectivo",
		Status:        models.SaleStatusCompleted,
		Discount:      10,
	})
	if err != nil {
		t.Fatalf("close: %v", err)
	}

	if sale.BaseAmount != 75 {
		t.Fatalf("expected base 75, got %d", sale.BaseAmount)
	}
	if sale.DiscountAmount != 10 || sale.FinalAmount != 65 {
		t.Fatalf("unexpected amounts: %+v", sale)
	}
	if sale.PaymentMethod != "Efectivo" || sale.Status != models.SaleStatusCompleted {
		t.Fatalf("unexpected payment fields: %+v", sale)
	}
	if sale.Plate != "XYZ789" || sale.CustomerName != "Ana" || sale.VehicleTypeName != "Automóvil" {
		t.Fatalf("unexpected snapshot: %+v", sale)
	}
	if sale.Services != appt.Services {
		t.Fatalf("expected services snapshot %q, got %q", appt.Services, sale.Services)
	}
	if sale.ServiceDate.IsZero() {
		t.Fatal("expected a default service date")
	}
}

func TestCloseTwiceFailsWithAlreadyClosed(t *testing.T) {
	db := setupTestDB(t)
	appt := bookAppointment(t, db)
	closer := NewSaleCloser(db)

	input := CloseSaleInput{PaymentMethod: "Efectivo", Status: models.SaleStatusCompleted}
	if _, err := closer.Close(appt.ID, input); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if _, err := closer.Close(appt.ID, input); !errors.Is(err, ErrAlreadyClosed) {
		t.Fatalf("expected ErrAlreadyClosed, got %v", err)
	}

	var count int64
	db.Model(&models.ServiceSale{}).Where("appointment_id = ?", appt.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one sale row, got %d", count)
	}
}

func TestCloseDiscountFloorsFinalAtZero(t *testing.T) {
	db := setupTestDB(t)
	appt := bookAppointment(t, db)

	sale, err := NewSaleCloser(db).Close(appt.ID, CloseSaleInput{
		PaymentMethod: "Efectivo",
		Status:        models.SaleStatusCompleted,
		Discount:      500,
	})
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if sale.FinalAmount != 0 {
		t.Fatalf("expected final floored at 0, got %d", sale.FinalAmount)
	}
	if sale.DiscountAmount != 500 {
		t.Fatalf("expected discount 500 preserved, got %d", sale.DiscountAmount)
	}
}

func TestCloseNegativeDiscountClampedToZero(t *testing.T) {
	db := setupTestDB(t)
	appt := bookAppointment(t, db)

	sale, err := NewSaleCloser(db).Close(appt.ID, CloseSaleInput{
		PaymentMethod: "Efectivo",
		Status:        models.SaleStatusCompleted,
		Discount:      -20,
	})
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if sale.DiscountAmount != 0 || sale.FinalAmount != 75 {
		t.Fatalf("expected clamped discount, got %+v", sale)
	}
}

func TestCloseCancelledClearsPaymentMethod(t *testing.T) {
	db := setupTestDB(t)
	appt := bookAppointment(t, db)

	sale, err := NewSaleCloser(db).Close(appt.ID, CloseSaleInput{
		PaymentMethod: "Tarjeta",
		Status:        models.SaleStatusCancelled,
	})
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if sale.PaymentMethod != "" {
		t.Fatalf("cancelled sale stored payment method %q", sale.PaymentMethod)
	}
}

func TestCloseCompletedRequiresPaymentMethod(t *testing.T) {
	db := setupTestDB(t)
	appt := bookAppointment(t, db)

	_, err := NewSaleCloser(db).Close(appt.ID, CloseSaleInput{
		Status: models.SaleStatusCompleted,
	})
	if !IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCloseRejectsUnknownStatus(t *testing.T) {
	db := setupTestDB(t)
	appt := bookAppointment(t, db)

	_, err := NewSaleCloser(db).Close(appt.ID, CloseSaleInput{
		PaymentMethod: "Efectivo",
		Status:        "pending",
	})
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestCloseUnknownAppointment(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewSaleCloser(db).Close(uuid.New(), CloseSaleInput{
		PaymentMethod: "Efectivo",
		Status:        models.SaleStatusCompleted,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCloseRenamedServiceDropsFromPricing(t *testing.T) {
	db := setupTestDB(t)
	appt := bookAppointment(t, db)

	// Rename one booked service; exact-name re-resolution won't find it
	if err := db.Model(&models.Service{}).
		Where("name = ?", "Wash Rosa").
		Update("name", "Wash Premium").Error; err != nil {
		t.Fatalf("rename: %v", err)
	}

	sale, err := NewSaleCloser(db).Close(appt.ID, CloseSaleInput{
		PaymentMethod: "Efectivo",
		Status:        models.SaleStatusCompleted,
	})
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if sale.BaseAmount != 30 {
		t.Fatalf("expected only Motor (30) priced, got %d", sale.BaseAmount)
	}
}

func TestSaleSnapshotSurvivesAppointmentEditAndDelete(t *testing.T) {
	db := setupTestDB(t)
	appt := bookAppointment(t, db)
	scheduler := NewScheduler(db)

	sale, err := NewSaleCloser(db).Close(appt.ID, CloseSaleInput{
		PaymentMethod: "Efectivo",
		Status:        models.SaleStatusCompleted,
	})
	if err != nil {
		t.Fatalf("close: %v", err)
	}

	// Closed appointments are still editable and deletable; the ledger keeps
	// its own copy of everything it reports on.
	var motor models.Service
	if err := db.Where("name = ?", "Motor").First(&motor).Error; err != nil {
		t.Fatalf("service lookup: %v", err)
	}
	if _, err := scheduler.Update(appt.ID, AppointmentInput{
		CustomerName: "Otra Persona",
		Plate:        "NEW000",
		ServiceIDs:   []uuid.UUID{motor.ID},
		StartTime:    time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("edit after close: %v", err)
	}
	if err := scheduler.Delete(appt.ID); err != nil {
		t.Fatalf("delete after close: %v", err)
	}

	var stored models.ServiceSale
	if err := db.Where("id = ?", sale.ID).First(&stored).Error; err != nil {
		t.Fatalf("sale lookup: %v", err)
	}
	if stored.CustomerName != "Ana" || stored.Plate != "XYZ789" {
		t.Fatalf("ledger snapshot drifted: %+v", stored)
	}
}
