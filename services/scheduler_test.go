package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/elsebastiann/agenda-detalling/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Service{},
		&models.VehicleType{},
		&models.ServicePrice{},
		&models.Appointment{},
		&models.ServiceSale{},
		&models.Client{},
		&models.PaymentMethod{},
		&models.ExpenseCategory{},
		&models.Expense{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createService(t *testing.T, db *gorm.DB, name string, minutes int) models.Service {
	t.Helper()
	svc := models.Service{Name: name, DurationMinutes: minutes, IsActive: true}
	if err := db.Create(&svc).Error; err != nil {
		t.Fatalf("create service %s: %v", name, err)
	}
	return svc
}

func createVehicleType(t *testing.T, db *gorm.DB, name string) models.VehicleType {
	t.Helper()
	vt := models.VehicleType{Name: name, IsActive: true}
	if err := db.Create(&vt).Error; err != nil {
		t.Fatalf("create vehicle type %s: %v", name, err)
	}
	return vt
}

func createPrice(t *testing.T, db *gorm.DB, serviceID, vehicleTypeID uuid.UUID, price, minutes int) {
	t.Helper()
	row := models.ServicePrice{
		ServiceID:       serviceID,
		VehicleTypeID:   vehicleTypeID,
		Price:           price,
		DurationMinutes: minutes,
		IsActive:        true,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("create price: %v", err)
	}
}

func TestCreateComputesEndWithOverlapModel(t *testing.T) {
	db := setupTestDB(t)
	morado := createService(t, db, "Wash Morado", 160)
	chasis := createService(t, db, "Chasis", 60)
	motor := createService(t, db, "Motor", 60)

	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	appt, err := NewScheduler(db).Create(AppointmentInput{
		CustomerName: "Ana",
		Plate:        "XYZ789",
		ServiceIDs:   []uuid.UUID{morado.ID, chasis.ID, motor.ID},
		StartTime:    start,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// 160 + 0.5*60 + 0.5*60 = 220 minutes
	wantEnd := time.Date(2024, 1, 1, 12, 40, 0, 0, time.UTC)
	if !appt.EndTime.Equal(wantEnd) {
		t.Fatalf("expected end %v, got %v", wantEnd, appt.EndTime)
	}
	if appt.Services != "Wash Morado, Chasis, Motor" {
		t.Fatalf("unexpected services snapshot: %q", appt.Services)
	}
}

func TestCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	motor := createService(t, db, "Motor", 60)
	scheduler := NewScheduler(db)
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	_, err := scheduler.Create(AppointmentInput{StartTime: start})
	if !IsValidationError(err) {
		t.Fatalf("expected validation error for empty services, got %v", err)
	}

	_, err = scheduler.Create(AppointmentInput{
		ServiceIDs: []uuid.UUID{uuid.New()},
		StartTime:  start,
	})
	if !IsValidationError(err) {
		t.Fatalf("expected validation error for unknown services, got %v", err)
	}

	_, err = scheduler.Create(AppointmentInput{
		ServiceIDs: []uuid.UUID{motor.ID},
	})
	if !IsValidationError(err) {
		t.Fatalf("expected validation error for missing start, got %v", err)
	}

	unknownVT := uuid.New()
	_, err = scheduler.Create(AppointmentInput{
		ServiceIDs:    []uuid.UUID{motor.ID},
		VehicleTypeID: &unknownVT,
		StartTime:     start,
	})
	if !IsValidationError(err) {
		t.Fatalf("expected validation error for unknown vehicle type, got %v", err)
	}
}

func TestCreateUsesVehicleSpecificDuration(t *testing.T) {
	db := setupTestDB(t)
	wash := createService(t, db, "Wash Amarillo", 60)
	camioneta := createVehicleType(t, db, "Camioneta")
	createPrice(t, db, wash.ID, camioneta.ID, 50, 90)

	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	appt, err := NewScheduler(db).Create(AppointmentInput{
		ServiceIDs:    []uuid.UUID{wash.ID},
		VehicleTypeID: &camioneta.ID,
		StartTime:     start,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if !appt.EndTime.Equal(start.Add(90 * time.Minute)) {
		t.Fatalf("expected vehicle-specific 90 minutes, got end %v", appt.EndTime)
	}
}

func TestCreateNormalizesPlateAndUpsertsClient(t *testing.T) {
	db := setupTestDB(t)
	motor := createService(t, db, "Motor", 60)

	_, err := NewScheduler(db).Create(AppointmentInput{
		CustomerName: "Carlos",
		Plate:        " abc 123 ",
		Phone:        "3001234567",
		ServiceIDs:   []uuid.UUID{motor.ID},
		StartTime:    time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	var client models.Client
	if err := db.Where("plate = ?", "ABC123").First(&client).Error; err != nil {
		t.Fatalf("expected client keyed by normalized plate: %v", err)
	}
	if client.FullName != "Carlos" || client.Phone != "3001234567" {
		t.Fatalf("unexpected client data: %+v", client)
	}
}

func TestClientUpsertBlankFieldsNeverOverwrite(t *testing.T) {
	db := setupTestDB(t)
	motor := createService(t, db, "Motor", 60)
	scheduler := NewScheduler(db)
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	_, err := scheduler.Create(AppointmentInput{
		CustomerName: "Carlos",
		Plate:        "ABC123",
		Phone:        "3001234567",
		ServiceIDs:   []uuid.UUID{motor.ID},
		StartTime:    start,
	})
	if err != nil {
		t.Fatalf("first create: %v", err)
	}

	// Second booking for the same plate without a name keeps the stored one
	_, err = scheduler.Create(AppointmentInput{
		Plate:      "ABC123",
		Phone:      "3007654321",
		ServiceIDs: []uuid.UUID{motor.ID},
		StartTime:  start.AddDate(0, 0, 7),
	})
	if err != nil {
		t.Fatalf("second create: %v", err)
	}

	var client models.Client
	if err := db.Where("plate = ?", "ABC123").First(&client).Error; err != nil {
		t.Fatalf("client lookup: %v", err)
	}
	if client.FullName != "Carlos" {
		t.Fatalf("blank name overwrote stored value: %+v", client)
	}
	if client.Phone != "3007654321" {
		t.Fatalf("expected last-write-wins phone, got %+v", client)
	}
}

func TestUpdateRecomputesEndAndServices(t *testing.T) {
	db := setupTestDB(t)
	motor := createService(t, db, "Motor", 60)
	porcelanizado := createService(t, db, "Porcelanizado", 180)
	scheduler := NewScheduler(db)

	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	appt, err := scheduler.Create(AppointmentInput{
		ServiceIDs: []uuid.UUID{motor.ID},
		StartTime:  start,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newStart := time.Date(2024, 1, 2, 14, 0, 0, 0, time.UTC)
	updated, err := scheduler.Update(appt.ID, AppointmentInput{
		ServiceIDs: []uuid.UUID{porcelanizado.ID, motor.ID},
		StartTime:  newStart,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	// 180 + 0.5*60 = 210 minutes
	if !updated.EndTime.Equal(newStart.Add(210 * time.Minute)) {
		t.Fatalf("expected recomputed end, got %v", updated.EndTime)
	}
	if updated.Services != "Porcelanizado, Motor" {
		t.Fatalf("unexpected services snapshot: %q", updated.Services)
	}
}

func TestUpdateUnknownAppointment(t *testing.T) {
	db := setupTestDB(t)
	motor := createService(t, db, "Motor", 60)

	_, err := NewScheduler(db).Update(uuid.New(), AppointmentInput{
		ServiceIDs: []uuid.UUID{motor.ID},
		StartTime:  time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteAppointment(t *testing.T) {
	db := setupTestDB(t)
	motor := createService(t, db, "Motor", 60)
	scheduler := NewScheduler(db)

	appt, err := scheduler.Create(AppointmentInput{
		ServiceIDs: []uuid.UUID{motor.ID},
		StartTime:  time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := scheduler.Delete(appt.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := scheduler.Delete(appt.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
