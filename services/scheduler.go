// services/scheduler.go
package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elsebastiann/agenda-detalling/estimator"
	"github.com/elsebastiann/agenda-detalling/models"
	"github.com/elsebastiann/agenda-detalling/utils"
)

// AppointmentInput carries the caller-provided fields for creating or
// editing an appointment. Editing replaces every field, like the booking
// form does.
type AppointmentInput struct {
	CustomerName  string
	Plate         string
	Phone         string
	ServiceIDs    []uuid.UUID
	VehicleTypeID *uuid.UUID
	StartTime     time.Time
	Notes         string
}

// Scheduler creates and edits appointments: it resolves the selected
// services, estimates the occupied time, derives the end timestamp and keeps
// the client directory in sync with the plate on the appointment.
type Scheduler struct {
	db *gorm.DB
}

func NewScheduler(db *gorm.DB) *Scheduler {
	return &Scheduler{db: db}
}

// Estimate previews the duration and price for a service selection without
// touching any appointment.
func (s *Scheduler) Estimate(serviceIDs []uuid.UUID, vehicleTypeID *uuid.UUID) (minutes, price int, err error) {
	est := estimator.New(NewGormCatalog(s.db))
	minutes, err = est.EstimateDuration(serviceIDs, vehicleTypeID)
	if err != nil {
		return 0, 0, err
	}
	price, err = est.EstimatePrice(serviceIDs, vehicleTypeID)
	if err != nil {
		return 0, 0, err
	}
	return minutes, price, nil
}

func (s *Scheduler) Create(input AppointmentInput) (*models.Appointment, error) {
	appt := &models.Appointment{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.apply(tx, appt, input)
	})
	if err != nil {
		return nil, err
	}
	return appt, nil
}

func (s *Scheduler) Update(id uuid.UUID, input AppointmentInput) (*models.Appointment, error) {
	appt := &models.Appointment{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(appt).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return s.apply(tx, appt, input)
	})
	if err != nil {
		return nil, err
	}
	return appt, nil
}

// Delete removes an appointment unconditionally. A sale that already
// references it keeps its own snapshot, so reporting is unaffected.
func (s *Scheduler) Delete(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&models.Appointment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// apply validates the input, recomputes the derived fields and writes the
// appointment and the client upsert within the caller's transaction.
func (s *Scheduler) apply(tx *gorm.DB, appt *models.Appointment, input AppointmentInput) error {
	if len(input.ServiceIDs) == 0 {
		return validationf("at least one service must be selected")
	}
	if input.StartTime.IsZero() {
		return validationf("start time is required")
	}
	if input.VehicleTypeID != nil {
		var vt models.VehicleType
		if err := tx.Where("id = ? AND is_active = ?", *input.VehicleTypeID, true).First(&vt).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return validationf("unknown vehicle type")
			}
			return err
		}
	}

	catalog := NewGormCatalog(tx)
	names, err := resolveServiceNames(catalog, input.ServiceIDs)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return validationf("selected services are not valid")
	}

	est := estimator.New(catalog)
	minutes, err := est.EstimateDuration(input.ServiceIDs, input.VehicleTypeID)
	if err != nil {
		return err
	}

	appt.CustomerName = input.CustomerName
	appt.Plate = utils.NormalizePlate(input.Plate)
	appt.Phone = input.Phone
	appt.Services = strings.Join(names, ", ")
	appt.StartTime = input.StartTime
	appt.EndTime = input.StartTime.Add(time.Duration(minutes) * time.Minute)
	appt.VehicleTypeID = input.VehicleTypeID
	appt.Notes = input.Notes

	if appt.ID == uuid.Nil {
		if err := tx.Create(appt).Error; err != nil {
			return err
		}
	} else if err := tx.Save(appt).Error; err != nil {
		return err
	}

	return upsertClient(tx, appt.Plate, input.CustomerName, input.Phone)
}

// resolveServiceNames maps the selected ids to active service names,
// dropping unknown ids and duplicates while keeping selection order.
func resolveServiceNames(catalog estimator.Catalog, ids []uuid.UUID) ([]string, error) {
	seen := make(map[uuid.UUID]bool, len(ids))
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		svc, err := catalog.ServiceByID(id)
		if err != nil {
			return nil, err
		}
		if svc != nil {
			names = append(names, svc.Name)
		}
	}
	return names, nil
}

// upsertClient keeps the plate-keyed client directory current. Last write
// wins, except that blank incoming fields never erase stored values.
func upsertClient(tx *gorm.DB, plate, fullName, phone string) error {
	if plate == "" {
		return nil
	}

	var client models.Client
	err := tx.Where("plate = ?", plate).First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tx.Create(&models.Client{Plate: plate, FullName: fullName, Phone: phone}).Error
	}
	if err != nil {
		return err
	}

	if fullName != "" {
		client.FullName = fullName
	}
	if phone != "" {
		client.Phone = phone
	}
	return tx.Save(&client).Error
}
