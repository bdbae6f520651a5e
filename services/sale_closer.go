// services/sale_closer.go
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

// CloseSaleInput carries the caller-provided fields for closing an
// appointment into a sale.
type CloseSaleInput struct {
	PaymentMethod string
	Status        string
	Discount      int
	ServiceDate   time.Time // defaults to today
	Notes         string
}

// SaleCloser performs the one-way transition of an appointment into a
// ServiceSale ledger row. An appointment is closed exactly when a sale
// references it; the appointment row itself is never flagged or mutated.
type SaleCloser struct {
	db *gorm.DB
}

func NewSaleCloser(db *gorm.DB) *SaleCloser {
	return &SaleCloser{db: db}
}

// Close creates the sale for an appointment. It fails with ErrAlreadyClosed
// when a sale exists, ErrInvalidStatus for an unrecognized status and a
// ValidationError when a completed sale has no payment method. The unique
// index on appointment_id closes the check-then-insert race: a concurrent
// duplicate insert comes back as gorm.ErrDuplicatedKey and is reported as
// ErrAlreadyClosed as well.
func (s *SaleCloser) Close(appointmentID uuid.UUID, input CloseSaleInput) (*models.ServiceSale, error) {
	sale := &models.ServiceSale{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var appt models.Appointment
		if err := tx.Where("id = ?", appointmentID).First(&appt).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var existing int64
		if err := tx.Model(&models.ServiceSale{}).
			Where("appointment_id = ?", appointmentID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyClosed
		}

		if input.Status != models.SaleStatusCompleted && input.Status != models.SaleStatusCancelled {
			return ErrInvalidStatus
		}
		if input.Status == models.SaleStatusCompleted && strings.TrimSpace(input.PaymentMethod) == "" {
			return validationf("payment method is required for a completed sale")
		}

		catalog := NewGormCatalog(tx)
		serviceIDs, err := resolveServicesByName(catalog, appt.Services)
		if err != nil {
			return err
		}

		base, err := estimator.New(catalog).EstimatePrice(serviceIDs, appt.VehicleTypeID)
		if err != nil {
			return err
		}

		discount := input.Discount
		if discount < 0 {
			discount = 0
		}
		final := base - discount
		if final < 0 {
			final = 0
		}

		paymentMethod := input.PaymentMethod
		if input.Status == models.SaleStatusCancelled {
			paymentMethod = ""
		}

		serviceDate := input.ServiceDate
		if serviceDate.IsZero() {
			serviceDate = utils.BeginningOfDay(time.Now())
		}

		vehicleTypeName := ""
		if appt.VehicleTypeID != nil {
			var vt models.VehicleType
			if err := tx.Where("id = ?", *appt.VehicleTypeID).First(&vt).Error; err == nil {
				vehicleTypeName = vt.Name
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		*sale = models.ServiceSale{
			AppointmentID:   appointmentID,
			ServiceDate:     serviceDate,
			VehicleTypeName: vehicleTypeName,
			Plate:           appt.Plate,
			CustomerName:    appt.CustomerName,
			Services:        appt.Services,
			BaseAmount:      base,
			DiscountAmount:  discount,
			FinalAmount:     final,
			PaymentMethod:   paymentMethod,
			Status:          input.Status,
			Notes:           input.Notes,
		}

		if err := tx.Create(sale).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyClosed
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// resolveServicesByName maps the appointment's denormalized services string
// back to service ids by exact name match. A service renamed or deactivated
// since booking simply drops out of pricing.
func resolveServicesByName(catalog estimator.Catalog, services string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, 4)
	for _, name := range strings.Split(services, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		svc, err := catalog.ServiceByName(name)
		if err != nil {
			return nil, err
		}
		if svc != nil {
			ids = append(ids, svc.ID)
		}
	}
	return ids, nil
}
