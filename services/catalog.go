// services/catalog.go
package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elsebastiann/agenda-detalling/estimator"
	"github.com/elsebastiann/agenda-detalling/models"
)

// GormCatalog adapts the services/vehicle-types/prices tables to the
// estimator's read port. Misses return nil, never an error.
type GormCatalog struct {
	db *gorm.DB
}

func NewGormCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{db: db}
}

func (c *GormCatalog) ServiceByID(id uuid.UUID) (*estimator.ServiceInfo, error) {
	var svc models.Service
	if err := c.db.Where("id = ? AND is_active = ?", id, true).First(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &estimator.ServiceInfo{ID: svc.ID, Name: svc.Name, DurationMinutes: svc.DurationMinutes}, nil
}

func (c *GormCatalog) ServiceByName(name string) (*estimator.ServiceInfo, error) {
	var svc models.Service
	if err := c.db.Where("name = ? AND is_active = ?", name, true).First(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &estimator.ServiceInfo{ID: svc.ID, Name: svc.Name, DurationMinutes: svc.DurationMinutes}, nil
}

func (c *GormCatalog) PriceFor(serviceID, vehicleTypeID uuid.UUID) (*estimator.PriceRecord, error) {
	var price models.ServicePrice
	err := c.db.Where("service_id = ? AND vehicle_type_id = ? AND is_active = ?",
		serviceID, vehicleTypeID, true).First(&price).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &estimator.PriceRecord{Price: price.Price, DurationMinutes: price.DurationMinutes}, nil
}
