// Package estimator computes the occupied time and the price of a set of
// detailing services on one vehicle. Duration uses the overlap model: the
// longest service runs full time, every additional service adds half of its
// own time (simultaneous jobs on one vehicle overlap in wall-clock time).
package estimator

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

// FallbackDurationMinutes is used when no requested service id resolves.
const FallbackDurationMinutes = 60

// ServiceInfo is the catalog's view of one service.
type ServiceInfo struct {
	ID              uuid.UUID
	Name            string
	DurationMinutes int
}

// PriceRecord is an active (service, vehicle type) price row.
type PriceRecord struct {
	Price           int
	DurationMinutes int
}

// Catalog is the read port the estimators consume. Lookups for unknown ids
// return nil without an error; only storage failures produce errors.
type Catalog interface {
	ServiceByID(id uuid.UUID) (*ServiceInfo, error)
	ServiceByName(name string) (*ServiceInfo, error)
	PriceFor(serviceID, vehicleTypeID uuid.UUID) (*PriceRecord, error)
}

type Estimator struct {
	catalog Catalog
}

func New(catalog Catalog) *Estimator {
	return &Estimator{catalog: catalog}
}

// EstimateDuration resolves each service's duration (vehicle-specific price
// row first, base duration otherwise) and applies the overlap model:
//
//	round(longest + 0.5 * sum(others))
//
// Ties (x.5 values) round half away from zero. Unknown service ids are
// skipped; repeated ids count every time. When nothing resolves the fixed
// fallback of 60 minutes is returned.
func (e *Estimator) EstimateDuration(serviceIDs []uuid.UUID, vehicleTypeID *uuid.UUID) (int, error) {
	durations := make([]int, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		svc, err := e.catalog.ServiceByID(id)
		if err != nil {
			return 0, err
		}
		if svc == nil {
			continue
		}
		minutes, err := e.resolveDuration(svc, vehicleTypeID)
		if err != nil {
			return 0, err
		}
		durations = append(durations, minutes)
	}

	if len(durations) == 0 {
		return FallbackDurationMinutes, nil
	}

	sort.Sort(sort.Reverse(sort.IntSlice(durations)))
	longest := durations[0]
	others := 0
	for _, d := range durations[1:] {
		others += d
	}

	return int(math.Round(float64(longest) + 0.5*float64(others))), nil
}

// EstimatePrice sums the active price rows for each (service, vehicle type)
// pair. Services with no matching row contribute zero; an unpriced service
// is policy, not an error. No overlap discount applies to price.
func (e *Estimator) EstimatePrice(serviceIDs []uuid.UUID, vehicleTypeID *uuid.UUID) (int, error) {
	if vehicleTypeID == nil {
		return 0, nil
	}
	total := 0
	for _, id := range serviceIDs {
		rec, err := e.catalog.PriceFor(id, *vehicleTypeID)
		if err != nil {
			return 0, err
		}
		if rec != nil {
			total += rec.Price
		}
	}
	return total, nil
}

func (e *Estimator) resolveDuration(svc *ServiceInfo, vehicleTypeID *uuid.UUID) (int, error) {
	if vehicleTypeID != nil {
		rec, err := e.catalog.PriceFor(svc.ID, *vehicleTypeID)
		if err != nil {
			return 0, err
		}
		if rec != nil {
			return rec.DurationMinutes, nil
		}
	}
	return svc.DurationMinutes, nil
}
