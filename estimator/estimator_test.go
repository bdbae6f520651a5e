package estimator

import (
	"testing"

	"github.com/google/uuid"
)

type priceKey struct {
	service uuid.UUID
	vehicle uuid.UUID
}

type stubCatalog struct {
	services map[uuid.UUID]ServiceInfo
	prices   map[priceKey]PriceRecord
}

func (s *stubCatalog) ServiceByID(id uuid.UUID) (*ServiceInfo, error) {
	if svc, ok := s.services[id]; ok {
		return &svc, nil
	}
	return nil, nil
}

func (s *stubCatalog) ServiceByName(name string) (*ServiceInfo, error) {
	for _, svc := range s.services {
		if svc.Name == name {
			return &svc, nil
		}
	}
	return nil, nil
}

func (s *stubCatalog) PriceFor(serviceID, vehicleTypeID uuid.UUID) (*PriceRecord, error) {
	if rec, ok := s.prices[priceKey{serviceID, vehicleTypeID}]; ok {
		return &rec, nil
	}
	return nil, nil
}

func newStub() *stubCatalog {
	return &stubCatalog{
		services: map[uuid.UUID]ServiceInfo{},
		prices:   map[priceKey]PriceRecord{},
	}
}

func (s *stubCatalog) addService(name string, minutes int) uuid.UUID {
	id := uuid.New()
	s.services[id] = ServiceInfo{ID: id, Name: name, DurationMinutes: minutes}
	return id
}

func TestEstimateDurationEmptySelection(t *testing.T) {
	est := New(newStub())

	got, err := est.EstimateDuration(nil, nil)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if got != FallbackDurationMinutes {
		t.Fatalf("expected fallback %d, got %d", FallbackDurationMinutes, got)
	}
}

func TestEstimateDurationUnknownIDsFallBackToSixty(t *testing.T) {
	est := New(newStub())

	got, err := est.EstimateDuration([]uuid.UUID{uuid.New(), uuid.New()}, nil)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if got != FallbackDurationMinutes {
		t.Fatalf("expected fallback %d, got %d", FallbackDurationMinutes, got)
	}
}

func TestEstimateDurationSingleServiceNoDeduction(t *testing.T) {
	stub := newStub()
	wash := stub.addService("Wash Rosa", 120)
	est := New(stub)

	got, err := est.EstimateDuration([]uuid.UUID{wash}, nil)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if got != 120 {
		t.Fatalf("expected 120, got %d", got)
	}
}

func TestEstimateDurationOverlapModel(t *testing.T) {
	stub := newStub()
	morado := stub.addService("Wash Morado", 160)
	chasis := stub.addService("Chasis", 60)
	motor := stub.addService("Motor", 60)
	est := New(stub)

	// 160 + 0.5*60 + 0.5*60 = 220
	got, err := est.EstimateDuration([]uuid.UUID{morado, chasis, motor}, nil)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if got != 220 {
		t.Fatalf("expected 220, got %d", got)
	}
}

func TestEstimateDurationRoundsHalfAwayFromZero(t *testing.T) {
	stub := newStub()
	long := stub.addService("Porcelanizado", 100)
	short := stub.addService("Motor", 25)
	est := New(stub)

	// 100 + 12.5 = 112.5 -> 113
	got, err := est.EstimateDuration([]uuid.UUID{long, short}, nil)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if got != 113 {
		t.Fatalf("expected 113, got %d", got)
	}
}

func TestEstimateDurationRepeatedIDCountsTwice(t *testing.T) {
	stub := newStub()
	motor := stub.addService("Motor", 60)
	est := New(stub)

	// 60 + 0.5*60 = 90
	got, err := est.EstimateDuration([]uuid.UUID{motor, motor}, nil)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if got != 90 {
		t.Fatalf("expected 90, got %d", got)
	}
}

func TestEstimateDurationVehicleSpecificOverride(t *testing.T) {
	stub := newStub()
	wash := stub.addService("Wash Amarillo", 60)
	camioneta := uuid.New()
	stub.prices[priceKey{wash, camioneta}] = PriceRecord{Price: 50, DurationMinutes: 90}
	est := New(stub)

	got, err := est.EstimateDuration([]uuid.UUID{wash}, &camioneta)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if got != 90 {
		t.Fatalf("expected vehicle-specific 90, got %d", got)
	}

	// An unknown vehicle type misses the price table and falls back to base
	unknown := uuid.New()
	got, err = est.EstimateDuration([]uuid.UUID{wash}, &unknown)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if got != 60 {
		t.Fatalf("expected base 60, got %d", got)
	}
}

func TestEstimatePriceSumsKnownRowsAndIsOrderIndependent(t *testing.T) {
	stub := newStub()
	wash := stub.addService("Wash Rosa", 120)
	motor := stub.addService("Motor", 60)
	chasis := stub.addService("Chasis", 60) // no price row
	auto := uuid.New()
	stub.prices[priceKey{wash, auto}] = PriceRecord{Price: 45, DurationMinutes: 120}
	stub.prices[priceKey{motor, auto}] = PriceRecord{Price: 30, DurationMinutes: 60}
	est := New(stub)

	orders := [][]uuid.UUID{
		{wash, motor, chasis},
		{chasis, wash, motor},
		{motor, chasis, wash},
	}
	for _, ids := range orders {
		got, err := est.EstimatePrice(ids, &auto)
		if err != nil {
			t.Fatalf("estimate: %v", err)
		}
		if got != 75 {
			t.Fatalf("expected 75 for order %v, got %d", ids, got)
		}
	}
}

func TestEstimatePriceUnknownVehicleTypeIsZero(t *testing.T) {
	stub := newStub()
	wash := stub.addService("Wash Rosa", 120)
	auto := uuid.New()
	stub.prices[priceKey{wash, auto}] = PriceRecord{Price: 45, DurationMinutes: 120}
	est := New(stub)

	unknown := uuid.New()
	got, err := est.EstimatePrice([]uuid.UUID{wash}, &unknown)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected 0 for unknown vehicle type, got %d", got)
	}

	got, err = est.EstimatePrice([]uuid.UUID{wash}, nil)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected 0 without vehicle type, got %d", got)
	}
}
