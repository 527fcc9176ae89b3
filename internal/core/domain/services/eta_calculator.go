package services

import (
	"math"

	"darkstore/internal/core/domain/model/kernel"
)

const (
	// DarkstoreLatitude and DarkstoreLongitude are the fixed fulfillment
	// origin all deliveries start from.
	DarkstoreLatitude  = 28.6139
	DarkstoreLongitude = 77.2090

	// averageSpeedKmh is the assumed constant transit speed.
	averageSpeedKmh = 30.0

	// handlingBufferMinutes is the fixed picking/packing buffer added on top
	// of transit time.
	handlingBufferMinutes = 15
)

// ETACalculator estimates delivery time from the fixed darkstore origin to a
// destination. The estimate is a creation-time commitment: callers compute it
// once when the order is placed and freeze it into the order record.
type ETACalculator struct {
	origin kernel.GeoPoint
}

// NewETACalculator creates a calculator with an explicit origin.
func NewETACalculator(origin kernel.GeoPoint) (*ETACalculator, error) {
	if err := origin.Validate(); err != nil {
		return nil, err
	}

	return &ETACalculator{origin: origin}, nil
}

// NewDarkstoreETACalculator creates a calculator anchored at the darkstore.
func NewDarkstoreETACalculator() (*ETACalculator, error) {
	origin, err := kernel.NewGeoPoint(DarkstoreLatitude, DarkstoreLongitude)
	if err != nil {
		return nil, err
	}

	return NewETACalculator(origin)
}

// EstimateMinutes computes the estimated delivery time to the destination:
// great-circle distance at averageSpeedKmh, transit minutes rounded up so the
// estimate is conservative, plus the handling buffer.
func (c *ETACalculator) EstimateMinutes(destination kernel.GeoPoint) (int, error) {
	distanceKm, err := c.origin.DistanceKmTo(destination)
	if err != nil {
		return 0, err
	}

	transitMinutes := int(math.Ceil(distanceKm / averageSpeedKmh * 60))
	return transitMinutes + handlingBufferMinutes, nil
}
