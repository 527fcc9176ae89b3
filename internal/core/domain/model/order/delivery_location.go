package order

import (
	"errors"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/pkg/errs"
	"darkstore/internal/pkg/guard"
)

// ErrDeliveryLocationIsNotConstructed is returned when attempting to use an
// improperly initialized DeliveryLocation.
var ErrDeliveryLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"delivery location must be created via NewDeliveryLocation constructor")

// DeliveryLocation is the destination of an order: validated geographic
// coordinates plus the free-text address shown to the fulfillment agent.
type DeliveryLocation struct { //nolint:recvcheck //using for validation
	point   kernel.GeoPoint
	address string
	guard   guard.ConstructorGuard
}

// NewDeliveryLocation creates a DeliveryLocation from a geo point and a
// non-empty free-text address.
func NewDeliveryLocation(point kernel.GeoPoint, address string) (DeliveryLocation, error) {
	location := DeliveryLocation{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		location.setPoint(point),
		location.setAddress(address),
	); err != nil {
		return DeliveryLocation{}, err
	}

	return location, nil
}

// Validate checks that the DeliveryLocation was created through the constructor.
func (l DeliveryLocation) Validate() error {
	return l.guard.Validate(ErrDeliveryLocationIsNotConstructed)
}

// Point returns the destination coordinates.
func (l DeliveryLocation) Point() kernel.GeoPoint {
	return l.point
}

// Address returns the free-text address.
func (l DeliveryLocation) Address() string {
	return l.address
}

func (l *DeliveryLocation) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	l.point = point
	return nil
}

func (l *DeliveryLocation) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	l.address = address
	return nil
}
