// Package product contains the catalog entity managed by operators.
// Products have no state machine; they are created, updated and deleted by
// the manager role and read by everyone.
package product

import (
	"errors"
	"fmt"
	"time"

	"darkstore/internal/core/domain/model/kernel"
	"darkstore/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product is a catalog entry. Prices on orders are snapshotted at order time,
// so editing a product never changes historical orders.
type Product struct {
	id          kernel.UUID
	name        string
	description string
	price       float64
	category    string
	image       string
	stock       int
	createdAt   time.Time

	isConstructed bool
}

// Details carries the operator-editable attributes of a product.
type Details struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Image       string
	Stock       int
}

// NewProduct creates a product with the given details.
func NewProduct(id kernel.UUID, details Details, createdAt time.Time) (*Product, error) {
	p := &Product{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.applyDetails(details),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(id kernel.UUID, details Details, createdAt time.Time) (*Product, error) {
	return NewProduct(id, details, createdAt)
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// Update replaces the operator-editable attributes.
func (p *Product) Update(details Details) error {
	return p.applyDetails(details)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID { return p.id }

// Name returns the display name.
func (p *Product) Name() string { return p.name }

// Description returns the catalog description.
func (p *Product) Description() string { return p.description }

// Price returns the current unit price.
func (p *Product) Price() float64 { return p.price }

// Category returns the catalog category.
func (p *Product) Category() string { return p.category }

// Image returns the image URL.
func (p *Product) Image() string { return p.image }

// Stock returns the available stock count.
func (p *Product) Stock() int { return p.stock }

// CreatedAt returns the creation timestamp.
func (p *Product) CreatedAt() time.Time { return p.createdAt }

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) applyDetails(details Details) error {
	if details.Name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if details.Price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%f is negative", details.Price))
	}
	if details.Stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is negative", details.Stock))
	}

	p.name = details.Name
	p.description = details.Description
	p.price = details.Price
	p.category = details.Category
	p.image = details.Image
	p.stock = details.Stock
	return nil
}
