package commands

import (
	"errors"

	"exportpro/internal/core/domain/model/kernel"
	"exportpro/internal/core/domain/model/supplier"
	"exportpro/internal/pkg/guard"
)

var ErrUpdateSupplierCommandIsNotConstructed = errors.New(
	"UpdateSupplierCommand must be created via NewUpdateSupplierCommand constructor",
)

// UpdateSupplierCommand represents a request to replace a supplier's mutable
// attributes.
type UpdateSupplierCommand struct { //nolint:recvcheck //using for validation
	supplierID kernel.UUID
	name       string
	kind       string
	location   supplier.Location
	contact    supplier.Contact
	metrics    supplier.PerformanceMetrics

	guard guard.ConstructorGuard
}

// NewUpdateSupplierCommand creates a command to update a supplier.
func NewUpdateSupplierCommand(
	supplierID kernel.UUID,
	name, kind string,
	location supplier.Location,
	contact supplier.Contact,
	metrics supplier.PerformanceMetrics,
) (UpdateSupplierCommand, error) {
	supplierCommand := UpdateSupplierCommand{
		location: location,
		contact:  contact,
		metrics:  metrics,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		supplierCommand.setSupplierID(supplierID),
		supplierCommand.setName(name),
		supplierCommand.setKind(kind),
	); err != nil {
		return UpdateSupplierCommand{}, err
	}

	return supplierCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateSupplierCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSupplierCommandIsNotConstructed)
}

// SupplierID returns the target supplier identifier.
func (c UpdateSupplierCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// Name returns the new supplier name.
func (c UpdateSupplierCommand) Name() string {
	return c.name
}

// Kind returns the new supplier type.
func (c UpdateSupplierCommand) Kind() string {
	return c.kind
}

// Location returns the new location.
func (c UpdateSupplierCommand) Location() supplier.Location {
	return c.location
}

// Contact returns the new contact block.
func (c UpdateSupplierCommand) Contact() supplier.Contact {
	return c.contact
}

// Metrics returns the new performance metrics.
func (c UpdateSupplierCommand) Metrics() supplier.PerformanceMetrics {
	return c.metrics
}

func (c *UpdateSupplierCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}

	c.supplierID = supplierID
	return nil
}

func (c *UpdateSupplierCommand) setName(name string) error {
	if name == "" {
		return ErrSupplierNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateSupplierCommand) setKind(kind string) error {
	if kind == "" {
		return ErrSupplierTypeIsRequired
	}

	c.kind = kind
	return nil
}
