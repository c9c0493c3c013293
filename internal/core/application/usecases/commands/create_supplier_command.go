package commands

import (
	"errors"

	"exportpro/internal/core/domain/model/kernel"
	"exportpro/internal/core/domain/model/supplier"
	"exportpro/internal/pkg/guard"
)

var (
	ErrCreateSupplierCommandIsNotConstructed = errors.New(
		"CreateSupplierCommand must be created via NewCreateSupplierCommand constructor",
	)
	ErrSupplierNameIsRequired = errors.New("supplier name is required")
	ErrSupplierTypeIsRequired = errors.New("supplier type is required")
)

// CreateSupplierCommand represents a request to register a sourcing partner.
type CreateSupplierCommand struct { //nolint:recvcheck //using for validation
	supplierID kernel.UUID
	name       string
	kind       string
	location   supplier.Location
	contact    supplier.Contact
	metrics    supplier.PerformanceMetrics

	guard guard.ConstructorGuard
}

// NewCreateSupplierCommand creates a command to register a supplier. Metrics
// may be the zero value, in which case the domain assigns neutral defaults.
func NewCreateSupplierCommand(
	supplierID kernel.UUID,
	name, kind string,
	location supplier.Location,
	contact supplier.Contact,
	metrics supplier.PerformanceMetrics,
) (CreateSupplierCommand, error) {
	supplierCommand := CreateSupplierCommand{
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
		return CreateSupplierCommand{}, err
	}

	return supplierCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSupplierCommand) Validate() error {
	return c.guard.Validate(ErrCreateSupplierCommandIsNotConstructed)
}

// SupplierID returns the identifier for the new supplier.
func (c CreateSupplierCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// Name returns the supplier name.
func (c CreateSupplierCommand) Name() string {
	return c.name
}

// Kind returns the supplier type.
func (c CreateSupplierCommand) Kind() string {
	return c.kind
}

// Location returns the supplier's location.
func (c CreateSupplierCommand) Location() supplier.Location {
	return c.location
}

// Contact returns the supplier's contact block.
func (c CreateSupplierCommand) Contact() supplier.Contact {
	return c.contact
}

// Metrics returns the supplier's performance metrics.
func (c CreateSupplierCommand) Metrics() supplier.PerformanceMetrics {
	return c.metrics
}

func (c *CreateSupplierCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}

	c.supplierID = supplierID
	return nil
}

func (c *CreateSupplierCommand) setName(name string) error {
	if name == "" {
		return ErrSupplierNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateSupplierCommand) setKind(kind string) error {
	if kind == "" {
		return ErrSupplierTypeIsRequired
	}

	c.kind = kind
	return nil
}
