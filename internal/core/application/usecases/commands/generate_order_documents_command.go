package commands

import (
	"errors"

	"exportpro/internal/core/domain/model/kernel"
	"exportpro/internal/pkg/guard"
)

var ErrGenerateOrderDocumentsCommandIsNotConstructed = errors.New(
	"GenerateOrderDocumentsCommand must be created via NewGenerateOrderDocumentsCommand constructor",
)

// GenerateOrderDocumentsCommand represents a request to regenerate the full
// document package for an existing order.
type GenerateOrderDocumentsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGenerateOrderDocumentsCommand creates a command to regenerate an order's
// documents.
func NewGenerateOrderDocumentsCommand(orderID kernel.UUID) (GenerateOrderDocumentsCommand, error) {
	if err := orderID.Validate(); err != nil {
		return GenerateOrderDocumentsCommand{}, err
	}

	return GenerateOrderDocumentsCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateOrderDocumentsCommand) Validate() error {
	return c.guard.Validate(ErrGenerateOrderDocumentsCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c GenerateOrderDocumentsCommand) OrderID() kernel.UUID {
	return c.orderID
}
