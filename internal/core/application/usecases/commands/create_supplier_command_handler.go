package commands

import (
	"context"
	"time"

	"exportpro/internal/core/domain/model/supplier"
)

// CreateSupplierCommandHandler handles supplier registration.
type CreateSupplierCommandHandler struct {
	uowFactory SupplierUoWFactory
	now        func() time.Time
}

// NewCreateSupplierCommandHandler creates a handler for supplier registration.
func NewCreateSupplierCommandHandler(uowFactory SupplierUoWFactory) CreateSupplierCommandHandler {
	return CreateSupplierCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the supplier registration command.
func (h *CreateSupplierCommandHandler) Handle(ctx context.Context, cmd CreateSupplierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := supplier.NewSupplier(
		cmd.SupplierID(), cmd.Name(), cmd.Kind(), cmd.Location(), cmd.Contact(), cmd.Metrics(), h.now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.SupplierRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
