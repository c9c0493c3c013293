package commands

import (
	"context"
)

// UpdateSupplierCommandHandler handles supplier updates.
type UpdateSupplierCommandHandler struct {
	uowFactory SupplierUoWFactory
}

// NewUpdateSupplierCommandHandler creates a handler for supplier updates.
func NewUpdateSupplierCommandHandler(uowFactory SupplierUoWFactory) UpdateSupplierCommandHandler {
	return UpdateSupplierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the supplier update command.
func (h *UpdateSupplierCommandHandler) Handle(ctx context.Context, cmd UpdateSupplierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	supplierRepo := uow.SupplierRepository()
	aggregate, err := supplierRepo.Get(ctx, cmd.SupplierID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateDetails(cmd.Name(), cmd.Kind(), cmd.Location(), cmd.Contact(), cmd.Metrics()); err != nil {
		return err
	}

	if err = supplierRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
