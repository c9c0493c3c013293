package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"exportpro/internal/core/domain/model/order"
	"exportpro/internal/core/domain/services"
	"exportpro/internal/core/ports"
)

var ErrNoOrdersInDocumentation = errors.New("no orders in documentation status")

// SweepDocumentationCommandHandler re-runs document generation for orders
// stuck in documentation status. Rendering is idempotent, so orders whose
// documents already exist simply get them rewritten.
type SweepDocumentationCommandHandler struct {
	uowFactory OrderUoWFactory
	resolver   services.RequirementResolver
	renderer   ports.DocumentRenderer
	now        func() time.Time
}

// NewSweepDocumentationCommandHandler creates a handler for the scheduled
// documentation sweep.
func NewSweepDocumentationCommandHandler(
	uowFactory OrderUoWFactory,
	resolver services.RequirementResolver,
	renderer ports.DocumentRenderer,
) SweepDocumentationCommandHandler {
	return SweepDocumentationCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		renderer:   renderer,
		now:        time.Now,
	}
}

// Handle regenerates the document package for every order in documentation
// status. Order state is never mutated. Returns ErrNoOrdersInDocumentation
// when the sweep finds nothing to do, and an aggregate error when any
// document fails to render.
func (h SweepDocumentationCommandHandler) Handle(ctx context.Context, cmd SweepDocumentationCommand) error {
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

	orders, err := uow.OrderRepository().GetAllInStatus(ctx, order.StatusDocumentation)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if len(orders) == 0 {
		return ErrNoOrdersInDocumentation
	}

	issuedAt := h.now().UTC()
	var failures []error
	for _, aggregate := range orders {
		_, issues := renderOrderDocuments(ctx, h.resolver, h.renderer, aggregate, issuedAt)
		for _, issue := range issues {
			failures = append(failures, fmt.Errorf("order %s: %s", aggregate.Number(), issue))
		}
	}

	return errors.Join(failures...)
}
