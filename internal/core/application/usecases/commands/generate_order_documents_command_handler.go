package commands

import (
	"context"
	"time"

	"exportpro/internal/core/domain/services"
	"exportpro/internal/core/ports"
)

// GenerateOrderDocumentsResult lists the produced artifacts and any kinds
// that failed to render.
type GenerateOrderDocumentsResult struct {
	Documents []string
	Issues    []string
}

// GenerateOrderDocumentsCommandHandler regenerates the complete document
// package for an order on demand.
type GenerateOrderDocumentsCommandHandler struct {
	uowFactory OrderUoWFactory
	resolver   services.RequirementResolver
	renderer   ports.DocumentRenderer
	now        func() time.Time
}

// NewGenerateOrderDocumentsCommandHandler creates a handler for on-demand
// document generation.
func NewGenerateOrderDocumentsCommandHandler(
	uowFactory OrderUoWFactory,
	resolver services.RequirementResolver,
	renderer ports.DocumentRenderer,
) GenerateOrderDocumentsCommandHandler {
	return GenerateOrderDocumentsCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		renderer:   renderer,
		now:        time.Now,
	}
}

// Handle loads the order and renders every required document kind. Individual
// render failures are reported as issues; the handler fails only when the
// order cannot be loaded.
func (h *GenerateOrderDocumentsCommandHandler) Handle(
	ctx context.Context,
	cmd GenerateOrderDocumentsCommand,
) (GenerateOrderDocumentsResult, error) {
	if err := cmd.Validate(); err != nil {
		return GenerateOrderDocumentsResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GenerateOrderDocumentsResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return GenerateOrderDocumentsResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return GenerateOrderDocumentsResult{}, err
	}

	documents, issues := renderOrderDocuments(ctx, h.resolver, h.renderer, aggregate, h.now().UTC())
	return GenerateOrderDocumentsResult{Documents: documents, Issues: issues}, nil
}
