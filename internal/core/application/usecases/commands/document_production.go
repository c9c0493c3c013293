package commands

import (
	"context"
	"fmt"
	"time"

	"exportpro/internal/core/domain/model/document"
	"exportpro/internal/core/domain/model/order"
	"exportpro/internal/core/domain/services"
	"exportpro/internal/core/ports"
)

// renderOrderDocuments produces every document the resolver requires for the
// order. Rendering continues past individual failures; each failed kind is
// reported as an issue string.
func renderOrderDocuments(
	ctx context.Context,
	resolver services.RequirementResolver,
	renderer ports.DocumentRenderer,
	aggregate *order.Order,
	issuedAt time.Time,
) (documents []string, issues []string) {
	for _, kind := range resolver.Resolve(aggregate) {
		content, err := document.ContentFor(kind, aggregate, issuedAt)
		if err != nil {
			issues = append(issues, fmt.Sprintf("%s assembly failed: %s", kind, err))
			continue
		}

		ref, err := renderer.Render(ctx, content)
		if err != nil {
			issues = append(issues, fmt.Sprintf("%s rendering failed: %s", kind, err))
			continue
		}
		documents = append(documents, ref)
	}
	return documents, issues
}
