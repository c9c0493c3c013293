package ports

import (
	"context"

	"exportpro/internal/core/domain/model/document"
)

// DocumentRenderer turns an assembled document content view into a stored
// artifact and returns a reference to it (for the HTML renderer, the file
// path).
type DocumentRenderer interface {
	Render(ctx context.Context, content document.Content) (string, error)
}
