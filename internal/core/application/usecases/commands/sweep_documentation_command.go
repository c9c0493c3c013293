package commands

import (
	"errors"

	"exportpro/internal/pkg/guard"
)

var ErrSweepDocumentationCommandIsNotConstructed = errors.New(
	"SweepDocumentationCommand must be created via NewSweepDocumentationCommand constructor",
)

// SweepDocumentationCommand triggers regeneration of the document package for
// every order sitting in documentation status. This is the scheduled retry
// path for orders whose documents failed to render the first time.
type SweepDocumentationCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepDocumentationCommand creates a parameterless command that initiates
// the documentation sweep.
func NewSweepDocumentationCommand() SweepDocumentationCommand {
	return SweepDocumentationCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *SweepDocumentationCommand) Validate() error {
	return c.guard.Validate(ErrSweepDocumentationCommandIsNotConstructed)
}
