package order

import (
	"time"

	"exportpro/internal/pkg/errs"
)

// Status is the lifecycle state of an order. The status set is deliberately
// open: callers may advance an order to any non-empty status string. The
// constants below are the states the pipeline attaches side effects to.
type Status string

const (
	// StatusCreated is the implicit initial status assigned at creation.
	StatusCreated Status = "created"

	// StatusDocumentation marks an order whose compliance document package
	// must be generated. Entering it triggers full document generation.
	StatusDocumentation Status = "documentation"

	// StatusCompleted marks a fulfilled order. Entering it triggers an
	// inventory-change notification to the website collaborator.
	StatusCompleted Status = "completed"
)

// Validate rejects only the empty status. Every non-empty string is a legal
// status under the current open transition policy.
func (s Status) Validate() error {
	if s == "" {
		return errs.NewValueIsRequiredError("status")
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// TriggersDocumentation reports whether entering this status requires
// generating the full document package.
func (s Status) TriggersDocumentation() bool {
	return s == StatusDocumentation
}

// TriggersInventorySync reports whether entering this status requires an
// inventory-change notification to the website.
func (s Status) TriggersInventorySync() bool {
	return s == StatusCompleted
}

// StatusChange is one append-only history entry in an order's status
// tracking.
type StatusChange struct {
	status    Status
	timestamp time.Time
	note      string
}

// NewStatusChange creates a history entry. The status must be non-empty and
// the timestamp must be set.
func NewStatusChange(status Status, timestamp time.Time, note string) (StatusChange, error) {
	if err := status.Validate(); err != nil {
		return StatusChange{}, err
	}
	if timestamp.IsZero() {
		return StatusChange{}, errs.NewValueIsRequiredError("status change timestamp")
	}

	return StatusChange{
		status:    status,
		timestamp: timestamp,
		note:      note,
	}, nil
}

// Status returns the status recorded by this entry.
func (sc StatusChange) Status() Status {
	return sc.status
}

// Timestamp returns when the transition happened.
func (sc StatusChange) Timestamp() time.Time {
	return sc.timestamp
}

// Note returns the free-form transition note.
func (sc StatusChange) Note() string {
	return sc.note
}
