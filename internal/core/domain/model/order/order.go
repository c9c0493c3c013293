package order

import (
	"errors"
	"fmt"
	"time"

	"exportpro/internal/core/domain/model/kernel"
	"exportpro/internal/pkg/errs"
	"exportpro/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrHistoryIsInconsistent is returned when a restored order's history is
	// empty or its last entry disagrees with the stored current status.
	ErrHistoryIsInconsistent = errors.New("status history must be non-empty and end at the current status")
)

// Order is the aggregate root of the export order lifecycle. It owns its
// line items and status history exclusively and maintains these invariants:
//
//   - the details total value always equals the sum of line totals;
//   - the status history is append-only and the current status equals the
//     last history entry;
//   - the analysis snapshot, when present, is replaced whole on recompute.
//
// Orders are created once by the processing pipeline, mutated only through
// status transitions, and never deleted.
type Order struct {
	id        kernel.UUID
	number    Number
	client    Client
	items     []LineItem
	details   Details
	history   []StatusChange
	analysis  *Analysis
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order in the initial "created" status, deriving line
// totals and the order total value from the supplied items. It fails when
// the client or items were not properly constructed, or the item list is
// empty.
func NewOrder(
	id kernel.UUID,
	number Number,
	client Client,
	items []LineItem,
	paymentTerms, deliveryTerms string,
	createdAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := number.Validate(); err != nil {
		return nil, err
	}
	if err := client.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("client", err)
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("products")
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("created at")
	}

	totalValue := decimal.Zero
	owned := make([]LineItem, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		owned[i] = item
		totalValue = totalValue.Add(item.Total())
	}

	initial, err := NewStatusChange(StatusCreated, createdAt, "Order created")
	if err != nil {
		return nil, err
	}

	return &Order{
		id:        id,
		number:    number,
		client:    client,
		items:     owned,
		details:   newDetails(totalValue, paymentTerms, deliveryTerms),
		history:   []StatusChange{initial},
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an order from persistence. The current status is
// derived from the last history entry, so a stored status that disagrees
// with its history cannot be represented.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	client Client,
	items []LineItem,
	paymentTerms, deliveryTerms string,
	history []StatusChange,
	analysis *Analysis,
	createdAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := number.Validate(); err != nil {
		return nil, err
	}
	if err := client.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("products")
	}
	if len(history) == 0 {
		return nil, ErrHistoryIsInconsistent
	}
	if analysis != nil {
		if err := analysis.Validate(); err != nil {
			return nil, err
		}
	}

	totalValue := decimal.Zero
	for _, item := range items {
		totalValue = totalValue.Add(item.Total())
	}

	return &Order{
		id:        id,
		number:    number,
		client:    client,
		items:     items,
		details:   newDetails(totalValue, paymentTerms, deliveryTerms),
		history:   history,
		analysis:  analysis,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the store-assigned identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-facing order number.
func (o *Order) Number() Number {
	return o.number
}

// Client returns the buyer reference.
func (o *Order) Client() Client {
	return o.client
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Details returns the financial summary.
func (o *Order) Details() Details {
	return o.details
}

// Status returns the current lifecycle status: the last history entry.
func (o *Order) Status() Status {
	return o.history[len(o.history)-1].Status()
}

// History returns a copy of the append-only status history.
func (o *Order) History() []StatusChange {
	history := make([]StatusChange, len(o.history))
	copy(history, o.history)
	return history
}

// Analysis returns the profit/risk snapshot and whether one is attached.
func (o *Order) Analysis() (Analysis, bool) {
	if o.analysis == nil {
		return Analysis{}, false
	}
	return *o.analysis, true
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// TotalCost returns the summed procurement cost (quantity × unit cost) over
// all line items; items without a known cost contribute zero.
func (o *Order) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.CostTotal())
	}
	return total
}

// AttachAnalysis replaces the order's analysis snapshot. A stale snapshot is
// overwritten, never merged.
func (o *Order) AttachAnalysis(a Analysis) error {
	if err := a.Validate(); err != nil {
		return err
	}
	o.analysis = &a
	return nil
}

// ChangeStatus appends a history entry and moves the order to the target
// status. Every non-empty status is accepted; guarded transition tables are
// a future policy (see errs.LifecycleError). An empty note defaults to the
// standard transition message.
func (o *Order) ChangeStatus(status Status, note string, at time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if note == "" {
		note = fmt.Sprintf("Status updated to %s", status)
	}

	change, err := NewStatusChange(status, at, note)
	if err != nil {
		return err
	}

	o.history = append(o.history, change)
	return nil
}
