// Package supplier provides the Supplier aggregate used by the sibling CRUD
// surface. Suppliers are not part of the order processing pipeline.
package supplier

import (
	"errors"
	"time"

	"exportpro/internal/core/domain/model/kernel"
	"exportpro/internal/pkg/errs"
	"exportpro/internal/pkg/guard"
)

var ErrSupplierIsNotConstructed = errors.New("Supplier must be created via NewSupplier constructor")

// defaultMetricScore seeds every performance metric for a new supplier that
// arrives without metrics.
const defaultMetricScore = 7

// Location is the supplier's administrative location.
type Location struct {
	State    string
	District string
	Pincode  string
}

// Contact is the supplier's contact block.
type Contact struct {
	PrimaryContact         string
	Phone                  string
	Email                  string
	PreferredCommunication string
}

// PerformanceMetrics scores a supplier on a 1-10 scale per dimension.
type PerformanceMetrics struct {
	ReliabilityScore            int
	QualityConsistency          int
	DeliveryTimeliness          int
	PriceCompetitiveness        int
	CommunicationResponsiveness int
}

// DefaultPerformanceMetrics returns the neutral scores assigned when a
// supplier is registered without metrics.
func DefaultPerformanceMetrics() PerformanceMetrics {
	return PerformanceMetrics{
		ReliabilityScore:            defaultMetricScore,
		QualityConsistency:          defaultMetricScore,
		DeliveryTimeliness:          defaultMetricScore,
		PriceCompetitiveness:        defaultMetricScore,
		CommunicationResponsiveness: defaultMetricScore,
	}
}

// Supplier is a sourcing partner (farmer cooperative, processor, trader).
type Supplier struct {
	id        kernel.UUID
	name      string
	kind      string
	location  Location
	contact   Contact
	metrics   PerformanceMetrics
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewSupplier registers a supplier. Name and type are required; metrics
// default to the neutral score when the zero value is supplied.
func NewSupplier(
	id kernel.UUID,
	name, kind string,
	location Location,
	contact Contact,
	metrics PerformanceMetrics,
	createdAt time.Time,
) (*Supplier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("supplier name")
	}
	if kind == "" {
		return nil, errs.NewValueIsRequiredError("supplier type")
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("created at")
	}
	if metrics == (PerformanceMetrics{}) {
		metrics = DefaultPerformanceMetrics()
	}

	return &Supplier{
		id:        id,
		name:      name,
		kind:      kind,
		location:  location,
		contact:   contact,
		metrics:   metrics,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the supplier was created through the constructor.
func (s *Supplier) Validate() error {
	if s == nil {
		return ErrSupplierIsNotConstructed
	}
	return s.guard.Validate(ErrSupplierIsNotConstructed)
}

// ID returns the supplier identifier.
func (s *Supplier) ID() kernel.UUID {
	return s.id
}

// Name returns the supplier name.
func (s *Supplier) Name() string {
	return s.name
}

// Kind returns the supplier type (e.g. "farmer_cooperative").
func (s *Supplier) Kind() string {
	return s.kind
}

// Location returns the supplier's location.
func (s *Supplier) Location() Location {
	return s.location
}

// Contact returns the supplier's contact block.
func (s *Supplier) Contact() Contact {
	return s.contact
}

// Metrics returns the supplier's performance metrics.
func (s *Supplier) Metrics() PerformanceMetrics {
	return s.metrics
}

// CreatedAt returns the registration timestamp.
func (s *Supplier) CreatedAt() time.Time {
	return s.createdAt
}

// UpdateDetails replaces the supplier's mutable attributes. Metrics equal to
// the zero value are kept unchanged rather than reset.
func (s *Supplier) UpdateDetails(name, kind string, location Location, contact Contact, metrics PerformanceMetrics) error {
	if name == "" {
		return errs.NewValueIsRequiredError("supplier name")
	}
	if kind == "" {
		return errs.NewValueIsRequiredError("supplier type")
	}

	s.name = name
	s.kind = kind
	s.location = location
	s.contact = contact
	if metrics != (PerformanceMetrics{}) {
		s.metrics = metrics
	}
	return nil
}
