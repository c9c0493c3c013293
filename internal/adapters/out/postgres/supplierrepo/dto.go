// Package supplierrepo provides data transfer objects and mapping functions
// for supplier persistence.
package supplierrepo

import (
	"time"

	"github.com/google/uuid"

	"exportpro/internal/core/domain/model/kernel"
	"exportpro/internal/core/domain/model/supplier"
)

// SupplierDTO represents the database structure for persisting suppliers.
type SupplierDTO struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name      string      `gorm:"index"`
	Kind      string      `gorm:"index"`
	Location  LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	Contact   ContactDTO  `gorm:"embedded;embeddedPrefix:contact_"`
	Metrics   MetricsDTO  `gorm:"embedded"`
	CreatedAt time.Time
}

// TableName specifies the database table name for supplier entities.
func (SupplierDTO) TableName() string {
	return "suppliers"
}

// LocationDTO is the embedded administrative location.
type LocationDTO struct {
	State    string
	District string
	Pincode  string
}

// ContactDTO is the embedded contact block.
type ContactDTO struct {
	Primary                string
	Phone                  string
	Email                  string
	PreferredCommunication string
}

// MetricsDTO is the embedded performance score block.
type MetricsDTO struct {
	ReliabilityScore            int `gorm:"index"`
	QualityConsistency          int
	DeliveryTimeliness          int
	PriceCompetitiveness        int
	CommunicationResponsiveness int
}

// fromDomain converts a supplier aggregate to its database representation.
func fromDomain(aggregate *supplier.Supplier) SupplierDTO {
	location := aggregate.Location()
	contact := aggregate.Contact()
	metrics := aggregate.Metrics()

	return SupplierDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
		Kind: aggregate.Kind(),
		Location: LocationDTO{
			State:    location.State,
			District: location.District,
			Pincode:  location.Pincode,
		},
		Contact: ContactDTO{
			Primary:                contact.PrimaryContact,
			Phone:                  contact.Phone,
			Email:                  contact.Email,
			PreferredCommunication: contact.PreferredCommunication,
		},
		Metrics: MetricsDTO{
			ReliabilityScore:            metrics.ReliabilityScore,
			QualityConsistency:          metrics.QualityConsistency,
			DeliveryTimeliness:          metrics.DeliveryTimeliness,
			PriceCompetitiveness:        metrics.PriceCompetitiveness,
			CommunicationResponsiveness: metrics.CommunicationResponsiveness,
		},
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a supplier aggregate.
func toDomain(dto SupplierDTO) (*supplier.Supplier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return supplier.NewSupplier(
		id,
		dto.Name,
		dto.Kind,
		supplier.Location{
			State:    dto.Location.State,
			District: dto.Location.District,
			Pincode:  dto.Location.Pincode,
		},
		supplier.Contact{
			PrimaryContact:         dto.Contact.Primary,
			Phone:                  dto.Contact.Phone,
			Email:                  dto.Contact.Email,
			PreferredCommunication: dto.Contact.PreferredCommunication,
		},
		supplier.PerformanceMetrics{
			ReliabilityScore:            dto.Metrics.ReliabilityScore,
			QualityConsistency:          dto.Metrics.QualityConsistency,
			DeliveryTimeliness:          dto.Metrics.DeliveryTimeliness,
			PriceCompetitiveness:        dto.Metrics.PriceCompetitiveness,
			CommunicationResponsiveness: dto.Metrics.CommunicationResponsiveness,
		},
		dto.CreatedAt,
	)
}
