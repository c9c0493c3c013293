package supplier_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exportpro/internal/core/domain/model/kernel"
	"exportpro/internal/core/domain/model/supplier"
)

func Test_NewSupplier(t *testing.T) {
	now := time.Now().UTC()
	location := supplier.Location{State: "Kerala", District: "Idukki", Pincode: "685501"}
	contact := supplier.Contact{PrimaryContact: "Anand", Phone: "+91 9000000000", Email: "anand@example.com"}

	t.Run("defaults metrics when none are supplied", func(t *testing.T) {
		s, err := supplier.NewSupplier(kernel.NewUUID(), "Idukki Spice Collective", "farmer_cooperative",
			location, contact, supplier.PerformanceMetrics{}, now)
		require.NoError(t, err)

		assert.Equal(t, supplier.DefaultPerformanceMetrics(), s.Metrics())
		assert.Equal(t, 7, s.Metrics().ReliabilityScore)
	})

	t.Run("keeps explicit metrics", func(t *testing.T) {
		metrics := supplier.PerformanceMetrics{
			ReliabilityScore:            9,
			QualityConsistency:          8,
			DeliveryTimeliness:          7,
			PriceCompetitiveness:        6,
			CommunicationResponsiveness: 9,
		}
		s, err := supplier.NewSupplier(kernel.NewUUID(), "Idukki Spice Collective", "farmer_cooperative",
			location, contact, metrics, now)
		require.NoError(t, err)

		assert.Equal(t, metrics, s.Metrics())
	})

	t.Run("requires name and type", func(t *testing.T) {
		_, err := supplier.NewSupplier(kernel.NewUUID(), "", "trader", location, contact, supplier.PerformanceMetrics{}, now)
		assert.Error(t, err)

		_, err = supplier.NewSupplier(kernel.NewUUID(), "Idukki Spice Collective", "", location, contact, supplier.PerformanceMetrics{}, now)
		assert.Error(t, err)
	})
}

func Test_Supplier_UpdateDetails(t *testing.T) {
	now := time.Now().UTC()
	s, err := supplier.NewSupplier(kernel.NewUUID(), "Idukki Spice Collective", "farmer_cooperative",
		supplier.Location{State: "Kerala"}, supplier.Contact{}, supplier.PerformanceMetrics{}, now)
	require.NoError(t, err)

	t.Run("replaces attributes", func(t *testing.T) {
		err := s.UpdateDetails("Wayanad Spice Collective", "processor",
			supplier.Location{State: "Kerala", District: "Wayanad"}, supplier.Contact{Email: "ops@example.com"},
			supplier.PerformanceMetrics{ReliabilityScore: 9, QualityConsistency: 9, DeliveryTimeliness: 9, PriceCompetitiveness: 9, CommunicationResponsiveness: 9})
		require.NoError(t, err)

		assert.Equal(t, "Wayanad Spice Collective", s.Name())
		assert.Equal(t, "processor", s.Kind())
		assert.Equal(t, "Wayanad", s.Location().District)
		assert.Equal(t, 9, s.Metrics().ReliabilityScore)
	})

	t.Run("zero metrics keep current scores", func(t *testing.T) {
		before := s.Metrics()
		err := s.UpdateDetails(s.Name(), s.Kind(), s.Location(), s.Contact(), supplier.PerformanceMetrics{})
		require.NoError(t, err)
		assert.Equal(t, before, s.Metrics())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		err := s.UpdateDetails("", "processor", supplier.Location{}, supplier.Contact{}, supplier.PerformanceMetrics{})
		assert.Error(t, err)
	})
}
