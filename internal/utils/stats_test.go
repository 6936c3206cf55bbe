package utils

import (
	"math/rand"
	"testing"

	"savannacars-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestComputeCustomerStats(t *testing.T) {
	customer := &domain.Customer{
		ID:              1,
		Name:            "Amina Odhiambo",
		BaseTrustScore:  100,
		IDImageURL:      "https://storage.example.com/customers/1/id.jpg",
		LicenseImageURL: "https://storage.example.com/customers/1/license.jpg",
		Bookings: []domain.Booking{
			{ID: 1, TotalCostCents: 30000, Status: domain.BookingStatusCompleted},
			{ID: 2, TotalCostCents: 45000, Status: domain.BookingStatusActive},
			{ID: 3, TotalCostCents: 15000, Status: domain.BookingStatusPending},
			{ID: 4, TotalCostCents: 60000, Status: domain.BookingStatusCancelled},
		},
	}

	t.Run("Derived fields", func(t *testing.T) {
		stats := ComputeCustomerStats(customer)
		// 100 + 2*3 - 20*1 = 86
		assert.Equal(t, int32(86), stats.TrustScore)
		// Cancelled booking's cost is excluded.
		assert.Equal(t, int32(90000), stats.TotalSpentCents)
		assert.Equal(t, int32(4), stats.RentalsCount)
		assert.Equal(t, int32(1), stats.CancelledCount)
		assert.Equal(t, domain.KYCStatusVerified, stats.KYCStatus)
	})

	t.Run("Idempotent", func(t *testing.T) {
		first := ComputeCustomerStats(customer)
		second := ComputeCustomerStats(customer)
		assert.Equal(t, first, second)
	})

	t.Run("Order independent", func(t *testing.T) {
		want := ComputeCustomerStats(customer)
		for i := 0; i < 10; i++ {
			shuffled := *customer
			shuffled.Bookings = append([]domain.Booking(nil), customer.Bookings...)
			rand.Shuffle(len(shuffled.Bookings), func(a, b int) {
				shuffled.Bookings[a], shuffled.Bookings[b] = shuffled.Bookings[b], shuffled.Bookings[a]
			})
			assert.Equal(t, want, ComputeCustomerStats(&shuffled))
		}
	})

	t.Run("No bookings", func(t *testing.T) {
		stats := ComputeCustomerStats(&domain.Customer{BaseTrustScore: 50})
		assert.Equal(t, int32(0), stats.TotalSpentCents)
		assert.Equal(t, int32(0), stats.RentalsCount)
		assert.Equal(t, int32(0), stats.CancelledCount)
		assert.Equal(t, int32(50), stats.TrustScore)
		assert.Equal(t, domain.KYCStatusPending, stats.KYCStatus)
	})

	t.Run("Trust score clamped to zero", func(t *testing.T) {
		c := &domain.Customer{
			BaseTrustScore: 10,
			Bookings: []domain.Booking{
				{Status: domain.BookingStatusCancelled},
				{Status: domain.BookingStatusCancelled},
			},
		}
		stats := ComputeCustomerStats(c)
		assert.Equal(t, int32(0), stats.TrustScore)
	})

	t.Run("Trust score clamped to one hundred", func(t *testing.T) {
		c := &domain.Customer{BaseTrustScore: 100}
		for i := 0; i < 8; i++ {
			c.Bookings = append(c.Bookings, domain.Booking{Status: domain.BookingStatusCompleted})
		}
		stats := ComputeCustomerStats(c)
		assert.Equal(t, int32(100), stats.TrustScore)
	})
}

func TestKYCStatusFor(t *testing.T) {
	t.Run("Both documents uploaded", func(t *testing.T) {
		assert.Equal(t, domain.KYCStatusVerified, KYCStatusFor("id.jpg", "license.jpg"))
	})

	t.Run("Only ID uploaded", func(t *testing.T) {
		assert.Equal(t, domain.KYCStatusPending, KYCStatusFor("id.jpg", ""))
	})

	t.Run("Only license uploaded", func(t *testing.T) {
		assert.Equal(t, domain.KYCStatusPending, KYCStatusFor("", "license.jpg"))
	})

	t.Run("Neither uploaded", func(t *testing.T) {
		assert.Equal(t, domain.KYCStatusPending, KYCStatusFor("", ""))
	})
}
