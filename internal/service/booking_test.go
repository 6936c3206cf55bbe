package service

import (
	"context"
	"errors"
	"testing"

	"savannacars-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func availableUnit() *domain.Unit {
	return &domain.Unit{
		ID:      7,
		ModelID: 3,
		Plate:   "KDA 123X",
		Status:  domain.UnitStatusAvailable,
		Model: &domain.Model{
			ID:             3,
			Make:           "Toyota",
			Name:           "Land Cruiser",
			DailyRateCents: 500000,
		},
	}
}

func TestBookingService_CreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		fleetRepo := new(MockFleetRepo)
		customerRepo := new(MockCustomerRepo)
		svc := NewBookingService(bookingRepo, customerRepo, fleetRepo, new(MockSettingsRepo), new(MockEmailService), new(MockPaymentProcessor))

		fleetRepo.On("GetUnit", ctx, int32(7)).Return(availableUnit(), nil).Once()
		bookingRepo.On("CountOverlapping", ctx, int32(7), "2025-11-25", "2025-11-28", int32(0)).Return(int32(0), nil).Once()
		bookingRepo.On("Create", ctx, mock.MatchedBy(func(b *domain.Booking) bool {
			return b.Status == domain.BookingStatusPending &&
				b.PaymentStatus == domain.PaymentStatusUnpaid &&
				b.DailyRateCents == 500000 &&
				b.TotalCostCents == 2000000 && // 4 rental days inclusive
				len(b.Reference) > 3 && b.Reference[:3] == "BK-"
		})).Return(nil).Once()
		// Confirmation email is skipped when the customer lookup fails.
		customerRepo.On("GetByID", ctx, int32(5)).Return(nil, errors.New("not found")).Once()

		booking, err := svc.CreateBooking(ctx, 5, 7, "2025-11-25", "2025-11-28", "JKIA", "")
		assert.NoError(t, err)
		assert.Equal(t, int32(2000000), booking.TotalCostCents)
		bookingRepo.AssertExpectations(t)
	})

	t.Run("OverlapRejected", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		fleetRepo := new(MockFleetRepo)
		svc := NewBookingService(bookingRepo, new(MockCustomerRepo), fleetRepo, new(MockSettingsRepo), new(MockEmailService), new(MockPaymentProcessor))

		fleetRepo.On("GetUnit", ctx, int32(7)).Return(availableUnit(), nil).Once()
		bookingRepo.On("CountOverlapping", ctx, int32(7), "2025-11-25", "2025-11-28", int32(0)).Return(int32(1), nil).Once()

		_, err := svc.CreateBooking(ctx, 5, 7, "2025-11-25", "2025-11-28", "JKIA", "")
		assert.ErrorIs(t, err, ErrVehicleUnavailable)
		bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("MaintenanceUnitRejected", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		fleetRepo := new(MockFleetRepo)
		svc := NewBookingService(bookingRepo, new(MockCustomerRepo), fleetRepo, new(MockSettingsRepo), new(MockEmailService), new(MockPaymentProcessor))

		unit := availableUnit()
		unit.Status = domain.UnitStatusMaintenance
		fleetRepo.On("GetUnit", ctx, int32(7)).Return(unit, nil).Once()

		_, err := svc.CreateBooking(ctx, 5, 7, "2025-11-25", "2025-11-28", "JKIA", "")
		assert.Error(t, err)
		bookingRepo.AssertNotCalled(t, "CountOverlapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("EndBeforeStartRejected", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		fleetRepo := new(MockFleetRepo)
		svc := NewBookingService(bookingRepo, new(MockCustomerRepo), fleetRepo, new(MockSettingsRepo), new(MockEmailService), new(MockPaymentProcessor))

		fleetRepo.On("GetUnit", ctx, int32(7)).Return(availableUnit(), nil).Once()

		_, err := svc.CreateBooking(ctx, 5, 7, "2025-11-28", "2025-11-25", "JKIA", "")
		assert.Error(t, err)
		bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestBookingService_ListBookings(t *testing.T) {
	ctx := context.Background()
	bookingRepo := new(MockBookingRepo)
	svc := NewBookingService(bookingRepo, new(MockCustomerRepo), new(MockFleetRepo), new(MockSettingsRepo), new(MockEmailService), new(MockPaymentProcessor))

	rows := []domain.Booking{
		{ID: 1, Reference: "BK-aaaa", Customer: &domain.Customer{Name: "John Smith", Phone: "0711"}},
		{ID: 2, Reference: "BK-bbbb", Customer: &domain.Customer{Name: "Joan Kamau", Phone: "0722"}},
		{ID: 3, Reference: "BK-cccc", Customer: &domain.Customer{Name: "Peter Otieno", Phone: "0733"}},
	}
	bookingRepo.On("List", ctx, "active").Return(rows, nil)

	got, err := svc.ListBookings(ctx, "active", "jo")
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, int32(1), got[0].ID)
	assert.Equal(t, int32(2), got[1].ID)

	all, err := svc.ListBookings(ctx, "active", "")
	assert.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestBookingService_ExtendBooking(t *testing.T) {
	ctx := context.Background()

	activeBooking := func() *domain.Booking {
		return &domain.Booking{
			ID:             42,
			Reference:      "BK-42",
			CustomerID:     5,
			UnitID:         7,
			StartDate:      "2025-11-25",
			EndDate:        "2025-11-28",
			DailyRateCents: 500000,
			TotalCostCents: 2000000,
			Status:         domain.BookingStatusActive,
			Unit:           availableUnit(),
		}
	}

	t.Run("Success", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		payments := new(MockPaymentProcessor)
		svc := NewBookingService(bookingRepo, new(MockCustomerRepo), new(MockFleetRepo), new(MockSettingsRepo), new(MockEmailService), payments)

		bookingRepo.On("GetByID", ctx, int32(42)).Return(activeBooking(), nil).Once()
		bookingRepo.On("CountOverlapping", ctx, int32(7), "2025-11-29", "2025-12-01", int32(42)).Return(int32(0), nil).Once()
		payments.On("ChargeDifference", ctx, int32(1500000), "mpesa").Return(&PaymentResult{Success: true, Reference: "pay-9"}, nil).Once()
		bookingRepo.On("ExtendEndDate", ctx, int32(42), "2025-12-01", int32(1500000)).Return(nil).Once()

		extended := activeBooking()
		extended.EndDate = "2025-12-01"
		extended.TotalCostCents = 3500000
		bookingRepo.On("GetByID", ctx, int32(42)).Return(extended, nil).Once()

		got, err := svc.ExtendBooking(ctx, 42, "2025-12-01", "mpesa")
		assert.NoError(t, err)
		assert.Equal(t, "2025-12-01", got.EndDate)
		assert.Equal(t, int32(3500000), got.TotalCostCents)
		bookingRepo.AssertExpectations(t)
		payments.AssertExpectations(t)
	})

	t.Run("PendingBookingRejected", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		payments := new(MockPaymentProcessor)
		svc := NewBookingService(bookingRepo, new(MockCustomerRepo), new(MockFleetRepo), new(MockSettingsRepo), new(MockEmailService), payments)

		pending := activeBooking()
		pending.Status = domain.BookingStatusPending
		bookingRepo.On("GetByID", ctx, int32(42)).Return(pending, nil).Once()

		_, err := svc.ExtendBooking(ctx, 42, "2025-12-01", "mpesa")
		assert.Error(t, err)
		payments.AssertNotCalled(t, "ChargeDifference", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ConflictNoCharge", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		payments := new(MockPaymentProcessor)
		svc := NewBookingService(bookingRepo, new(MockCustomerRepo), new(MockFleetRepo), new(MockSettingsRepo), new(MockEmailService), payments)

		bookingRepo.On("GetByID", ctx, int32(42)).Return(activeBooking(), nil).Once()
		bookingRepo.On("CountOverlapping", ctx, int32(7), "2025-11-29", "2025-12-01", int32(42)).Return(int32(1), nil).Once()

		_, err := svc.ExtendBooking(ctx, 42, "2025-12-01", "mpesa")
		assert.ErrorIs(t, err, ErrVehicleUnavailable)
		payments.AssertNotCalled(t, "ChargeDifference", mock.Anything, mock.Anything, mock.Anything)
		bookingRepo.AssertNotCalled(t, "ExtendEndDate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("QuoteOnly", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		svc := NewBookingService(bookingRepo, new(MockCustomerRepo), new(MockFleetRepo), new(MockSettingsRepo), new(MockEmailService), new(MockPaymentProcessor))

		bookingRepo.On("GetByID", ctx, int32(42)).Return(activeBooking(), nil).Once()

		quote, err := svc.QuoteExtension(ctx, 42, "2025-12-01")
		assert.NoError(t, err)
		assert.True(t, quote.Valid)
		assert.Equal(t, int32(3), quote.ExtraDays)
		assert.Equal(t, int32(1500000), quote.ExtraCostCents)
		bookingRepo.AssertNotCalled(t, "ExtendEndDate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBookingService_CancelBooking(t *testing.T) {
	ctx := context.Background()
	bookingRepo := new(MockBookingRepo)
	svc := NewBookingService(bookingRepo, new(MockCustomerRepo), new(MockFleetRepo), new(MockSettingsRepo), new(MockEmailService), new(MockPaymentProcessor))

	t.Run("CompletedRejected", func(t *testing.T) {
		done := &domain.Booking{ID: 1, Status: domain.BookingStatusCompleted}
		bookingRepo.On("GetByID", ctx, int32(1)).Return(done, nil).Once()

		assert.Error(t, svc.CancelBooking(ctx, 1))
	})

	t.Run("ActiveCancelled", func(t *testing.T) {
		active := &domain.Booking{ID: 2, Status: domain.BookingStatusActive, PaymentStatus: domain.PaymentStatusPaid}
		bookingRepo.On("GetByID", ctx, int32(2)).Return(active, nil).Once()
		bookingRepo.On("UpdateStatus", ctx, int32(2), domain.BookingStatusCancelled, domain.PaymentStatusPaid).Return(nil).Once()

		assert.NoError(t, svc.CancelBooking(ctx, 2))
		bookingRepo.AssertExpectations(t)
	})
}
