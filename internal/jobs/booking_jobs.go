package jobs

import (
	"context"
	"time"

	"savannacars-backend/internal/domain"
	"savannacars-backend/internal/logger"
)

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// ActivateDueBookings flips paid pending bookings whose start date has
// arrived to active and marks their units rented. Unpaid bookings are left
// pending for staff follow-up.
func (jr *JobRunner) ActivateDueBookings() {
	jr.runWithRecovery("ActivateDueBookings", func() {
		ctx := context.Background()

		due, err := jr.store.BookingRepository.ListStartingOnOrBefore(ctx, today(), domain.BookingStatusPending)
		if err != nil {
			logger.Error("Failed to list due bookings", "error", err)
			return
		}

		activated := 0
		for _, b := range due {
			if b.PaymentStatus != domain.PaymentStatusPaid {
				logger.Info("Skipping unpaid booking", "booking_id", b.ID, "payment_status", b.PaymentStatus)
				continue
			}
			if err := jr.store.BookingRepository.UpdateStatus(ctx, b.ID, domain.BookingStatusActive, b.PaymentStatus); err != nil {
				logger.Error("Failed to activate booking", "booking_id", b.ID, "error", err)
				continue
			}
			if err := jr.store.FleetRepository.UpdateUnitStatus(ctx, b.UnitID, domain.UnitStatusRented); err != nil {
				logger.Error("Failed to mark unit rented", "unit_id", b.UnitID, "error", err)
			}
			activated++
		}

		logger.Info("Due bookings activated", "count", activated)
	})
}

// CompletePastBookings closes active bookings whose end date has passed and
// returns their units to the available pool.
func (jr *JobRunner) CompletePastBookings() {
	jr.runWithRecovery("CompletePastBookings", func() {
		ctx := context.Background()

		past, err := jr.store.BookingRepository.ListEndedBefore(ctx, today(), domain.BookingStatusActive)
		if err != nil {
			logger.Error("Failed to list past bookings", "error", err)
			return
		}

		completed := 0
		for _, b := range past {
			if err := jr.store.BookingRepository.UpdateStatus(ctx, b.ID, domain.BookingStatusCompleted, b.PaymentStatus); err != nil {
				logger.Error("Failed to complete booking", "booking_id", b.ID, "error", err)
				continue
			}
			if err := jr.store.FleetRepository.UpdateUnitStatus(ctx, b.UnitID, domain.UnitStatusAvailable); err != nil {
				logger.Error("Failed to release unit", "unit_id", b.UnitID, "error", err)
			}
			completed++
		}

		logger.Info("Past bookings completed", "count", completed)
	})
}
