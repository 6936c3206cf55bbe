package jobs

import (
	"context"
	"fmt"
	"time"

	"savannacars-backend/internal/domain"
	"savannacars-backend/internal/logger"
	"savannacars-backend/internal/utils"
)

// SendReturnReminders notifies customers whose rental ends tomorrow, by
// email and SMS. Each channel is best effort and failures are logged per
// booking so one bad address does not block the batch.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		ctx := context.Background()
		tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")

		ending, err := jr.store.BookingRepository.ListEndingOn(ctx, tomorrow)
		if err != nil {
			logger.Error("Failed to list bookings ending tomorrow", "error", err)
			return
		}

		sent := 0
		for _, b := range ending {
			customer, err := jr.store.CustomerRepository.GetByID(ctx, b.CustomerID)
			if err != nil {
				logger.Error("Failed to load customer for reminder", "booking_id", b.ID, "error", err)
				continue
			}
			unit, err := jr.store.FleetRepository.GetUnit(ctx, b.UnitID)
			if err != nil {
				logger.Error("Failed to load unit for reminder", "booking_id", b.ID, "error", err)
				continue
			}
			vehicle := unit.DisplayName()

			if customer.Email != "" {
				if err := jr.services.Email.SendReturnReminder(ctx, customer.Email, customer.Name, vehicle, b.EndDate); err != nil {
					logger.Error("Return reminder email failed", "booking_id", b.ID, "error", err)
				}
			}
			if customer.Phone != "" && jr.services.SMS != nil {
				if err := jr.services.SMS.SendReturnReminder(ctx, customer.Phone, vehicle, b.EndDate); err != nil {
					logger.Error("Return reminder sms failed", "booking_id", b.ID, "error", err)
				}
			}
			sent++
		}

		logger.Info("Return reminders processed", "count", sent, "end_date", tomorrow)
	})
}

// SendDailySummary mails the back office a one line digest of yesterday's
// bookings and the revenue they represent.
func (jr *JobRunner) SendDailySummary() {
	jr.runWithRecovery("SendDailySummary", func() {
		ctx := context.Background()
		yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")

		created, err := jr.store.BookingRepository.ListCreatedOn(ctx, yesterday)
		if err != nil {
			logger.Error("Failed to list bookings for summary", "error", err)
			return
		}

		settings, err := jr.store.SettingsRepository.Get(ctx)
		if err != nil {
			logger.Error("Failed to load settings for summary", "error", err)
			return
		}
		if settings.SupportEmail == "" {
			logger.Warn("No support email configured, skipping daily summary")
			return
		}

		var revenue int32
		for _, b := range created {
			if b.Status != domain.BookingStatusCancelled {
				revenue += b.TotalCostCents
			}
		}

		currency := settings.Currency
		if currency == "" {
			currency = "KES"
		}
		err = jr.services.Email.SendDailySummary(ctx, settings.SupportEmail,
			fmt.Sprintf("%d", len(created)), utils.FormatMoney(revenue, currency))
		if err != nil {
			logger.Error("Daily summary email failed", "error", err)
			return
		}

		logger.Info("Daily summary sent", "bookings", len(created), "date", yesterday)
	})
}
