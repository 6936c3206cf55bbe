package service

import (
	"context"
	"errors"
	"fmt"

	"savannacars-backend/internal/domain"
	"savannacars-backend/internal/repository"
	"savannacars-backend/internal/utils"

	"github.com/google/uuid"
)

type bookingService struct {
	bookingRepo  repository.BookingRepository
	customerRepo repository.CustomerRepository
	fleetRepo    repository.FleetRepository
	settingsRepo repository.SettingsRepository
	emailSvc     EmailService
	payments     PaymentProcessor
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	customerRepo repository.CustomerRepository,
	fleetRepo repository.FleetRepository,
	settingsRepo repository.SettingsRepository,
	emailSvc EmailService,
	payments PaymentProcessor,
) BookingService {
	return &bookingService{
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		fleetRepo:    fleetRepo,
		settingsRepo: settingsRepo,
		emailSvc:     emailSvc,
		payments:     payments,
	}
}

// currency resolves the display currency from site settings. Money is
// stored and computed in cents; the code only affects formatting.
func (s *bookingService) currency(ctx context.Context) string {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil || settings.Currency == "" {
		return "KES"
	}
	return settings.Currency
}

func (s *bookingService) CreateBooking(ctx context.Context, customerID, unitID int32, startDate, endDate, pickupLocation, notes string) (*domain.Booking, error) {
	unit, err := s.fleetRepo.GetUnit(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("unit not found: %w", err)
	}
	if unit.Status == domain.UnitStatusMaintenance || unit.Status == domain.UnitStatusRetired {
		return nil, errors.New("unit is not available for booking")
	}

	totalCost, err := utils.BookingCost(startDate, endDate, unit.Model.DailyRateCents)
	if err != nil {
		return nil, err
	}

	overlapping, err := s.bookingRepo.CountOverlapping(ctx, unitID, startDate, endDate, 0)
	if err != nil {
		return nil, err
	}
	if overlapping > 0 {
		return nil, ErrVehicleUnavailable
	}

	booking := &domain.Booking{
		Reference:      "BK-" + uuid.New().String()[:8],
		CustomerID:     customerID,
		UnitID:         unitID,
		StartDate:      startDate,
		EndDate:        endDate,
		DailyRateCents: unit.Model.DailyRateCents,
		TotalCostCents: totalCost,
		Status:         domain.BookingStatusPending,
		PaymentStatus:  domain.PaymentStatusUnpaid,
		PickupLocation: pickupLocation,
		Notes:          notes,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	// Confirmation email is best effort; the booking stands either way.
	if customer, err := s.customerRepo.GetByID(ctx, customerID); err == nil {
		_ = s.emailSvc.SendBookingConfirmation(ctx, customer.Email, customer.Name,
			unit.DisplayName(), startDate, endDate, utils.FormatMoney(totalCost, s.currency(ctx)))
	}

	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id int32) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *bookingService) ListBookings(ctx context.Context, status, query string) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	return utils.FilterByQuery(bookings, query, func(b domain.Booking) []string {
		fields := []string{b.Reference}
		if b.Customer != nil {
			fields = append(fields, b.Customer.Name, b.Customer.Phone)
		}
		if b.Unit != nil {
			fields = append(fields, b.Unit.Plate, b.Unit.DisplayName())
		}
		return fields
	}), nil
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, id int32, status domain.BookingStatus, paymentStatus domain.PaymentStatus) error {
	if _, err := s.bookingRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.bookingRepo.UpdateStatus(ctx, id, status, paymentStatus)
}

func (s *bookingService) CancelBooking(ctx context.Context, id int32) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if booking.Status == domain.BookingStatusCompleted {
		return errors.New("completed bookings cannot be cancelled")
	}
	return s.bookingRepo.UpdateStatus(ctx, id, domain.BookingStatusCancelled, booking.PaymentStatus)
}

// CheckAvailability implements AvailabilityChecker with a date-overlap
// query against existing bookings for the unit.
func (s *bookingService) CheckAvailability(ctx context.Context, unitID int32, startDate, endDate string, excludeBookingID int32) (bool, error) {
	count, err := s.bookingRepo.CountOverlapping(ctx, unitID, startDate, endDate, excludeBookingID)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func (s *bookingService) QuoteExtension(ctx context.Context, bookingID int32, candidateEndDate string) (utils.ExtensionQuote, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return utils.ExtensionQuote{}, err
	}
	return utils.QuoteExtension(booking.EndDate, candidateEndDate, booking.DailyRateCents), nil
}

func (s *bookingService) ExtendBooking(ctx context.Context, bookingID int32, newEndDate, paymentMethod string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusActive {
		return nil, fmt.Errorf("only active bookings can be extended, booking is %s", booking.Status)
	}

	trip := domain.Trip{
		BookingID:      booking.ID,
		UnitID:         booking.UnitID,
		Plate:          booking.Unit.Plate,
		VehicleName:    booking.Unit.DisplayName(),
		CurrentEndDate: booking.EndDate,
		DailyRateCents: booking.DailyRateCents,
	}

	wizard := NewExtensionWizard(trip, s, s.payments, func(endDate string, quote utils.ExtensionQuote) error {
		return s.bookingRepo.ExtendEndDate(ctx, bookingID, endDate, quote.ExtraCostCents)
	})

	if _, err := wizard.SelectDate(newEndDate); err != nil {
		return nil, err
	}
	if err := wizard.Confirm(ctx); err != nil {
		return nil, err
	}
	if _, err := wizard.Pay(ctx, paymentMethod); err != nil {
		return nil, err
	}

	updated, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	quote := wizard.Quote()
	if updated.Customer != nil {
		_ = s.emailSvc.SendExtensionConfirmation(ctx, updated.Customer.Email, updated.Customer.Name,
			trip.VehicleName, newEndDate, utils.FormatMoney(quote.ExtraCostCents, s.currency(ctx)))
	}

	return updated, nil
}
