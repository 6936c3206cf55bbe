package service

import (
	"context"
	"errors"
	"fmt"

	"savannacars-backend/internal/domain"
	"savannacars-backend/internal/logger"
	"savannacars-backend/internal/utils"
)

var (
	ErrInvalidExtensionDate = errors.New("new return date must be after current return date")
	ErrVehicleUnavailable   = errors.New("vehicle already booked for those dates")
	ErrPaymentDeclined      = errors.New("payment was declined")
	ErrWrongWizardStep      = errors.New("operation not allowed in current step")
)

type WizardStep string

const (
	StepSelectingDate        WizardStep = "selecting_date"
	StepCheckingAvailability WizardStep = "checking_availability"
	StepAwaitingPayment      WizardStep = "awaiting_payment"
	StepCompleted            WizardStep = "completed"
)

// AvailabilityChecker answers whether a unit is free over a date range.
// The booking service provides the production implementation backed by a
// date-overlap query; tests substitute fakes.
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, unitID int32, startDate, endDate string, excludeBookingID int32) (bool, error)
}

type PaymentResult struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference"`
}

// PaymentProcessor charges the extension difference. Production wires the
// simulated processor (no gateway integration); the interface is the seam
// for a real one.
type PaymentProcessor interface {
	ChargeDifference(ctx context.Context, amountCents int32, method string) (*PaymentResult, error)
}

// ExtensionWizard drives a single trip-extension flow:
//
//	SelectingDate -> CheckingAvailability -> AwaitingPayment -> Completed
//
// with a back-edge to SelectingDate on an availability conflict and an
// explicit cancel-edge from AwaitingPayment. Side effects are strictly
// ordered: no payment before an availability success, no completion
// callback before a payment success. The wizard never mutates the booking;
// on completion it hands the new end date to the caller's callback, which
// owns persistence.
//
// A wizard instance belongs to the flow that created it and is not safe
// for concurrent use.
type ExtensionWizard struct {
	trip         domain.Trip
	availability AvailabilityChecker
	payments     PaymentProcessor
	onConfirm    func(newEndDate string, quote utils.ExtensionQuote) error

	step      WizardStep
	candidate string
	quote     utils.ExtensionQuote
}

func NewExtensionWizard(
	trip domain.Trip,
	availability AvailabilityChecker,
	payments PaymentProcessor,
	onConfirm func(newEndDate string, quote utils.ExtensionQuote) error,
) *ExtensionWizard {
	return &ExtensionWizard{
		trip:         trip,
		availability: availability,
		payments:     payments,
		onConfirm:    onConfirm,
		step:         StepSelectingDate,
	}
}

func (w *ExtensionWizard) Step() WizardStep {
	return w.step
}

func (w *ExtensionWizard) Quote() utils.ExtensionQuote {
	return w.quote
}

// SelectDate records a candidate end date and recomputes the quote. It is
// pure apart from the stored candidate and may be called on every change.
func (w *ExtensionWizard) SelectDate(candidateEndDate string) (utils.ExtensionQuote, error) {
	if w.step != StepSelectingDate {
		return w.quote, fmt.Errorf("%w: step is %s", ErrWrongWizardStep, w.step)
	}
	w.candidate = candidateEndDate
	w.quote = utils.QuoteExtension(w.trip.CurrentEndDate, candidateEndDate, w.trip.DailyRateCents)
	return w.quote, nil
}

// Confirm moves the wizard through the availability check. On a conflict
// or a check failure it returns to SelectingDate so the user can pick
// another date; on success it advances to AwaitingPayment.
func (w *ExtensionWizard) Confirm(ctx context.Context) error {
	if w.step != StepSelectingDate {
		return fmt.Errorf("%w: step is %s", ErrWrongWizardStep, w.step)
	}
	if !w.quote.Valid {
		return ErrInvalidExtensionDate
	}

	w.step = StepCheckingAvailability

	// The delta range starts the day after the vehicle was already due
	// back and runs through the candidate return day.
	current, err := utils.ParseDate(w.trip.CurrentEndDate)
	if err != nil {
		w.step = StepSelectingDate
		return fmt.Errorf("invalid current end date: %w", err)
	}
	deltaStart := utils.FormatDate(utils.AddDays(current, 1))

	available, err := w.availability.CheckAvailability(ctx, w.trip.UnitID, deltaStart, w.candidate, w.trip.BookingID)
	if err != nil {
		w.step = StepSelectingDate
		return fmt.Errorf("availability check failed: %w", err)
	}
	if !available {
		w.step = StepSelectingDate
		return ErrVehicleUnavailable
	}

	w.step = StepAwaitingPayment
	return nil
}

// Pay charges the quoted difference. On failure the wizard stays in
// AwaitingPayment so the user can retry or cancel; on success it completes
// and fires the confirmation callback with the new end date.
func (w *ExtensionWizard) Pay(ctx context.Context, method string) (*PaymentResult, error) {
	if w.step != StepAwaitingPayment {
		return nil, fmt.Errorf("%w: step is %s", ErrWrongWizardStep, w.step)
	}

	result, err := w.payments.ChargeDifference(ctx, w.quote.ExtraCostCents, method)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentDeclined, err)
	}
	if !result.Success {
		return result, ErrPaymentDeclined
	}

	w.step = StepCompleted
	logger.Info("Trip extension paid",
		"booking_id", w.trip.BookingID,
		"new_end_date", w.candidate,
		"extra_days", w.quote.ExtraDays,
		"payment_ref", result.Reference)

	if w.onConfirm != nil {
		if err := w.onConfirm(w.candidate, w.quote); err != nil {
			return result, fmt.Errorf("extension paid but not persisted: %w", err)
		}
	}
	return result, nil
}

// Cancel abandons a pending payment and returns to date selection.
func (w *ExtensionWizard) Cancel() error {
	if w.step != StepAwaitingPayment {
		return fmt.Errorf("%w: step is %s", ErrWrongWizardStep, w.step)
	}
	w.step = StepSelectingDate
	return nil
}

// Reset prepares the wizard for a fresh invocation.
func (w *ExtensionWizard) Reset() {
	w.step = StepSelectingDate
	w.candidate = ""
	w.quote = utils.ExtensionQuote{}
}
