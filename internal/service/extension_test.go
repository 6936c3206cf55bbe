package service

import (
	"context"
	"errors"
	"testing"

	"savannacars-backend/internal/domain"
	"savannacars-backend/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testTrip() domain.Trip {
	return domain.Trip{
		BookingID:      42,
		UnitID:         7,
		VehicleName:    "Toyota Land Cruiser",
		Plate:          "KDA 123X",
		CurrentEndDate: "2025-11-28",
		DailyRateCents: 500000,
	}
}

func TestExtensionWizard_HappyPath(t *testing.T) {
	checker := new(MockAvailabilityChecker)
	payments := new(MockPaymentProcessor)
	ctx := context.Background()

	var persistedDate string
	var persistedQuote utils.ExtensionQuote
	wizard := NewExtensionWizard(testTrip(), checker, payments, func(endDate string, quote utils.ExtensionQuote) error {
		persistedDate = endDate
		persistedQuote = quote
		return nil
	})

	assert.Equal(t, StepSelectingDate, wizard.Step())

	quote, err := wizard.SelectDate("2025-12-01")
	assert.NoError(t, err)
	assert.True(t, quote.Valid)
	assert.Equal(t, int32(3), quote.ExtraDays)
	assert.Equal(t, int32(1500000), quote.ExtraCostCents)

	// The delta range starts the day after the current return.
	checker.On("CheckAvailability", ctx, int32(7), "2025-11-29", "2025-12-01", int32(42)).Return(true, nil).Once()
	assert.NoError(t, wizard.Confirm(ctx))
	assert.Equal(t, StepAwaitingPayment, wizard.Step())

	payments.On("ChargeDifference", ctx, int32(1500000), "mpesa").Return(&PaymentResult{Success: true, Reference: "pay-1"}, nil).Once()
	result, err := wizard.Pay(ctx, "mpesa")
	assert.NoError(t, err)
	assert.Equal(t, "pay-1", result.Reference)
	assert.Equal(t, StepCompleted, wizard.Step())

	assert.Equal(t, "2025-12-01", persistedDate)
	assert.Equal(t, int32(1500000), persistedQuote.ExtraCostCents)

	checker.AssertExpectations(t)
	payments.AssertExpectations(t)
}

func TestExtensionWizard_InvalidDateNeverAdvances(t *testing.T) {
	checker := new(MockAvailabilityChecker)
	payments := new(MockPaymentProcessor)
	ctx := context.Background()

	wizard := NewExtensionWizard(testTrip(), checker, payments, nil)

	for _, candidate := range []string{"", "garbage", "2025-11-28", "2025-11-20"} {
		t.Run("candidate "+candidate, func(t *testing.T) {
			quote, err := wizard.SelectDate(candidate)
			assert.NoError(t, err)
			assert.False(t, quote.Valid)
			assert.Zero(t, quote.ExtraDays)
			assert.Zero(t, quote.ExtraCostCents)

			err = wizard.Confirm(ctx)
			assert.ErrorIs(t, err, ErrInvalidExtensionDate)
			assert.Equal(t, StepSelectingDate, wizard.Step())
		})
	}

	// No availability check and no charge for invalid dates.
	checker.AssertNotCalled(t, "CheckAvailability", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	payments.AssertNotCalled(t, "ChargeDifference", mock.Anything, mock.Anything, mock.Anything)
}

func TestExtensionWizard_ConflictReturnsToDateSelection(t *testing.T) {
	checker := new(MockAvailabilityChecker)
	payments := new(MockPaymentProcessor)
	ctx := context.Background()

	wizard := NewExtensionWizard(testTrip(), checker, payments, nil)

	_, err := wizard.SelectDate("2025-12-01")
	assert.NoError(t, err)

	checker.On("CheckAvailability", ctx, int32(7), "2025-11-29", "2025-12-01", int32(42)).Return(false, nil).Once()
	err = wizard.Confirm(ctx)
	assert.ErrorIs(t, err, ErrVehicleUnavailable)
	assert.Equal(t, StepSelectingDate, wizard.Step())

	// The user picks an earlier free date and continues.
	quote, err := wizard.SelectDate("2025-11-30")
	assert.NoError(t, err)
	assert.Equal(t, int32(2), quote.ExtraDays)

	checker.On("CheckAvailability", ctx, int32(7), "2025-11-29", "2025-11-30", int32(42)).Return(true, nil).Once()
	assert.NoError(t, wizard.Confirm(ctx))
	assert.Equal(t, StepAwaitingPayment, wizard.Step())

	payments.AssertNotCalled(t, "ChargeDifference", mock.Anything, mock.Anything, mock.Anything)
	checker.AssertExpectations(t)
}

func TestExtensionWizard_CheckerErrorReturnsToDateSelection(t *testing.T) {
	checker := new(MockAvailabilityChecker)
	payments := new(MockPaymentProcessor)
	ctx := context.Background()

	wizard := NewExtensionWizard(testTrip(), checker, payments, nil)

	_, err := wizard.SelectDate("2025-12-01")
	assert.NoError(t, err)

	checker.On("CheckAvailability", ctx, int32(7), "2025-11-29", "2025-12-01", int32(42)).Return(false, errors.New("db down")).Once()
	err = wizard.Confirm(ctx)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrVehicleUnavailable)
	assert.Equal(t, StepSelectingDate, wizard.Step())
}

func TestExtensionWizard_PaymentFailureAllowsRetry(t *testing.T) {
	checker := new(MockAvailabilityChecker)
	payments := new(MockPaymentProcessor)
	ctx := context.Background()

	callbackCalls := 0
	wizard := NewExtensionWizard(testTrip(), checker, payments, func(string, utils.ExtensionQuote) error {
		callbackCalls++
		return nil
	})

	_, err := wizard.SelectDate("2025-12-01")
	assert.NoError(t, err)
	checker.On("CheckAvailability", ctx, int32(7), "2025-11-29", "2025-12-01", int32(42)).Return(true, nil).Once()
	assert.NoError(t, wizard.Confirm(ctx))

	payments.On("ChargeDifference", ctx, int32(1500000), "card").Return(&PaymentResult{Success: false}, nil).Once()
	_, err = wizard.Pay(ctx, "card")
	assert.ErrorIs(t, err, ErrPaymentDeclined)
	assert.Equal(t, StepAwaitingPayment, wizard.Step())
	assert.Equal(t, 0, callbackCalls)

	payments.On("ChargeDifference", ctx, int32(1500000), "mpesa").Return(&PaymentResult{Success: true, Reference: "pay-2"}, nil).Once()
	_, err = wizard.Pay(ctx, "mpesa")
	assert.NoError(t, err)
	assert.Equal(t, StepCompleted, wizard.Step())
	assert.Equal(t, 1, callbackCalls)

	payments.AssertExpectations(t)
}

func TestExtensionWizard_NoPaymentBeforeAvailability(t *testing.T) {
	checker := new(MockAvailabilityChecker)
	payments := new(MockPaymentProcessor)
	ctx := context.Background()

	wizard := NewExtensionWizard(testTrip(), checker, payments, nil)

	_, err := wizard.SelectDate("2025-12-01")
	assert.NoError(t, err)

	_, err = wizard.Pay(ctx, "mpesa")
	assert.ErrorIs(t, err, ErrWrongWizardStep)
	payments.AssertNotCalled(t, "ChargeDifference", mock.Anything, mock.Anything, mock.Anything)
}

func TestExtensionWizard_CancelAbandonsPayment(t *testing.T) {
	checker := new(MockAvailabilityChecker)
	payments := new(MockPaymentProcessor)
	ctx := context.Background()

	wizard := NewExtensionWizard(testTrip(), checker, payments, nil)

	// Cancel is only valid while a payment is pending.
	assert.ErrorIs(t, wizard.Cancel(), ErrWrongWizardStep)

	_, err := wizard.SelectDate("2025-12-01")
	assert.NoError(t, err)
	checker.On("CheckAvailability", ctx, int32(7), "2025-11-29", "2025-12-01", int32(42)).Return(true, nil).Once()
	assert.NoError(t, wizard.Confirm(ctx))

	assert.NoError(t, wizard.Cancel())
	assert.Equal(t, StepSelectingDate, wizard.Step())

	_, err = wizard.Pay(ctx, "mpesa")
	assert.ErrorIs(t, err, ErrWrongWizardStep)
	payments.AssertNotCalled(t, "ChargeDifference", mock.Anything, mock.Anything, mock.Anything)
}

func TestExtensionWizard_CallbackFailureIsSurfaced(t *testing.T) {
	checker := new(MockAvailabilityChecker)
	payments := new(MockPaymentProcessor)
	ctx := context.Background()

	wizard := NewExtensionWizard(testTrip(), checker, payments, func(string, utils.ExtensionQuote) error {
		return errors.New("write failed")
	})

	_, err := wizard.SelectDate("2025-12-01")
	assert.NoError(t, err)
	checker.On("CheckAvailability", ctx, int32(7), "2025-11-29", "2025-12-01", int32(42)).Return(true, nil).Once()
	assert.NoError(t, wizard.Confirm(ctx))
	payments.On("ChargeDifference", ctx, int32(1500000), "mpesa").Return(&PaymentResult{Success: true, Reference: "pay-3"}, nil).Once()

	result, err := wizard.Pay(ctx, "mpesa")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "extension paid but not persisted")
	// The charge went through; the caller gets the reference for recovery.
	assert.Equal(t, "pay-3", result.Reference)
}

func TestExtensionWizard_SelectDateLockedAfterConfirm(t *testing.T) {
	checker := new(MockAvailabilityChecker)
	payments := new(MockPaymentProcessor)
	ctx := context.Background()

	wizard := NewExtensionWizard(testTrip(), checker, payments, nil)

	_, err := wizard.SelectDate("2025-12-01")
	assert.NoError(t, err)
	checker.On("CheckAvailability", ctx, int32(7), "2025-11-29", "2025-12-01", int32(42)).Return(true, nil).Once()
	assert.NoError(t, wizard.Confirm(ctx))

	_, err = wizard.SelectDate("2025-12-05")
	assert.ErrorIs(t, err, ErrWrongWizardStep)
	assert.Equal(t, int32(3), wizard.Quote().ExtraDays)
}

func TestExtensionWizard_Reset(t *testing.T) {
	checker := new(MockAvailabilityChecker)
	payments := new(MockPaymentProcessor)
	ctx := context.Background()

	wizard := NewExtensionWizard(testTrip(), checker, payments, nil)

	_, err := wizard.SelectDate("2025-12-01")
	assert.NoError(t, err)
	checker.On("CheckAvailability", ctx, int32(7), "2025-11-29", "2025-12-01", int32(42)).Return(true, nil).Once()
	assert.NoError(t, wizard.Confirm(ctx))

	wizard.Reset()
	assert.Equal(t, StepSelectingDate, wizard.Step())
	assert.False(t, wizard.Quote().Valid)
}
