package service

import (
	"context"
	"errors"
	"time"

	"savannacars-backend/internal/logger"

	"github.com/google/uuid"
)

// simulatedPaymentProcessor stands in for a payment gateway: it validates
// the charge, waits a configurable settle delay, and returns a generated
// reference. No money moves anywhere.
type simulatedPaymentProcessor struct {
	delay time.Duration
}

func NewSimulatedPaymentProcessor(delayMs int) PaymentProcessor {
	if delayMs < 0 {
		delayMs = 0
	}
	return &simulatedPaymentProcessor{delay: time.Duration(delayMs) * time.Millisecond}
}

func (p *simulatedPaymentProcessor) ChargeDifference(ctx context.Context, amountCents int32, method string) (*PaymentResult, error) {
	if amountCents <= 0 {
		return nil, errors.New("charge amount must be positive")
	}
	if method == "" {
		return nil, errors.New("payment method is required")
	}

	logger.ExternalServiceCall("payments", "ChargeDifference", "amount_cents", amountCents, "method", method)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(p.delay):
	}

	result := &PaymentResult{Success: true, Reference: uuid.New().String()}
	logger.ExternalServiceResult("payments", "ChargeDifference", nil, "reference", result.Reference)
	return result, nil
}
