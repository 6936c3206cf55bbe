package utils

import (
	"savannacars-backend/internal/domain"
)

// Trust score adjustments per booking outcome.
const (
	trustPerCompletedBooking = 2
	trustPerCancelledBooking = 20
)

// ComputeCustomerStats folds a customer's booking history into the derived
// CRM fields. It is a pure function of its input: no network calls, no
// hidden state, order of the bookings slice does not matter, and a nil
// slice is treated as zero bookings.
func ComputeCustomerStats(customer *domain.Customer) domain.CustomerStats {
	var totalSpent int32
	var cancelled int32

	for _, b := range customer.Bookings {
		if b.Status == domain.BookingStatusCancelled {
			cancelled++
			continue
		}
		totalSpent += b.TotalCostCents
	}

	rentals := int32(len(customer.Bookings))
	nonCancelled := rentals - cancelled

	score := customer.BaseTrustScore +
		trustPerCompletedBooking*nonCancelled -
		trustPerCancelledBooking*cancelled

	return domain.CustomerStats{
		TotalSpentCents: totalSpent,
		RentalsCount:    rentals,
		CancelledCount:  cancelled,
		TrustScore:      clampScore(score),
		KYCStatus:       KYCStatusFor(customer.IDImageURL, customer.LicenseImageURL),
	}
}

// KYCStatusFor derives the verification status from the uploaded document
// URLs: verified only when both the ID and the driving licence are present.
func KYCStatusFor(idImageURL, licenseImageURL string) domain.KYCStatus {
	if idImageURL != "" && licenseImageURL != "" {
		return domain.KYCStatusVerified
	}
	return domain.KYCStatusPending
}

func clampScore(score int32) int32 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
