package domain

type KYCStatus string

const (
	KYCStatusVerified KYCStatus = "verified"
	KYCStatusPending  KYCStatus = "pending"
)

type Customer struct {
	ID              int32  `json:"id"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	IDNumber        string `json:"id_number"`
	BaseTrustScore  int32  `json:"base_trust_score"`
	IDImageURL      string `json:"id_image_url"`
	LicenseImageURL string `json:"license_image_url"`
	CreatedOn       string `json:"created_on"`
	UpdatedOn       string `json:"updated_on"`

	// Populated when fetched with bookings; nil means not loaded.
	Bookings []Booking `json:"bookings,omitempty"`
}

// CustomerStats holds the derived CRM fields. They are recomputed from the
// booking rows on every read and never written back to the customers table.
type CustomerStats struct {
	TotalSpentCents int32     `json:"total_spent_cents"`
	RentalsCount    int32     `json:"rentals_count"`
	CancelledCount  int32     `json:"cancelled_count"`
	TrustScore      int32     `json:"trust_score"`
	KYCStatus       KYCStatus `json:"kyc_status"`
}

type CustomerWithStats struct {
	Customer
	Stats CustomerStats `json:"stats"`
}
