package domain

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
)

type Booking struct {
	ID         int32  `json:"id"`
	Reference  string `json:"reference"`
	CustomerID int32  `json:"customer_id"`
	UnitID     int32  `json:"unit_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	// Rate snapshot captured from the unit's model at booking creation time.
	// Extension quotes use this snapshot, not the live model rate.
	DailyRateCents int32         `json:"daily_rate_cents"`
	TotalCostCents int32         `json:"total_cost_cents"`
	Status         BookingStatus `json:"status"`
	PaymentStatus  PaymentStatus `json:"payment_status"`
	PickupLocation string        `json:"pickup_location"`
	Notes          string        `json:"notes"`
	CreatedOn      string        `json:"created_on"`
	UpdatedOn      string        `json:"updated_on"`

	// Populated by joined reads for list/detail views.
	Customer *Customer `json:"customer,omitempty"`
	Unit     *Unit     `json:"unit,omitempty"`
}

// Trip is the read-only extension subject derived from a booking. The
// extension wizard never mutates it; it only proposes a new end date back
// to the caller that built it.
type Trip struct {
	BookingID      int32  `json:"booking_id"`
	UnitID         int32  `json:"unit_id"`
	VehicleName    string `json:"vehicle_name"`
	Plate          string `json:"plate"`
	CurrentEndDate string `json:"current_end_date"`
	DailyRateCents int32  `json:"daily_rate_cents"`
}
