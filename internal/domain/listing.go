package domain

type ListingStatus string

const (
	ListingStatusActive ListingStatus = "active"
	ListingStatusClosed ListingStatus = "closed"
	ListingStatusDraft  ListingStatus = "draft"
)

// JobPosting is a careers-page entry managed from the back office.
type JobPosting struct {
	ID           int32         `json:"id"`
	Title        string        `json:"title"`
	Department   string        `json:"department"`
	Location     string        `json:"location"`
	Type         string        `json:"type"` // full-time, part-time, contract
	Description  string        `json:"description"`
	Requirements string        `json:"requirements"`
	Status       ListingStatus `json:"status"`
	CreatedOn    string        `json:"created_on"`
	UpdatedOn    string        `json:"updated_on"`
}

// SafariPackage is a curated safari offering sold alongside car hire.
type SafariPackage struct {
	ID             int32         `json:"id"`
	Title          string        `json:"title"`
	Destination    string        `json:"destination"`
	DurationDays   int32         `json:"duration_days"`
	PricePerPerson int32         `json:"price_per_person_cents"`
	Description    string        `json:"description"`
	Highlights     string        `json:"highlights"`
	ImageURL       string        `json:"image_url"`
	Status         ListingStatus `json:"status"`
	CreatedOn      string        `json:"created_on"`
	UpdatedOn      string        `json:"updated_on"`
}
