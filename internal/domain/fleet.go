package domain

type UnitStatus string

const (
	UnitStatusAvailable   UnitStatus = "available"
	UnitStatusRented      UnitStatus = "rented"
	UnitStatusMaintenance UnitStatus = "maintenance"
	UnitStatusRetired     UnitStatus = "retired"
)

// Model is a make/model/year template shared by the physical units.
type Model struct {
	ID             int32  `json:"id"`
	Make           string `json:"make"`
	Name           string `json:"name"`
	Year           int32  `json:"year"`
	Category       string `json:"category"`
	Seats          int32  `json:"seats"`
	Transmission   string `json:"transmission"`
	DailyRateCents int32  `json:"daily_rate_cents"`
	ImageURL       string `json:"image_url"`
	CreatedOn      string `json:"created_on"`
	UpdatedOn      string `json:"updated_on"`
}

// Unit is one physical vehicle in the fleet.
type Unit struct {
	ID        int32      `json:"id"`
	ModelID   int32      `json:"model_id"`
	Plate     string     `json:"plate"`
	Color     string     `json:"color"`
	Mileage   int32      `json:"mileage"`
	Status    UnitStatus `json:"status"`
	ImageURL  string     `json:"image_url"`
	CreatedOn string     `json:"created_on"`
	UpdatedOn string     `json:"updated_on"`

	Model *Model `json:"model,omitempty"`
}

func (u *Unit) DisplayName() string {
	if u.Model == nil {
		return u.Plate
	}
	return u.Model.Make + " " + u.Model.Name
}
