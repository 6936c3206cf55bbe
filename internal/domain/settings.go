package domain

// SiteSettings is the singleton site-wide configuration row edited from the
// back office. Views receive only the fields they need, never the whole row.
type SiteSettings struct {
	ID           int32  `json:"id"`
	SiteName     string `json:"site_name"`
	Currency     string `json:"currency"` // ISO 4217 code, e.g. "KES"
	VATEnabled   bool   `json:"vat_enabled"`
	VATRateBps   int32  `json:"vat_rate_bps"` // basis points, e.g. 1600 = 16%
	SupportEmail string `json:"support_email"`
	SupportPhone string `json:"support_phone"`
	UpdatedOn    string `json:"updated_on"`
}
