package postgres

import (
	"context"
	"database/sql"
	"time"

	"savannacars-backend/internal/domain"
	"savannacars-backend/internal/repository"
)

type settingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// The settings table holds exactly one row with id = 1.
func (r *settingsRepository) Get(ctx context.Context) (*domain.SiteSettings, error) {
	s := &domain.SiteSettings{}
	query := `SELECT id, site_name, currency, vat_enabled, vat_rate_bps, support_email, support_phone, updated_on::text FROM site_settings WHERE id = 1`
	err := r.db.QueryRowContext(ctx, query).Scan(&s.ID, &s.SiteName, &s.Currency, &s.VATEnabled, &s.VATRateBps, &s.SupportEmail, &s.SupportPhone, &s.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *settingsRepository) Update(ctx context.Context, s *domain.SiteSettings) error {
	query := `UPDATE site_settings SET site_name=$1, currency=$2, vat_enabled=$3, vat_rate_bps=$4, support_email=$5, support_phone=$6, updated_on=$7 WHERE id = 1`
	_, err := r.db.ExecContext(ctx, query, s.SiteName, s.Currency, s.VATEnabled, s.VATRateBps, s.SupportEmail, s.SupportPhone, time.Now())
	return err
}
