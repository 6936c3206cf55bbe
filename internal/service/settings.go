package service

import (
	"context"
	"errors"

	"savannacars-backend/internal/domain"
	"savannacars-backend/internal/repository"
)

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) GetSettings(ctx context.Context) (*domain.SiteSettings, error) {
	return s.settingsRepo.Get(ctx)
}

func (s *settingsService) UpdateSettings(ctx context.Context, settings *domain.SiteSettings) error {
	if settings.Currency == "" {
		return errors.New("currency is required")
	}
	if len(settings.Currency) != 3 {
		return errors.New("currency must be a three letter ISO code")
	}
	if settings.VATEnabled && (settings.VATRateBps <= 0 || settings.VATRateBps > 10000) {
		return errors.New("vat rate must be between 1 and 10000 basis points")
	}
	return s.settingsRepo.Update(ctx, settings)
}
