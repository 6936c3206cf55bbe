package service

import (
	"context"
	"errors"

	"savannacars-backend/internal/domain"
	"savannacars-backend/internal/repository"
	"savannacars-backend/internal/utils"
)

type fleetService struct {
	fleetRepo repository.FleetRepository
}

func NewFleetService(fleetRepo repository.FleetRepository) FleetService {
	return &fleetService{fleetRepo: fleetRepo}
}

func (s *fleetService) CreateModel(ctx context.Context, model *domain.Model) error {
	if model.Make == "" || model.Name == "" {
		return errors.New("model make and name are required")
	}
	if model.DailyRateCents <= 0 {
		return errors.New("daily rate must be positive")
	}
	return s.fleetRepo.CreateModel(ctx, model)
}

func (s *fleetService) UpdateModel(ctx context.Context, model *domain.Model) error {
	if _, err := s.fleetRepo.GetModel(ctx, model.ID); err != nil {
		return err
	}
	if model.DailyRateCents <= 0 {
		return errors.New("daily rate must be positive")
	}
	return s.fleetRepo.UpdateModel(ctx, model)
}

func (s *fleetService) ListModels(ctx context.Context) ([]domain.Model, error) {
	return s.fleetRepo.ListModels(ctx)
}

func (s *fleetService) CreateUnit(ctx context.Context, unit *domain.Unit) error {
	if unit.Plate == "" {
		return errors.New("unit plate is required")
	}
	if _, err := s.fleetRepo.GetModel(ctx, unit.ModelID); err != nil {
		return err
	}
	if unit.Status == "" {
		unit.Status = domain.UnitStatusAvailable
	}
	return s.fleetRepo.CreateUnit(ctx, unit)
}

func (s *fleetService) GetUnit(ctx context.Context, id int32) (*domain.Unit, error) {
	return s.fleetRepo.GetUnit(ctx, id)
}

func (s *fleetService) UpdateUnit(ctx context.Context, unit *domain.Unit) error {
	if _, err := s.fleetRepo.GetUnit(ctx, unit.ID); err != nil {
		return err
	}
	return s.fleetRepo.UpdateUnit(ctx, unit)
}

func (s *fleetService) ListUnits(ctx context.Context, status, query string) ([]domain.Unit, error) {
	units, err := s.fleetRepo.ListUnits(ctx, status)
	if err != nil {
		return nil, err
	}
	return utils.FilterByQuery(units, query, func(u domain.Unit) []string {
		fields := []string{u.Plate, u.Color}
		if u.Model != nil {
			fields = append(fields, u.Model.Make, u.Model.Name, u.Model.Category)
		}
		return fields
	}), nil
}
