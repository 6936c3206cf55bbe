package service

import (
	"context"
	"errors"
	"strconv"

	"savannacars-backend/internal/domain"
	"savannacars-backend/internal/repository"
	"savannacars-backend/internal/utils"
)

type safariService struct {
	safariRepo repository.SafariRepository
}

func NewSafariService(safariRepo repository.SafariRepository) SafariService {
	return &safariService{safariRepo: safariRepo}
}

func (s *safariService) CreatePackage(ctx context.Context, pkg *domain.SafariPackage) error {
	if pkg.Title == "" || pkg.Destination == "" {
		return errors.New("package title and destination are required")
	}
	if pkg.DurationDays <= 0 {
		return errors.New("package duration must be at least one day")
	}
	if pkg.Status == "" {
		pkg.Status = domain.ListingStatusDraft
	}
	return s.safariRepo.Create(ctx, pkg)
}

func (s *safariService) GetPackage(ctx context.Context, id int32) (*domain.SafariPackage, error) {
	return s.safariRepo.GetByID(ctx, id)
}

func (s *safariService) UpdatePackage(ctx context.Context, pkg *domain.SafariPackage) error {
	if _, err := s.safariRepo.GetByID(ctx, pkg.ID); err != nil {
		return err
	}
	return s.safariRepo.Update(ctx, pkg)
}

func (s *safariService) DeletePackage(ctx context.Context, id int32) error {
	return s.safariRepo.Delete(ctx, id)
}

func (s *safariService) SetPackageStatus(ctx context.Context, id int32, status domain.ListingStatus) error {
	pkg, err := s.safariRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	pkg.Status = status
	return s.safariRepo.Update(ctx, pkg)
}

func (s *safariService) ListPackages(ctx context.Context, status, query string) ([]domain.SafariPackage, error) {
	packages, err := s.safariRepo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	return utils.FilterByQuery(packages, query, func(p domain.SafariPackage) []string {
		return []string{p.Title, p.Destination, strconv.Itoa(int(p.DurationDays))}
	}), nil
}
