package service

import (
	"context"
	"errors"

	"savannacars-backend/internal/domain"
	"savannacars-backend/internal/repository"
	"savannacars-backend/internal/utils"
)

type careerService struct {
	jobRepo repository.JobPostingRepository
}

func NewCareerService(jobRepo repository.JobPostingRepository) CareerService {
	return &careerService{jobRepo: jobRepo}
}

func (s *careerService) CreateJobPosting(ctx context.Context, job *domain.JobPosting) error {
	if job.Title == "" {
		return errors.New("job title is required")
	}
	if job.Status == "" {
		job.Status = domain.ListingStatusDraft
	}
	return s.jobRepo.Create(ctx, job)
}

func (s *careerService) GetJobPosting(ctx context.Context, id int32) (*domain.JobPosting, error) {
	return s.jobRepo.GetByID(ctx, id)
}

func (s *careerService) UpdateJobPosting(ctx context.Context, job *domain.JobPosting) error {
	if _, err := s.jobRepo.GetByID(ctx, job.ID); err != nil {
		return err
	}
	return s.jobRepo.Update(ctx, job)
}

func (s *careerService) DeleteJobPosting(ctx context.Context, id int32) error {
	return s.jobRepo.Delete(ctx, id)
}

func (s *careerService) SetJobPostingStatus(ctx context.Context, id int32, status domain.ListingStatus) error {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	job.Status = status
	return s.jobRepo.Update(ctx, job)
}

func (s *careerService) ListJobPostings(ctx context.Context, status, query string) ([]domain.JobPosting, error) {
	jobs, err := s.jobRepo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	return utils.FilterByQuery(jobs, query, func(j domain.JobPosting) []string {
		return []string{j.Title, j.Department, j.Location, j.Type}
	}), nil
}
