package postgres

import (
	"context"
	"database/sql"
	"time"

	"savannacars-backend/internal/domain"
	"savannacars-backend/internal/repository"
)

type jobPostingRepository struct {
	db *sql.DB
}

func NewJobPostingRepository(db *sql.DB) repository.JobPostingRepository {
	return &jobPostingRepository{db: db}
}

func (r *jobPostingRepository) Create(ctx context.Context, j *domain.JobPosting) error {
	query := `INSERT INTO job_postings (title, department, location, type, description, requirements, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRowContext(ctx, query, j.Title, j.Department, j.Location, j.Type, j.Description, j.Requirements, j.Status, time.Now(), time.Now()).Scan(&j.ID)
}

func (r *jobPostingRepository) GetByID(ctx context.Context, id int32) (*domain.JobPosting, error) {
	j := &domain.JobPosting{}
	query := `SELECT id, title, department, location, type, description, requirements, status, created_on::text, updated_on::text FROM job_postings WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&j.ID, &j.Title, &j.Department, &j.Location, &j.Type, &j.Description, &j.Requirements, &j.Status, &j.CreatedOn, &j.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (r *jobPostingRepository) Update(ctx context.Context, j *domain.JobPosting) error {
	query := `UPDATE job_postings SET title=$1, department=$2, location=$3, type=$4, description=$5, requirements=$6, status=$7, updated_on=$8 WHERE id=$9`
	_, err := r.db.ExecContext(ctx, query, j.Title, j.Department, j.Location, j.Type, j.Description, j.Requirements, j.Status, time.Now(), j.ID)
	return err
}

func (r *jobPostingRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	return err
}

func (r *jobPostingRepository) List(ctx context.Context, status string) ([]domain.JobPosting, error) {
	query := `SELECT id, title, department, location, type, description, requirements, status, created_on::text, updated_on::text FROM job_postings`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_on DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.JobPosting
	for rows.Next() {
		var j domain.JobPosting
		if err := rows.Scan(&j.ID, &j.Title, &j.Department, &j.Location, &j.Type, &j.Description, &j.Requirements, &j.Status, &j.CreatedOn, &j.UpdatedOn); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

type safariRepository struct {
	db *sql.DB
}

func NewSafariRepository(db *sql.DB) repository.SafariRepository {
	return &safariRepository{db: db}
}

func (r *safariRepository) Create(ctx context.Context, p *domain.SafariPackage) error {
	query := `INSERT INTO safari_packages (title, destination, duration_days, price_per_person_cents, description, highlights, image_url, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.Title, p.Destination, p.DurationDays, p.PricePerPerson, p.Description, p.Highlights, p.ImageURL, p.Status, time.Now(), time.Now()).Scan(&p.ID)
}

func (r *safariRepository) GetByID(ctx context.Context, id int32) (*domain.SafariPackage, error) {
	p := &domain.SafariPackage{}
	query := `SELECT id, title, destination, duration_days, price_per_person_cents, description, highlights, image_url, status, created_on::text, updated_on::text FROM safari_packages WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Title, &p.Destination, &p.DurationDays, &p.PricePerPerson, &p.Description, &p.Highlights, &p.ImageURL, &p.Status, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *safariRepository) Update(ctx context.Context, p *domain.SafariPackage) error {
	query := `UPDATE safari_packages SET title=$1, destination=$2, duration_days=$3, price_per_person_cents=$4, description=$5, highlights=$6, image_url=$7, status=$8, updated_on=$9 WHERE id=$10`
	_, err := r.db.ExecContext(ctx, query, p.Title, p.Destination, p.DurationDays, p.PricePerPerson, p.Description, p.Highlights, p.ImageURL, p.Status, time.Now(), p.ID)
	return err
}

func (r *safariRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM safari_packages WHERE id = $1`, id)
	return err
}

func (r *safariRepository) List(ctx context.Context, status string) ([]domain.SafariPackage, error) {
	query := `SELECT id, title, destination, duration_days, price_per_person_cents, description, highlights, image_url, status, created_on::text, updated_on::text FROM safari_packages`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_on DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pkgs []domain.SafariPackage
	for rows.Next() {
		var p domain.SafariPackage
		if err := rows.Scan(&p.ID, &p.Title, &p.Destination, &p.DurationDays, &p.PricePerPerson, &p.Description, &p.Highlights, &p.ImageURL, &p.Status, &p.CreatedOn, &p.UpdatedOn); err != nil {
			return nil, err
		}
		pkgs = append(pkgs, p)
	}
	return pkgs, rows.Err()
}
