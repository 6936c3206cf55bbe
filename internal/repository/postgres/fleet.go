package postgres

import (
	"context"
	"database/sql"
	"time"

	"savannacars-backend/internal/domain"
	"savannacars-backend/internal/repository"
)

type fleetRepository struct {
	db *sql.DB
}

func NewFleetRepository(db *sql.DB) repository.FleetRepository {
	return &fleetRepository{db: db}
}

func (r *fleetRepository) CreateModel(ctx context.Context, m *domain.Model) error {
	query := `INSERT INTO models (make, name, year, category, seats, transmission, daily_rate_cents, image_url, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRowContext(ctx, query, m.Make, m.Name, m.Year, m.Category, m.Seats, m.Transmission, m.DailyRateCents, m.ImageURL, time.Now(), time.Now()).Scan(&m.ID)
}

func (r *fleetRepository) GetModel(ctx context.Context, id int32) (*domain.Model, error) {
	m := &domain.Model{}
	query := `SELECT id, make, name, year, category, seats, transmission, daily_rate_cents, image_url, created_on::text, updated_on::text FROM models WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Make, &m.Name, &m.Year, &m.Category, &m.Seats, &m.Transmission, &m.DailyRateCents, &m.ImageURL, &m.CreatedOn, &m.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *fleetRepository) UpdateModel(ctx context.Context, m *domain.Model) error {
	query := `UPDATE models SET make=$1, name=$2, year=$3, category=$4, seats=$5, transmission=$6, daily_rate_cents=$7, image_url=$8, updated_on=$9 WHERE id=$10`
	_, err := r.db.ExecContext(ctx, query, m.Make, m.Name, m.Year, m.Category, m.Seats, m.Transmission, m.DailyRateCents, m.ImageURL, time.Now(), m.ID)
	return err
}

func (r *fleetRepository) ListModels(ctx context.Context) ([]domain.Model, error) {
	query := `SELECT id, make, name, year, category, seats, transmission, daily_rate_cents, image_url, created_on::text, updated_on::text FROM models ORDER BY make, name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var models []domain.Model
	for rows.Next() {
		var m domain.Model
		if err := rows.Scan(&m.ID, &m.Make, &m.Name, &m.Year, &m.Category, &m.Seats, &m.Transmission, &m.DailyRateCents, &m.ImageURL, &m.CreatedOn, &m.UpdatedOn); err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return models, rows.Err()
}

const unitColumns = `u.id, u.model_id, u.plate, u.color, u.mileage, u.status, u.image_url, u.created_on::text, u.updated_on::text,
	m.make, m.name, m.year, m.category, m.seats, m.transmission, m.daily_rate_cents`

func scanUnit(row interface{ Scan(...any) error }) (*domain.Unit, error) {
	u := &domain.Unit{Model: &domain.Model{}}
	err := row.Scan(
		&u.ID, &u.ModelID, &u.Plate, &u.Color, &u.Mileage, &u.Status, &u.ImageURL, &u.CreatedOn, &u.UpdatedOn,
		&u.Model.Make, &u.Model.Name, &u.Model.Year, &u.Model.Category, &u.Model.Seats, &u.Model.Transmission, &u.Model.DailyRateCents,
	)
	if err != nil {
		return nil, err
	}
	u.Model.ID = u.ModelID
	return u, nil
}

func (r *fleetRepository) CreateUnit(ctx context.Context, u *domain.Unit) error {
	query := `INSERT INTO units (model_id, plate, color, mileage, status, image_url, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, u.ModelID, u.Plate, u.Color, u.Mileage, u.Status, u.ImageURL, time.Now(), time.Now()).Scan(&u.ID)
}

func (r *fleetRepository) GetUnit(ctx context.Context, id int32) (*domain.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units u JOIN models m ON m.id = u.model_id WHERE u.id = $1`
	return scanUnit(r.db.QueryRowContext(ctx, query, id))
}

func (r *fleetRepository) UpdateUnit(ctx context.Context, u *domain.Unit) error {
	query := `UPDATE units SET model_id=$1, plate=$2, color=$3, mileage=$4, status=$5, image_url=$6, updated_on=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, u.ModelID, u.Plate, u.Color, u.Mileage, u.Status, u.ImageURL, time.Now(), u.ID)
	return err
}

func (r *fleetRepository) UpdateUnitStatus(ctx context.Context, id int32, status domain.UnitStatus) error {
	query := `UPDATE units SET status=$1, updated_on=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	return err
}

func (r *fleetRepository) ListUnits(ctx context.Context, status string) ([]domain.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units u JOIN models m ON m.id = u.model_id`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE u.status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY u.plate`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []domain.Unit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		units = append(units, *u)
	}
	return units, rows.Err()
}
