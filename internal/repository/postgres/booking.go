package postgres

import (
	"context"
	"database/sql"
	"time"

	"savannacars-backend/internal/domain"
	"savannacars-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// bookingColumns are the columns of the joined booking read used by every
// SELECT in this repository. Dates are cast to text so they travel as plain
// yyyy-mm-dd strings.
const bookingColumns = `b.id, b.reference, b.customer_id, b.unit_id, b.start_date::text, b.end_date::text,
	b.daily_rate_cents, b.total_cost_cents, b.status, b.payment_status, b.pickup_location, b.notes,
	b.created_on::text, b.updated_on::text,
	c.name, c.phone, c.email, c.id_number, c.base_trust_score, c.id_image_url, c.license_image_url,
	u.model_id, u.plate, u.color, u.status,
	m.make, m.name, m.year, m.daily_rate_cents`

const bookingJoins = ` FROM bookings b
	JOIN customers c ON c.id = b.customer_id
	JOIN units u ON u.id = b.unit_id
	JOIN models m ON m.id = u.model_id`

func scanJoinedBooking(row interface{ Scan(...any) error }) (*domain.Booking, error) {
	b := &domain.Booking{Customer: &domain.Customer{}, Unit: &domain.Unit{Model: &domain.Model{}}}
	err := row.Scan(
		&b.ID, &b.Reference, &b.CustomerID, &b.UnitID, &b.StartDate, &b.EndDate,
		&b.DailyRateCents, &b.TotalCostCents, &b.Status, &b.PaymentStatus, &b.PickupLocation, &b.Notes,
		&b.CreatedOn, &b.UpdatedOn,
		&b.Customer.Name, &b.Customer.Phone, &b.Customer.Email, &b.Customer.IDNumber,
		&b.Customer.BaseTrustScore, &b.Customer.IDImageURL, &b.Customer.LicenseImageURL,
		&b.Unit.ModelID, &b.Unit.Plate, &b.Unit.Color, &b.Unit.Status,
		&b.Unit.Model.Make, &b.Unit.Model.Name, &b.Unit.Model.Year, &b.Unit.Model.DailyRateCents,
	)
	if err != nil {
		return nil, err
	}
	b.Customer.ID = b.CustomerID
	b.Unit.ID = b.UnitID
	b.Unit.Model.ID = b.Unit.ModelID
	return b, nil
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (reference, customer_id, unit_id, start_date, end_date, daily_rate_cents, total_cost_cents, status, payment_status, pickup_location, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		b.Reference, b.CustomerID, b.UnitID, b.StartDate, b.EndDate,
		b.DailyRateCents, b.TotalCostCents, b.Status, b.PaymentStatus,
		b.PickupLocation, b.Notes, time.Now(), time.Now(),
	).Scan(&b.ID)
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingJoins + ` WHERE b.id = $1`
	return scanJoinedBooking(r.db.QueryRowContext(ctx, query, id))
}

func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings SET start_date=$1, end_date=$2, total_cost_cents=$3, status=$4, payment_status=$5, pickup_location=$6, notes=$7, updated_on=$8 WHERE id=$9`
	_, err := r.db.ExecContext(ctx, query, b.StartDate, b.EndDate, b.TotalCostCents, b.Status, b.PaymentStatus, b.PickupLocation, b.Notes, time.Now(), b.ID)
	return err
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus, paymentStatus domain.PaymentStatus) error {
	query := `UPDATE bookings SET status=$1, payment_status=$2, updated_on=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, status, paymentStatus, time.Now(), id)
	return err
}

func (r *bookingRepository) List(ctx context.Context, status string) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingJoins
	args := []interface{}{}
	if status != "" {
		query += ` WHERE b.status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY b.created_on DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanJoinedBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Booking, error) {
	query := `SELECT id, reference, customer_id, unit_id, start_date::text, end_date::text, daily_rate_cents, total_cost_cents, status, payment_status, pickup_location, notes, created_on::text, updated_on::text
	          FROM bookings WHERE customer_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.Reference, &b.CustomerID, &b.UnitID, &b.StartDate, &b.EndDate, &b.DailyRateCents, &b.TotalCostCents, &b.Status, &b.PaymentStatus, &b.PickupLocation, &b.Notes, &b.CreatedOn, &b.UpdatedOn); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) CountOverlapping(ctx context.Context, unitID int32, startDate, endDate string, excludeID int32) (int32, error) {
	query := `SELECT count(*) FROM bookings
	          WHERE unit_id = $1 AND status <> 'cancelled' AND id <> $2
	            AND start_date <= $4 AND end_date >= $3`
	var count int32
	err := r.db.QueryRowContext(ctx, query, unitID, excludeID, startDate, endDate).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *bookingRepository) ExtendEndDate(ctx context.Context, id int32, newEndDate string, addedCostCents int32) error {
	query := `UPDATE bookings SET end_date=$1, total_cost_cents = total_cost_cents + $2, updated_on=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, newEndDate, addedCostCents, time.Now(), id)
	return err
}

func (r *bookingRepository) ListStartingOnOrBefore(ctx context.Context, date string, status domain.BookingStatus) ([]domain.Booking, error) {
	return r.listPlain(ctx, `SELECT `+plainBookingColumns+` FROM bookings WHERE start_date <= $1 AND status = $2`, date, status)
}

func (r *bookingRepository) ListEndedBefore(ctx context.Context, date string, status domain.BookingStatus) ([]domain.Booking, error) {
	return r.listPlain(ctx, `SELECT `+plainBookingColumns+` FROM bookings WHERE end_date < $1 AND status = $2`, date, status)
}

func (r *bookingRepository) ListEndingOn(ctx context.Context, date string) ([]domain.Booking, error) {
	return r.listPlain(ctx, `SELECT `+plainBookingColumns+` FROM bookings WHERE end_date = $1 AND status = 'active'`, date)
}

func (r *bookingRepository) ListCreatedOn(ctx context.Context, date string) ([]domain.Booking, error) {
	return r.listPlain(ctx, `SELECT `+plainBookingColumns+` FROM bookings WHERE created_on::date = $1`, date)
}

const plainBookingColumns = `id, reference, customer_id, unit_id, start_date::text, end_date::text, daily_rate_cents, total_cost_cents, status, payment_status, pickup_location, notes, created_on::text, updated_on::text`

func (r *bookingRepository) listPlain(ctx context.Context, query string, args ...interface{}) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.Reference, &b.CustomerID, &b.UnitID, &b.StartDate, &b.EndDate, &b.DailyRateCents, &b.TotalCostCents, &b.Status, &b.PaymentStatus, &b.PickupLocation, &b.Notes, &b.CreatedOn, &b.UpdatedOn); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
