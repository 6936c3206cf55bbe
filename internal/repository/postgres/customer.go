package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"savannacars-backend/internal/domain"
	"savannacars-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `id, name, phone, email, id_number, base_trust_score, id_image_url, license_image_url, created_on::text, updated_on::text`

func scanCustomer(row interface{ Scan(...any) error }) (*domain.Customer, error) {
	c := &domain.Customer{}
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.IDNumber, &c.BaseTrustScore, &c.IDImageURL, &c.LicenseImageURL, &c.CreatedOn, &c.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (name, phone, email, id_number, base_trust_score, id_image_url, license_image_url, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.Name, c.Phone, c.Email, c.IDNumber, c.BaseTrustScore, c.IDImageURL, c.LicenseImageURL, time.Now(), time.Now()).Scan(&c.ID)
}

func (r *customerRepository) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	return scanCustomer(r.db.QueryRowContext(ctx, query, id))
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`
	return scanCustomer(r.db.QueryRowContext(ctx, query, email))
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET name=$1, phone=$2, email=$3, id_number=$4, base_trust_score=$5, updated_on=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, c.Name, c.Phone, c.Email, c.IDNumber, c.BaseTrustScore, time.Now(), c.ID)
	return err
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}

func (r *customerRepository) SetKYCDocument(ctx context.Context, id int32, docType, url string) error {
	var column string
	switch docType {
	case "id":
		column = "id_image_url"
	case "license":
		column = "license_image_url"
	default:
		return fmt.Errorf("unknown KYC document type: %s", docType)
	}
	query := fmt.Sprintf(`UPDATE customers SET %s=$1, updated_on=$2 WHERE id=$3`, column)
	_, err := r.db.ExecContext(ctx, query, url, time.Now(), id)
	return err
}
