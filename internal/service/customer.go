package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"savannacars-backend/internal/domain"
	"savannacars-backend/internal/repository"
	"savannacars-backend/internal/storage"
	"savannacars-backend/internal/utils"
)

const kycUploadURLExpiry = 15 * time.Minute
const kycDownloadURLExpiry = 1 * time.Hour

var ErrUnknownDocumentType = errors.New("document type must be id or license")

type customerService struct {
	customerRepo repository.CustomerRepository
	bookingRepo  repository.BookingRepository
	storage      storage.StorageInterface
}

func NewCustomerService(
	customerRepo repository.CustomerRepository,
	bookingRepo repository.BookingRepository,
	storageSvc storage.StorageInterface,
) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		bookingRepo:  bookingRepo,
		storage:      storageSvc,
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	if customer.Name == "" || customer.Phone == "" {
		return errors.New("customer name and phone are required")
	}
	if customer.BaseTrustScore == 0 {
		customer.BaseTrustScore = 100
	}
	return s.customerRepo.Create(ctx, customer)
}

func (s *customerService) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	if _, err := s.customerRepo.GetByID(ctx, customer.ID); err != nil {
		return err
	}
	return s.customerRepo.Update(ctx, customer)
}

// GetCustomer loads the customer together with their booking history and
// derives the CRM stats. The stats are computed on read, never stored.
func (s *customerService) GetCustomer(ctx context.Context, id int32) (*domain.CustomerWithStats, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookingRepo.ListByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	customer.Bookings = bookings

	return &domain.CustomerWithStats{
		Customer: *customer,
		Stats:    utils.ComputeCustomerStats(customer),
	}, nil
}

func (s *customerService) ListCustomers(ctx context.Context, query string) ([]domain.CustomerWithStats, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CustomerWithStats, 0, len(customers))
	for i := range customers {
		bookings, err := s.bookingRepo.ListByCustomer(ctx, customers[i].ID)
		if err != nil {
			return nil, err
		}
		customers[i].Bookings = bookings
		result = append(result, domain.CustomerWithStats{
			Customer: customers[i],
			Stats:    utils.ComputeCustomerStats(&customers[i]),
		})
	}

	return utils.FilterByQuery(result, query, func(c domain.CustomerWithStats) []string {
		return []string{c.Name, c.Email, c.Phone, c.IDNumber}
	}), nil
}

// RequestKYCUpload hands the client a presigned URL so the document bytes
// never pass through the API server. The record is only updated once the
// upload is confirmed.
func (s *customerService) RequestKYCUpload(ctx context.Context, customerID int32, docType, contentType string) (string, string, error) {
	if err := validateDocType(docType); err != nil {
		return "", "", err
	}
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return "", "", err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := storage.KYCDocumentKey(customerID, docType, "")
	uploadURL, err := s.storage.GeneratePresignedUploadURL(ctx, key, contentType, kycUploadURLExpiry)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate upload URL: %w", err)
	}
	return uploadURL, key, nil
}

// ConfirmKYCUpload verifies the object landed in storage, records the key
// on the customer and returns the refreshed record. Verification flips to
// verified automatically once both documents are on file.
func (s *customerService) ConfirmKYCUpload(ctx context.Context, customerID int32, docType string) (*domain.CustomerWithStats, error) {
	if err := validateDocType(docType); err != nil {
		return nil, err
	}

	key := storage.KYCDocumentKey(customerID, docType, "")
	exists, size, err := s.storage.FileExists(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to check uploaded document: %w", err)
	}
	if !exists || size == 0 {
		return nil, errors.New("document was not uploaded")
	}

	if err := s.customerRepo.SetKYCDocument(ctx, customerID, docType, key); err != nil {
		return nil, err
	}
	return s.GetCustomer(ctx, customerID)
}

func (s *customerService) GetKYCDownloadURL(ctx context.Context, customerID int32, docType string) (string, error) {
	if err := validateDocType(docType); err != nil {
		return "", err
	}
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return "", err
	}

	key := customer.IDImageURL
	if docType == "license" {
		key = customer.LicenseImageURL
	}
	if key == "" {
		return "", errors.New("document not on file")
	}
	return s.storage.GeneratePresignedDownloadURL(ctx, key, kycDownloadURLExpiry)
}

func validateDocType(docType string) error {
	if docType != "id" && docType != "license" {
		return ErrUnknownDocumentType
	}
	return nil
}
