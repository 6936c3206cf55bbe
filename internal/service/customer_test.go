package service

import (
	"context"
	"io"
	"testing"
	"time"

	"savannacars-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) GeneratePresignedUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error) {
	args := m.Called(ctx, key, contentType, expiresIn)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) GeneratePresignedDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	args := m.Called(ctx, key, expiresIn)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) FileExists(ctx context.Context, key string) (bool, int64, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockStorage) DeleteFile(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockStorage) SaveFile(key string, reader io.Reader) error {
	args := m.Called(key, reader)
	return args.Error(0)
}

func (m *MockStorage) ReadFile(key string) (io.ReadCloser, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func TestCustomerService_GetCustomerStats(t *testing.T) {
	ctx := context.Background()
	customerRepo := new(MockCustomerRepo)
	bookingRepo := new(MockBookingRepo)
	svc := NewCustomerService(customerRepo, bookingRepo, new(MockStorage))

	customer := &domain.Customer{
		ID:              5,
		Name:            "John Smith",
		BaseTrustScore:  100,
		IDImageURL:      "customers/5/id",
		LicenseImageURL: "customers/5/license",
	}
	bookings := []domain.Booking{
		{ID: 1, TotalCostCents: 3000000, Status: domain.BookingStatusCompleted},
		{ID: 2, TotalCostCents: 4000000, Status: domain.BookingStatusCompleted},
		{ID: 3, TotalCostCents: 2000000, Status: domain.BookingStatusActive},
		{ID: 4, TotalCostCents: 5000000, Status: domain.BookingStatusCancelled},
	}

	customerRepo.On("GetByID", ctx, int32(5)).Return(customer, nil).Once()
	bookingRepo.On("ListByCustomer", ctx, int32(5)).Return(bookings, nil).Once()

	got, err := svc.GetCustomer(ctx, 5)
	assert.NoError(t, err)
	assert.Equal(t, int32(9000000), got.Stats.TotalSpentCents) // cancelled excluded
	assert.Equal(t, int32(4), got.Stats.RentalsCount)          // cancelled included
	assert.Equal(t, int32(1), got.Stats.CancelledCount)
	assert.Equal(t, int32(86), got.Stats.TrustScore) // 100 + 2*3 - 20*1
	assert.Equal(t, domain.KYCStatusVerified, got.Stats.KYCStatus)
	assert.Len(t, got.Bookings, 4)
}

func TestCustomerService_ListCustomersFilter(t *testing.T) {
	ctx := context.Background()
	customerRepo := new(MockCustomerRepo)
	bookingRepo := new(MockBookingRepo)
	svc := NewCustomerService(customerRepo, bookingRepo, new(MockStorage))

	customerRepo.On("List", ctx).Return([]domain.Customer{
		{ID: 1, Name: "John Smith", Phone: "0711"},
		{ID: 2, Name: "Mary Wanjiku", Phone: "0722"},
	}, nil).Once()
	bookingRepo.On("ListByCustomer", ctx, int32(1)).Return([]domain.Booking{}, nil).Once()
	bookingRepo.On("ListByCustomer", ctx, int32(2)).Return([]domain.Booking{}, nil).Once()

	got, err := svc.ListCustomers(ctx, "jo")
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "John Smith", got[0].Name)
	assert.Equal(t, domain.KYCStatusPending, got[0].Stats.KYCStatus)
}

func TestCustomerService_KYCFlow(t *testing.T) {
	ctx := context.Background()

	t.Run("RequestUpload", func(t *testing.T) {
		customerRepo := new(MockCustomerRepo)
		storageSvc := new(MockStorage)
		svc := NewCustomerService(customerRepo, new(MockBookingRepo), storageSvc)

		customerRepo.On("GetByID", ctx, int32(5)).Return(&domain.Customer{ID: 5}, nil).Once()
		storageSvc.On("GeneratePresignedUploadURL", ctx, "customers/5/id", "image/jpeg", kycUploadURLExpiry).
			Return("https://storage.test/upload", nil).Once()

		url, key, err := svc.RequestKYCUpload(ctx, 5, "id", "image/jpeg")
		assert.NoError(t, err)
		assert.Equal(t, "https://storage.test/upload", url)
		assert.Equal(t, "customers/5/id", key)
	})

	t.Run("UnknownDocType", func(t *testing.T) {
		svc := NewCustomerService(new(MockCustomerRepo), new(MockBookingRepo), new(MockStorage))

		_, _, err := svc.RequestKYCUpload(ctx, 5, "passport", "image/jpeg")
		assert.ErrorIs(t, err, ErrUnknownDocumentType)
	})

	t.Run("ConfirmUpload", func(t *testing.T) {
		customerRepo := new(MockCustomerRepo)
		bookingRepo := new(MockBookingRepo)
		storageSvc := new(MockStorage)
		svc := NewCustomerService(customerRepo, bookingRepo, storageSvc)

		storageSvc.On("FileExists", ctx, "customers/5/license").Return(true, int64(2048), nil).Once()
		customerRepo.On("SetKYCDocument", ctx, int32(5), "license", "customers/5/license").Return(nil).Once()
		customerRepo.On("GetByID", ctx, int32(5)).Return(&domain.Customer{
			ID:              5,
			IDImageURL:      "customers/5/id",
			LicenseImageURL: "customers/5/license",
		}, nil).Once()
		bookingRepo.On("ListByCustomer", ctx, int32(5)).Return([]domain.Booking{}, nil).Once()

		got, err := svc.ConfirmKYCUpload(ctx, 5, "license")
		assert.NoError(t, err)
		assert.Equal(t, domain.KYCStatusVerified, got.Stats.KYCStatus)
		customerRepo.AssertExpectations(t)
	})

	t.Run("ConfirmMissingUpload", func(t *testing.T) {
		customerRepo := new(MockCustomerRepo)
		storageSvc := new(MockStorage)
		svc := NewCustomerService(customerRepo, new(MockBookingRepo), storageSvc)

		storageSvc.On("FileExists", ctx, "customers/5/id").Return(false, int64(0), nil).Once()

		_, err := svc.ConfirmKYCUpload(ctx, 5, "id")
		assert.Error(t, err)
		customerRepo.AssertNotCalled(t, "SetKYCDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
