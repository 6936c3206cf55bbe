package service

import (
	"context"

	"savannacars-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepo) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) Update(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus, paymentStatus domain.PaymentStatus) error {
	args := m.Called(ctx, id, status, paymentStatus)
	return args.Error(0)
}

func (m *MockBookingRepo) List(ctx context.Context, status string) ([]domain.Booking, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Booking, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) CountOverlapping(ctx context.Context, unitID int32, startDate, endDate string, excludeID int32) (int32, error) {
	args := m.Called(ctx, unitID, startDate, endDate, excludeID)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockBookingRepo) ExtendEndDate(ctx context.Context, id int32, newEndDate string, addedCostCents int32) error {
	args := m.Called(ctx, id, newEndDate, addedCostCents)
	return args.Error(0)
}

func (m *MockBookingRepo) ListStartingOnOrBefore(ctx context.Context, date string, status domain.BookingStatus) ([]domain.Booking, error) {
	args := m.Called(ctx, date, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) ListEndedBefore(ctx context.Context, date string, status domain.BookingStatus) ([]domain.Booking, error) {
	args := m.Called(ctx, date, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) ListEndingOn(ctx context.Context, date string) ([]domain.Booking, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) ListCreatedOn(ctx context.Context, date string) ([]domain.Booking, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepo) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepo) SetKYCDocument(ctx context.Context, id int32, docType, url string) error {
	args := m.Called(ctx, id, docType, url)
	return args.Error(0)
}

type MockFleetRepo struct {
	mock.Mock
}

func (m *MockFleetRepo) CreateModel(ctx context.Context, model *domain.Model) error {
	args := m.Called(ctx, model)
	return args.Error(0)
}

func (m *MockFleetRepo) GetModel(ctx context.Context, id int32) (*domain.Model, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Model), args.Error(1)
}

func (m *MockFleetRepo) UpdateModel(ctx context.Context, model *domain.Model) error {
	args := m.Called(ctx, model)
	return args.Error(0)
}

func (m *MockFleetRepo) ListModels(ctx context.Context) ([]domain.Model, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Model), args.Error(1)
}

func (m *MockFleetRepo) CreateUnit(ctx context.Context, unit *domain.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

func (m *MockFleetRepo) GetUnit(ctx context.Context, id int32) (*domain.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Unit), args.Error(1)
}

func (m *MockFleetRepo) UpdateUnit(ctx context.Context, unit *domain.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

func (m *MockFleetRepo) UpdateUnitStatus(ctx context.Context, id int32, status domain.UnitStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockFleetRepo) ListUnits(ctx context.Context, status string) ([]domain.Unit, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Unit), args.Error(1)
}

type MockSettingsRepo struct {
	mock.Mock
}

func (m *MockSettingsRepo) Get(ctx context.Context) (*domain.SiteSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SiteSettings), args.Error(1)
}

func (m *MockSettingsRepo) Update(ctx context.Context, settings *domain.SiteSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingConfirmation(ctx context.Context, to, name, vehicle, startDate, endDate, amount string) error {
	args := m.Called(ctx, to, name, vehicle, startDate, endDate, amount)
	return args.Error(0)
}

func (m *MockEmailService) SendExtensionConfirmation(ctx context.Context, to, name, vehicle, newEndDate, amount string) error {
	args := m.Called(ctx, to, name, vehicle, newEndDate, amount)
	return args.Error(0)
}

func (m *MockEmailService) SendReturnReminder(ctx context.Context, to, name, vehicle, endDate string) error {
	args := m.Called(ctx, to, name, vehicle, endDate)
	return args.Error(0)
}

func (m *MockEmailService) SendDailySummary(ctx context.Context, to string, bookings, revenueFormatted string) error {
	args := m.Called(ctx, to, bookings, revenueFormatted)
	return args.Error(0)
}

type MockAvailabilityChecker struct {
	mock.Mock
}

func (m *MockAvailabilityChecker) CheckAvailability(ctx context.Context, unitID int32, startDate, endDate string, excludeBookingID int32) (bool, error) {
	args := m.Called(ctx, unitID, startDate, endDate, excludeBookingID)
	return args.Bool(0), args.Error(1)
}

type MockPaymentProcessor struct {
	mock.Mock
}

func (m *MockPaymentProcessor) ChargeDifference(ctx context.Context, amountCents int32, method string) (*PaymentResult, error) {
	args := m.Called(ctx, amountCents, method)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PaymentResult), args.Error(1)
}
