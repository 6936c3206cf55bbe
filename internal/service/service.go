package service

import (
	"context"

	"savannacars-backend/internal/domain"
	"savannacars-backend/internal/utils"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, string, *domain.User, error) // access, refresh, user
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, customerID, unitID int32, startDate, endDate, pickupLocation, notes string) (*domain.Booking, error)
	GetBooking(ctx context.Context, id int32) (*domain.Booking, error)
	// ListBookings pushes the status predicate to the store and applies the
	// text query as a case-insensitive substring filter over the joined
	// customer name, vehicle name and plate.
	ListBookings(ctx context.Context, status, query string) ([]domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int32, status domain.BookingStatus, paymentStatus domain.PaymentStatus) error
	CancelBooking(ctx context.Context, id int32) error

	// QuoteExtension prices a candidate new end date without side effects.
	QuoteExtension(ctx context.Context, bookingID int32, candidateEndDate string) (utils.ExtensionQuote, error)
	// ExtendBooking drives the extension wizard end to end: availability
	// check, payment, then persistence of the new end date and added cost.
	ExtendBooking(ctx context.Context, bookingID int32, newEndDate, paymentMethod string) (*domain.Booking, error)
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
	// GetCustomer loads the customer with bookings and derives the CRM
	// stats; the derived fields are never written back.
	GetCustomer(ctx context.Context, id int32) (*domain.CustomerWithStats, error)
	ListCustomers(ctx context.Context, query string) ([]domain.CustomerWithStats, error)

	RequestKYCUpload(ctx context.Context, customerID int32, docType, contentType string) (uploadURL string, key string, err error)
	ConfirmKYCUpload(ctx context.Context, customerID int32, docType string) (*domain.CustomerWithStats, error)
	GetKYCDownloadURL(ctx context.Context, customerID int32, docType string) (string, error)
}

type FleetService interface {
	CreateModel(ctx context.Context, model *domain.Model) error
	UpdateModel(ctx context.Context, model *domain.Model) error
	ListModels(ctx context.Context) ([]domain.Model, error)

	CreateUnit(ctx context.Context, unit *domain.Unit) error
	GetUnit(ctx context.Context, id int32) (*domain.Unit, error)
	UpdateUnit(ctx context.Context, unit *domain.Unit) error
	ListUnits(ctx context.Context, status, query string) ([]domain.Unit, error)
}

type CareerService interface {
	CreateJobPosting(ctx context.Context, job *domain.JobPosting) error
	GetJobPosting(ctx context.Context, id int32) (*domain.JobPosting, error)
	UpdateJobPosting(ctx context.Context, job *domain.JobPosting) error
	DeleteJobPosting(ctx context.Context, id int32) error
	SetJobPostingStatus(ctx context.Context, id int32, status domain.ListingStatus) error
	ListJobPostings(ctx context.Context, status, query string) ([]domain.JobPosting, error)
}

type SafariService interface {
	CreatePackage(ctx context.Context, pkg *domain.SafariPackage) error
	GetPackage(ctx context.Context, id int32) (*domain.SafariPackage, error)
	UpdatePackage(ctx context.Context, pkg *domain.SafariPackage) error
	DeletePackage(ctx context.Context, id int32) error
	SetPackageStatus(ctx context.Context, id int32, status domain.ListingStatus) error
	ListPackages(ctx context.Context, status, query string) ([]domain.SafariPackage, error)
}

type SettingsService interface {
	GetSettings(ctx context.Context) (*domain.SiteSettings, error)
	UpdateSettings(ctx context.Context, settings *domain.SiteSettings) error
}

type NotificationService interface {
	ListNotifications(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkNotificationRead(ctx context.Context, id, userID int32) error
}

type ReceiptService interface {
	RenderBookingReceipt(ctx context.Context, bookingID int32) ([]byte, string, error) // pdf bytes, filename
}

type EmailService interface {
	SendBookingConfirmation(ctx context.Context, to, name, vehicle, startDate, endDate, amount string) error
	SendExtensionConfirmation(ctx context.Context, to, name, vehicle, newEndDate, amount string) error
	SendReturnReminder(ctx context.Context, to, name, vehicle, endDate string) error
	SendDailySummary(ctx context.Context, to string, bookings, revenueFormatted string) error
}

type SMSService interface {
	SendReturnReminder(ctx context.Context, phone, vehicle, endDate string) error
}
