package repository

import (
	"context"

	"savannacars-backend/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus, paymentStatus domain.PaymentStatus) error
	// List returns bookings joined with their customer and unit rows. An
	// empty status fetches the full collection.
	List(ctx context.Context, status string) ([]domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID int32) ([]domain.Booking, error)
	// CountOverlapping counts non-cancelled bookings for the unit whose
	// period overlaps [startDate, endDate], excluding excludeID (the booking
	// being extended; 0 excludes nothing).
	CountOverlapping(ctx context.Context, unitID int32, startDate, endDate string, excludeID int32) (int32, error)
	// ExtendEndDate moves the booking's end date and adds the extension
	// cost to its total in a single statement.
	ExtendEndDate(ctx context.Context, id int32, newEndDate string, addedCostCents int32) error
	ListStartingOnOrBefore(ctx context.Context, date string, status domain.BookingStatus) ([]domain.Booking, error)
	ListEndedBefore(ctx context.Context, date string, status domain.BookingStatus) ([]domain.Booking, error)
	ListEndingOn(ctx context.Context, date string) ([]domain.Booking, error)
	ListCreatedOn(ctx context.Context, date string) ([]domain.Booking, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	List(ctx context.Context) ([]domain.Customer, error)
	SetKYCDocument(ctx context.Context, id int32, docType, url string) error
}

type FleetRepository interface {
	CreateModel(ctx context.Context, model *domain.Model) error
	GetModel(ctx context.Context, id int32) (*domain.Model, error)
	UpdateModel(ctx context.Context, model *domain.Model) error
	ListModels(ctx context.Context) ([]domain.Model, error)

	CreateUnit(ctx context.Context, unit *domain.Unit) error
	GetUnit(ctx context.Context, id int32) (*domain.Unit, error)
	UpdateUnit(ctx context.Context, unit *domain.Unit) error
	UpdateUnitStatus(ctx context.Context, id int32, status domain.UnitStatus) error
	ListUnits(ctx context.Context, status string) ([]domain.Unit, error)
}

type JobPostingRepository interface {
	Create(ctx context.Context, job *domain.JobPosting) error
	GetByID(ctx context.Context, id int32) (*domain.JobPosting, error)
	Update(ctx context.Context, job *domain.JobPosting) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, status string) ([]domain.JobPosting, error)
}

type SafariRepository interface {
	Create(ctx context.Context, pkg *domain.SafariPackage) error
	GetByID(ctx context.Context, id int32) (*domain.SafariPackage, error)
	Update(ctx context.Context, pkg *domain.SafariPackage) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, status string) ([]domain.SafariPackage, error)
}

type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SiteSettings, error)
	Update(ctx context.Context, settings *domain.SiteSettings) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
