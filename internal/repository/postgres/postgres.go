package postgres

import (
	"database/sql"

	"savannacars-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.BookingRepository
	repository.CustomerRepository
	repository.FleetRepository
	repository.JobPostingRepository
	repository.SafariRepository
	repository.SettingsRepository
	repository.UserRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		BookingRepository:      NewBookingRepository(db),
		CustomerRepository:     NewCustomerRepository(db),
		FleetRepository:        NewFleetRepository(db),
		JobPostingRepository:   NewJobPostingRepository(db),
		SafariRepository:       NewSafariRepository(db),
		SettingsRepository:     NewSettingsRepository(db),
		UserRepository:         NewUserRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
