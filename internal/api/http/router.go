package http

import (
	"net/http"

	"savannacars-backend/internal/security"
	"savannacars-backend/internal/service"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth         service.AuthService
	Bookings     service.BookingService
	Customers    service.CustomerService
	Fleet        service.FleetService
	Careers      service.CareerService
	Safaris      service.SafariService
	Settings     service.SettingsService
	Notification service.NotificationService
	Receipts     service.ReceiptService
	TokenManager security.TokenManager
}

// NewRouter builds the full API surface. Three tiers: public endpoints for
// the booking site, authenticated endpoints for the customer dashboard,
// and admin endpoints for the back office.
func NewRouter(h Handlers) *mux.Router {
	router := mux.NewRouter()
	authMW := NewAuthMiddleware(h.TokenManager)

	authHandler := NewAuthHandler(h.Auth)
	bookingHandler := NewBookingHandler(h.Bookings, h.Receipts)
	customerHandler := NewCustomerHandler(h.Customers)
	fleetHandler := NewFleetHandler(h.Fleet)
	careerHandler := NewCareerHandler(h.Careers)
	safariHandler := NewSafariHandler(h.Safaris)
	settingsHandler := NewSettingsHandler(h.Settings)
	noteHandler := NewNotificationHandler(h.Notification)

	api := router.PathPrefix("/api/v1").Subrouter()

	// Public: booking site.
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods("POST")
	api.HandleFunc("/fleet/models", fleetHandler.ListModels).Methods("GET")
	api.HandleFunc("/fleet/units", fleetHandler.ListUnits).Methods("GET")
	api.HandleFunc("/fleet/units/{id:[0-9]+}", fleetHandler.GetUnit).Methods("GET")
	api.HandleFunc("/careers", careerHandler.ListPublic).Methods("GET")
	api.HandleFunc("/careers/{id:[0-9]+}", careerHandler.Get).Methods("GET")
	api.HandleFunc("/safaris", safariHandler.ListPublic).Methods("GET")
	api.HandleFunc("/safaris/{id:[0-9]+}", safariHandler.Get).Methods("GET")
	api.HandleFunc("/settings/public", settingsHandler.GetPublic).Methods("GET")
	api.HandleFunc("/bookings", bookingHandler.Create).Methods("POST")
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	// Authenticated: customer dashboard.
	user := api.PathPrefix("").Subrouter()
	user.Use(authMW.Authenticate)
	user.HandleFunc("/auth/profile", authHandler.Profile).Methods("GET")
	user.HandleFunc("/bookings/{id:[0-9]+}", bookingHandler.Get).Methods("GET")
	user.HandleFunc("/bookings/{id:[0-9]+}/cancel", bookingHandler.Cancel).Methods("POST")
	user.HandleFunc("/bookings/{id:[0-9]+}/extension/quote", bookingHandler.QuoteExtension).Methods("POST")
	user.HandleFunc("/bookings/{id:[0-9]+}/extension", bookingHandler.Extend).Methods("POST")
	user.HandleFunc("/bookings/{id:[0-9]+}/receipt", bookingHandler.Receipt).Methods("GET")
	user.HandleFunc("/customers/{id:[0-9]+}/kyc/upload", customerHandler.RequestKYCUpload).Methods("POST")
	user.HandleFunc("/customers/{id:[0-9]+}/kyc/confirm", customerHandler.ConfirmKYCUpload).Methods("POST")
	user.HandleFunc("/notifications", noteHandler.List).Methods("GET")
	user.HandleFunc("/notifications/{id:[0-9]+}/read", noteHandler.MarkRead).Methods("POST")

	// Admin: back office.
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(authMW.Authenticate, authMW.RequireAdmin)
	admin.HandleFunc("/bookings", bookingHandler.List).Methods("GET")
	admin.HandleFunc("/bookings/{id:[0-9]+}/status", bookingHandler.UpdateStatus).Methods("PATCH")
	admin.HandleFunc("/customers", customerHandler.List).Methods("GET")
	admin.HandleFunc("/customers", customerHandler.Create).Methods("POST")
	admin.HandleFunc("/customers/{id:[0-9]+}", customerHandler.Get).Methods("GET")
	admin.HandleFunc("/customers/{id:[0-9]+}", customerHandler.Update).Methods("PUT")
	admin.HandleFunc("/customers/{id:[0-9]+}/kyc/download", customerHandler.KYCDownloadURL).Methods("GET")
	admin.HandleFunc("/fleet/models", fleetHandler.CreateModel).Methods("POST")
	admin.HandleFunc("/fleet/models/{id:[0-9]+}", fleetHandler.UpdateModel).Methods("PUT")
	admin.HandleFunc("/fleet/units", fleetHandler.CreateUnit).Methods("POST")
	admin.HandleFunc("/fleet/units/{id:[0-9]+}", fleetHandler.UpdateUnit).Methods("PUT")
	admin.HandleFunc("/careers", careerHandler.List).Methods("GET")
	admin.HandleFunc("/careers", careerHandler.Create).Methods("POST")
	admin.HandleFunc("/careers/{id:[0-9]+}", careerHandler.Update).Methods("PUT")
	admin.HandleFunc("/careers/{id:[0-9]+}/status", careerHandler.SetStatus).Methods("PATCH")
	admin.HandleFunc("/careers/{id:[0-9]+}", careerHandler.Delete).Methods("DELETE")
	admin.HandleFunc("/safaris", safariHandler.List).Methods("GET")
	admin.HandleFunc("/safaris", safariHandler.Create).Methods("POST")
	admin.HandleFunc("/safaris/{id:[0-9]+}", safariHandler.Update).Methods("PUT")
	admin.HandleFunc("/safaris/{id:[0-9]+}/status", safariHandler.SetStatus).Methods("PATCH")
	admin.HandleFunc("/safaris/{id:[0-9]+}", safariHandler.Delete).Methods("DELETE")
	admin.HandleFunc("/settings", settingsHandler.Get).Methods("GET")
	admin.HandleFunc("/settings", settingsHandler.Update).Methods("PUT")

	return router
}
