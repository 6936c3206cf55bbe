package http

import (
	"fmt"
	"net/http"

	"savannacars-backend/internal/domain"
	"savannacars-backend/internal/service"
)

type BookingHandler struct {
	bookingSvc service.BookingService
	receiptSvc service.ReceiptService
}

func NewBookingHandler(bookingSvc service.BookingService, receiptSvc service.ReceiptService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc, receiptSvc: receiptSvc}
}

type createBookingRequest struct {
	CustomerID     int32  `json:"customer_id"`
	UnitID         int32  `json:"unit_id"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	PickupLocation string `json:"pickup_location"`
	Notes          string `json:"notes"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	booking, err := h.bookingSvc.CreateBooking(r.Context(), req.CustomerID, req.UnitID, req.StartDate, req.EndDate, req.PickupLocation, req.Notes)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	booking, err := h.bookingSvc.GetBooking(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

// List supports ?status= for the tab filter and ?q= for the text search.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingSvc.ListBookings(r.Context(), r.URL.Query().Get("status"), r.URL.Query().Get("q"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"bookings": bookings, "count": len(bookings)})
}

func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	var req struct {
		Status        domain.BookingStatus `json:"status"`
		PaymentStatus domain.PaymentStatus `json:"payment_status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.bookingSvc.UpdateBookingStatus(r.Context(), id, req.Status, req.PaymentStatus); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	if err := h.bookingSvc.CancelBooking(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

// QuoteExtension prices a candidate return date. It never writes anything,
// so the dashboard can call it on every date change.
func (h *BookingHandler) QuoteExtension(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	var req struct {
		NewEndDate string `json:"new_end_date"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	quote, err := h.bookingSvc.QuoteExtension(r.Context(), id, req.NewEndDate)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, quote)
}

func (h *BookingHandler) Extend(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	var req struct {
		NewEndDate    string `json:"new_end_date"`
		PaymentMethod string `json:"payment_method"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	booking, err := h.bookingSvc.ExtendBooking(r.Context(), id, req.NewEndDate, req.PaymentMethod)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	pdf, filename, err := h.receiptSvc.RenderBookingReceipt(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
