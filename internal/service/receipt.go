package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"savannacars-backend/internal/domain"
	"savannacars-backend/internal/repository"
	"savannacars-backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

type receiptService struct {
	bookingRepo  repository.BookingRepository
	settingsRepo repository.SettingsRepository
}

func NewReceiptService(bookingRepo repository.BookingRepository, settingsRepo repository.SettingsRepository) ReceiptService {
	return &receiptService{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
	}
}

// RenderBookingReceipt builds a one page PDF for the booking. Quoted
// amounts are VAT exclusive; the VAT line is added here when VAT is
// enabled in the site settings.
func (s *receiptService) RenderBookingReceipt(ctx context.Context, bookingID int32) ([]byte, string, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, "", err
	}
	return buildReceiptPDF(booking, settings)
}

func buildReceiptPDF(b *domain.Booking, settings *domain.SiteSettings) ([]byte, string, error) {
	currency := settings.Currency
	if currency == "" {
		currency = "KES"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, settings.SiteName)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, settings.SupportEmail+"  "+settings.SupportPhone)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "BOOKING RECEIPT")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Reference : "+b.Reference)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued    : "+time.Now().UTC().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	if b.Customer != nil {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Billed to:")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 12)
		pdf.Cell(0, 7, b.Customer.Name)
		pdf.Ln(7)
		pdf.Cell(0, 7, b.Customer.Phone)
		pdf.Ln(10)
	}

	vehicle := ""
	if b.Unit != nil {
		vehicle = fmt.Sprintf("%s (%s)", b.Unit.DisplayName(), b.Unit.Plate)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Rental:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, fmt.Sprintf("%s, %s to %s", vehicle, b.StartDate, b.EndDate), "", "", false)
	pdf.Ln(2)
	pdf.Cell(0, 6, "Daily rate: "+utils.FormatMoney(b.DailyRateCents, currency))
	pdf.Ln(8)

	pdf.Cell(0, 6, "Subtotal: "+utils.FormatMoney(b.TotalCostCents, currency))
	pdf.Ln(7)

	total := b.TotalCostCents
	if settings.VATEnabled {
		vat := int32(int64(b.TotalCostCents) * int64(settings.VATRateBps) / 10000)
		total += vat
		pdf.Cell(0, 6, fmt.Sprintf("VAT (%.1f%%): %s", float64(settings.VATRateBps)/100, utils.FormatMoney(vat, currency)))
		pdf.Ln(7)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatMoney(total, currency))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Payment status: "+string(b.PaymentStatus))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("receipt_%s.pdf", b.Reference), nil
}
