package service

import (
	"context"
	"fmt"

	"savannacars-backend/internal/logger"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	logger.ExternalServiceCall("smtp", "DialAndSend", "to", to, "subject", subject)
	err := d.DialAndSend(m)
	logger.ExternalServiceResult("smtp", "DialAndSend", err)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *emailService) SendBookingConfirmation(ctx context.Context, to, name, vehicle, startDate, endDate, amount string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour booking is confirmed.\n\nVehicle: %s\nPickup: %s\nReturn: %s\nTotal: %s\n\nKaribu,\nSavanna Cars", name, vehicle, startDate, endDate, amount)
	return s.send(to, "Booking Confirmation - Savanna Cars", body)
}

func (s *emailService) SendExtensionConfirmation(ctx context.Context, to, name, vehicle, newEndDate, amount string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour rental of %s has been extended.\n\nNew return date: %s\nExtension charge: %s\n\nKaribu,\nSavanna Cars", name, vehicle, newEndDate, amount)
	return s.send(to, "Rental Extended - Savanna Cars", body)
}

func (s *emailService) SendReturnReminder(ctx context.Context, to, name, vehicle, endDate string) error {
	body := fmt.Sprintf("Hello %s,\n\nA reminder that your %s is due back on %s.\n\nNeed more days? You can extend your trip from your dashboard.\n\nKaribu,\nSavanna Cars", name, vehicle, endDate)
	return s.send(to, "Return Reminder - Savanna Cars", body)
}

func (s *emailService) SendDailySummary(ctx context.Context, to string, bookings, revenueFormatted string) error {
	body := fmt.Sprintf("Daily summary\n\nNew bookings: %s\nRevenue booked: %s\n", bookings, revenueFormatted)
	return s.send(to, "Daily Booking Summary - Savanna Cars", body)
}
