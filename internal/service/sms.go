package service

import (
	"context"
	"fmt"

	"savannacars-backend/internal/logger"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type smsService struct {
	client *twilio.RestClient
	from   string
}

func NewSMSService(accountSID, authToken, from string) SMSService {
	return &smsService{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: from,
	}
}

func (s *smsService) SendReturnReminder(ctx context.Context, phone, vehicle, endDate string) error {
	body := fmt.Sprintf("Savanna Cars: your %s is due back on %s. Reply EXTEND or visit your dashboard to add days.", vehicle, endDate)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(s.from)
	params.SetBody(body)

	logger.ExternalServiceCall("twilio", "CreateMessage", "to", phone)
	resp, err := s.client.Api.CreateMessage(params)
	logger.ExternalServiceResult("twilio", "CreateMessage", err)
	if err != nil {
		return fmt.Errorf("failed to send sms: %w", err)
	}
	if resp.Sid != nil {
		logger.Debug("SMS queued", "sid", *resp.Sid)
	}
	return nil
}
