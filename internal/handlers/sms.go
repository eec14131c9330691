package handlers

import (
	"fmt"
	"log"
	"os"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// SMSSender delivers password-reset codes over Twilio. When TWILIO_ACCOUNT_SID
// is unset (local dev, tests) sends are logged and skipped.
type SMSSender struct {
	client *twilio.RestClient
	from   string
}

func NewSMSSender() *SMSSender {
	if os.Getenv("TWILIO_ACCOUNT_SID") == "" {
		return &SMSSender{}
	}

	// Reads TWILIO_ACCOUNT_SID and TWILIO_AUTH_TOKEN from the environment.
	return &SMSSender{
		client: twilio.NewRestClient(),
		from:   os.Getenv("TWILIO_FROM_NUMBER"),
	}
}

func (s *SMSSender) SendResetToken(phone, token string) {
	if s.client == nil {
		log.Printf("SMS disabled, skipping reset code for %s", phone)
		return
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(s.from)
	params.SetBody(fmt.Sprintf("Your password reset code: %s (valid for 1 hour)", token))

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		// Reset still works via the stored token; the send is best effort.
		log.Printf("Failed to send reset SMS to %s: %v", phone, err)
	}
}
