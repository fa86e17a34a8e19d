package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"healthcare/internal/config"
)

// ErrSenderNotConfigured is returned when a channel's credentials are missing.
var ErrSenderNotConfigured = errors.New("sender not configured")

type SMSSender interface {
	SendSMS(toNumber, body string) error
}

type EmailSender interface {
	SendEmail(toEmail, toName, subject, plainText, html string) error
}

type TwilioSMS struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioSMS(cfg config.TwilioConfig) *TwilioSMS {
	s := &TwilioSMS{from: cfg.FromNumber}
	if cfg.AccountSID != "" && cfg.AuthToken != "" {
		s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username:   cfg.AccountSID,
			Password:   cfg.AuthToken,
			AccountSid: cfg.AccountSID,
		})
	}
	return s
}

func (s *TwilioSMS) SendSMS(toNumber, body string) error {
	if s.client == nil || s.from == "" {
		return fmt.Errorf("twilio: %w", ErrSenderNotConfigured)
	}
	if !strings.HasPrefix(toNumber, "+") {
		log.Warn().Str("to", toNumber).Msg("destination number is not in E.164 format, SMS may fail")
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("error sending SMS to %s: %w", toNumber, err)
	}
	if resp != nil && resp.Sid != nil {
		log.Info().Str("to", toNumber).Str("sid", *resp.Sid).Msg("SMS sent")
	}
	return nil
}

type SendGridEmail struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendGridEmail(cfg config.SendGridConfig) *SendGridEmail {
	return &SendGridEmail{apiKey: cfg.APIKey, fromEmail: cfg.FromEmail, fromName: cfg.FromName}
}

func (s *SendGridEmail) SendEmail(toEmail, toName, subject, plainText, html string) error {
	if s.apiKey == "" || s.fromEmail == "" {
		return fmt.Errorf("sendgrid: %w", ErrSenderNotConfigured)
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, html)

	response, err := sendgrid.NewSendClient(s.apiKey).Send(message)
	if err != nil {
		return fmt.Errorf("error sending email to %s: %w", toEmail, err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	log.Info().Str("to", toEmail).Str("subject", subject).Int("status", response.StatusCode).Msg("email sent")
	return nil
}
