package mailer

import (
	"fmt"

	"cleanblog/internal/config"

	"gopkg.in/gomail.v2"
)

type Mailer interface {
	Notify(senderName, fromAddress, body string) error
}

// GmailMailer sends contact notifications through smtp.gmail.com over SSL.
// Transport failures are returned to the caller; there is no retry.
type GmailMailer struct {
	dialer     *gomail.Dialer
	recipients []string
}

func New(cfg *config.Config) *GmailMailer {
	dialer := gomail.NewDialer("smtp.gmail.com", 465, cfg.GmailUsername, cfg.GmailPassword)
	dialer.SSL = true

	return &GmailMailer{
		dialer:     dialer,
		recipients: cfg.Recipients,
	}
}

func (m *GmailMailer) Notify(senderName, fromAddress, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", fromAddress)
	msg.SetHeader("To", m.recipients...)
	msg.SetHeader("Subject", "New message from : "+senderName)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send notification mail: %w", err)
	}

	return nil
}
