package services

import (
	"fmt"
	"log"
	"net/smtp"

	"eventify/internal/config"
)

// SMTPEmailService sends mail through a configured SMTP relay
type SMTPEmailService struct {
	config config.EmailConfig
}

// NewSMTPEmailService creates an SMTP-backed email service
func NewSMTPEmailService(cfg config.EmailConfig) *SMTPEmailService {
	return &SMTPEmailService{config: cfg}
}

// SendTicketConfirmation sends the booking confirmation for a ticket
func (s *SMTPEmailService) SendTicketConfirmation(to, name, eventTitle, ticketCode string) error {
	subject := fmt.Sprintf("Your Ticket Confirmation - %s", eventTitle)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour booking for %s is confirmed.\n\nTicket code: %s\n\nPresent this code at the gate for check-in.\n\n%s",
		name, eventTitle, ticketCode, s.config.FromName,
	)
	return s.SendSimpleMessage(to, subject, body)
}

// SendSimpleMessage sends a plain-text message to a single recipient
func (s *SMTPEmailService) SendSimpleMessage(to, subject, body string) error {
	msg := fmt.Sprintf(
		"From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s",
		s.config.FromName, s.config.FromEmail, to, subject, body,
	)

	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	var auth smtp.Auth
	if s.config.SMTPUser != "" {
		auth = smtp.PlainAuth("", s.config.SMTPUser, s.config.SMTPPassword, s.config.SMTPHost)
	}

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	return nil
}

// LogEmailService logs messages instead of delivering them. Used in
// development when no SMTP relay is configured.
type LogEmailService struct{}

// NewLogEmailService creates a log-only email service
func NewLogEmailService() *LogEmailService {
	return &LogEmailService{}
}

// SendTicketConfirmation logs a confirmation email
func (s *LogEmailService) SendTicketConfirmation(to, name, eventTitle, ticketCode string) error {
	log.Printf("Email: ticket confirmation to %s (%s) for %q, code %s", to, name, eventTitle, ticketCode)
	return nil
}

// SendSimpleMessage logs a plain message
func (s *LogEmailService) SendSimpleMessage(to, subject, body string) error {
	log.Printf("Email: message to %s, subject %q", to, subject)
	return nil
}

// NewEmailService returns the SMTP service when a relay is configured and
// the log-only service otherwise.
func NewEmailService(cfg config.EmailConfig) EmailService {
	if cfg.SMTPHost != "" {
		log.Println("Email service: using SMTP relay")
		return NewSMTPEmailService(cfg)
	}
	log.Println("Email service: using log-only delivery (no SMTP host configured)")
	return NewLogEmailService()
}
