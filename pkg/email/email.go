package email

import (
	"encoding/base64"
	"fmt"
	"net/smtp"

	"go-cv-backend/config"
)

// EmailService handles sending emails via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

// CandidatePDFEmail holds the data for a CV delivery email
type CandidatePDFEmail struct {
	FirstName string
	LastName  string
	Recipient string
	PDF       []byte
}

// NewEmailService creates a new email service from SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
	}
}

// SendCandidatePDF sends the rendered CV as a PDF attachment.
func (s *EmailService) SendCandidatePDF(data CandidatePDFEmail) error {
	subject := fmt.Sprintf("Candidate CV: %s %s", data.FirstName, data.LastName)
	body := fmt.Sprintf(
		"Dear User,\r\n\r\nPlease find attached the CV of %s %s.",
		data.FirstName, data.LastName,
	)
	filename := fmt.Sprintf("%s_%s_CV.pdf", data.FirstName, data.LastName)

	const boundary = "cv-attachment-boundary"

	// Construct MIME multipart message: plain text part + PDF attachment
	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: multipart/mixed; boundary=%s\r\n"+
			"\r\n"+
			"--%s\r\n"+
			"Content-Type: text/plain; charset=UTF-8\r\n"+
			"\r\n"+
			"%s\r\n"+
			"--%s\r\n"+
			"Content-Type: application/pdf\r\n"+
			"Content-Transfer-Encoding: base64\r\n"+
			"Content-Disposition: attachment; filename=\"%s\"\r\n"+
			"\r\n"+
			"%s\r\n"+
			"--%s--\r\n",
		s.fromEmail,
		data.Recipient,
		subject,
		boundary,
		boundary,
		body,
		boundary,
		filename,
		base64.StdEncoding.EncodeToString(data.PDF),
		boundary,
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{data.Recipient}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
