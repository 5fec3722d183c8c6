package providers

import (
	"fmt"
	"net/smtp"
	"strings"

	"weatherhub.app/config"
	"weatherhub.app/errors"
)

// SMTPEmailProvider delivers mail through a plain-auth SMTP relay
type SMTPEmailProvider struct {
	config *config.EmailConfig
}

// NewSMTPEmailProvider creates a new SMTP email provider
func NewSMTPEmailProvider(config *config.EmailConfig) *SMTPEmailProvider {
	return &SMTPEmailProvider{config: config}
}

// sanitizeHeader strips line breaks so user-supplied values cannot smuggle
// extra headers into the message
func sanitizeHeader(value string) string {
	value = strings.ReplaceAll(value, "\r", "")
	return strings.ReplaceAll(value, "\n", "")
}

// buildMessage assembles the raw message bytes for the given recipients
func (p *SMTPEmailProvider) buildMessage(to []string, subject, body string, isHTML bool) []byte {
	contentType := "text/plain"
	if isHTML {
		contentType = "text/html"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", p.config.FromName, p.config.FromAddress)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", sanitizeHeader(subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: %s; charset=UTF-8\r\n", contentType)
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

// SendEmail delivers one message addressed to every listed recipient
func (p *SMTPEmailProvider) SendEmail(to []string, subject, body string, isHTML bool) error {
	if len(to) == 0 {
		return errors.NewValidationError("at least one recipient is required")
	}
	for _, addr := range to {
		if addr == "" {
			return errors.NewValidationError("recipient email cannot be empty")
		}
	}
	if subject == "" {
		return errors.NewValidationError("email subject cannot be empty")
	}

	auth := smtp.PlainAuth("", p.config.SMTPUsername, p.config.SMTPPassword, p.config.SMTPHost)
	smtpAddr := fmt.Sprintf("%s:%d", p.config.SMTPHost, p.config.SMTPPort)
	message := p.buildMessage(to, subject, body, isHTML)

	if err := smtp.SendMail(smtpAddr, auth, p.config.FromAddress, to, message); err != nil {
		return errors.NewEmailError("failed to send email", err)
	}

	return nil
}
