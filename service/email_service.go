package service

import (
	"fmt"
	"log"

	"weatherhub.app/config"
	"weatherhub.app/errors"
	"weatherhub.app/models"
	"weatherhub.app/providers"
)

// EmailService handles email operations using a provider
type EmailService struct {
	provider       providers.EmailProvider
	supportAddress string
}

// NewEmailService creates a new email service with the specified provider
func NewEmailService(provider providers.EmailProvider, emailConfig *config.EmailConfig) *EmailService {
	return &EmailService{
		provider:       provider,
		supportAddress: emailConfig.SupportAddress,
	}
}

// SendSupportNotification notifies the staff mailbox about a new support request
func (s *EmailService) SendSupportNotification(request *models.SupportRequest) error {
	if request == nil {
		return errors.NewValidationError("support request cannot be nil")
	}
	log.Printf("[DEBUG] SendSupportNotification called for request: %s\n", request.Reference)

	subject := fmt.Sprintf("New support request: %s", request.Subject)
	htmlContent := fmt.Sprintf(
		"<p>A new support request has been submitted.</p>"+
			"<p><strong>Reference:</strong> %s</p>"+
			"<p><strong>Name:</strong> %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Subject:</strong> %s</p>"+
			"<p><strong>Message:</strong></p><p>%s</p>",
		request.Reference, request.Name, request.Email, request.Subject, request.Message,
	)

	return s.provider.SendEmail([]string{s.supportAddress}, subject, htmlContent, true)
}

// SendSupportResponse sends a staff response to the original requester
func (s *EmailService) SendSupportResponse(request *models.SupportRequest) error {
	if request == nil {
		return errors.NewValidationError("support request cannot be nil")
	}
	log.Printf("[DEBUG] SendSupportResponse called for request: %s\n", request.Reference)
	if request.Email == "" {
		return errors.NewValidationError("requester email cannot be empty")
	}

	subject := fmt.Sprintf("Response to your support request: %s", request.Subject)
	htmlContent := fmt.Sprintf(
		"<p>Hello %s,</p>"+
			"<p>Thank you for contacting support. Our response:</p>"+
			"<p>%s</p>"+
			"<p>Request reference: %s</p>"+
			"<p>Kind regards,<br>The support team</p>",
		request.Name, request.AdminResponse, request.Reference,
	)

	err := s.provider.SendEmail([]string{request.Email}, subject, htmlContent, true)
	if err != nil {
		log.Printf("[ERROR] Failed to send support response email: %v\n", err)
		return err
	}

	return nil
}
