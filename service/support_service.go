package service

import (
	"log"
	"time"

	"github.com/google/uuid"
	"weatherhub.app/errors"
	"weatherhub.app/metrics"
	"weatherhub.app/models"
	"weatherhub.app/pkg/validation"
)

// SupportService handles the support ticket workflow
type SupportService struct {
	supportRepo  SupportRepositoryInterface
	emailService EmailServiceInterface
}

// NewSupportService creates a new support service
func NewSupportService(supportRepo SupportRepositoryInterface, emailService EmailServiceInterface) *SupportService {
	return &SupportService{
		supportRepo:  supportRepo,
		emailService: emailService,
	}
}

func validateSupportInput(input *models.SupportRequestInput) error {
	if !validation.IsNotEmpty(input.Name) {
		return errors.NewValidationError("name is required")
	}
	if !validation.IsValidEmail(input.Email) {
		return errors.NewValidationError("email must be a valid email address")
	}
	if !validation.IsNotEmpty(input.Subject) {
		return errors.NewValidationError("subject is required")
	}
	if !validation.IsNotEmpty(input.Message) {
		return errors.NewValidationError("message is required")
	}
	return nil
}

// Submit files a new support request. Anonymous submitters are allowed;
// for authenticated ones the request is linked to the account and the
// account email overrides whatever was typed into the form. Staff
// notification is best effort and never blocks the write.
func (s *SupportService) Submit(actor *models.User, input *models.SupportRequestInput) (*models.SupportRequest, error) {
	log.Printf("[DEBUG] SupportService.Submit: subject=%q\n", input.Subject)

	if err := validateSupportInput(input); err != nil {
		return nil, err
	}

	request := &models.SupportRequest{
		Reference: uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		Status:    models.StatusNew,
	}

	if actor != nil {
		request.UserID = &actor.ID
		request.Email = actor.Email
	}

	if err := s.supportRepo.Create(request); err != nil {
		return nil, err
	}

	metrics.GetAppMetrics().SupportSubmitted.Inc()

	if err := s.emailService.SendSupportNotification(request); err != nil {
		log.Printf("[WARNING] Failed to notify staff mailbox about request %s: %v\n", request.Reference, err)
		metrics.GetAppMetrics().NotificationFailures.WithLabelValues("submit").Inc()
	}

	return request, nil
}

// List returns support requests newest-first, optionally filtered to one
// status. Staff only.
func (s *SupportService) List(actor *models.User, status string) ([]models.SupportRequest, error) {
	log.Printf("[DEBUG] SupportService.List: status=%q\n", status)

	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	if status != "" && !models.IsValidSupportStatus(status) {
		return nil, errors.NewValidationError("status must be one of: new, in_progress, resolved, closed")
	}

	return s.supportRepo.List(status)
}

// Get retrieves one support request. Staff only.
func (s *SupportService) Get(actor *models.User, id uint) (*models.SupportRequest, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	return s.supportRepo.FindByID(id)
}

// Respond records a staff response and status on a support request, then
// emails the requester. The persisted update stands even when the email
// fails; that failure comes back as a distinct EMAIL error so the caller
// can report it as a warning.
func (s *SupportService) Respond(actor *models.User, id uint, input *models.SupportResponseInput) (*models.SupportRequest, error) {
	log.Printf("[DEBUG] SupportService.Respond: id=%d, status=%s\n", id, input.Status)

	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	if !validation.IsNotEmpty(input.Response) {
		return nil, errors.NewValidationError("response is required")
	}
	if !models.IsValidSupportStatus(input.Status) {
		return nil, errors.NewValidationError("status must be one of: new, in_progress, resolved, closed")
	}

	request, err := s.supportRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	request.AdminResponse = input.Response
	request.Status = input.Status
	request.RespondedAt = &now
	request.RespondedByID = &actor.ID

	if err := s.supportRepo.Update(request); err != nil {
		return nil, err
	}

	metrics.GetAppMetrics().SupportResponded.Inc()

	if err := s.emailService.SendSupportResponse(request); err != nil {
		log.Printf("[WARNING] Failed to email requester for request %s: %v\n", request.Reference, err)
		metrics.GetAppMetrics().NotificationFailures.WithLabelValues("respond").Inc()
		return request, errors.NewEmailError("response saved but the requester could not be notified", err)
	}

	return request, nil
}
