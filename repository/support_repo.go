package repository

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	weathererr "weatherhub.app/errors"
	"weatherhub.app/models"
)

// SupportRepository handles data access operations for support requests
type SupportRepository struct {
	db *gorm.DB
}

// NewSupportRepository creates a new repository for support request data
func NewSupportRepository(db *gorm.DB) *SupportRepository {
	return &SupportRepository{db: db}
}

// Create persists a new support request
func (r *SupportRepository) Create(request *models.SupportRequest) error {
	log.Printf("[DEBUG] SupportRepository.Create: subject=%q\n", request.Subject)

	if err := r.db.Create(request).Error; err != nil {
		log.Printf("[ERROR] Database error when creating support request: %v\n", err)
		return weathererr.NewDatabaseError("failed to create support request", err)
	}

	log.Printf("[DEBUG] Created support request %d (%s)\n", request.ID, request.Reference)
	return nil
}

// List returns support requests newest-first, optionally filtered to one status
func (r *SupportRepository) List(status string) ([]models.SupportRequest, error) {
	log.Printf("[DEBUG] SupportRepository.List: status=%q\n", status)

	query := r.db.Model(&models.SupportRequest{}).Order("created_at DESC, id DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var requests []models.SupportRequest
	if err := query.Find(&requests).Error; err != nil {
		log.Printf("[ERROR] Database error when listing support requests: %v\n", err)
		return nil, weathererr.NewDatabaseError("failed to list support requests", err)
	}

	return requests, nil
}

// FindByID retrieves a support request by its ID
func (r *SupportRepository) FindByID(id uint) (*models.SupportRequest, error) {
	log.Printf("[DEBUG] SupportRepository.FindByID: id=%d\n", id)

	var request models.SupportRequest
	result := r.db.Preload("User").Preload("RespondedBy").First(&request, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, weathererr.NewNotFoundError(fmt.Sprintf("support request %d not found", id))
		}
		log.Printf("[ERROR] Database error when finding support request: %v\n", result.Error)
		return nil, weathererr.NewDatabaseError("failed to find support request", result.Error)
	}

	return &request, nil
}

// Update modifies an existing support request
func (r *SupportRepository) Update(request *models.SupportRequest) error {
	log.Printf("[DEBUG] SupportRepository.Update: id=%d, status=%s\n", request.ID, request.Status)

	if err := r.db.Omit(clause.Associations).Save(request).Error; err != nil {
		log.Printf("[ERROR] Database error when updating support request: %v\n", err)
		return weathererr.NewDatabaseError("failed to update support request", err)
	}

	return nil
}
