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

// UserRepository handles data access operations for users and profiles
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new repository for user data
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateWithProfile persists a new user and its profile in one transaction.
// Every user ends up with exactly one profile.
func (r *UserRepository) CreateWithProfile(user *models.User) error {
	log.Printf("[DEBUG] UserRepository.CreateWithProfile: username=%s\n", user.Username)

	var count int64
	if err := r.db.Model(&models.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
		return weathererr.NewDatabaseError("failed to check existing username", err)
	}
	if count > 0 {
		return weathererr.NewAlreadyExistsError(fmt.Sprintf("username %q is already taken", user.Username))
	}

	tx := r.db.Begin()
	if tx.Error != nil {
		return weathererr.NewDatabaseError("failed to begin transaction", tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(user).Error; err != nil {
		tx.Rollback()
		log.Printf("[ERROR] Database error when creating user: %v\n", err)
		return weathererr.NewDatabaseError("failed to create user", err)
	}

	profile := &models.Profile{UserID: user.ID}
	if err := tx.Create(profile).Error; err != nil {
		tx.Rollback()
		log.Printf("[ERROR] Database error when creating profile: %v\n", err)
		return weathererr.NewDatabaseError("failed to create profile", err)
	}

	if err := tx.Commit().Error; err != nil {
		return weathererr.NewDatabaseError("failed to commit transaction", err)
	}

	user.Profile = profile
	log.Printf("[DEBUG] Created user %d with profile %d\n", user.ID, profile.ID)
	return nil
}

// FindByID retrieves a user with its profile preloaded
func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	log.Printf("[DEBUG] UserRepository.FindByID: id=%d\n", id)

	var user models.User
	result := r.db.Preload("Profile").First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, weathererr.NewNotFoundError(fmt.Sprintf("user %d not found", id))
		}
		log.Printf("[ERROR] Database error when finding user: %v\n", result.Error)
		return nil, weathererr.NewDatabaseError("failed to find user", result.Error)
	}

	return &user, nil
}

// FindAll retrieves all users
func (r *UserRepository) FindAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("id ASC").Find(&users).Error; err != nil {
		log.Printf("[ERROR] Database error when listing users: %v\n", err)
		return nil, weathererr.NewDatabaseError("failed to list users", err)
	}
	return users, nil
}

// GetProfile retrieves the profile of one user
func (r *UserRepository) GetProfile(userID uint) (*models.Profile, error) {
	var profile models.Profile
	result := r.db.Where("user_id = ?", userID).First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, weathererr.NewNotFoundError(fmt.Sprintf("profile for user %d not found", userID))
		}
		log.Printf("[ERROR] Database error when finding profile: %v\n", result.Error)
		return nil, weathererr.NewDatabaseError("failed to find profile", result.Error)
	}
	return &profile, nil
}

// UpdateProfile modifies an existing profile
func (r *UserRepository) UpdateProfile(profile *models.Profile) error {
	log.Printf("[DEBUG] UserRepository.UpdateProfile: userID=%d\n", profile.UserID)

	if err := r.db.Save(profile).Error; err != nil {
		log.Printf("[ERROR] Database error when updating profile: %v\n", err)
		return weathererr.NewDatabaseError("failed to update profile", err)
	}
	return nil
}

// Update persists changes to an existing user. The username stays unique
// across all other accounts.
func (r *UserRepository) Update(user *models.User) error {
	log.Printf("[DEBUG] UserRepository.Update: id=%d username=%s\n", user.ID, user.Username)

	var count int64
	if err := r.db.Model(&models.User{}).
		Where("username = ? AND id <> ?", user.Username, user.ID).
		Count(&count).Error; err != nil {
		return weathererr.NewDatabaseError("failed to check existing username", err)
	}
	if count > 0 {
		return weathererr.NewAlreadyExistsError(fmt.Sprintf("username %q is already taken", user.Username))
	}

	if err := r.db.Omit(clause.Associations).Save(user).Error; err != nil {
		log.Printf("[ERROR] Database error when updating user: %v\n", err)
		return weathererr.NewDatabaseError("failed to update user", err)
	}
	return nil
}

// Delete removes a user and its dependents. The user's profile, favorites
// and own support requests go with it; support requests the user answered
// as staff only lose their responded-by reference.
func (r *UserRepository) Delete(user *models.User) error {
	log.Printf("[DEBUG] UserRepository.Delete: id=%d\n", user.ID)

	tx := r.db.Begin()
	if tx.Error != nil {
		return weathererr.NewDatabaseError("failed to begin transaction", tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("user_id = ?", user.ID).Delete(&models.Favorite{}).Error; err != nil {
		tx.Rollback()
		return weathererr.NewDatabaseError("failed to delete user favorites", err)
	}
	if err := tx.Where("user_id = ?", user.ID).Delete(&models.Profile{}).Error; err != nil {
		tx.Rollback()
		return weathererr.NewDatabaseError("failed to delete user profile", err)
	}
	if err := tx.Where("user_id = ?", user.ID).Delete(&models.SupportRequest{}).Error; err != nil {
		tx.Rollback()
		return weathererr.NewDatabaseError("failed to delete user support requests", err)
	}
	if err := tx.Model(&models.SupportRequest{}).
		Where("responded_by_id = ?", user.ID).
		Update("responded_by_id", nil).Error; err != nil {
		tx.Rollback()
		return weathererr.NewDatabaseError("failed to clear responded-by references", err)
	}
	if err := tx.Delete(user).Error; err != nil {
		tx.Rollback()
		return weathererr.NewDatabaseError("failed to delete user", err)
	}

	if err := tx.Commit().Error; err != nil {
		return weathererr.NewDatabaseError("failed to commit transaction", err)
	}

	log.Printf("[DEBUG] Deleted user %d and its dependents\n", user.ID)
	return nil
}
