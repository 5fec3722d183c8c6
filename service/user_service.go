package service

import (
	"log"

	"weatherhub.app/errors"
	"weatherhub.app/models"
	"weatherhub.app/pkg/validation"
)

// UserService handles registration, profiles and user management
type UserService struct {
	userRepo UserRepositoryInterface
}

// NewUserService creates a new user service
func NewUserService(userRepo UserRepositoryInterface) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates a new user together with its profile. The profile is an
// explicit step of registration, never an implicit listener.
func (s *UserService) Register(req *models.RegisterRequest) (*models.User, error) {
	log.Printf("[DEBUG] UserService.Register: username=%s\n", req.Username)

	username, ok := validation.TrimAndValidate(req.Username)
	if !ok {
		return nil, errors.NewValidationError("username is required")
	}
	if !validation.IsValidEmail(req.Email) {
		return nil, errors.NewValidationError("email must be a valid email address")
	}

	user := &models.User{
		Username: username,
		Email:    req.Email,
	}
	if err := s.userRepo.CreateWithProfile(user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser retrieves one user with its profile
func (s *UserService) GetUser(id uint) (*models.User, error) {
	return s.userRepo.FindByID(id)
}

// ListUsers retrieves all users
func (s *UserService) ListUsers() ([]models.User, error) {
	return s.userRepo.FindAll()
}

// GetProfile returns the acting user's own profile
func (s *UserService) GetProfile(actor *models.User) (*models.Profile, error) {
	if err := requireAuthenticated(actor); err != nil {
		return nil, err
	}
	return s.userRepo.GetProfile(actor.ID)
}

// UpdateProfile lets a user edit their own profile
func (s *UserService) UpdateProfile(actor *models.User, req *models.ProfileRequest) (*models.Profile, error) {
	log.Println("[DEBUG] UserService.UpdateProfile called")

	if err := requireAuthenticated(actor); err != nil {
		return nil, err
	}
	if len(req.Bio) > 500 {
		return nil, errors.NewValidationError("bio cannot exceed 500 characters")
	}

	profile, err := s.userRepo.GetProfile(actor.ID)
	if err != nil {
		return nil, err
	}

	profile.AvatarURL = req.AvatarURL
	profile.Bio = req.Bio
	profile.Location = req.Location
	profile.BirthDate = req.BirthDate

	if err := s.userRepo.UpdateProfile(profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// UpdateUser changes a user's account fields. Users may edit their own
// account; staff may edit anyone's.
func (s *UserService) UpdateUser(actor *models.User, id uint, req *models.UserUpdateRequest) (*models.User, error) {
	log.Printf("[DEBUG] UserService.UpdateUser: id=%d\n", id)

	if err := requireAuthenticated(actor); err != nil {
		return nil, err
	}
	if actor.ID != id && !actor.IsStaff {
		return nil, errors.NewPermissionDeniedError("cannot edit another user's account")
	}

	username, ok := validation.TrimAndValidate(req.Username)
	if !ok {
		return nil, errors.NewValidationError("username is required")
	}
	if !validation.IsValidEmail(req.Email) {
		return nil, errors.NewValidationError("email must be a valid email address")
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	user.Username = username
	user.Email = req.Email
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes a user and everything that belongs to it. Staff only.
func (s *UserService) DeleteUser(actor *models.User, id uint) error {
	log.Printf("[DEBUG] UserService.DeleteUser: id=%d\n", id)

	if err := requireStaff(actor); err != nil {
		return err
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return err
	}

	return s.userRepo.Delete(user)
}
