package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	weathererr "weatherhub.app/errors"
	"weatherhub.app/models"
)

func (s *Server) register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, weathererr.NewValidationError("invalid request format"))
		return
	}

	user, err := s.userService.Register(&req)
	if err != nil {
		slog.Error("Registration error", "error", err, "username", req.Username)
		s.handleError(c, err)
		return
	}

	slog.Debug("User registered", "id", user.ID, "username", user.Username)
	c.JSON(http.StatusCreated, user)
}

func (s *Server) listUsers(c *gin.Context) {
	users, err := s.userService.ListUsers()
	if err != nil {
		slog.Error("User listing error", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (s *Server) getUser(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	user, err := s.userService.GetUser(id)
	if err != nil {
		slog.Error("User lookup error", "error", err, "id", id)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (s *Server) updateUser(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	var req models.UserUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, weathererr.NewValidationError("invalid request format"))
		return
	}

	user, err := s.userService.UpdateUser(currentUser(c), id, &req)
	if err != nil {
		slog.Error("User update error", "error", err, "id", id)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (s *Server) deleteUser(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	if err := s.userService.DeleteUser(currentUser(c), id); err != nil {
		slog.Error("User deletion error", "error", err, "id", id)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (s *Server) getProfile(c *gin.Context) {
	profile, err := s.userService.GetProfile(currentUser(c))
	if err != nil {
		slog.Error("Profile lookup error", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (s *Server) updateProfile(c *gin.Context) {
	var req models.ProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, weathererr.NewValidationError("invalid request format"))
		return
	}

	profile, err := s.userService.UpdateProfile(currentUser(c), &req)
	if err != nil {
		slog.Error("Profile update error", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
