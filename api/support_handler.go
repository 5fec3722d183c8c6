package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	weathererr "weatherhub.app/errors"
	"weatherhub.app/models"
)

func (s *Server) submitSupportRequest(c *gin.Context) {
	var input models.SupportRequestInput
	if err := c.ShouldBind(&input); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, weathererr.NewValidationError("invalid request format"))
		return
	}

	request, err := s.supportService.Submit(currentUser(c), &input)
	if err != nil {
		slog.Error("Support submission error", "error", err, "subject", input.Subject)
		s.handleError(c, err)
		return
	}

	slog.Debug("Support request submitted", "reference", request.Reference)
	c.JSON(http.StatusCreated, gin.H{
		"message":   "Your message has been sent. We will get back to you shortly.",
		"reference": request.Reference,
	})
}

func (s *Server) listSupportRequests(c *gin.Context) {
	status := c.Query("status")

	requests, err := s.supportService.List(currentUser(c), status)
	if err != nil {
		slog.Error("Support listing error", "error", err, "status", status)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

func (s *Server) getSupportRequest(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	request, err := s.supportService.Get(currentUser(c), id)
	if err != nil {
		slog.Error("Support lookup error", "error", err, "id", id)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

func (s *Server) respondToSupportRequest(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	var input models.SupportResponseInput
	if err := c.ShouldBind(&input); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, weathererr.NewValidationError("invalid request format"))
		return
	}

	request, err := s.supportService.Respond(currentUser(c), id, &input)
	if err != nil {
		// The response is persisted even when the requester could not be
		// notified; report that as a warning, not a failure.
		if weathererr.IsEmailError(err) && request != nil {
			slog.Warn("Support response saved but notification failed", "id", id, "error", err)
			c.JSON(http.StatusOK, gin.H{
				"message": "Response saved",
				"warning": "The requester could not be notified by email",
				"request": request,
			})
			return
		}
		slog.Error("Support response error", "error", err, "id", id)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Response saved and sent to the requester",
		"request": request,
	})
}
