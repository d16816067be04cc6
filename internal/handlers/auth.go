// Package handlers contains HTTP request handlers for the recipe service.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/GunarsK-portfolio/recipe-service/internal/identity"
	"github.com/GunarsK-portfolio/recipe-service/internal/service"
	"github.com/GunarsK-portfolio/recipe-service/internal/session"
	"github.com/gin-gonic/gin"
)

// EventRecorder counts domain events such as logins and signups.
type EventRecorder interface {
	RecordEvent(event, outcome string)
}

// AuthHandler handles account and session HTTP requests.
type AuthHandler struct {
	authService service.AuthService
	sessions    session.Store
	events      EventRecorder
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService, sessions session.Store, events EventRecorder, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		events:      events,
		logger:      logger,
	}
}

// SignupRequest represents the signup request payload.
type SignupRequest struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required"`
	ImageURL *string `json:"image_url"`
	Bio      *string `json:"bio"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup godoc
// @Summary Sign up
// @Description Create an account and open a session cookie for it
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Account details"
// @Success 201 {object} models.User
// @Failure 422 {object} ErrorsResponse
// @Router /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.events.RecordEvent("signup", "failure")
		RespondErrors(c, http.StatusUnprocessableEntity, bindingMessages(err)...)
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), service.SignupInput{
		Username: req.Username,
		ImageURL: req.ImageURL,
		Bio:      req.Bio,
		Password: req.Password,
	})
	if err != nil {
		h.events.RecordEvent("signup", "failure")
		respondServiceError(c, h.logger, err, MsgValidationErrors)
		return
	}

	if err := h.sessions.SetUserID(c, user.ID); err != nil {
		h.logger.ErrorContext(c.Request.Context(), "failed to open session", "user_id", user.ID, "error", err)
		RespondError(c, http.StatusInternalServerError, MsgInternalServerError)
		return
	}

	h.events.RecordEvent("signup", "success")
	h.logger.InfoContext(c.Request.Context(), "user signed up", "user_id", user.ID)
	c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary User login
// @Description Authenticate credentials and open a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} models.User
// @Failure 401 {object} ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.events.RecordEvent("login", "failure")
		RespondError(c, http.StatusUnauthorized, MsgInvalidCredentials)
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.events.RecordEvent("login", "failure")
		respondServiceError(c, h.logger, err, MsgInvalidCredentials)
		return
	}

	if err := h.sessions.SetUserID(c, user.ID); err != nil {
		h.logger.ErrorContext(c.Request.Context(), "failed to open session", "user_id", user.ID, "error", err)
		RespondError(c, http.StatusInternalServerError, MsgInternalServerError)
		return
	}

	h.events.RecordEvent("login", "success")
	c.JSON(http.StatusOK, user)
}

// CheckSession godoc
// @Summary Current user
// @Description Return the user behind the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} ErrorResponse
// @Router /check_session [get]
func (h *AuthHandler) CheckSession(c *gin.Context) {
	user, err := h.authService.CheckSession(c.Request.Context())
	if err != nil {
		if _, ok := identity.UserID(c.Request.Context()); ok && errors.Is(err, service.ErrUnauthenticated) {
			// The session points at an account that no longer exists.
			_ = h.sessions.Clear(c, session.UserIDKey)
		}
		respondServiceError(c, h.logger, err, MsgUnauthorized)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Logout godoc
// @Summary User logout
// @Description End the current session
// @Tags auth
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Router /logout [delete]
func (h *AuthHandler) Logout(c *gin.Context) {
	if _, ok := identity.UserID(c.Request.Context()); !ok {
		RespondError(c, http.StatusUnauthorized, MsgUnauthorized)
		return
	}

	if err := h.sessions.Clear(c, session.UserIDKey); err != nil {
		h.logger.ErrorContext(c.Request.Context(), "failed to clear session", "error", err)
		RespondError(c, http.StatusInternalServerError, MsgInternalServerError)
		return
	}

	h.events.RecordEvent("logout", "success")
	c.Status(http.StatusNoContent)
}
