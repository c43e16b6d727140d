package handlers

import (
	"errors"
	"net/http"

	"eventify/internal/models"
	"eventify/internal/services"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	authService services.AuthServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Test godoc
// @Summary Health probe
// @Tags auth
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Router /auth/test [get]
func (h *AuthHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse{Message: "API is working!"})
}

// Signup godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "signup data"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.MessageResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Email and password cannot be null"})
		return
	}

	_, err := h.authService.Signup(&req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Email and password cannot be null"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "User registered successfully!"})
}

// Login godoc
// @Summary Authenticate a user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "credentials"
// @Success 200 {object} models.User
// @Failure 400 {object} models.MessageResponse
// @Failure 401 {object} models.MessageResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Email and password are required"})
		return
	}

	user, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Email and password are required"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
