package services

import (
	"fmt"
	"strings"

	"eventify/internal/models"
	"eventify/internal/repositories"
)

// AuthService handles signup and login
type AuthService struct {
	users *repositories.UserRepository
}

// NewAuthService creates a new authentication service
func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Signup registers a new user with the default USER role. Fails with
// ErrInvalidInput when email or password is missing and ErrEmailTaken when
// the email is already registered.
func (s *AuthService) Signup(req *models.SignupRequest) (*models.User, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, models.ErrInvalidInput
	}

	taken, err := s.users.ExistsByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	if taken {
		return nil, models.ErrEmailTaken
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password, // TODO: hash passwords before storing
		Role:     models.RoleUser,
	}

	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	return user, nil
}

// Login authenticates by exact email and password match. The returned user
// has the password field cleared.
func (s *AuthService) Login(req *models.LoginRequest) (*models.User, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, models.ErrInvalidInput
	}

	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if err == models.ErrUserNotFound {
			return nil, models.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if user.Password != req.Password {
		return nil, models.ErrInvalidCredentials
	}

	user.Password = ""
	return user, nil
}
