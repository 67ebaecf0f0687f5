package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/models"
	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/repository"
)

var (
	ErrUsernameTaken        = errors.New("username already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles registration, authentication, and the user directory.
type AuthService struct {
	userRepo repository.UserRepository
	logRepo  repository.LogRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, logRepo repository.LogRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		logRepo:  logRepo,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Username string
	Password string
	IsAdmin  bool
}

// Register creates a new user and its REGISTER audit entry atomically.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	if _, err := s.userRepo.FindByUsername(input.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Username:     input.Username,
		PasswordHash: string(hashedPassword),
		IsAdmin:      input.IsAdmin,
	}

	details := "registered"
	if input.IsAdmin {
		details = "registered (admin)"
	}
	entry := &models.LogEntry{
		Actor:   input.Username,
		Action:  models.ActionRegister,
		Details: details,
	}

	if err := s.userRepo.CreateWithLog(user, entry); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials, records a LOGIN entry, and returns the user.
// Whether the username or the password was wrong is not distinguished.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	details := "user"
	if user.IsAdmin {
		details = "admin"
	}
	entry := &models.LogEntry{
		Actor:   user.Username,
		Action:  models.ActionLogin,
		Details: details,
	}
	if err := s.logRepo.Append(entry); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	return user, nil
}

// GetUser retrieves a user by username.
func (s *AuthService) GetUser(username string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// ListUsers returns all users ordered by username.
func (s *AuthService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
