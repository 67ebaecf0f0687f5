package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/models"
)

var (
	// ErrCreateUser is returned when creating the user row fails inside the registration transaction.
	ErrCreateUser = errors.New("user repository: create user failed")
	// ErrAppendLog is returned when appending the audit entry fails inside a pairing transaction.
	ErrAppendLog = errors.New("repository: append log entry failed")
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// CreateWithLog creates the user and its REGISTER entry atomically.
func (r *GormUserRepository) CreateWithLog(user *models.User, entry *models.LogEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateUser, err)
		}

		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrAppendLog, err)
		}

		return nil
	})
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns all users ordered by username
func (r *GormUserRepository) List() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("username").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
