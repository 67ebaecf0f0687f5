package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/models"
)

// GormMessageRepository is a GORM implementation of MessageRepository
type GormMessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &GormMessageRepository{db: db}
}

// CreateWithLog creates the message and its SEND_MESSAGE entry atomically
func (r *GormMessageRepository) CreateWithLog(msg *models.Message, entry *models.LogEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return fmt.Errorf("failed to create message: %w", err)
		}

		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrAppendLog, err)
		}

		return nil
	})
}

// FindByID finds a message by ID
func (r *GormMessageRepository) FindByID(id uint64) (*models.Message, error) {
	var msg models.Message
	if err := r.db.First(&msg, id).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// ListForRecipient returns the user's inbox, newest first
func (r *GormMessageRepository) ListForRecipient(username string, unreadOnly bool) ([]models.Message, error) {
	query := r.db.Where("recipient = ?", username)
	if unreadOnly {
		query = query.Where(map[string]interface{}{"read": false})
	}

	var msgs []models.Message
	if err := query.Order("timestamp DESC, id DESC").Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

// ListForSender returns messages the user sent, newest first
func (r *GormMessageRepository) ListForSender(username string) ([]models.Message, error) {
	var msgs []models.Message
	err := r.db.
		Where("sender = ?", username).
		Order("timestamp DESC, id DESC").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// MarkRead flips a message to read. Marking an already-read message again is
// a no-op success; read state is monotonic and this is not an audited action.
func (r *GormMessageRepository) MarkRead(id uint64) error {
	var msg models.Message
	if err := r.db.First(&msg, id).Error; err != nil {
		return err
	}

	if msg.Read {
		return nil
	}

	return r.db.Model(&msg).Update("read", true).Error
}

// UnreadCount counts unread messages for a recipient
func (r *GormMessageRepository) UnreadCount(username string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("recipient = ?", username).
		Where(map[string]interface{}{"read": false}).
		Count(&count).Error
	return count, err
}
