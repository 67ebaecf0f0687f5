package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/constants"
	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/models"
	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/repository"
)

var (
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrMessageNotFound   = errors.New("message not found")
)

// MessageService handles directed messages between users.
type MessageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

// NewMessageService creates a new MessageService
func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

// SendMessageInput represents input for sending a message
type SendMessageInput struct {
	Sender    string
	Recipient string
	Subject   string
	Body      string
}

// Send delivers a message and records a SEND_MESSAGE entry atomically. The
// recipient must exist at send time; the sender is not checked, so messages
// from since-deleted users remain valid history.
func (s *MessageService) Send(input SendMessageInput) (*models.Message, error) {
	if _, err := s.userRepo.FindByUsername(input.Recipient); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipientNotFound
		}
		return nil, fmt.Errorf("failed to check recipient: %w", err)
	}

	msg := &models.Message{
		Sender:    input.Sender,
		Recipient: input.Recipient,
		Subject:   input.Subject,
		Body:      input.Body,
	}

	entry := &models.LogEntry{
		Actor:   input.Sender,
		Action:  models.ActionSendMessage,
		Details: fmt.Sprintf("to %s subj='%s'", input.Recipient, truncate(input.Subject, constants.MaxSubjectInLog)),
	}

	if err := s.messageRepo.CreateWithLog(msg, entry); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	return msg, nil
}

// Inbox returns messages addressed to the user, newest first
func (s *MessageService) Inbox(username string, unreadOnly bool) ([]models.Message, error) {
	msgs, err := s.messageRepo.ListForRecipient(username, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return msgs, nil
}

// Sent returns messages the user sent, newest first
func (s *MessageService) Sent(username string) ([]models.Message, error) {
	msgs, err := s.messageRepo.ListForSender(username)
	if err != nil {
		return nil, fmt.Errorf("failed to list sent messages: %w", err)
	}
	return msgs, nil
}

// MarkRead marks a message read. Idempotent and unaudited.
func (s *MessageService) MarkRead(id uint64) error {
	if err := s.messageRepo.MarkRead(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMessageNotFound
		}
		return fmt.Errorf("failed to mark message read: %w", err)
	}
	return nil
}

// UnreadCount counts unread messages for the user
func (s *MessageService) UnreadCount(username string) (int64, error) {
	count, err := s.messageRepo.UnreadCount(username)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}

// truncate shortens s to at most n runes
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
