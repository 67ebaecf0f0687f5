package dto

import (
	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/models"
)

// Message timestamps are rendered to the minute, matching the historical
// wire format.
const messageTimeFormat = "2006-01-02 15:04"

// InboxMessageDTO represents a received message in API responses
type InboxMessageDTO struct {
	ID        uint64 `json:"id"`
	Sender    string `json:"sender"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Timestamp string `json:"timestamp"`
	Read      bool   `json:"read"`
}

// SentMessageDTO represents a sent message in API responses
type SentMessageDTO struct {
	ID        uint64 `json:"id"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Timestamp string `json:"timestamp"`
}

// ToInboxMessageDTO converts a Message model to InboxMessageDTO
func ToInboxMessageDTO(msg models.Message) InboxMessageDTO {
	return InboxMessageDTO{
		ID:        msg.ID,
		Sender:    msg.Sender,
		Subject:   msg.Subject,
		Body:      msg.Body,
		Timestamp: msg.Timestamp.Format(messageTimeFormat),
		Read:      msg.Read,
	}
}

// ToInboxMessageDTOs converts a slice of received messages
func ToInboxMessageDTOs(msgs []models.Message) []InboxMessageDTO {
	items := make([]InboxMessageDTO, len(msgs))
	for i, m := range msgs {
		items[i] = ToInboxMessageDTO(m)
	}
	return items
}

// ToSentMessageDTO converts a Message model to SentMessageDTO
func ToSentMessageDTO(msg models.Message) SentMessageDTO {
	return SentMessageDTO{
		ID:        msg.ID,
		Recipient: msg.Recipient,
		Subject:   msg.Subject,
		Body:      msg.Body,
		Timestamp: msg.Timestamp.Format(messageTimeFormat),
	}
}

// ToSentMessageDTOs converts a slice of sent messages
func ToSentMessageDTOs(msgs []models.Message) []SentMessageDTO {
	items := make([]SentMessageDTO, len(msgs))
	for i, m := range msgs {
		items[i] = ToSentMessageDTO(m)
	}
	return items
}
