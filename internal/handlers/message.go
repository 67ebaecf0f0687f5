package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/dto"
	apierrors "github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/errors"
	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/services"
)

// MessageHandler coordinates message HTTP handlers.
type MessageHandler struct {
	messageService *services.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
	}
}

// Send delivers a message to an existing user.
func (h *MessageHandler) Send(c *gin.Context) {
	type SendMessageRequest struct {
		Sender    string `json:"sender" binding:"required"`
		Recipient string `json:"recipient" binding:"required"`
		Subject   string `json:"subject"`
		Body      string `json:"body" binding:"required"`
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "sender, recipient and body required")
		return
	}

	msg, err := h.messageService.Send(services.SendMessageInput{
		Sender:    req.Sender,
		Recipient: req.Recipient,
		Subject:   req.Subject,
		Body:      req.Body,
	})
	if err != nil {
		respondMessageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "sent",
		"id":     msg.ID,
	})
}

// Inbox lists messages addressed to the user, newest first. Passing
// unread=1 restricts the list to unread messages.
func (h *MessageHandler) Inbox(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		apierrors.BadRequest(c, "username required")
		return
	}
	unreadOnly := c.Query("unread") == "1"

	msgs, err := h.messageService.Inbox(username, unreadOnly)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": dto.ToInboxMessageDTOs(msgs),
	})
}

// Sent lists messages the user sent, newest first.
func (h *MessageHandler) Sent(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		apierrors.BadRequest(c, "username required")
		return
	}

	msgs, err := h.messageService.Sent(username)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": dto.ToSentMessageDTOs(msgs),
	})
}

// MarkRead marks a message read. Repeating the call is a no-op success.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "message not found")
		return
	}

	if err := h.messageService.MarkRead(id); err != nil {
		respondMessageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
	})
}

// UnreadCount returns the number of unread messages for the user.
func (h *MessageHandler) UnreadCount(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		apierrors.BadRequest(c, "username required")
		return
	}

	count, err := h.messageService.UnreadCount(username)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"unread": count,
	})
}

func respondMessageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRecipientNotFound):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrMessageNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
