package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"parttimepro/internal/service"
	"parttimepro/pkg/logger"
)

type MessageHandler struct {
	messageService service.MessageService
	log            logger.Logger
}

func NewMessageHandler(messageService service.MessageService, log logger.Logger) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		log:            log,
	}
}

// ListConversations returns the viewer's mailbox: one summary per
// counterpart, most recently active first.
func (h *MessageHandler) ListConversations(c *gin.Context) {
	viewerID, viewerRole, ok := viewerFromContext(c)
	if !ok {
		return
	}

	summaries, err := h.messageService.ListConversations(c.Request.Context(), viewerID, viewerRole)
	if err != nil {
		h.log.Error("Failed to list conversations", "error", err, "viewer_id", viewerID)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// OpenConversation returns the thread with one counterpart and, as a side
// effect, marks that counterpart's messages as read.
func (h *MessageHandler) OpenConversation(c *gin.Context) {
	viewerID, viewerRole, ok := viewerFromContext(c)
	if !ok {
		return
	}

	counterpartID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	view, err := h.messageService.OpenConversation(c.Request.Context(), viewerID, viewerRole, counterpartID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, view)
}

type SendMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

func (h *MessageHandler) SendMessage(c *gin.Context) {
	viewerID, viewerRole, ok := viewerFromContext(c)
	if !ok {
		return
	}

	counterpartID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.messageService.SendMessage(c.Request.Context(), viewerID, viewerRole, counterpartID, req.Body)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

func viewerFromContext(c *gin.Context) (uuid.UUID, string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, "", false
	}

	role, exists := c.Get("user_role")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, "", false
	}

	return userID.(uuid.UUID), role.(string), true
}
