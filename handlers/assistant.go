package handlers

import (
	"encoding/json"
	"net/http"

	"cooptaxi/services/assistant"
	"cooptaxi/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler serves the chat endpoints.
type AssistantHandler struct {
	Svc    assistant.Assistant
	Logger *zap.Logger
}

func NewAssistantHandler(svc assistant.Assistant, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{Svc: svc, Logger: logger}
}

// ChatSendRequest is the expected input for POST /api/chat/send.
type ChatSendRequest struct {
	Message string          `json:"message" binding:"required"`
	Context json.RawMessage `json:"context"`
}

// SendHandler handles POST /api/chat/send. Provider failures still return a
// 200 with a well-formed turn; only storage problems are errors here.
func (h *AssistantHandler) SendHandler(c *gin.Context) {
	var req ChatSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid chat request", err.Error())
		return
	}

	turn, err := h.Svc.Send(c.Request.Context(), req.Message, req.Context)
	if err != nil {
		h.Logger.Error("ChatSend: send failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to process message", err.Error())
		return
	}
	c.JSON(http.StatusOK, turn)
}

// GetConversationsHandler handles GET /api/chat/conversations.
func (h *AssistantHandler) GetConversationsHandler(c *gin.Context) {
	turns, err := h.Svc.GetConversations(c.Request.Context())
	if err != nil {
		h.Logger.Error("GetConversations: fetch failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch conversations", err.Error())
		return
	}
	c.JSON(http.StatusOK, turns)
}
