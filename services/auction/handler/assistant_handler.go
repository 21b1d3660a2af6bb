package handler

import (
	"errors"
	"fmt"
	"net/http"

	"car-auction/internal/assistant"
	"car-auction/internal/projection"
	"car-auction/services/auction/helpers"
	"car-auction/utils"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	assistant  *assistant.Assistant
	projection *projection.Service
}

// NewAssistantHandler creates the handler. A nil assistant disables /chat
// (no completion API key configured) while /context keeps working.
func NewAssistantHandler(asst *assistant.Assistant, proj *projection.Service) *AssistantHandler {
	return &AssistantHandler{assistant: asst, projection: proj}
}

// SnapshotHandler handles GET /context
func (h *AssistantHandler) SnapshotHandler(c *gin.Context) {
	clientID := c.Query("client_id")

	snap, err := h.projection.Snapshot(c.Request.Context(), clientID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SnapshotHandler: failed to build snapshot", map[string]any{
			"client_id": clientID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, snap, "context snapshot built successfully")
}

// ChatHandler handles POST /chat
func (h *AssistantHandler) ChatHandler(c *gin.Context) {
	if h.assistant == nil {
		err := errors.New("chat assistant is not configured")
		utils.JSONError(c, http.StatusServiceUnavailable, err, "chat assistant unavailable")
		return
	}

	var req helpers.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ChatHandler", err)
		return
	}

	history := make([]assistant.Message, 0, len(req.Messages))
	for _, msg := range req.Messages {
		history = append(history, assistant.Message{Role: msg.Role, Content: msg.Content})
	}

	reply, err := h.assistant.Chat(c.Request.Context(), req.ClientID, history)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ChatHandler: completion failed", map[string]any{
			"client_id": req.ClientID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ChatResponse{Message: reply}, "assistant replied successfully")
	helpers.LogSuccess("ChatHandler", "assistant replied successfully", map[string]any{
		"client_id": req.ClientID,
		"turns":     len(req.Messages),
	})
}
