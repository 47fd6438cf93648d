package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uema-profitec/sigep-api/internal/dto"
	"github.com/uema-profitec/sigep-api/internal/service"
	appErrors "github.com/uema-profitec/sigep-api/pkg/errors"
	"github.com/uema-profitec/sigep-api/pkg/response"
)

// ChatHandler wires the assistant to HTTP routes.
type ChatHandler struct {
	chat    *service.ChatService
	metrics *service.MetricsService
}

// NewChatHandler constructs a ChatHandler. metrics may be nil.
func NewChatHandler(chat *service.ChatService, metrics *service.MetricsService) *ChatHandler {
	return &ChatHandler{chat: chat, metrics: metrics}
}

// Transcript godoc
// @Summary Conversation transcript
// @Tags Chat
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /chat/messages [get]
func (h *ChatHandler) Transcript(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.chat.Transcript())
}

// Send godoc
// @Summary Send a message to the assistant
// @Tags Chat
// @Accept json
// @Produce json
// @Param payload body dto.SendMessageRequest true "Message payload"
// @Success 200 {object} response.Envelope
// @Router /chat/messages [post]
func (h *ChatHandler) Send(c *gin.Context) {
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.observe("rejected")
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid chat payload"))
		return
	}

	resp, err := h.chat.Send(c.Request.Context(), req)
	if err != nil {
		h.observe("rejected")
		response.Error(c, err)
		return
	}

	switch {
	case resp.NavigateTo != "":
		h.observe("navigation")
	case resp.AssistantMessage.Text == service.ApologyText:
		h.observe("error")
	default:
		h.observe("ok")
	}
	response.JSON(c, http.StatusOK, resp)
}

func (h *ChatHandler) observe(outcome string) {
	if h.metrics != nil {
		h.metrics.ObserveChatOutcome(outcome)
	}
}
