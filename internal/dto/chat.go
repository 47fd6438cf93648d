package dto

import "github.com/uema-profitec/sigep-api/internal/models"

// ChatAttachment carries one inline file for analysis. Data is the
// raw base64 payload without the data-URI prefix.
type ChatAttachment struct {
	Name     string `json:"name" validate:"required"`
	MimeType string `json:"mime_type" validate:"required"`
	Data     string `json:"data" validate:"required"`
}

// SendMessageRequest is one assistant turn from the user.
type SendMessageRequest struct {
	Text       string          `json:"text"`
	Attachment *ChatAttachment `json:"attachment"`
}

// SendMessageResponse returns both appended transcript turns and, when
// the model invoked the navigation tool, the destination page the
// client should switch to.
type SendMessageResponse struct {
	UserMessage      models.ChatMessage `json:"user_message"`
	AssistantMessage models.ChatMessage `json:"assistant_message"`
	NavigateTo       string             `json:"navigate_to,omitempty"`
}
