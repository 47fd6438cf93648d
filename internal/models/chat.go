package models

import "time"

// ChatRole tags a transcript turn.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "model"
)

// GreetingMessageID marks the fixed opening message of the assistant.
// It is rendered in the transcript but never replayed as history.
const GreetingMessageID = "0"

// ChatMessage is one turn of the assistant transcript. The transcript
// is append-only and lives only for the process lifetime.
type ChatMessage struct {
	ID             string    `json:"id"`
	Role           ChatRole  `json:"role"`
	Text           string    `json:"text"`
	Timestamp      time.Time `json:"timestamp"`
	AttachmentName string    `json:"attachment_name,omitempty"`
}
