package chat

import (
	"time"

	"github.com/google/uuid"
)

// Sender roles for a conversation turn.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// Message persists individual turns for prompt context and audit/debug.
type Message struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewMessage stamps a turn with an id and creation time.
func NewMessage(sender, content string) Message {
	return Message{
		ID:        uuid.NewString(),
		Sender:    sender,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}

// Tag renders the role-prefixed transcript line ("User: ..." / "AI: ...")
// used when composing generation prompts.
func (m Message) Tag() string {
	if m.Sender == SenderAssistant {
		return "AI: " + m.Content
	}
	return "User: " + m.Content
}
