package chat

import "time"

// DefaultSessionKey is used when a caller does not supply a session id.
const DefaultSessionKey = "default"

// Topic tags the subject the conversation is currently on.
type Topic string

const (
	TopicNone     Topic = ""
	TopicIllness  Topic = "illness"
	TopicRemedies Topic = "remedies"
)

// Session accumulates one conversation's state. Messages are append-only;
// readers consume them through a sliding window (see Window).
type Session struct {
	Key       string    `json:"key"`
	Messages  []Message `json:"messages"`
	Illness   string    `json:"illness,omitempty"`
	Topic     Topic     `json:"topic,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Append records a turn at the end of the history.
func (s *Session) Append(sender, content string) {
	s.Messages = append(s.Messages, NewMessage(sender, content))
}

// Window returns the most recent n messages in order.
func (s *Session) Window(n int) []Message {
	if len(s.Messages) <= n {
		return s.Messages
	}
	return s.Messages[len(s.Messages)-n:]
}
