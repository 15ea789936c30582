package domain

import "strings"

type Message struct {
	ChatID    int64
	UserID    int64
	MessageID int
	Content   string
}

// EventContext is the per-message record shared between the host and the
// plugins: plugins read the message from it and write at most one reply.
type EventContext struct {
	Message Message

	reply    Reply
	hasReply bool
}

func NewEventContext(msg Message) *EventContext {
	return &EventContext{Message: msg}
}

// Content returns the message text without surrounding whitespace.
func (e *EventContext) Content() string {
	return strings.TrimSpace(e.Message.Content)
}

func (e *EventContext) SetReply(r Reply) {
	e.reply = r
	e.hasReply = true
}

func (e *EventContext) Reply() (Reply, bool) {
	return e.reply, e.hasReply
}
