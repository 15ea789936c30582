package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventContext(t *testing.T) {
	ec := NewEventContext(Message{ChatID: 1, Content: "  $ht a cat \n"})
	assert.Equal(t, "$ht a cat", ec.Content())

	_, ok := ec.Reply()
	assert.False(t, ok)

	ec.SetReply(ImageReply("http://x/img.png"))
	r, ok := ec.Reply()
	assert.True(t, ok)
	assert.Equal(t, Reply{Kind: ReplyImage, Content: "http://x/img.png"}, r)
}

func TestEmptyTextReplyIsStillAReply(t *testing.T) {
	ec := NewEventContext(Message{})
	ec.SetReply(TextReply(""))

	r, ok := ec.Reply()
	assert.True(t, ok)
	assert.Equal(t, ReplyText, r.Kind)
}
