package telegram

import (
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dalle-telegram-bot/internal/config"
	"dalle-telegram-bot/internal/domain"
)

func TestIsAllowed(t *testing.T) {
	tests := []struct {
		name   string
		cfg    config.Config
		user   int64
		chat   int64
		expect bool
	}{
		{"no lists", config.Config{}, 1, 10, true},
		{"admin", config.Config{AdminUserIDs: []int64{1}, AllowedUserIDs: []int64{2}}, 1, 10, true},
		{"allowed user", config.Config{AllowedUserIDs: []int64{2}}, 2, 10, true},
		{"unknown user", config.Config{AllowedUserIDs: []int64{2}}, 3, 10, false},
		{"allowed chat", config.Config{AllowedChatIDs: []int64{-100}}, 3, -100, true},
		{"unknown chat", config.Config{AllowedChatIDs: []int64{-100}}, 3, -200, false},
		{"only admins set", config.Config{AdminUserIDs: []int64{1}}, 5, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, isAllowed(tt.user, tt.chat, tt.cfg))
		})
	}
}

func TestBuildReplyImage(t *testing.T) {
	out := buildReply(42, 7, domain.ImageReply("http://x/img.png"))
	require.Len(t, out, 1)

	photo, ok := out[0].(tgbotapi.PhotoConfig)
	require.True(t, ok)
	assert.Equal(t, int64(42), photo.ChatID)
	assert.Equal(t, 7, photo.ReplyToMessageID)
	assert.Equal(t, tgbotapi.FileURL("http://x/img.png"), photo.File)
}

func TestBuildReplyText(t *testing.T) {
	out := buildReply(42, 7, domain.TextReply("模型已更改为: dall_e_3"))
	require.Len(t, out, 1)

	msg, ok := out[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, "模型已更改为: dall_e_3", msg.Text)
	assert.Equal(t, 7, msg.ReplyToMessageID)
	assert.Empty(t, msg.ParseMode)
}

func TestBuildReplyLongText(t *testing.T) {
	out := buildReply(1, 9, domain.TextReply(strings.Repeat("画", 2049)))
	require.Len(t, out, 2)

	first := out[0].(tgbotapi.MessageConfig)
	second := out[1].(tgbotapi.MessageConfig)
	assert.Equal(t, 9, first.ReplyToMessageID)
	assert.Zero(t, second.ReplyToMessageID)
	assert.Equal(t, "画", second.Text)
}

func TestSplitText(t *testing.T) {
	assert.Equal(t, []string{"abc"}, splitText("abc", 0))
	assert.Equal(t, []string{"abc"}, splitText("abc", 3))
	assert.Equal(t, []string{"ab", "c"}, splitText("abc", 2))
	assert.Equal(t, []string{""}, splitText("", 2))
}
