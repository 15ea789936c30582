package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"dalle-telegram-bot/internal/config"
	"dalle-telegram-bot/internal/domain"
)

// Dispatcher hands a message context to the plugins.
type Dispatcher interface {
	Handle(ctx context.Context, ec *domain.EventContext)
}

type Bot struct {
	api     *tgbotapi.BotAPI
	cfg     config.Config
	plugins Dispatcher
	log     logrus.FieldLogger
}

func NewBot(cfg config.Config, plugins Dispatcher, log logrus.FieldLogger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, err
	}
	log.WithField("account", api.Self.UserName).Info("authorized on telegram")

	return &Bot{
		api:     api,
		cfg:     cfg,
		plugins: plugins,
		log:     log,
	}, nil
}

func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			msg := update.Message
			if msg.From == nil {
				continue
			}
			go b.handleMessage(ctx, msg)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	log := b.log.WithFields(logrus.Fields{
		"chat_id": msg.Chat.ID,
		"user_id": msg.From.ID,
	})

	if !isAllowed(msg.From.ID, msg.Chat.ID, b.cfg) {
		deny := tgbotapi.NewMessage(msg.Chat.ID, "access denied")
		deny.ReplyToMessageID = msg.MessageID
		if _, err := b.api.Send(deny); err != nil {
			log.WithError(err).Warn("failed to send deny message")
		}
		return
	}

	ec := domain.NewEventContext(domain.Message{
		ChatID:    msg.Chat.ID,
		UserID:    msg.From.ID,
		MessageID: msg.MessageID,
		Content:   msg.Text,
	})
	b.plugins.Handle(ctx, ec)

	reply, ok := ec.Reply()
	if !ok {
		return
	}

	for _, out := range buildReply(msg.Chat.ID, msg.MessageID, reply) {
		if _, err := b.api.Send(out); err != nil {
			if photo, isPhoto := out.(tgbotapi.PhotoConfig); isPhoto {
				log.WithError(err).Warn("failed to send photo, sending url instead")
				b.sendText(msg.Chat.ID, photo.ReplyToMessageID, reply.Content, log)
				continue
			}
			log.WithError(err).Warn("failed to send reply")
		}
	}
}

func (b *Bot) sendText(chatID int64, replyTo int, text string, log logrus.FieldLogger) {
	for _, out := range textMessages(chatID, replyTo, text) {
		if _, err := b.api.Send(out); err != nil {
			log.WithError(err).Warn("failed to send reply")
		}
	}
}

// buildReply turns a plugin reply into the telegram messages that deliver it.
func buildReply(chatID int64, replyTo int, reply domain.Reply) []tgbotapi.Chattable {
	if reply.Kind == domain.ReplyImage {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(reply.Content))
		photo.ReplyToMessageID = replyTo
		return []tgbotapi.Chattable{photo}
	}
	return textMessages(chatID, replyTo, reply.Content)
}

func textMessages(chatID int64, replyTo int, text string) []tgbotapi.Chattable {
	const chunkSize = 2048

	chunks := splitText(text, chunkSize)
	out := make([]tgbotapi.Chattable, 0, len(chunks))
	for idx, chunk := range chunks {
		msg := tgbotapi.NewMessage(chatID, chunk)
		if idx == 0 {
			msg.ReplyToMessageID = replyTo
		}
		out = append(out, msg)
	}
	return out
}

func isAllowed(userID, chatID int64, cfg config.Config) bool {
	for _, id := range cfg.AdminUserIDs {
		if id == userID {
			return true
		}
	}

	if len(cfg.AllowedUserIDs) == 0 && len(cfg.AllowedChatIDs) == 0 {
		return true
	}

	for _, id := range cfg.AllowedUserIDs {
		if id == userID {
			return true
		}
	}
	for _, id := range cfg.AllowedChatIDs {
		if id == chatID {
			return true
		}
	}

	return false
}

func splitText(text string, chunkSize int) []string {
	if chunkSize <= 0 {
		return []string{text}
	}

	runes := []rune(text)
	if len(runes) <= chunkSize {
		return []string{text}
	}

	chunks := make([]string, 0, len(runes)/chunkSize+1)
	for start := 0; start < len(runes); start += chunkSize {
		end := start + chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}

	return chunks
}
