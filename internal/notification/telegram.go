package notification

import (
	"context"
	"fmt"

	"github.com/brinto-swe/event-management-system/internal/domain"
	"github.com/brinto-swe/event-management-system/internal/metrics"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

const channelTelegram = "telegram"

type TelegramNotifier struct {
	bot     *tgbotapi.BotAPI
	logger  logger.Logger
	metrics *metrics.Metrics
}

func NewTelegramNotifier(token string, logger logger.Logger, m *metrics.Metrics) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, telegram notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger, metrics: m}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger, metrics: m}, nil
}

func (n *TelegramNotifier) NotifyRSVPCreated(ctx context.Context, user *domain.User, event *domain.Event) {
	n.send(ctx, user.TelegramChatID, rsvpMessage(event))
}

// rsvpMessage renders the confirmation in Markdown; user-supplied text is escaped.
func rsvpMessage(event *domain.Event) string {
	return fmt.Sprintf(
		"*RSVP confirmed: %s*\n\n"+"Date: %s at %s\n"+"Location: %s",
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, event.Name),
		event.Date.Format(domain.DateLayout), event.Time,
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, event.Location),
	)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("telegram notification skipped (bot disabled)")
		return
	}

	if chatID == nil {
		n.logger.Debug("telegram notification skipped (no chat_id)")
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("telegram notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.metrics.Failed(channelTelegram)
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
		return
	}
	n.metrics.Delivered(channelTelegram)
}
