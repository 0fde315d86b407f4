package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
	"github.com/yoshuavic8/church-management-sub002/internal/domain"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyWindowOpened(ctx context.Context, status *domain.LiveStatus) {
	until := "until closed manually"
	if status.ExpiresAt != nil {
		until = "until " + status.ExpiresAt.UTC().Format("02.01.2006 15:04")
	}
	text := fmt.Sprintf(
		"*Live check-in opened*\n\n"+"Meeting: %s\n"+"Date (UTC): %s\n"+"Open %s.",
		status.Topic,
		status.MeetingDate.Format("02.01.2006"),
		until,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyWindowClosed(ctx context.Context, status *domain.LiveStatus) {
	text := fmt.Sprintf(
		"*Live check-in closed*\n\n"+"Meeting: %s\n"+"Date (UTC): %s",
		status.Topic,
		status.MeetingDate.Format("02.01.2006"),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifySeriesPlanned(ctx context.Context, topic string, dates []time.Time) {
	if len(dates) == 0 {
		return
	}

	lines := make([]string, 0, len(dates))
	for _, d := range dates {
		lines = append(lines, d.Format("02.01.2006"))
	}
	text := fmt.Sprintf(
		"*Recurring meetings planned*\n\n"+"Topic: %s\n"+"Dates (UTC):\n%s",
		topic,
		strings.Join(lines, "\n"),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
