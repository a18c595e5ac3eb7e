package notifier

import (
	"context"
	"fmt"

	"github.com/pfrederiksen/vcal-notify/internal/logger"
	"github.com/pfrederiksen/vcal-notify/internal/telegram"
)

// TelegramNotifier sends the message to a chat with the calendar link keyboard
type TelegramNotifier struct {
	client   *telegram.Client
	keyboard *telegram.InlineKeyboardMarkup
}

// NewTelegramNotifier wraps client, attaching the calendar keyboard to every message
func NewTelegramNotifier(client *telegram.Client) *TelegramNotifier {
	return &TelegramNotifier{
		client:   client,
		keyboard: telegram.CalendarKeyboard(),
	}
}

// Name implements Notifier
func (n *TelegramNotifier) Name() string {
	return "telegram"
}

// Notify implements Notifier
func (n *TelegramNotifier) Notify(ctx context.Context, text string) error {
	msg, err := n.client.SendMessageWithKeyboard(ctx, text, n.keyboard)
	if err != nil {
		return fmt.Errorf("sending Telegram message to %s: %w", n.client.ChatID(), err)
	}

	logger.Info("Message sent successfully", logger.Fields{
		"chat_id":    n.client.ChatID(),
		"message_id": msg.MessageID,
	})
	return nil
}
