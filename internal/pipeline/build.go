package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/pfrederiksen/vcal-notify/internal/config"
	"github.com/pfrederiksen/vcal-notify/internal/feed"
	"github.com/pfrederiksen/vcal-notify/internal/logger"
	"github.com/pfrederiksen/vcal-notify/internal/notifier"
	"github.com/pfrederiksen/vcal-notify/internal/telegram"
)

// SNS subjects must be ASCII
const snsSubject = "Vaisnava Calendar events"

// New wires a Runner from cfg. When dryRunOut is non-nil, messages are
// printed there instead of being delivered to any channel.
func New(ctx context.Context, cfg *config.Config, dryRunOut io.Writer) (*Runner, error) {
	r := &Runner{
		Source:          feed.New(cfg.DataURL, cfg.HTTPTimeout()),
		Community:       cfg.CommunityName,
		SendEmptyNotice: cfg.SendEmptyNotice,
	}

	if dryRunOut != nil {
		r.Notifiers = []notifier.Notifier{notifier.NewDryRunNotifier(dryRunOut)}
		return r, nil
	}

	client, err := telegram.NewClient(cfg.BotToken, cfg.ChatID, telegram.WithTimeout(cfg.HTTPTimeout()))
	if err != nil {
		return nil, fmt.Errorf("initializing Telegram client: %w", err)
	}
	r.Notifiers = append(r.Notifiers, notifier.NewTelegramNotifier(client))

	if cfg.SNSTopicARN != "" {
		sns, err := notifier.NewSNSNotifier(ctx, cfg.SNSTopicARN, snsSubject)
		if err != nil {
			return nil, fmt.Errorf("initializing SNS notifier: %w", err)
		}
		r.Notifiers = append(r.Notifiers, sns)
		logger.Debug("SNS mirror enabled", logger.Fields{"topic_arn": cfg.SNSTopicARN})
	}

	return r, nil
}
