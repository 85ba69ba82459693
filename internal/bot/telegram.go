package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var errUpdatesClosed = errors.New("telegram updates channel closed")

// TelegramConfig holds the polling settings of the Telegram transport
type TelegramConfig struct {
	Token       string
	PollTimeout time.Duration
	SkipPending bool
	Debug       bool
}

// Telegram is the Telegram Bot API transport. It implements Sender and
// feeds inbound commands to a Handler via long polling.
type Telegram struct {
	api    *tgbotapi.BotAPI
	config TelegramConfig
	logger *slog.Logger
}

// NewTelegram authorizes the bot with the Bot API
func NewTelegram(cfg TelegramConfig, logger *slog.Logger) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to authorize bot: %w", err)
	}
	api.Debug = cfg.Debug

	logger.Info("Authorized on Telegram", "username", api.Self.UserName)

	return &Telegram{api: api, config: cfg, logger: logger}, nil
}

// Send implements Sender
func (t *Telegram) Send(ctx context.Context, reply Reply) error {
	if err := ctx.Err(); err != nil {
		return &SendError{Retryable: true, Err: err}
	}

	if _, err := t.api.Send(newMessage(reply)); err != nil {
		return classify(err)
	}
	return nil
}

// newMessage builds a sendMessage request. The reply is still delivered when
// the triggering message has been deleted in the meantime.
func newMessage(reply Reply) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(reply.ChatID, reply.Text)
	msg.ReplyToMessageID = reply.ReplyTo
	msg.AllowSendingWithoutReply = true
	msg.ParseMode = reply.ParseMode
	return msg
}

// Run polls for updates until ctx is cancelled. Every command is handled
// in its own goroutine.
func (t *Telegram) Run(ctx context.Context, handler Handler) error {
	if t.config.SkipPending {
		if _, err := t.api.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: true}); err != nil {
			t.logger.Warn("Failed to drop pending updates", "error", err)
		}
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = int(t.config.PollTimeout.Seconds())
	updates := t.api.GetUpdatesChan(u)

	t.logger.Info("Starting bot...")

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			t.logger.Info("Stopping bot...")
			t.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return errUpdatesClosed
			}
			req, ok := toRequest(update)
			if !ok {
				continue
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				handler.Dispatch(ctx, req)
			}()
		}
	}
}

// toRequest extracts a command from an update. Non-command updates are skipped.
func toRequest(update tgbotapi.Update) (Request, bool) {
	msg := update.Message
	if msg == nil || msg.Chat == nil || !msg.IsCommand() {
		return Request{}, false
	}
	return Request{
		Command:   msg.Command(),
		ChatID:    msg.Chat.ID,
		MessageID: msg.MessageID,
	}, true
}

// classify wraps transport errors into a SendError
func classify(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		return classifyAPIError(apiErr.Code, err)
	}

	// Anything that is not an API response is a network level failure
	return &SendError{Retryable: true, Err: err}
}

func classifyAPIError(code int, err error) error {
	retryable := code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
	return &SendError{Retryable: retryable, Code: code, Err: err}
}
