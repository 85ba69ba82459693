package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Request is an inbound command addressed to the bot
type Request struct {
	Command   string
	ChatID    int64
	MessageID int
}

// Reply is an outbound text message
type Reply struct {
	ChatID    int64
	ReplyTo   int
	Text      string
	ParseMode string
}

// Sender delivers replies to the chat transport
type Sender interface {
	Send(ctx context.Context, reply Reply) error
}

// Handler processes one inbound request
type Handler interface {
	Dispatch(ctx context.Context, req Request)
}

// LocalTimer renders the local times of the roster
type LocalTimer interface {
	LocalTimes() string
}

// Dispatcher maps commands to replies. It is stateless and handles
// requests from concurrent goroutines.
type Dispatcher struct {
	times  LocalTimer
	sender Sender
	logger *slog.Logger
}

// NewDispatcher creates a new Dispatcher
func NewDispatcher(times LocalTimer, sender Sender, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		times:  times,
		sender: sender,
		logger: logger,
	}
}

// Dispatch answers a known command. Unknown commands are ignored.
// Send failures and panics are logged and never propagate.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Panic while handling command", "command", req.Command, "chat_id", req.ChatID, "panic", fmt.Sprint(r))
		}
	}()

	text, ok := d.textFor(req.Command)
	if !ok {
		d.logger.Debug("Ignoring unknown command", "command", req.Command, "chat_id", req.ChatID)
		return
	}

	d.reply(ctx, req, text)
}

func (d *Dispatcher) textFor(command string) (string, bool) {
	switch strings.ToLower(command) {
	case CommandLocalTime:
		return d.times.LocalTimes(), true
	case CommandHelp:
		return HelpMessage, true
	case CommandStart:
		return WelcomeMessage, true
	default:
		return "", false
	}
}

// reply sends text and, if that fails, one plain generic error notice
func (d *Dispatcher) reply(ctx context.Context, req Request, text string) {
	err := d.sender.Send(ctx, Reply{
		ChatID:    req.ChatID,
		ReplyTo:   req.MessageID,
		Text:      text,
		ParseMode: ParseModeHTML,
	})
	if err == nil {
		return
	}

	d.logger.Error("Error sending message",
		"command", req.Command,
		"chat_id", req.ChatID,
		"class", errorClass(err),
		"error", err,
	)

	err = d.sender.Send(ctx, Reply{
		ChatID:  req.ChatID,
		ReplyTo: req.MessageID,
		Text:    ErrorMessage,
	})
	if err != nil {
		d.logger.Error("Error sending fallback message",
			"chat_id", req.ChatID,
			"class", errorClass(err),
			"error", err,
		)
	}
}
