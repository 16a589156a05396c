package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/morozai/core/internal/logger"
	"golang.org/x/time/rate"
)

const (
	defaultAPIURL      = "https://api.telegram.org"
	defaultPollTimeout = 30 * time.Second
	pollRetryDelay     = 5 * time.Second
)

// relays generation events to a Telegram chat and answers a few bot commands.
// a bot whose token fails validation never becomes running.
type Bot struct {
	config     Config
	httpClient *http.Client
	limiter    *rate.Limiter
	stats      StatsSource

	running  atomic.Bool
	username string
	offset   int64
}

func NewBot(config Config, statsSource StatsSource) *Bot {
	if config.APIURL == "" {
		config.APIURL = defaultAPIURL
	}

	if config.PollTimeout <= 0 {
		config.PollTimeout = defaultPollTimeout
	}

	config.APIURL = strings.TrimRight(config.APIURL, "/")

	return &Bot{
		config: config,
		httpClient: &http.Client{
			// long polling holds the request open for PollTimeout
			Timeout: config.PollTimeout + 10*time.Second,
		},
		// Telegram allows roughly one message per second per chat
		limiter: rate.NewLimiter(1, 5),
		stats:   statsSource,
	}
}

// safe to call on a nil bot, which is never running
func (b *Bot) IsRunning() bool {
	if b == nil {
		return false
	}

	return b.running.Load()
}

// validates the token and long-polls for commands until ctx is cancelled
func (b *Bot) Start(ctx context.Context) error {
	me, err := b.getMe(ctx)
	if err != nil {
		return fmt.Errorf("failed to validate bot token: %w", err)
	}

	b.username = me.Username
	b.running.Store(true)
	defer b.running.Store(false)

	logger.Info("telegram bot started", "username", b.username)

	for {
		if ctx.Err() != nil {
			logger.Info("telegram bot stopped", "username", b.username)
			return nil
		}

		if err := b.poll(ctx); err != nil {
			if ctx.Err() != nil {
				continue
			}

			logger.ErrorErr(err, "telegram polling failed", "retry_in", pollRetryDelay.String())

			select {
			case <-ctx.Done():
			case <-time.After(pollRetryDelay):
			}
		}
	}
}

// posts a prompt/result pair to the configured chat
func (b *Bot) SendGenerationNotification(ctx context.Context, prompt, result string) error {
	return b.sendMessage(ctx, b.config.ChatID, formatGenerationMessage(prompt, result))
}

// fetches one batch of updates and answers the commands in it
func (b *Bot) poll(ctx context.Context) error {
	var updates []update

	err := b.call(ctx, "getUpdates", getUpdatesRequest{
		Offset:         b.offset,
		Timeout:        int(b.config.PollTimeout.Seconds()),
		AllowedUpdates: []string{"message"},
	}, &updates)
	if err != nil {
		return err
	}

	for _, u := range updates {
		b.offset = u.UpdateID + 1

		if u.Message == nil {
			continue
		}

		if err := b.handleCommand(ctx, u.Message); err != nil {
			logger.ErrorErr(err, "failed to answer telegram command",
				"chat_id", u.Message.Chat.ID,
				"text", u.Message.Text,
			)
		}
	}

	return nil
}

func (b *Bot) handleCommand(ctx context.Context, msg *message) error {
	chatID := strconv.FormatInt(msg.Chat.ID, 10)

	switch commandName(msg.Text, b.username) {
	case "/start", "/help":
		return b.sendMessage(ctx, chatID, helpMessage)
	case "/stats":
		if b.stats == nil {
			return nil
		}
		return b.sendMessage(ctx, chatID, formatStatsMessage(b.stats.Snapshot(), b.stats.Uptime(time.Now())))
	default:
		return nil
	}
}

// extracts "/cmd" from "/cmd@botname args"; foreign bot mentions yield ""
func commandName(text, username string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}

	fields := strings.Fields(text)
	cmd, mention, found := strings.Cut(fields[0], "@")

	if found && !strings.EqualFold(mention, username) {
		return ""
	}

	return strings.ToLower(cmd)
}

func (b *Bot) getMe(ctx context.Context) (*user, error) {
	var me user
	if err := b.call(ctx, "getMe", nil, &me); err != nil {
		return nil, err
	}

	return &me, nil
}

func (b *Bot) sendMessage(ctx context.Context, chatID, text string) error {
	if err := b.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	return b.call(ctx, "sendMessage", sendMessageRequest{
		ChatID:                chatID,
		Text:                  text,
		ParseMode:             "HTML",
		DisableWebPagePreview: true,
	}, nil)
}

// invokes a Bot API method and decodes its result into out (when non-nil)
func (b *Bot) call(ctx context.Context, method string, payload any, out any) error {
	body := []byte("{}")

	if payload != nil {
		var err error
		if body, err = json.Marshal(payload); err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", method, err)
		}
	}

	endpoint := fmt.Sprintf("%s/bot%s/%s", b.config.APIURL, b.config.Token, method)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", method, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		// the URL embeds the token, keep it out of logs
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return fmt.Errorf("%s request failed: %w", method, err)
	}

	defer resp.Body.Close() //nolint:errcheck

	var envelope apiResponse[json.RawMessage]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode %s response (status %d): %w", method, resp.StatusCode, err)
	}

	if !envelope.OK {
		return fmt.Errorf("%s failed with code %d: %s", method, envelope.ErrorCode, envelope.Description)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("failed to decode %s result: %w", method, err)
	}

	return nil
}
