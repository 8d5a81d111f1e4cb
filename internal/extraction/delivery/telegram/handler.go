package telegram

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"voice-task-extractor/internal/extraction"
	"voice-task-extractor/internal/model"
	pkgLog "voice-task-extractor/pkg/log"
	pkgResponse "voice-task-extractor/pkg/response"
	pkgTelegram "voice-task-extractor/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It acknowledges immediately and processes the message in the background so
// Telegram never waits on the reply round trip.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.authorized(c.GetHeader(pkgTelegram.SecretTokenHeader)) {
		h.l.Warnf(ctx, "telegram.HandleWebhook: rejected update with bad secret token")
		pkgResponse.Unauthorized(c)
		return
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram.HandleWebhook: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Edited messages, channel posts and the like carry no message.
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	bgCtx := pkgLog.WithRequestID(context.Background(), pkgLog.RequestIDFromContext(ctx))

	h.inflight.Add(1)
	go func() {
		defer h.inflight.Done()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram.processMessage: chat=%d: %v", msg.Chat.ID, err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) Wait() {
	h.inflight.Wait()
}

func (h *handler) authorized(got string) bool {
	if h.secret == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) == 1
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		text = strings.TrimSpace(msg.Caption)
	}
	if text == "" {
		if msg.Voice != nil {
			return h.bot.SendMessage(ctx, msg.Chat.ID, voiceHint)
		}
		return nil
	}

	sc := scopeFromMessage(msg)

	switch command(text) {
	case "/start":
		return h.bot.SendMessage(ctx, msg.Chat.ID, startMessage)
	case "/help":
		return h.bot.SendMessage(ctx, msg.Chat.ID, helpMessage)
	case "/usage":
		out, err := h.uc.Usage(ctx, sc)
		if err != nil {
			h.replyError(ctx, msg.Chat.ID, err)
			return fmt.Errorf("usage: %w", err)
		}
		return h.bot.SendMessage(ctx, msg.Chat.ID, formatUsage(out))
	}

	out, err := h.uc.Extract(ctx, sc, extraction.ExtractInput{
		Transcription: text,
		Channel:       extraction.ChannelTelegram,
	})
	if err != nil {
		h.replyError(ctx, msg.Chat.ID, err)
		if errors.Is(err, extraction.ErrTranscriptionLimitReached) {
			return nil
		}
		return fmt.Errorf("extract: %w", err)
	}

	return h.bot.SendMessage(ctx, msg.Chat.ID, formatExtraction(out))
}

func (h *handler) replyError(ctx context.Context, chatID int64, err error) {
	if sendErr := h.bot.SendMessage(ctx, chatID, errorMessage(err)); sendErr != nil {
		h.l.Warnf(ctx, "telegram.replyError: failed to notify chat=%d: %v", chatID, sendErr)
	}
}

func scopeFromMessage(msg *pkgTelegram.Message) model.Scope {
	if msg.From == nil {
		return model.Scope{UserID: fmt.Sprintf("telegram_chat_%d", msg.Chat.ID)}
	}
	return model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
		Username: msg.From.Username,
	}
}

// command returns the bot command at the start of text, without any @botname
// suffix, or "" when text is not a command.
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd := strings.Fields(text)[0]
	if at := strings.IndexByte(cmd, '@'); at >= 0 {
		cmd = cmd[:at]
	}
	return strings.ToLower(cmd)
}
