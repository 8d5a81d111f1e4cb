package telegram

import (
	"sync"

	"github.com/gin-gonic/gin"

	"voice-task-extractor/internal/extraction"
	pkgLog "voice-task-extractor/pkg/log"
	pkgTelegram "voice-task-extractor/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
	// Wait blocks until every update accepted so far has been processed.
	Wait()
}

// New creates a new Telegram delivery handler. An empty secret disables the
// webhook secret check.
func New(l pkgLog.Logger, uc extraction.UseCase, bot *pkgTelegram.Bot, secret string) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		bot:    bot,
		secret: secret,
	}
}

type handler struct {
	l      pkgLog.Logger
	uc     extraction.UseCase
	bot    *pkgTelegram.Bot
	secret string

	inflight sync.WaitGroup
}
