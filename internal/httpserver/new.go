package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	extractionHTTP "voice-task-extractor/internal/extraction/delivery/http"
	tgDelivery "voice-task-extractor/internal/extraction/delivery/telegram"
	"voice-task-extractor/internal/metrics"
	"voice-task-extractor/internal/middleware"
	"voice-task-extractor/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Observability
	metrics *metrics.Metrics
	mw      middleware.Middleware

	// Extraction domain
	extractionHandler extractionHTTP.Handler
	telegramHandler   tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	Metrics    *metrics.Metrics
	Middleware middleware.Middleware

	// Extraction domain
	ExtractionHandler extractionHTTP.Handler
	TelegramHandler   tgDelivery.Handler // optional
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                 logger,
		gin:               gin.New(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		shutdownTimeout:   cfg.ShutdownTimeout,
		metrics:           cfg.Metrics,
		mw:                cfg.Middleware,
		extractionHandler: cfg.ExtractionHandler,
		telegramHandler:   cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}

	srv.mapHandlers()
	return srv, nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.extractionHandler == nil {
		return errors.New("extraction handler is required")
	}
	return nil
}
