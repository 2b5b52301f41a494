package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/setiawanwcksn/weddingorg-sub000/internal/config"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/domain"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/media"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/realtime"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/mw"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/v1/health"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/v1/upload"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/v1/ws"
)

type Deps struct {
	DB    health.Pinger
	Cache domain.Cache
	Media *media.Service
	Hub   *realtime.Hub
	Auth  mw.AuthDeps
}

type Server struct {
	log    *log.Logger
	server *http.Server
	cfg    *config.Config
}

func New(logger *log.Logger, cfg *config.Config, deps Deps) *Server {
	healthLog := log.New(logger.Writer(), logger.Prefix()+"[health] ", logger.Flags())
	uploadLog := log.New(logger.Writer(), logger.Prefix()+"[upload] ", logger.Flags())
	wsLog := log.New(logger.Writer(), logger.Prefix()+"[ws] ", logger.Flags())

	healthHandler := &health.Handler{DB: deps.DB, Cache: deps.Cache, Log: healthLog}
	uploadHandler := &upload.Handler{
		Log:           uploadLog,
		Media:         deps.Media,
		Cache:         deps.Cache,
		PublicBaseURL: cfg.PublicBaseURL,
		MetaTTL:       cfg.MediaMetaTTL,
	}
	wsHandler := ws.New(wsLog, deps.Hub)

	srv := &http.Server{
		Addr:    cfg.AppPort,
		Handler: newRouter(healthHandler, uploadHandler, wsHandler, deps.Auth, logger),
		// Read/WriteTimeout не ставим: долгоживущие websocket-соединения
		// они бы обрубали; границы держат ReadHeader/Idle
		MaxHeaderBytes:    1 << 20,
		ReadHeaderTimeout: 2 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return &Server{server: srv, cfg: cfg, log: logger}
}

func (ws *Server) Run() {
	ws.log.Printf("started on %s", ws.server.Addr)
	if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		ws.log.Fatalf("error: %v", err)
	}
}

func (ws *Server) Close(ctx context.Context) {
	if err := ws.server.Shutdown(ctx); err != nil {
		ws.log.Printf("forced to shutdown: %v", err)
	}
	ws.log.Println("exited gracefully")
}
