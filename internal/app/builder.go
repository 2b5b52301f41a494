package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/setiawanwcksn/weddingorg-sub000/internal/auth/blacklist"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/auth/token"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/config"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/domain"
	redisx "github.com/setiawanwcksn/weddingorg-sub000/internal/infra/cache/redis"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/infra/database/postgres"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/media"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/realtime"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/mw"
)

type App struct {
	config *config.Config
	server *web.Server
	log    *log.Logger
	hub    *realtime.Hub
	cache  domain.Cache
	repo   *postgres.PGRepo
}

func Build(ctx context.Context) (*App, error) {
	base := log.New(os.Stdout, "[app] ", log.LstdFlags)

	serverLog := log.New(base.Writer(), base.Prefix()+"[server] ", base.Flags())
	pgLog := log.New(base.Writer(), base.Prefix()+"[postgres] ", base.Flags())
	redisLog := log.New(base.Writer(), base.Prefix()+"[redis] ", base.Flags())
	hubLog := log.New(base.Writer(), base.Prefix()+"[hub] ", base.Flags())
	mediaLog := log.New(base.Writer(), base.Prefix()+"[media] ", base.Flags())

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed load config: %w", err)
	}
	base.Printf("\n  configuration: %s-------------------", cfg)

	base.Println("init PostgreSQL")
	pgRepo, err := postgres.NewPGRepo(ctx, pgLog, cfg.GetDSN(), cfg.DBScheme)
	if err != nil {
		return nil, fmt.Errorf("failed init postgres: %w", err)
	}
	base.Println("PostgreSQL is initialized")

	base.Println("init Redis")
	rc := redisx.New(redisx.Config{
		Addr:     cfg.RedisAddr,
		DB:       cfg.RedisDB,
		Password: cfg.RedisPassword,
	}, redisLog)
	if err := rc.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed init redis: %w", err)
	}
	base.Println("Redis is initialized")

	// Auth primitives
	tm := token.New(cfg.AuthJWTSecret, cfg.AuthIssuer, cfg.AuthTokenTTL)
	bl := blacklist.NewStore(rc, "jti:")

	base.Println("init realtime hub")
	hub := realtime.NewHub(hubLog)

	base.Println("init Server")
	mediaSvc := media.New(mediaLog, pgRepo)
	deps := web.Deps{
		DB:    pgRepo,
		Cache: rc,
		Media: mediaSvc,
		Hub:   hub,
		Auth:  mw.AuthDeps{Tokens: tm, Blacklist: bl, Users: pgRepo},
	}
	server := web.New(serverLog, cfg, deps)
	base.Println("Server is initialized")

	base.Println("build ended")
	return &App{
		config: cfg,
		server: server,
		log:    base,
		hub:    hub,
		cache:  rc,
		repo:   pgRepo,
	}, nil
}

// Hub — точка входа для гостевого CRUD: broadcast событий живым подпискам
func (a *App) Hub() *realtime.Hub { return a.hub }

func (a *App) Run(ctx context.Context) error {
	a.log.Println("start application...")
	go a.server.Run()
	<-ctx.Done()
	a.log.Println("stop application...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	a.server.Close(stopCtx)
	a.hub.Close()
	a.repo.Close()
	a.cache.Close()

	return nil
}
