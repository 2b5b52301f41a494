package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/setiawanwcksn/weddingorg-sub000/internal/app"
)

// @title           weddingorg core API
// @version         1.0
// @description     Realtime-канал гостевых событий и медиахранилище с Range-отдачей
// @BasePath        /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.Build(ctx)
	if err != nil {
		log.Fatalf("build: %v", err)
	}
	if err := a.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
