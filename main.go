package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"websum/app/client/llm"
	"websum/app/client/webpage"
	"websum/app/config"
	"websum/app/server"
	"websum/app/service/agent"
	"websum/app/service/conversation"
	"websum/app/service/engine"
	"websum/app/service/session"
	"websum/app/util/mylog"

	"github.com/gofiber/fiber/v2/log"
	"github.com/samber/do"
)

func main() {
	di := do.New()
	defer di.Shutdown()
	defer log.Info("Waiting for services to finish...")

	mylog.Preinit()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	do.ProvideValue(di, appCtx)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	do.ProvideValue(di, cfg)

	if err = mylog.Init(cfg); err != nil {
		log.Fatalf("logging init failed: %v", err)
	}

	do.Provide(di, llm.New)
	do.Provide(di, webpage.NewClient)
	do.Provide(di, session.New)
	do.Provide(di, conversation.New)
	do.Provide(di, agent.New)
	do.Provide(di, engine.New)
	do.Provide(di, server.New)

	slog.Info("Service started", "addr", cfg.Server.Addr)

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint

		log.Info("Shutting down...")

		cancel()
	}()

	if err = do.MustInvoke[*server.Server](di).Run(appCtx); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
