package server

import (
	"context"
	"websum/app/config"
	"websum/app/service/engine"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/do"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	cfg    *config.Config
	engine Engine
	app    *fiber.App
}

func New(di *do.Injector) (*Server, error) {
	s := &Server{
		cfg:    do.MustInvoke[*config.Config](di),
		engine: do.MustInvoke[*engine.Service](di),
	}
	s.app = s.buildApp()

	return s, nil
}

func (s *Server) buildApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "websum",
		DisableStartupMessage: true,
	})

	app.Get("/healthz", s.handleHealth)
	app.Post("/summarize", s.handleSummarize)

	return app
}

func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.app.Listen(s.cfg.Server.Addr)
	})

	g.Go(func() error {
		<-ctx.Done()
		return s.app.Shutdown()
	})

	return g.Wait()
}

func (s *Server) Close() error {
	return s.app.Shutdown()
}
