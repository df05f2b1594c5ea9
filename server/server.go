// SPDX-License-Identifier: MIT
// Package: chaosgame/server
//
// server.go - Fiber app construction, middleware and lifecycle.

// Package server exposes chaos-game runs over a JSON HTTP API.
//
// Routes:
//
//	GET    /health/live
//	GET    /health/ready
//	POST   /v1/chaos
//	POST   /v1/sequence
//	GET    /v1/runs?limit=N
//	GET    /v1/runs/:id
//	DELETE /v1/runs/:id
//
// Every request is bounded by ServerConfig.MaxPoints and MaxSides, and every
// seed search by ServerConfig.MaxSeedAttempts. Validation failures answer 400
// with {"error": "..."}; unknown runs answer 404. Errors of any kind are
// answered as JSON.
package server

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"go.uber.org/zap"

	"github.com/katalvlaran/chaosgame/config"
	"github.com/katalvlaran/chaosgame/store"
)

// dbTimeout bounds every repository call made by a handler.
const dbTimeout = 5 * time.Second

// Server owns the Fiber app and its dependencies.
type Server struct {
	cfg  config.ServerConfig
	repo *store.Repository
	log  *zap.Logger
	app  *fiber.App
}

// New builds the app. repo may be nil, in which case run persistence and
// the /v1/runs routes answer 503.
func New(cfg config.ServerConfig, repo *store.Repository, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{cfg: cfg, repo: repo, log: log}

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSec) * time.Second,
		AppName:      "chaosgame",
		ErrorHandler: s.errorHandler,
	})
	app.Use(recover.New())
	app.Use(requestLogger(log))

	app.Get("/health/live", s.live)
	app.Get("/health/ready", s.ready)

	v1 := app.Group("/v1")
	v1.Post("/chaos", s.playChaos)
	v1.Post("/sequence", s.playSequence)
	v1.Get("/runs", s.listRuns)
	v1.Get("/runs/:id", s.getRun)
	v1.Delete("/runs/:id", s.deleteRun)

	s.app = app
	return s
}

// App returns the underlying Fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run listens on cfg.Port until ctx is cancelled, then shuts down.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("port", s.cfg.Port))
		errCh <- s.app.Listen(":"+s.cfg.Port, fiber.ListenConfig{DisableStartupMessage: true})
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.app.ShutdownWithContext(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	s.log.Info("server stopped")

	return nil
}

// errorHandler answers every unhandled handler error as {"error": ...}.
func (s *Server) errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "internal error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code, msg = fe.Code, fe.Message
	} else {
		s.log.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}

// requestLogger logs one line per request.
func requestLogger(log *zap.Logger) fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
			log.Warn("request", fields...)
			return err
		}
		log.Info("request", fields...)

		return nil
	}
}
