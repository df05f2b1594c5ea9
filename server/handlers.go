// SPDX-License-Identifier: MIT
// Package: chaosgame/server
//
// handlers.go - route handlers.

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/katalvlaran/chaosgame/alphabet"
	"github.com/katalvlaran/chaosgame/attractor"
	"github.com/katalvlaran/chaosgame/chaos"
	"github.com/katalvlaran/chaosgame/geometry"
	"github.com/katalvlaran/chaosgame/selector"
	"github.com/katalvlaran/chaosgame/sequence"
	"github.com/katalvlaran/chaosgame/store"
)

const defaultListLimit = 20

type chaosRequest struct {
	Sides    int      `json:"sides"`
	Points   int      `json:"points"`
	Fraction *float64 `json:"fraction"`
	Seed     *int64   `json:"seed"`
	Rotation float64  `json:"rotation"`
	Save     bool     `json:"save"`
}

type sequenceRequest struct {
	Sequence    string   `json:"sequence"`
	Fraction    *float64 `json:"fraction"`
	Seed        *int64   `json:"seed"`
	Rotation    float64  `json:"rotation"`
	SkipHeaders bool     `json:"skip_headers"`
	Upper       bool     `json:"upper"`
	Save        bool     `json:"save"`
}

type runResponse struct {
	ID     string        `json:"id,omitempty"`
	Result *chaos.Result `json:"result"`
}

func (s *Server) live(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "alive"})
}

func (s *Server) ready(c fiber.Ctx) error {
	if s.repo != nil {
		ctx, cancel := dbContext(c)
		defer cancel()
		if err := s.repo.Ping(ctx); err != nil {
			s.log.Warn("store not ready", zap.Error(err))
			return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
	}
	return c.JSON(fiber.Map{"status": "ready"})
}

func (s *Server) playChaos(c fiber.Ctx) error {
	var req chaosRequest
	if err := decode(c, &req); err != nil {
		return badRequest(c, err)
	}
	if req.Sides > s.cfg.MaxSides {
		return badRequest(c, fmt.Errorf("sides=%d exceeds limit %d", req.Sides, s.cfg.MaxSides))
	}
	if req.Points > s.cfg.MaxPoints {
		return badRequest(c, fmt.Errorf("points=%d exceeds limit %d", req.Points, s.cfg.MaxPoints))
	}

	res, err := chaos.Game(req.Sides, req.Points, s.options(req.Fraction, req.Seed, req.Rotation)...)
	if err != nil {
		return s.runError(c, err)
	}

	return s.respond(c, res, req.Save)
}

func (s *Server) playSequence(c fiber.Ctx) error {
	var req sequenceRequest
	if err := decode(c, &req); err != nil {
		return badRequest(c, err)
	}

	readOpts := []sequence.Option{sequence.WithLimit(s.cfg.MaxPoints)}
	if req.SkipHeaders {
		readOpts = append(readOpts, sequence.WithSkipHeaders())
	}
	if req.Upper {
		readOpts = append(readOpts, sequence.WithUpper())
	}
	stream, err := sequence.ReadString(req.Sequence, readOpts...)
	if err != nil {
		return s.runError(c, err)
	}
	// the seed adds one point
	if len(stream) >= s.cfg.MaxPoints {
		return badRequest(c, fmt.Errorf("sequence longer than %d symbols", s.cfg.MaxPoints-1))
	}
	if n := alphabet.FromSymbols(stream).Len(); n > s.cfg.MaxSides {
		return badRequest(c, fmt.Errorf("%d distinct symbols exceed limit %d", n, s.cfg.MaxSides))
	}

	res, err := chaos.Sequence(stream, s.options(req.Fraction, req.Seed, req.Rotation)...)
	if err != nil {
		return s.runError(c, err)
	}

	return s.respond(c, res, req.Save)
}

func (s *Server) listRuns(c fiber.Ctx) error {
	if s.repo == nil {
		return noStore(c)
	}
	limit := defaultListLimit
	if q := c.Query("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 0 {
			return badRequest(c, fmt.Errorf("limit %q: want a non-negative integer", q))
		}
		limit = n
	}

	ctx, cancel := dbContext(c)
	defer cancel()
	runs, err := s.repo.List(ctx, limit)
	if err != nil {
		return s.internal(c, err)
	}
	if runs == nil {
		runs = []store.Summary{}
	}

	return c.JSON(fiber.Map{"runs": runs})
}

func (s *Server) getRun(c fiber.Ctx) error {
	if s.repo == nil {
		return noStore(c)
	}
	ctx, cancel := dbContext(c)
	defer cancel()

	run, err := s.repo.Get(ctx, c.Params("id"))
	if err != nil {
		return s.storeError(c, err)
	}

	return c.JSON(run)
}

func (s *Server) deleteRun(c fiber.Ctx) error {
	if s.repo == nil {
		return noStore(c)
	}
	ctx, cancel := dbContext(c)
	defer cancel()

	if err := s.repo.Delete(ctx, c.Params("id")); err != nil {
		return s.storeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

// options maps request knobs onto run options, always capping seed search.
func (s *Server) options(fraction *float64, seed *int64, rotation float64) []chaos.Option {
	opts := []chaos.Option{chaos.WithMaxSeedAttempts(s.cfg.MaxSeedAttempts)}
	if fraction != nil {
		opts = append(opts, chaos.WithFraction(*fraction))
	}
	if seed != nil {
		opts = append(opts, chaos.WithSeed(*seed))
	}
	if rotation != 0 {
		opts = append(opts, chaos.WithRotation(rotation))
	}
	return opts
}

func (s *Server) respond(c fiber.Ctx, res *chaos.Result, save bool) error {
	out := runResponse{Result: res}
	if save {
		if s.repo == nil {
			return noStore(c)
		}
		ctx, cancel := dbContext(c)
		defer cancel()
		id, err := s.repo.Save(ctx, res)
		if err != nil {
			return s.internal(c, err)
		}
		out.ID = id
		s.log.Info("run saved", zap.String("id", id), zap.String("mode", string(res.Mode)), zap.Int("points", len(res.Points)))
		return c.Status(http.StatusCreated).JSON(out)
	}

	return c.JSON(out)
}

// runError maps run failures: bad input is 400, an unreachable seed 422.
func (s *Server) runError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, geometry.ErrTooFewSides),
		errors.Is(err, chaos.ErrBadCount),
		errors.Is(err, selector.ErrUnknownSymbol),
		errors.Is(err, sequence.ErrEmpty):
		return badRequest(c, err)
	case errors.Is(err, attractor.ErrSeedNotFound):
		return c.Status(http.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	default:
		return s.internal(c, err)
	}
}

func (s *Server) storeError(c fiber.Ctx, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return s.internal(c, err)
}

func (s *Server) internal(c fiber.Ctx, err error) error {
	s.log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}

// dbContext bounds a repository call by dbTimeout and by the request's own
// context, so client disconnects and shutdown cancel it.
func dbContext(c fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Context(), dbTimeout)
}

func decode(c fiber.Ctx, v any) error {
	if len(c.Body()) == 0 {
		return errors.New("empty body")
	}
	if err := json.Unmarshal(c.Body(), v); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

func badRequest(c fiber.Ctx, err error) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

func noStore(c fiber.Ctx) error {
	return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"error": "run store not configured"})
}
