// SPDX-License-Identifier: MIT
// Package: chaosgame/logging
//
// logging.go - zap logger factory.

// Package logging builds the application's zap logger from LogConfig.
// Library packages never log; only the binary, the dispatcher and the
// HTTP server do.
package logging

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/chaosgame/config"
)

// New returns a JSON production logger, or a console development logger
// when cfg.Development is set, at cfg.Level (default info).
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if cfg.Level != "" {
		var err error
		if level, err = zap.ParseAtomicLevel(cfg.Level); err != nil {
			return nil, fmt.Errorf("logging: level %q: %w", cfg.Level, err)
		}
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level

	return zc.Build()
}

