// SPDX-License-Identifier: MIT

// Command chaosgame plays the chaos game from the command line, serves it
// over HTTP and keeps a store of past runs.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/chaosgame/cli"
	"github.com/katalvlaran/chaosgame/config"
	"github.com/katalvlaran/chaosgame/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "chaosgame: %v\n", err)
		return 1
	}

	cfgPath, args, err := cli.ParseGlobal(os.Args[1:], os.Stderr)
	if err != nil {
		return 2
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chaosgame: load config: %v\n", err)
		return 1
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chaosgame: %v\n", err)
		return 1
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.New(cfg, log)
	defer app.Close()

	if err := app.Run(ctx, args); err != nil {
		if cli.IsUsage(err) {
			fmt.Fprintf(os.Stderr, "chaosgame: %v\n", err)
			return 2
		}
		log.Error("command failed", zap.String("command", args[0]), zap.Error(err))
		return 1
	}

	return 0
}
