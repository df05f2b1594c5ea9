// SPDX-License-Identifier: MIT
// Package: chaosgame/cli
//
// app.go - command dispatcher.

// Package cli parses chaosgame's command line and dispatches to the run
// modes, the export writers, the run store, the HTTP server and the
// interactive menu.
//
//	chaosgame [-config path] <command> [flags]
//
//	chaos     -sides N -points N -fraction r [-seed s] [-rotate deg] [-format csv|json] [-out file] [-save]
//	sequence  -file path [-fraction r] [-seed s] [-radius R] [-rotate deg] [-skip-headers] [-upper] [-format] [-out] [-save]
//	serve
//	runs      list [-limit n] | show <id> [-format] [-out] | delete <id>
//	menu
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/katalvlaran/chaosgame/config"
	"github.com/katalvlaran/chaosgame/menu"
	"github.com/katalvlaran/chaosgame/store"
)

var (
	// ErrUsage indicates malformed arguments. Usage has been printed.
	ErrUsage = errors.New("cli: usage")

	// ErrUnknownCommand indicates an unrecognized command name.
	ErrUnknownCommand = errors.New("cli: unknown command")
)

const usage = `usage: chaosgame [-config path] <command> [flags]

commands:
  chaos      play the chaos game on a regular polygon
  sequence   play the chaos game driven by a symbol file
  serve      run the HTTP API
  runs       list, show or delete stored runs
  menu       interactive menu
`

// App holds everything a command needs.
type App struct {
	Config *config.AppConfig
	Log    *zap.Logger
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	repo    *store.Repository
	closeDB func() error
	runMenu func(menu.Selection, io.Reader, io.Writer) (menu.Selection, error)
}

// New returns an App writing to the process's standard streams.
func New(cfg *config.AppConfig, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		Config:  cfg,
		Log:     log,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		runMenu: menu.Run,
	}
}

// ParseGlobal splits the global -config flag from the command and its args.
func ParseGlobal(args []string, stderr io.Writer) (cfgPath string, rest []string, err error) {
	fs := flag.NewFlagSet("chaosgame", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	fs.StringVar(&cfgPath, "config", "chaosgame.yaml", "path to YAML config")
	if err := fs.Parse(args); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return "", nil, ErrUsage
	}

	return cfgPath, fs.Args(), nil
}

// Run dispatches args[0] with the remaining args.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.Stderr, usage)
		return ErrUsage
	}

	cmd, rest := args[0], args[1:]
	a.Log.Debug("command", zap.String("name", cmd), zap.Strings("args", rest))

	switch cmd {
	case "chaos":
		return a.chaos(ctx, rest)
	case "sequence":
		return a.sequence(ctx, rest)
	case "serve":
		return a.serve(ctx, rest)
	case "runs":
		return a.runs(ctx, rest)
	case "menu":
		return a.menu(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprint(a.Stdout, usage)
		return nil
	default:
		fmt.Fprint(a.Stderr, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

// Close releases the run store, if it was opened.
func (a *App) Close() error {
	if a.closeDB == nil {
		return nil
	}
	err := a.closeDB()
	a.closeDB, a.repo = nil, nil
	return err
}

// openStore opens the run database on first use.
func (a *App) openStore(ctx context.Context) (*store.Repository, error) {
	if a.repo != nil {
		return a.repo, nil
	}
	db, err := store.Open(a.Config.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	repo := store.New(db)
	if err := repo.Init(ctx); err != nil {
		db.Close()
		return nil, err
	}
	a.repo, a.closeDB = repo, db.Close
	a.Log.Debug("store opened", zap.String("path", a.Config.Store.Path))

	return repo, nil
}

// flagSet returns a FlagSet that reports errors to Stderr.
func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	return fs
}

// parse runs fs over args, folding flag errors into ErrUsage.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUsage, fs.Name(), err)
	}
	return nil
}

// output opens path for writing, or returns Stdout when path is empty.
func (a *App) output(path string) (io.Writer, func() error, error) {
	if path == "" {
		return a.Stdout, func() error { return nil }, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
