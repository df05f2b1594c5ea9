// SPDX-License-Identifier: MIT
// Package: chaosgame/cli
//
// commands.go - one method per command.

package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/chaosgame/chaos"
	"github.com/katalvlaran/chaosgame/export"
	"github.com/katalvlaran/chaosgame/menu"
	"github.com/katalvlaran/chaosgame/sequence"
	"github.com/katalvlaran/chaosgame/server"
)

// outputFlags are shared by every command that writes a result.
type outputFlags struct {
	format string
	out    string
	save   bool
}

func (o *outputFlags) register(fs *flag.FlagSet, withSave bool) {
	fs.StringVar(&o.format, "format", "csv", "output format: csv or json")
	fs.StringVar(&o.out, "out", "", "output file (default stdout)")
	if withSave {
		fs.BoolVar(&o.save, "save", false, "store the run")
	}
}

func (a *App) chaos(ctx context.Context, args []string) error {
	g := a.Config.Game
	fs := a.flagSet("chaos")
	sides := fs.Int("sides", g.Sides, "polygon sides (>= 3)")
	points := fs.Int("points", g.Points, "number of points, seed included")
	fraction := fs.Float64("fraction", g.Fraction, "fraction of the distance covered per step")
	seed := fs.Int64("seed", 0, "RNG seed (unset = time based)")
	rotate := fs.Float64("rotate", g.RotationDeg, "polygon rotation in degrees, counter-clockwise")
	var o outputFlags
	o.register(fs, true)
	if err := parse(fs, args); err != nil {
		return err
	}

	opts := []chaos.Option{chaos.WithFraction(*fraction), chaos.WithRotation(*rotate)}
	if isSet(fs, "seed") {
		opts = append(opts, chaos.WithSeed(*seed))
	}
	if g.MaxSeedAttempts > 0 {
		opts = append(opts, chaos.WithMaxSeedAttempts(g.MaxSeedAttempts))
	}

	a.Log.Info("calculating random points", zap.Int("sides", *sides), zap.Int("points", *points), zap.Float64("fraction", *fraction))
	res, err := chaos.Game(*sides, *points, opts...)
	if err != nil {
		return err
	}

	return a.emit(ctx, res, o)
}

func (a *App) sequence(ctx context.Context, args []string) error {
	sc := a.Config.Sequence
	fs := a.flagSet("sequence")
	file := fs.String("file", sc.Path, "symbol file")
	fraction := fs.Float64("fraction", sc.Fraction, "fraction of the distance covered per step")
	seed := fs.Int64("seed", 0, "RNG seed (unset = time based)")
	radius := fs.Float64("radius", sc.Radius, "polygon circumradius")
	rotate := fs.Float64("rotate", sc.RotationDeg, "polygon rotation in degrees, counter-clockwise")
	skip := fs.Bool("skip-headers", sc.SkipHeaders, "ignore FASTA '>' and ';' lines")
	upper := fs.Bool("upper", sc.Upper, "upper-case every symbol")
	var o outputFlags
	o.register(fs, true)
	if err := parse(fs, args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("%w: sequence: -file is required", ErrUsage)
	}
	if *radius <= 0 {
		return fmt.Errorf("%w: sequence: -radius must be positive", ErrUsage)
	}

	var seedOpt *int64
	if isSet(fs, "seed") {
		seedOpt = seed
	}
	res, err := a.playFile(*file, *fraction, seedOpt, *radius, *rotate, *skip, *upper)
	if err != nil {
		return err
	}

	return a.emit(ctx, res, o)
}

// playFile reads a symbol file and plays it. A nil seed means time based.
func (a *App) playFile(path string, fraction float64, seed *int64, radius, rotate float64, skip, upper bool) (*chaos.Result, error) {
	var readOpts []sequence.Option
	if skip {
		readOpts = append(readOpts, sequence.WithSkipHeaders())
	}
	if upper {
		readOpts = append(readOpts, sequence.WithUpper())
	}
	stream, err := sequence.ReadFile(path, readOpts...)
	if err != nil {
		return nil, err
	}

	opts := []chaos.Option{
		chaos.WithFraction(fraction),
		chaos.WithRadius(radius),
		chaos.WithRotation(rotate),
	}
	if seed != nil {
		opts = append(opts, chaos.WithSeed(*seed))
	}

	a.Log.Info("calculating sequence points", zap.String("file", path), zap.Int("symbols", len(stream)), zap.Float64("fraction", fraction))
	return chaos.Sequence(stream, opts...)
}

func (a *App) serve(ctx context.Context, args []string) error {
	fs := a.flagSet("serve")
	port := fs.String("port", a.Config.Server.Port, "listen port")
	if err := parse(fs, args); err != nil {
		return err
	}

	repo, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	cfg := a.Config.Server
	cfg.Port = *port

	return server.New(cfg, repo, a.Log).Run(ctx)
}

func (a *App) runs(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: runs: want list, show or delete", ErrUsage)
	}
	repo, err := a.openStore(ctx)
	if err != nil {
		return err
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		fs := a.flagSet("runs list")
		limit := fs.Int("limit", 20, "maximum runs to list (0 = all)")
		if err := parse(fs, rest); err != nil {
			return err
		}
		runs, err := repo.List(ctx, *limit)
		if err != nil {
			return err
		}
		for _, r := range runs {
			fmt.Fprintf(a.Stdout, "%s  %-8s  sides=%d  points=%d  fraction=%g  %s\n",
				r.ID, r.Mode, r.Sides, r.PointCount, r.Fraction, r.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		return nil

	case "show":
		fs := a.flagSet("runs show")
		var o outputFlags
		o.register(fs, false)
		id, err := idArg(fs, rest)
		if err != nil {
			return err
		}
		run, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		return a.write(run.Result, o)

	case "delete":
		fs := a.flagSet("runs delete")
		id, err := idArg(fs, rest)
		if err != nil {
			return err
		}
		if err := repo.Delete(ctx, id); err != nil {
			return err
		}
		a.Log.Info("run deleted", zap.String("id", id))
		return nil

	default:
		return fmt.Errorf("%w: runs %q", ErrUnknownCommand, sub)
	}
}

// menu loops over menu rounds until the user quits. Each run is stored
// and summarized.
func (a *App) menu(ctx context.Context, args []string) error {
	if err := parse(a.flagSet("menu"), args); err != nil {
		return err
	}
	def := menu.Selection{
		Sides:    a.Config.Game.Sides,
		Points:   a.Config.Game.Points,
		Fraction: a.Config.Game.Fraction,
		Path:     a.Config.Sequence.Path,
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		sel, err := a.runMenu(def, a.Stdin, a.Stdout)
		if err != nil {
			return err
		}

		var res *chaos.Result
		switch sel.Choice {
		case menu.ChoiceQuit, menu.ChoiceNone:
			return nil
		case menu.ChoiceChaos:
			fmt.Fprintln(a.Stdout, "Calculating random points...")
			res, err = chaos.Game(sel.Sides, sel.Points,
				chaos.WithFraction(sel.Fraction), chaos.WithRotation(a.Config.Game.RotationDeg))
		case menu.ChoiceSequence:
			fmt.Fprintln(a.Stdout, "Calculating the points according to the sequence...")
			sc := a.Config.Sequence
			res, err = a.playFile(sel.Path, sel.Fraction, nil, sc.Radius, sc.RotationDeg, sc.SkipHeaders, sc.Upper)
		}
		if err != nil {
			// a bad answer is reported and the menu shown again
			fmt.Fprintf(a.Stdout, "error: %v\n\n", err)
			continue
		}

		id, err := a.save(ctx, res)
		if err != nil {
			return err
		}
		b := res.Polygon.Bounds()
		fmt.Fprintf(a.Stdout, "run %s: %s, %d vertices %v, %d points within [%v, %v]\n\n",
			id, res.Mode, res.Sides(), res.Labels, len(res.Points), b.Min, b.Max)
		def = sel
		def.Choice = menu.ChoiceNone
	}
}

// emit writes res and stores it when asked.
func (a *App) emit(ctx context.Context, res *chaos.Result, o outputFlags) error {
	if err := a.write(res, o); err != nil {
		return err
	}
	if !o.save {
		return nil
	}
	id, err := a.save(ctx, res)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Stderr, "saved run %s\n", id)

	return nil
}

func (a *App) write(res *chaos.Result, o outputFlags) error {
	format, err := export.ParseFormat(o.format)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	w, closeFn, err := a.output(o.out)
	if err != nil {
		return err
	}
	if err := export.Write(w, res, format); err != nil {
		closeFn()
		return err
	}

	return closeFn()
}

func (a *App) save(ctx context.Context, res *chaos.Result) (string, error) {
	repo, err := a.openStore(ctx)
	if err != nil {
		return "", err
	}
	id, err := repo.Save(ctx, res)
	if err != nil {
		return "", err
	}
	a.Log.Info("run saved", zap.String("id", id), zap.String("mode", string(res.Mode)), zap.Int("points", len(res.Points)))

	return id, nil
}

// isSet reports whether the named flag was given on the command line.
func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// idArg takes the leading <id> and parses any flags after it.
func idArg(fs *flag.FlagSet, args []string) (string, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return "", fmt.Errorf("%w: %s: missing run id", ErrUsage, fs.Name())
	}
	if err := fs.Parse(args[1:]); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUsage, fs.Name(), err)
	}
	return args[0], nil
}

// IsUsage reports whether err should be answered with exit code 2.
func IsUsage(err error) bool {
	return errors.Is(err, ErrUsage) || errors.Is(err, ErrUnknownCommand)
}
