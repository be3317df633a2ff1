package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hashi/codec"
	"github.com/katalvlaran/hashi/core"
	"github.com/katalvlaran/hashi/internal/metrics"
	"github.com/katalvlaran/hashi/solver"
)

// solveFlags are the solve options given on the command line.
type solveFlags struct {
	maxPasses   int
	workers     int
	metricsFile string
	verify      bool
}

// session is the outcome of solving one file.
type session struct {
	id      string
	path    string
	before  string
	after   string
	report  solver.Report
	elapsed time.Duration
	err     error
}

func newSolveCmd(a *app) *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Solve one or more puzzles",
		Long: `Solve reads every FILE (.txt text form, .yaml/.yml dictionary form),
prints it before and after solving and reports whether it was completed.
Files are solved concurrently; output keeps the argument order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("max-passes") {
				a.cfg.Solver.MaxPasses = f.maxPasses
			}
			if flags.Changed("workers") {
				a.cfg.Solver.Workers = f.workers
			}
			if flags.Changed("metrics-file") {
				a.cfg.Metrics.Textfile = f.metricsFile
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			return a.runSolve(cmd.Context(), cmd.OutOrStdout(), args, f.verify)
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&f.maxPasses, "max-passes", 0, "stop with an error after this many passes (0: no limit)")
	fl.IntVar(&f.workers, "workers", 0, "number of puzzles solved concurrently (default from config)")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this text file")
	fl.BoolVar(&f.verify, "verify", false, "fail unless every puzzle is completely solved")

	return cmd
}

// runSolve solves paths on a bounded pool of workers and prints the
// sessions in argument order.
func (a *app) runSolve(ctx context.Context, w io.Writer, paths []string, verify bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	rec := metrics.NewRecorder()
	sessions := make([]session, len(paths))
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Solver.Workers)
	for i, path := range paths {
		g.Go(func() error {
			sessions[i] = a.solveFile(gctx, rec, path)
			// a cancelled context stops the remaining sessions, a bad puzzle does not
			if errors.Is(sessions[i].err, context.Canceled) {
				return sessions[i].err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var (
		errs              []error
		complete, bridges int
		incomplete        []string
	)
	for _, s := range sessions {
		fmt.Fprintf(w, "== %s\n", s.path)
		if s.err != nil {
			fmt.Fprintf(w, "Error: %v\n", s.err)
			errs = append(errs, s.err)
			continue
		}
		fmt.Fprint(w, s.before)
		fmt.Fprint(w, s.after)
		fmt.Fprintf(w, "Complete: %t\n", s.report.Complete)
		bridges += s.report.EdgesAdded
		if s.report.Complete {
			complete++
		} else {
			incomplete = append(incomplete, s.path)
		}
	}
	elapsed := time.Since(start)
	fmt.Fprintf(w, "%s of %s puzzles complete, %s bridges placed in %s\n",
		humanize.Comma(int64(complete)), humanize.Comma(int64(len(paths))),
		humanize.Comma(int64(bridges)), humanize.SIWithDigits(elapsed.Seconds(), 1, "s"))

	if a.cfg.Metrics.Textfile != "" {
		if err := rec.WriteTextfile(a.cfg.Metrics.Textfile); err != nil {
			errs = append(errs, err)
		}
	}
	if verify && len(incomplete) > 0 {
		errs = append(errs, fmt.Errorf("%w: %d of %d puzzles", core.ErrUnsolved, len(incomplete), len(paths)))
	}

	return errors.Join(errs...)
}

// solveFile runs one session. Its log records carry a fresh session id.
func (a *app) solveFile(ctx context.Context, rec *metrics.Recorder, path string) session {
	s := session{id: uuid.NewString(), path: path}
	logger := a.logger.With("session", s.id, "file", path)

	b, err := loadBoard(path, logger)
	if err != nil {
		logger.Error("load failed", "error", err)
		s.err = err
		return s
	}
	s.before = codec.Render(b)

	start := time.Now()
	s.report, s.err = solver.Solve(b,
		solver.WithContext(ctx),
		solver.WithLogger(logger),
		solver.WithMaxPasses(a.cfg.Solver.MaxPasses),
		solver.WithPassHook(rec.PassHook()),
	)
	s.elapsed = time.Since(start)
	rec.ObserveSolve(s.report, s.err, s.elapsed)
	if s.err != nil {
		logger.Error("solve failed", "error", s.err, "passes", s.report.Passes)
		return s
	}
	s.after = codec.Render(b)

	return s
}
