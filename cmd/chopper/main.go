// Package main implements the chopper CHIP-8 emulator
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/mnafees/chopper/v2/internal"
	"github.com/mnafees/chopper/v2/internal/cli"
	"github.com/mnafees/chopper/v2/internal/config"
	"github.com/mnafees/chopper/v2/internal/options"
	"github.com/mnafees/chopper/v2/internal/runner"
	"github.com/mnafees/chopper/v2/pkg/memdump"
	"github.com/mnafees/chopper/v2/pkg/sdl"
	"github.com/mnafees/chopper/v2/pkg/statsview"
	"github.com/mnafees/chopper/v2/pkg/terminal"
	"github.com/mnafees/chopper/v2/pkg/wavwriter"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

const windowTitle = "Chopper | CHIP-8 Emulator"

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func init() {
	// SDL requires all video and event calls on the main thread
	runtime.LockOSThread()
}

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags(os.Args[1:])
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			if errors.Is(err, cli.ErrHelp) {
				usageErr.ShowUsage()
				os.Exit(0)
			}
			fmt.Fprintf(os.Stderr, "%s\n\n", err)
			usageErr.ShowUsage()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	logger.Info("chopper", log.String("version", buildinfo.Version(version, commit, date)))

	if err := run(ctx, logger, opts); err != nil {
		logger.Fatal("Emulation failed", log.Err(err))
	}
}

func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	vm := internal.NewC8VM(logger)
	if err := vm.LoadFile(opts.Args.Program); err != nil {
		return err
	}
	logger.Debug("Program loaded", log.String("file", opts.Args.Program))

	if opts.StatsView {
		statsview.Launch(logger)
	}

	frontend, closeFrontend, err := openFrontend(logger, opts)
	if err != nil {
		return err
	}
	defer closeFrontend()

	var runnerOpts []runner.Option
	if opts.Wav != "" {
		ww, err := wavwriter.New(opts.Wav)
		if err != nil {
			return err
		}
		runnerOpts = append(runnerOpts, runner.WithRecorder(ww))
	}

	r := runner.New(logger, vm, frontend, runner.Config{
		Hertz: opts.Hertz,
		Trace: opts.Trace,
	}, runnerOpts...)
	runErr := r.Run(ctx)

	if opts.MemViz != "" {
		if err := memdump.WriteFile(opts.MemViz, r.Snapshot()); err != nil {
			return errors.Join(runErr, err)
		}
		logger.Info("Machine state written", log.String("file", opts.MemViz))
	}
	return runErr
}

// openFrontend sets up the frontend selected on the command line and
// returns a function that releases it.
func openFrontend(logger *log.Logger, opts options.Program) (runner.Frontend, func(), error) {
	switch opts.Frontend {
	case options.FrontendTerminal:
		io := terminal.NewIO(logger)
		if err := io.Setup(); err != nil {
			return nil, nil, err
		}
		return io, io.Close, nil

	default:
		io := sdl.NewIO(logger, opts.Scale)
		if err := io.SetupWindow(windowTitle); err != nil {
			io.Destroy()
			return nil, nil, err
		}
		return io, io.Destroy, nil
	}
}
