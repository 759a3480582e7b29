// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/google/uuid"

	"cellsign/internal/appcore"
	"cellsign/internal/cli"
	"cellsign/internal/config"
	"cellsign/internal/logging"
	"cellsign/internal/version"
	"cellsign/internal/writers"
)

func usage(fs *flag.FlagSet, outw *bufio.Writer, stderr io.Writer, code int) int {
	fs.SetOutput(outw)
	fs.Usage()
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("cellsign")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return usage(fs, outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return usage(fs, outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "cellsign version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	opts.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if _, ok := writers.ResultWriters[cfg.Output.Format]; !ok {
		_, _ = fmt.Fprintf(stderr, "invalid output format %q (want one of %v)\n", cfg.Output.Format, writers.Formats())
		return 2
	}

	log, err := logging.New(stderr, cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	defer log.Sync()
	log = log.With("run_id", uuid.NewString())
	log.Debug("configuration resolved",
		"separator", cfg.Separator, "encoding", cfg.Encoding, "workers", cfg.Workers,
		"output", cfg.Output.Format, "input", opts.Input)

	return appcore.Run(parent, stdin, stdout, appcore.Options{
		Config:          *cfg,
		InputFormat:     opts.Input,
		NoMatchExitCode: opts.NoMatchExitCode,
	}, log)
}
