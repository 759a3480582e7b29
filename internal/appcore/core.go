// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"io"

	"cellsign/internal/config"
	"cellsign/internal/engine"
	"cellsign/internal/input"
	"cellsign/internal/logging"
	"cellsign/internal/relevance"
	"cellsign/internal/writers"
)

// Options are the resolved settings of one run.
type Options struct {
	Config          config.Config
	InputFormat     string
	NoMatchExitCode int
}

// Run decodes one request from stdin, finds active interactions and writes
// the result to stdout. Failures are reported through log. It returns the
// process exit code.
func Run(
	parent context.Context,
	stdin io.Reader,
	stdout io.Writer,
	o Options,
	log *logging.Logger,
) int {
	cfg := o.Config

	req, err := input.Decode(stdin, o.InputFormat)
	if err != nil {
		log.Error("decode request", "err", err)
		return 2
	}
	if !req.HasSeparator {
		req.Table.Separator = cfg.Separator
	}
	if !req.HasEncoding {
		enc, err := relevance.ParseEncoding(cfg.Encoding)
		if err != nil {
			log.Error("resolve encoding", "err", err)
			return 2
		}
		req.Table.Encoding = enc
	}

	m, err := relevance.Normalize(req.Table)
	if err != nil {
		log.Error("normalize relevance table", "err", err)
		return 2
	}
	log.Debug("relevance table normalized",
		"interactions", len(m.Rows), "celltype_pairs", len(m.Pairs), "encoding", m.Encoding.String())

	if cfg.Output.Sort {
		if req.HasRanks {
			m.OrderByRank()
		} else {
			log.Warn("--sort requested but the request carries no ranks; keeping input order")
		}
	}
	if len(req.ActiveCellTypes) == 0 {
		log.Warn("no active TFs supplied; nothing can be active")
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	eng := engine.New(engine.Config{Workers: cfg.Workers})
	res, err := eng.FindActive(ctx, m, req.ReceptorToTFs, req.ActiveCellTypes)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("scan cancelled")
			return 130
		}
		log.Error("find active interactions", "err", err)
		return 2
	}

	kept := 0
	if res.Active != nil {
		kept = len(res.Active.Rows)
	}
	log.Info("scan complete", "outcome", res.Outcome.String(), "active_interactions", kept, "evidence", len(res.Evidence))

	outw := bufio.NewWriter(stdout)
	werr := writers.Write(cfg.Output.Format, outw, res, writers.Options{Header: cfg.Output.Header, BufSize: 4 * max(cfg.Workers, 1)})
	if writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		log.Error("write result", "format", cfg.Output.Format, "err", werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		log.Error("flush output", "err", e)
		return 3
	}

	if res.Outcome != engine.OutcomeActive {
		return o.NoMatchExitCode
	}
	return 0
}
