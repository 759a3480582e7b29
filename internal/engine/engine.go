// internal/engine/engine.go
package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"cellsign/internal/interaction"
	"cellsign/internal/relevance"
)

// Config controls the scan.
type Config struct {
	Workers int // concurrent column scans; <=1 scans serially
}

// Engine finds active interactions.
type Engine struct {
	cfg Config
}

// New creates a new Engine.
func New(c Config) *Engine { return &Engine{cfg: c} }

// resolved caches partner resolution per row. A malformed row only fails
// the call once one of its relevant cells is scanned.
type resolved struct {
	partners [2]interaction.Partner
	err      error
}

// FindActive flags which relevant cells of m are active and collects the
// evidence for each. m and both maps are only read.
func (e *Engine) FindActive(ctx context.Context, m *relevance.Matrix, r2tf ReceptorToTFs, tf2ct ActiveTFCellTypes) (Result, error) {
	if len(tf2ct) == 0 {
		return Result{Outcome: OutcomeNoActiveTFs}, nil
	}

	parts := make([]resolved, len(m.Rows))
	flags := make([][]uint8, len(m.Rows))
	for i, row := range m.Rows {
		parts[i].partners, parts[i].err = row.Interaction.Partners()
		flags[i] = make([]uint8, len(m.Pairs))
		for j, c := range row.Cells {
			flags[i][j] = c.State.Flag()
		}
	}

	perCol := make([][]Evidence, len(m.Pairs))
	scan := func(j int) error {
		ev, err := scanColumn(j, m, parts, flags, r2tf, tf2ct)
		if err != nil {
			return err
		}
		perCol[j] = ev
		return nil
	}

	if e.cfg.Workers <= 1 {
		for j := range m.Pairs {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
			if err := scan(j); err != nil {
				return Result{}, err
			}
		}
	} else {
		// Scan errors are kept per column and the lowest column's error is
		// reported, as in the serial scan.
		errs := make([]error, len(m.Pairs))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(e.cfg.Workers)
		for j := range m.Pairs {
			j := j
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				errs[j] = scan(j)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return Result{}, err
		}
		for _, err := range errs {
			if err != nil {
				return Result{}, err
			}
		}
	}

	return aggregate(m, flags, perCol), nil
}

// scanColumn evaluates every relevant cell of column j. It writes only
// flags[*][j], so columns can run concurrently.
func scanColumn(j int, m *relevance.Matrix, parts []resolved, flags [][]uint8, r2tf ReceptorToTFs, tf2ct ActiveTFCellTypes) ([]Evidence, error) {
	pair := m.Pairs[j]
	col := m.Column(j)

	var ev []Evidence
	for i, row := range m.Rows {
		if row.Cells[j].State != relevance.Relevant {
			continue
		}
		if parts[i].err != nil {
			return nil, parts[i].err
		}
		tf, cts, ok := match(parts[i].partners, pair, r2tf, tf2ct)
		if !ok {
			flags[i][j] = 0
			continue
		}
		for _, ct := range cts {
			ev = append(ev, Evidence{
				Interaction:    row.Interaction,
				ActiveTF:       tf,
				CellTypePair:   col,
				ActiveCellType: ct,
			})
		}
	}
	return ev, nil
}
