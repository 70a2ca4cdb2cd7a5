// Package seed bootstraps a ledger from CSV files, replacing the need to
// hand-book an initial blotter. Files are parsed concurrently; bookings
// are applied in file order so repeated runs against an empty ledger
// produce the same sequence.
package seed

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/simpletrade/blotter/internal/domain/models"
	"github.com/simpletrade/blotter/internal/ledger"
	"github.com/simpletrade/blotter/internal/logger"
)

const filePattern = "*_TRADES.csv"

// Ledger is the subset of the trade store that seeding drives. Seeded
// trades go through the normal booking path; rows whose status is
// terminal are booked and then transitioned, so every seeded trade
// carries a valid audit trail.
type Ledger interface {
	Book(in ledger.BookInput) (models.Trade, error)
	Transition(ref string, target models.Status, actor string) (models.Trade, error)
}

// LoadDirectory seeds the ledger from every *_TRADES.csv file in dir.
//
// Behavior:
//   - Parses files concurrently, limited to min(4, NumCPU) workers; the
//     first parse error cancels the rest and fails the whole load.
//   - Applies rows sequentially in lexical file order.
//   - A directory without seed files is not an error (nothing to do).
//
// Returns:
//   - int: number of trades seeded.
//   - error: first error encountered (if any).
func LoadDirectory(ctx context.Context, dir string, store Ledger, actor string) (int, error) {
	files, err := filepath.Glob(filepath.Join(dir, filePattern))
	if err != nil {
		return 0, fmt.Errorf("list seed files: %w", err)
	}
	if len(files) == 0 {
		logger.L().Warn().Str("dir", dir).Msg("no seed files found")
		return 0, nil
	}
	sort.Strings(files)

	logger.L().Info().Int("files", len(files)).Str("dir", dir).Msg("seeding start")

	maxParallel := 4
	if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	// errgroup cancels siblings on first error; results keep file order.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)
	parsed := make([][]record, len(files))

	for i, file := range files {
		idx := i
		f := file
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			rows, err := parseFile(f)
			if err != nil {
				logger.L().Error().Str("file", filepath.Base(f)).Err(err).Msg("seed file failed")
				return fmt.Errorf("file %s: %w", f, err)
			}
			logger.L().Info().
				Str("file", filepath.Base(f)).
				Int("rows", len(rows)).
				Dur("elapsed", time.Since(start)).
				Msg("seed file parsed")
			parsed[idx] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for i, rows := range parsed {
		for _, row := range rows {
			if err := apply(store, row, actor); err != nil {
				return total, fmt.Errorf("file %s: %w", files[i], err)
			}
			total++
		}
	}

	logger.L().Info().Int("trades", total).Msg("seeding completed")
	return total, nil
}

func apply(store Ledger, row record, actor string) error {
	booked, err := store.Book(ledger.BookInput{
		Subject:      row.Subject,
		Source:       row.Source,
		Counterparty: row.Counterparty,
		Notional:     row.Notional,
		Actor:        actor,
	})
	if err != nil {
		return fmt.Errorf("book %s/%s: %w", row.Subject, row.Counterparty, err)
	}
	if row.Status.Terminal() {
		if _, err := store.Transition(booked.TradeRef, row.Status, actor); err != nil {
			return fmt.Errorf("transition %s to %s: %w", booked.TradeRef, row.Status, err)
		}
	}
	return nil
}
