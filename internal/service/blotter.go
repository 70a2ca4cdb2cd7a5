package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/simpletrade/blotter/internal/domain/models"
	"github.com/simpletrade/blotter/internal/ledger"
	"github.com/simpletrade/blotter/internal/query"
)

// TradeStore is the ledger contract the service depends on.
type TradeStore interface {
	Book(in ledger.BookInput) (models.Trade, error)
	Amend(ref string, patch ledger.AmendPatch) (models.Trade, error)
	Transition(ref string, target models.Status, actor string) (models.Trade, error)
	GetAll() []models.Trade
	GetByRef(ref string) (models.Trade, error)
}

// BlotterService defines the business logic the API layer calls: ledger
// mutations, view derivation and CSV export.
type BlotterService interface {
	Book(ctx context.Context, in ledger.BookInput) (models.Trade, error)
	Amend(ctx context.Context, ref string, patch ledger.AmendPatch) (models.Trade, error)
	Transition(ctx context.Context, ref string, target models.Status, actor string) (models.Trade, error)
	Get(ctx context.Context, ref string) (models.Trade, error)
	Blotter(ctx context.Context, p query.Params) ([]models.Trade, models.KPIs, error)
	KPIs(ctx context.Context) models.KPIs
	ExportCSV(ctx context.Context, w io.Writer) error
}

type blotterService struct {
	store TradeStore
}

func NewBlotterService(store TradeStore) BlotterService {
	return &blotterService{store: store}
}

func (s *blotterService) Book(_ context.Context, in ledger.BookInput) (models.Trade, error) {
	return s.store.Book(in)
}

func (s *blotterService) Amend(_ context.Context, ref string, patch ledger.AmendPatch) (models.Trade, error) {
	return s.store.Amend(ref, patch)
}

func (s *blotterService) Transition(_ context.Context, ref string, target models.Status, actor string) (models.Trade, error) {
	return s.store.Transition(ref, target, actor)
}

func (s *blotterService) Get(_ context.Context, ref string) (models.Trade, error) {
	return s.store.GetByRef(ref)
}

// Blotter derives the view for the given parameters plus the global KPI
// block from one snapshot, so a single poll renders the whole blotter.
// KPIs are computed before filtering and therefore never depend on the
// view parameters.
func (s *blotterService) Blotter(_ context.Context, p query.Params) ([]models.Trade, models.KPIs, error) {
	snapshot := s.store.GetAll()
	kpis := query.KPIs(snapshot)
	view, err := query.View(snapshot, p)
	if err != nil {
		return nil, models.KPIs{}, fmt.Errorf("derive view: %w", err)
	}
	return view, kpis, nil
}

func (s *blotterService) KPIs(_ context.Context) models.KPIs {
	return query.KPIs(s.store.GetAll())
}

// ExportCSV writes the full ledger as CSV, newest first: a header row then
// tradeRef,status,subject,counterparty,notional,updatedAt per trade.
func (s *blotterService) ExportCSV(_ context.Context, w io.Writer) error {
	trades, err := query.View(s.store.GetAll(), query.Params{
		Status: query.FilterAll,
		Key:    query.SortByUpdatedAt,
		Dir:    query.Desc,
	})
	if err != nil {
		return fmt.Errorf("derive export view: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"tradeRef", "status", "subject", "counterparty", "notional", "updatedAt"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, t := range trades {
		row := []string{
			t.TradeRef,
			t.Status.String(),
			t.Subject,
			t.Counterparty,
			t.Notional.String(),
			t.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row for %s: %w", t.TradeRef, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
