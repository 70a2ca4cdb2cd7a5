package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/simpletrade/blotter/internal/domain/models"
	"github.com/simpletrade/blotter/internal/ledger"
	"github.com/simpletrade/blotter/internal/query"
)

func newSeededService(t *testing.T) (BlotterService, models.Trade) {
	t.Helper()
	store := ledger.NewStore()
	svc := NewBlotterService(store)

	booked, err := svc.Book(context.Background(), ledger.BookInput{
		Subject:      "VANILLA_SWAPTION",
		Source:       "INTERNAL_UI",
		Counterparty: "GS",
		Notional:     decimal.NewFromInt(1000000),
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	return svc, booked
}

// Scenario from the blotter contract: book 1M against GS, verify it, then
// try to amend it back up.
func TestBlotterService_LifecycleScenario(t *testing.T) {
	ctx := context.Background()
	svc, booked := newSeededService(t)

	k := svc.KPIs(ctx)
	if k.Total != 1 || k.PendingCount != 1 || !k.LiveExposure.Equal(decimal.NewFromInt(1000000)) {
		t.Fatalf("kpis after booking: %+v", k)
	}

	if _, err := svc.Transition(ctx, booked.TradeRef, models.StatusVerified, "ops_1"); err != nil {
		t.Fatalf("verify: %v", err)
	}
	k = svc.KPIs(ctx)
	if k.Total != 1 || k.PendingCount != 0 || !k.LiveExposure.IsZero() {
		t.Fatalf("kpis after verify: %+v", k)
	}

	two := decimal.NewFromInt(2000000)
	if _, err := svc.Amend(ctx, booked.TradeRef, ledger.AmendPatch{Notional: &two}); err == nil {
		t.Fatalf("expected amend on verified trade to fail")
	}
	got, err := svc.Get(ctx, booked.TradeRef)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Notional.Equal(decimal.NewFromInt(1000000)) {
		t.Fatalf("notional=%s, want 1000000", got.Notional)
	}
}

func TestBlotterService_Blotter(t *testing.T) {
	ctx := context.Background()
	svc, booked := newSeededService(t)

	trades, kpis, err := svc.Blotter(ctx, query.Params{
		Search: "gs",
		Status: query.FilterLive,
		Key:    query.SortByUpdatedAt,
		Dir:    query.Desc,
	})
	if err != nil {
		t.Fatalf("blotter: %v", err)
	}
	if len(trades) != 1 || trades[0].TradeRef != booked.TradeRef {
		t.Fatalf("unexpected view: %+v", trades)
	}
	if kpis.Total != 1 {
		t.Fatalf("unexpected kpis: %+v", kpis)
	}

	// KPIs stay global even when the view filters everything out.
	trades, kpis, err = svc.Blotter(ctx, query.Params{
		Status: query.FilterCancelled,
		Key:    query.SortByUpdatedAt,
		Dir:    query.Desc,
	})
	if err != nil {
		t.Fatalf("blotter: %v", err)
	}
	if len(trades) != 0 {
		t.Fatalf("expected empty view, got %+v", trades)
	}
	if kpis.Total != 1 || kpis.PendingCount != 1 {
		t.Fatalf("kpis must reflect global state: %+v", kpis)
	}
}

func TestBlotterService_BlotterUnknownSortKey(t *testing.T) {
	svc, _ := newSeededService(t)
	if _, _, err := svc.Blotter(context.Background(), query.Params{Status: query.FilterAll, Key: query.SortKey("bogus")}); err == nil {
		t.Fatalf("expected error for unknown sort key")
	}
}

func TestBlotterService_ExportCSV(t *testing.T) {
	ctx := context.Background()
	svc, booked := newSeededService(t)

	var buf bytes.Buffer
	if err := svc.ExportCSV(ctx, &buf); err != nil {
		t.Fatalf("export: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines:\n%s", len(lines), buf.String())
	}
	if lines[0] != "tradeRef,status,subject,counterparty,notional,updatedAt" {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], booked.TradeRef+",LIVE,VANILLA_SWAPTION,GS,1000000,") {
		t.Fatalf("unexpected row: %s", lines[1])
	}
}
