// Package query derives display-ready views and aggregate KPIs from a
// trade snapshot. It holds no state and performs no I/O: the same inputs
// always produce the same output, so it is testable without a ledger.
package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/simpletrade/blotter/internal/domain/models"
)

// StatusFilter selects which lifecycle states pass through a view.
type StatusFilter string

const (
	FilterAll       StatusFilter = "ALL"
	FilterLive      StatusFilter = "LIVE"
	FilterVerified  StatusFilter = "VERIFIED"
	FilterCancelled StatusFilter = "CANCELLED"
)

func ParseStatusFilter(s string) (StatusFilter, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "ALL":
		return FilterAll, true
	case "LIVE":
		return FilterLive, true
	case "VERIFIED":
		return FilterVerified, true
	case "CANCELLED":
		return FilterCancelled, true
	default:
		return "", false
	}
}

// SortKey is the closed set of sortable columns.
type SortKey string

const (
	SortByStatus    SortKey = "status"
	SortByUpdatedAt SortKey = "updatedAt"
	SortByTradeRef  SortKey = "tradeRef"
	SortByNotional  SortKey = "notional"
)

func ParseSortKey(s string) (SortKey, bool) {
	switch strings.TrimSpace(s) {
	case "", "updatedAt":
		return SortByUpdatedAt, true
	case "status":
		return SortByStatus, true
	case "tradeRef":
		return SortByTradeRef, true
	case "notional":
		return SortByNotional, true
	default:
		return "", false
	}
}

// SortDir is the sort direction.
type SortDir string

const (
	Asc  SortDir = "asc"
	Desc SortDir = "desc"
)

func ParseSortDir(s string) (SortDir, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return Asc, true
	case "", "desc":
		return Desc, true
	default:
		return "", false
	}
}

// Params are the view parameters the presentation layer holds (search box,
// status dropdown, sortable column headers). They are transient UI state
// and never leak into the ledger.
type Params struct {
	Search string
	Status StatusFilter
	Key    SortKey
	Dir    SortDir
}

// View filters and sorts a snapshot for display.
//
// Pipeline, in order:
//  1. case-insensitive substring search over tradeRef, counterparty and
//     subject (OR across fields; empty term passes everything);
//  2. exact status filter (ALL passes everything);
//  3. stable sort on Params.Key, reversed when Dir is desc. Equal keys
//     keep their relative order from the filtered sequence.
//
// An unknown sort key is a contract violation and returns an error; the
// call site must reject it before rendering. Empty input yields empty
// output.
func View(trades []models.Trade, p Params) ([]models.Trade, error) {
	cmp, err := comparator(p.Key)
	if err != nil {
		return nil, err
	}

	out := make([]models.Trade, 0, len(trades))
	needle := strings.ToLower(strings.TrimSpace(p.Search))
	for _, t := range trades {
		if needle != "" && !matches(t, needle) {
			continue
		}
		if p.Status != "" && p.Status != FilterAll && string(t.Status) != string(p.Status) {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if p.Dir == Desc {
			c = -c
		}
		return c < 0
	})
	return out, nil
}

// KPIs computes the blotter header metrics over the full, unfiltered
// snapshot. By contract they never depend on the current search, filter or
// sort state.
func KPIs(trades []models.Trade) models.KPIs {
	k := models.KPIs{Total: len(trades), LiveExposure: decimal.Zero}
	for _, t := range trades {
		if t.Status == models.StatusLive {
			k.PendingCount++
			k.LiveExposure = k.LiveExposure.Add(t.Notional)
		}
	}
	return k
}

func matches(t models.Trade, needle string) bool {
	return strings.Contains(strings.ToLower(t.TradeRef), needle) ||
		strings.Contains(strings.ToLower(t.Counterparty), needle) ||
		strings.Contains(strings.ToLower(t.Subject), needle)
}

func comparator(key SortKey) (func(a, b models.Trade) int, error) {
	switch key {
	case SortByStatus:
		return func(a, b models.Trade) int {
			return strings.Compare(string(a.Status), string(b.Status))
		}, nil
	case SortByUpdatedAt:
		return func(a, b models.Trade) int {
			return a.UpdatedAt.Compare(b.UpdatedAt)
		}, nil
	case SortByTradeRef:
		return func(a, b models.Trade) int {
			return strings.Compare(a.TradeRef, b.TradeRef)
		}, nil
	case SortByNotional:
		return func(a, b models.Trade) int {
			return a.Notional.Cmp(b.Notional)
		}, nil
	default:
		return nil, fmt.Errorf("unknown sort key %q", key)
	}
}
