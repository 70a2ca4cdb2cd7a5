package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// HistoryEntry is a single line of a trade's audit trail.
//
// Entries are immutable: once prepended to Trade.History they are never
// modified or removed. The ledger writes exactly one entry per mutation.
type HistoryEntry struct {
	Timestamp time.Time `json:"timestamp" example:"2026-08-29T12:00:00Z"`
	Action    Action    `json:"action" example:"BOOK"`
	User      string    `json:"user" example:"trader_1"`
	Note      string    `json:"note" example:"Manual booking"`
}

// Trade is a booked transaction tracked through its lifecycle.
//
// The JSON keys below are the canonical wire schema for a trade; any
// serialization across a boundary uses exactly these names.
//
// Invariants (enforced by the ledger store):
//   - TradeRef is unique and never reassigned.
//   - Status only moves LIVE -> VERIFIED or LIVE -> CANCELLED; terminal
//     states are frozen (no further field or status mutation).
//   - History is ordered newest first and grows by exactly one entry per
//     mutation; UpdatedAt strictly increases with each mutation.
//   - Notional is never negative.
type Trade struct {
	TradeRef     string          `json:"tradeRef" example:"SWAPTION:UI:99a8b1"`
	Status       Status          `json:"status" example:"LIVE"`
	Subject      string          `json:"subject" example:"VANILLA_SWAPTION"`
	Source       string          `json:"source" example:"INTERNAL_UI"`
	Counterparty string          `json:"counterparty" example:"GOLDMAN_SACHS"`
	Notional     decimal.Decimal `json:"notional" example:"1000000"`
	UpdatedAt    time.Time       `json:"updatedAt" example:"2026-08-29T12:00:00Z"`
	History      []HistoryEntry  `json:"history"`
}

// Clone returns an independent deep copy of the trade.
// The ledger only ever hands out clones; mutating one never touches
// stored state.
func (t Trade) Clone() Trade {
	cp := t
	cp.History = append([]HistoryEntry(nil), t.History...)
	return cp
}
