package models

import "github.com/shopspring/decimal"

// KPIs are aggregate metrics over the full trade set.
//
// They are always computed from an unfiltered snapshot, never from a
// searched/filtered view: the blotter header must reflect global state
// regardless of what the table currently shows.
//
// swagger:model KPIs
type KPIs struct {
	Total        int             `json:"total" example:"3"`              // Number of trades in the ledger
	LiveExposure decimal.Decimal `json:"liveExposure" example:"1000000"` // Sum of notional over LIVE trades
	PendingCount int             `json:"pendingCount" example:"1"`       // Number of LIVE trades
}
