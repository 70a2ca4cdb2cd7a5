package dto

import "github.com/shopspring/decimal"

// BookTradeRequest is the JSON body of POST /api/v1/trades.
//
// Counterparty is mandatory; notional defaults to 0 and must not be
// negative (enforced by the ledger). Subject and source are free-form.
type BookTradeRequest struct {
	Subject      string          `json:"subject" example:"VANILLA_SWAPTION"`
	Source       string          `json:"source" example:"INTERNAL_UI"`
	Counterparty string          `json:"counterparty" binding:"required" example:"GOLDMAN_SACHS"`
	Notional     decimal.Decimal `json:"notional" example:"1000000"`
	User         string          `json:"user" example:"trader_1"`
}

// AmendTradeRequest is the JSON body of PATCH /api/v1/trades/{ref}.
// Absent fields are left unchanged.
type AmendTradeRequest struct {
	Subject      *string          `json:"subject,omitempty"`
	Source       *string          `json:"source,omitempty"`
	Counterparty *string          `json:"counterparty,omitempty"`
	Notional     *decimal.Decimal `json:"notional,omitempty"`
	User         string           `json:"user" example:"trader_1"`
}
