package dto

import "github.com/simpletrade/blotter/internal/domain/models"

// BlotterResponse is returned by GET /api/v1/trades: the filtered, sorted
// view the blotter table renders plus the global KPI header.
//
// KPIs are always computed over the full trade set, regardless of the
// search/filter/sort parameters applied to Trades.
//
// swagger:model BlotterResponse
type BlotterResponse struct {
	Trades []models.Trade `json:"trades"`
	KPIs   models.KPIs    `json:"kpis"`
}
