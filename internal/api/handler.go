package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simpletrade/blotter/internal/domain/dto"
	"github.com/simpletrade/blotter/internal/domain/models"
	"github.com/simpletrade/blotter/internal/ledger"
	"github.com/simpletrade/blotter/internal/middleware"
	"github.com/simpletrade/blotter/internal/query"
	"github.com/simpletrade/blotter/internal/service"
)

// Handler provides HTTP handlers for the trade blotter endpoints.
//
// Responsibilities:
//   - Validate incoming JSON bodies and query parameters
//   - Invoke the service layer for ledger mutations and view derivation
//   - Map ledger errors to HTTP status codes (400/404/409)
//   - Return structured JSON responses
type Handler struct {
	svc service.BlotterService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.BlotterService) *Handler {
	return &Handler{svc: svc}
}

// BookTrade handles POST /api/v1/trades.
//
// BookTrade godoc
// @Summary      Book a new trade
// @Description  Creates a LIVE trade with a fresh tradeRef and a BOOK audit entry
// @Tags         trades
// @Accept       json
// @Produce      json
// @Param        trade  body      dto.BookTradeRequest  true  "Booking request"
// @Success      201    {object}  models.Trade          "Created"
// @Failure      400    {object}  dto.ErrorResponse     "Bad Request"
// @Router       /api/v1/trades [post]
func (h *Handler) BookTrade(c *gin.Context) {
	var req dto.BookTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid booking request", err)
		return
	}

	trade, err := h.svc.Book(c.Request.Context(), ledger.BookInput{
		Subject:      req.Subject,
		Source:       req.Source,
		Counterparty: req.Counterparty,
		Notional:     req.Notional,
		Actor:        req.User,
	})
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, trade)
}

// ListTrades handles GET /api/v1/trades.
//
// Query Parameters:
//   - q (string, optional): case-insensitive search over tradeRef, counterparty, subject.
//   - status (string, optional): ALL|LIVE|VERIFIED|CANCELLED (default ALL).
//   - sort (string, optional): status|updatedAt|tradeRef|notional (default updatedAt).
//   - dir (string, optional): asc|desc (default desc).
//
// ListTrades godoc
// @Summary      List trades
// @Description  Returns the filtered, sorted blotter view plus global KPIs
// @Tags         trades
// @Produce      json
// @Param        q       query     string  false  "Search term"
// @Param        status  query     string  false  "Status filter"  Enums(ALL, LIVE, VERIFIED, CANCELLED)
// @Param        sort    query     string  false  "Sort key"       Enums(status, updatedAt, tradeRef, notional)
// @Param        dir     query     string  false  "Sort direction" Enums(asc, desc)
// @Success      200     {object}  dto.BlotterResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse    "Bad Request"
// @Router       /api/v1/trades [get]
func (h *Handler) ListTrades(c *gin.Context) {
	params, ok := parseViewParams(c)
	if !ok {
		return
	}

	trades, kpis, err := h.svc.Blotter(c.Request.Context(), params)
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to derive view", err)
		return
	}

	c.JSON(http.StatusOK, dto.BlotterResponse{Trades: trades, KPIs: kpis})
}

// GetTrade handles GET /api/v1/trades/:ref.
//
// GetTrade godoc
// @Summary      Get one trade
// @Tags         trades
// @Produce      json
// @Param        ref  path      string  true  "Trade reference"
// @Success      200  {object}  models.Trade       "Success"
// @Failure      404  {object}  dto.ErrorResponse  "Not Found"
// @Router       /api/v1/trades/{ref} [get]
func (h *Handler) GetTrade(c *gin.Context) {
	trade, err := h.svc.Get(c.Request.Context(), c.Param("ref"))
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, trade)
}

// AmendTrade handles PATCH /api/v1/trades/:ref.
//
// AmendTrade godoc
// @Summary      Amend a LIVE trade
// @Description  Applies the provided fields only; terminal trades are rejected
// @Tags         trades
// @Accept       json
// @Produce      json
// @Param        ref    path      string                 true  "Trade reference"
// @Param        patch  body      dto.AmendTradeRequest  true  "Fields to change"
// @Success      200    {object}  models.Trade       "Updated"
// @Failure      400    {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404    {object}  dto.ErrorResponse  "Not Found"
// @Failure      409    {object}  dto.ErrorResponse  "Trade no longer LIVE"
// @Router       /api/v1/trades/{ref} [patch]
func (h *Handler) AmendTrade(c *gin.Context) {
	var req dto.AmendTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid amend request", err)
		return
	}

	trade, err := h.svc.Amend(c.Request.Context(), c.Param("ref"), ledger.AmendPatch{
		Subject:      req.Subject,
		Source:       req.Source,
		Counterparty: req.Counterparty,
		Notional:     req.Notional,
		Actor:        req.User,
	})
	if err != nil {
		respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, trade)
}

// VerifyTrade handles POST /api/v1/trades/:ref/verify.
//
// VerifyTrade godoc
// @Summary      Verify a LIVE trade
// @Description  Moves the trade to VERIFIED; the record is frozen afterwards
// @Tags         trades
// @Produce      json
// @Param        ref  path      string  true  "Trade reference"
// @Success      200  {object}  models.Trade       "Verified"
// @Failure      404  {object}  dto.ErrorResponse  "Not Found"
// @Failure      409  {object}  dto.ErrorResponse  "Trade no longer LIVE"
// @Router       /api/v1/trades/{ref}/verify [post]
func (h *Handler) VerifyTrade(c *gin.Context) {
	h.transition(c, models.StatusVerified)
}

// CancelTrade handles POST /api/v1/trades/:ref/cancel.
//
// CancelTrade godoc
// @Summary      Cancel a LIVE trade
// @Description  Moves the trade to CANCELLED; the record is frozen afterwards
// @Tags         trades
// @Produce      json
// @Param        ref  path      string  true  "Trade reference"
// @Success      200  {object}  models.Trade       "Cancelled"
// @Failure      404  {object}  dto.ErrorResponse  "Not Found"
// @Failure      409  {object}  dto.ErrorResponse  "Trade no longer LIVE"
// @Router       /api/v1/trades/{ref}/cancel [post]
func (h *Handler) CancelTrade(c *gin.Context) {
	h.transition(c, models.StatusCancelled)
}

func (h *Handler) transition(c *gin.Context, target models.Status) {
	// Optional body carrying the acting user; absent body is fine.
	var req struct {
		User string `json:"user"`
	}
	_ = c.ShouldBindJSON(&req)

	trade, err := h.svc.Transition(c.Request.Context(), c.Param("ref"), target, req.User)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, trade)
}

// GetKPIs handles GET /api/v1/kpis.
//
// GetKPIs godoc
// @Summary      Blotter KPIs
// @Description  Aggregate metrics over the full trade set, independent of any view
// @Tags         kpis
// @Produce      json
// @Success      200  {object}  models.KPIs  "Success"
// @Router       /api/v1/kpis [get]
func (h *Handler) GetKPIs(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.KPIs(c.Request.Context()))
}

// ExportTrades handles GET /api/v1/trades/export.
//
// ExportTrades godoc
// @Summary      Export trades as CSV
// @Description  Full ledger, newest first, header row then one line per trade
// @Tags         trades
// @Produce      text/csv
// @Success      200  {string}  string             "CSV payload"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/trades/export [get]
func (h *Handler) ExportTrades(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="trades.csv"`)
	if err := h.svc.ExportCSV(c.Request.Context(), c.Writer); err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to export trades", err)
	}
}

// parseViewParams validates q/status/sort/dir query parameters. Unknown
// values are rejected here with 400 so the query engine never sees them.
func parseViewParams(c *gin.Context) (query.Params, bool) {
	status, ok := query.ParseStatusFilter(c.Query("status"))
	if !ok {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid status filter", nil)
		return query.Params{}, false
	}
	key, ok := query.ParseSortKey(c.Query("sort"))
	if !ok {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid sort key", nil)
		return query.Params{}, false
	}
	dir, ok := query.ParseSortDir(c.Query("dir"))
	if !ok {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid sort direction", nil)
		return query.Params{}, false
	}
	return query.Params{
		Search: c.Query("q"),
		Status: status,
		Key:    key,
		Dir:    dir,
	}, true
}

// respondLedgerError maps the ledger error taxonomy onto HTTP statuses.
func respondLedgerError(c *gin.Context, err error) {
	var (
		verr *ledger.ValidationError
		nf   *ledger.NotFoundError
		ise  *ledger.InvalidStateError
	)
	switch {
	case errors.As(err, &verr):
		middleware.AbortWithError(c, http.StatusBadRequest, "validation failed", err)
	case errors.As(err, &nf):
		middleware.AbortWithError(c, http.StatusNotFound, "trade not found", err)
	case errors.As(err, &ise):
		middleware.AbortWithError(c, http.StatusConflict, "trade is no longer LIVE", err)
	default:
		middleware.AbortWithError(c, http.StatusInternalServerError, "internal error", err)
	}
}
