package ledger

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simpletrade/blotter/internal/domain/models"
)

const defaultActor = "system"

// Store is the sole owner of all trade records.
//
// Every mutation is atomic with respect to its audit-trail entry and
// timestamp: validation happens before any stored field changes, and a
// failed call leaves the record untouched. A single RWMutex serializes
// mutations (contention is expected to be low); reads take the shared
// lock and return deep copies, so callers never hold a live handle to
// ledger state.
//
// Each Store is independently constructible; there is no process-wide
// shared state.
type Store struct {
	mu     sync.RWMutex
	trades map[string]*models.Trade

	// clock is an indirection for tests; defaults to time.Now.
	clock func() time.Time
}

// NewStore creates an empty ledger.
func NewStore() *Store {
	return &Store{
		trades: make(map[string]*models.Trade),
		clock:  time.Now,
	}
}

// BookInput carries the fields of a booking request.
// Actor is recorded in the audit trail and defaults to "system".
type BookInput struct {
	Subject      string
	Source       string
	Counterparty string
	Notional     decimal.Decimal
	Actor        string
}

// AmendPatch carries a partial update; nil fields are left unchanged.
type AmendPatch struct {
	Subject      *string
	Source       *string
	Counterparty *string
	Notional     *decimal.Decimal
	Actor        string
}

// Book validates the input, assigns a fresh collision-checked tradeRef and
// inserts a LIVE trade with a single BOOK history entry. The new trade is
// visible to subsequent queries immediately.
func (s *Store) Book(in BookInput) (models.Trade, error) {
	if err := validate(in.Counterparty, in.Notional); err != nil {
		return models.Trade{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ref := s.nextRef(in.Subject, in.Source)
	now := s.clock()
	t := &models.Trade{
		TradeRef:     ref,
		Status:       models.StatusLive,
		Subject:      in.Subject,
		Source:       in.Source,
		Counterparty: in.Counterparty,
		Notional:     in.Notional,
		UpdatedAt:    now,
		History: []models.HistoryEntry{{
			Timestamp: now,
			Action:    models.ActionBook,
			User:      actorOrDefault(in.Actor),
			Note:      "Trade " + ref + " booked",
		}},
	}
	s.trades[ref] = t
	return t.Clone(), nil
}

// Amend applies the provided fields to a LIVE trade, re-validates the
// resulting record before touching stored state, refreshes UpdatedAt and
// prepends an AMEND entry.
func (s *Store) Amend(ref string, patch AmendPatch) (models.Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.trades[ref]
	if !ok {
		return models.Trade{}, &NotFoundError{Ref: ref}
	}
	if t.Status != models.StatusLive {
		return models.Trade{}, &InvalidStateError{Ref: ref, Status: t.Status}
	}

	// Validate the patched record before mutating anything.
	counterparty := t.Counterparty
	if patch.Counterparty != nil {
		counterparty = *patch.Counterparty
	}
	notional := t.Notional
	if patch.Notional != nil {
		notional = *patch.Notional
	}
	if err := validate(counterparty, notional); err != nil {
		return models.Trade{}, err
	}

	if patch.Subject != nil {
		t.Subject = *patch.Subject
	}
	if patch.Source != nil {
		t.Source = *patch.Source
	}
	t.Counterparty = counterparty
	t.Notional = notional

	s.record(t, models.ActionAmend, patch.Actor, "Amended details")
	return t.Clone(), nil
}

// Transition moves a LIVE trade to VERIFIED or CANCELLED. Both targets are
// terminal: the record is frozen afterwards, and re-transitioning fails
// with InvalidStateError.
func (s *Store) Transition(ref string, target models.Status, actor string) (models.Trade, error) {
	if !target.Terminal() {
		return models.Trade{}, &ValidationError{Field: "status", Reason: "target must be VERIFIED or CANCELLED"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.trades[ref]
	if !ok {
		return models.Trade{}, &NotFoundError{Ref: ref}
	}
	if t.Status != models.StatusLive {
		return models.Trade{}, &InvalidStateError{Ref: ref, Status: t.Status}
	}

	t.Status = target
	s.record(t, models.Action(target), actor, "Status changed to "+target.String())
	return t.Clone(), nil
}

// GetByRef returns a deep copy of one trade.
func (s *Store) GetByRef(ref string) (models.Trade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.trades[ref]
	if !ok {
		return models.Trade{}, &NotFoundError{Ref: ref}
	}
	return t.Clone(), nil
}

// GetAll returns deep copies of every trade. Order is not meaningful;
// callers sort explicitly.
func (s *Store) GetAll() []models.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Trade, 0, len(s.trades))
	for _, t := range s.trades {
		out = append(out, t.Clone())
	}
	return out
}

// Len returns the number of trades in the ledger.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.trades)
}

// Ping reports ledger availability; used by the readiness probe.
func (s *Store) Ping() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nil
}

// record stamps a mutation: refreshes UpdatedAt (strictly increasing even
// if the wall clock has not advanced) and prepends one history entry.
// Callers hold the write lock.
func (s *Store) record(t *models.Trade, action models.Action, actor, note string) {
	now := s.clock()
	if !now.After(t.UpdatedAt) {
		now = t.UpdatedAt.Add(time.Nanosecond)
	}
	t.UpdatedAt = now
	t.History = append([]models.HistoryEntry{{
		Timestamp: now,
		Action:    action,
		User:      actorOrDefault(actor),
		Note:      note,
	}}, t.History...)
}

// nextRef builds a "<SUBJECT>:<SOURCE>:<hex6>" reference, collision-checked
// against existing keys. Callers hold the write lock.
func (s *Store) nextRef(subject, source string) string {
	prefix := refTag(subject, "TRD") + ":" + refTag(source, "UI") + ":"
	for {
		ref := prefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
		if _, exists := s.trades[ref]; !exists {
			return ref
		}
	}
}

// refTag derives a short uppercase tag from a free-form field, e.g.
// "VANILLA_SWAPTION" -> "SWAPTION", "INTERNAL_UI" -> "UI".
func refTag(s, fallback string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return fallback
	}
	parts := strings.Split(s, "_")
	return parts[len(parts)-1]
}

func actorOrDefault(actor string) string {
	if strings.TrimSpace(actor) == "" {
		return defaultActor
	}
	return actor
}

func validate(counterparty string, notional decimal.Decimal) error {
	if strings.TrimSpace(counterparty) == "" {
		return &ValidationError{Field: "counterparty", Reason: "must not be empty"}
	}
	if notional.IsNegative() {
		return &ValidationError{Field: "notional", Reason: "must not be negative"}
	}
	return nil
}
