package ledger

import (
	"fmt"

	"github.com/simpletrade/blotter/internal/domain/models"
)

// ValidationError reports malformed input to Book or Amend (negative
// notional, empty counterparty). The caller must fix the input and retry;
// the ledger is never left in a partial state.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an operation against a tradeRef that does not
// exist in the ledger.
type NotFoundError struct {
	Ref string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("trade %s not found", e.Ref)
}

// InvalidStateError reports a mutation attempted on a trade whose status
// forbids it (amending or transitioning a VERIFIED/CANCELLED trade).
// This is a policy violation surfaced to the caller, not a bug: the UI is
// expected to hide such actions, but the ledger enforces the rule
// regardless.
type InvalidStateError struct {
	Ref    string
	Status models.Status
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("trade %s is %s and can no longer be modified", e.Ref, e.Status)
}
