package models

import "strings"

// Status is the closed set of trade lifecycle states.
type Status string

const (
	StatusLive      Status = "LIVE"
	StatusVerified  Status = "VERIFIED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string { return string(s) }

func (s Status) Valid() bool {
	switch s {
	case StatusLive, StatusVerified, StatusCancelled:
		return true
	default:
		return false
	}
}

// Terminal reports whether the status permits no further mutation.
func (s Status) Terminal() bool {
	return s == StatusVerified || s == StatusCancelled
}

func ParseStatus(s string) (Status, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LIVE":
		return StatusLive, true
	case "VERIFIED":
		return StatusVerified, true
	case "CANCELLED":
		return StatusCancelled, true
	default:
		return "", false
	}
}

// Action labels one audit-trail entry.
//
// ActionUpdate is part of the wire schema for history imported from
// upstream systems; the ledger itself only emits the other four.
type Action string

const (
	ActionBook      Action = "BOOK"
	ActionAmend     Action = "AMEND"
	ActionVerified  Action = "VERIFIED"
	ActionCancelled Action = "CANCELLED"
	ActionUpdate    Action = "UPDATE"
)

func (a Action) String() string { return string(a) }

func (a Action) Valid() bool {
	switch a {
	case ActionBook, ActionAmend, ActionVerified, ActionCancelled, ActionUpdate:
		return true
	default:
		return false
	}
}
