package holdem

import "handreplay-server/pkg/deck"

// ActionType identifies the kind of a replayed action
type ActionType int

// action type constants
const (
	Fold ActionType = iota
	CheckOrCall
	BetOrRaiseTo
	DealBoard
)

func (t ActionType) String() string {
	switch t {
	case Fold:
		return "fold"
	case CheckOrCall:
		return "check or call"
	case BetOrRaiseTo:
		return "bet or raise"
	case DealBoard:
		return "deal board"
	}

	panic("unknown action type")
}

// Action is a single parsed step of a hand's action sequence. The action list
// is owned by one replay invocation and is immutable once parsed.
type Action struct {
	Type ActionType

	// Amount is the street commitment a bet or raise moves to
	Amount int

	// AllIn marks a bet or raise of the seat's entire remaining stack
	AllIn bool

	// Cards is the cumulative board revealed by a DealBoard action
	Cards deck.Hand

	// Token and Position reference the original input for error reporting
	Token    string
	Position int
}
