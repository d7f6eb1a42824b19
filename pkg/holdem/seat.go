package holdem

import "handreplay-server/pkg/deck"

// Status describes a seat's standing in the hand
type Status int

// constants for Status
const (
	StatusActive Status = iota
	StatusFolded
	StatusAllIn
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusFolded:
		return "folded"
	case StatusAllIn:
		return "all-in"
	}

	return ""
}

// Seat tracks a single player's chips and standing through a replay
type Seat struct {
	// Index is the seat's position at the table, 0-based
	Index int

	// HoleCards are the two cards dealt to the seat
	HoleCards deck.Hand

	stack       int
	streetBet   int
	contributed int
	status      Status

	// actedAt is the street's bet level when the seat last voluntarily
	// acted, or -1 if the seat has not acted this street. Posting a blind
	// does not count as acting, which preserves the big blind's option.
	actedAt int
}

func newSeat(index, stack int, cards deck.Hand) *Seat {
	return &Seat{
		Index:     index,
		HoleCards: cards,
		stack:     stack,
		actedAt:   -1,
	}
}

// commitTo raises the seat's street contribution to level, clamped to the
// remaining stack. The number of chips moved is returned. Exhausting the
// stack puts the seat all-in.
func (s *Seat) commitTo(level int) int {
	diff := level - s.streetBet
	if diff <= 0 {
		return 0
	}

	if diff >= s.stack {
		diff = s.stack
		s.status = StatusAllIn
	}

	s.stack -= diff
	s.streetBet += diff
	s.contributed += diff
	return diff
}

// maxTo is the highest street commitment the seat can reach
func (s *Seat) maxTo() int {
	return s.streetBet + s.stack
}

// canAct returns true if the seat can check, call, bet, raise, or fold
func (s *Seat) canAct() bool {
	return s.status == StatusActive
}

// newStreet resets the per-street state while preserving the total
// contribution
func (s *Seat) newStreet() {
	s.streetBet = 0
	s.actedAt = -1
}

// Contributed returns the chips the seat has committed across the hand
func (s *Seat) Contributed() int {
	return s.contributed
}

// Status returns the seat's standing
func (s *Seat) Status() Status {
	return s.status
}
