package holdem

// Street represents a phase of the hand
type Street int

// constants for Street
const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

func (s Street) String() string {
	switch s {
	case Preflop:
		return "pre-flop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Showdown:
		return "showdown"
	}

	return ""
}

// boardSize returns the total number of board cards revealed on the street
func (s Street) boardSize() int {
	switch s {
	case Flop:
		return 3
	case Turn:
		return 4
	case River, Showdown:
		return 5
	}

	return 0
}
