package deck

import "fmt"

// Tracker keeps track of the cards dealt from a single deck. A hand replay
// never draws cards; it is told which cards appeared, and the tracker enforces
// that no card appears twice across hole cards and the board.
type Tracker struct {
	taken map[Card]bool
}

// NewTracker returns an empty Tracker
func NewTracker() *Tracker {
	return &Tracker{
		taken: make(map[Card]bool, 52),
	}
}

// Take removes the card from the deck.
// An error is returned if the card was already taken.
func (t *Tracker) Take(card *Card) error {
	if t.taken[*card] {
		return fmt.Errorf("duplicate card: %s", CardToString(card))
	}

	t.taken[*card] = true
	return nil
}

// Taken returns true if the card has already been dealt
func (t *Tracker) Taken(card *Card) bool {
	return t.taken[*card]
}

// CardsLeft returns the number of cards left in the deck
func (t *Tracker) CardsLeft() int {
	return 52 - len(t.taken)
}
