package handrank

import (
	"handreplay-server/pkg/deck"
)

// used to keep track of the straight progress
type straightTracker struct {
	streak deck.Hand
}

func (s *straightTracker) resetWithCard(card *deck.Card) {
	s.streak = deck.Hand{card}
}

// checkStraight will check for a straight
// If one has been found, then the highest card in the straight will be assigned to the "val".
// Cards must arrive sorted by rank, descending. For the low-ace pass, aces are fed
// through a second time and counted as rank 1.
func (h *Analyzer) checkStraight(card *deck.Card, st *straightTracker, aceValue int, val *int) {
	cardRank := card.Rank
	if cardRank == deck.Ace && aceValue == deck.LowAce {
		cardRank = deck.LowAce
	}

	// currently no streak, so we start from scratch
	if len(st.streak) == 0 {
		st.resetWithCard(card)
		return
	}

	lastCard := st.streak.LastCard()
	diffInRank := lastCard.Rank - cardRank

	switch {
	case diffInRank == 0:
		// same rank
		return
	case diffInRank == 1:
		// we found the next card in a straight
		st.streak.AddCard(card)
	default:
		st.resetWithCard(card)
	}

	if len(st.streak) >= handSize {
		*val = st.streak.FirstCard().Rank
	}
}
