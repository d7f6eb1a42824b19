package handrank

import (
	"math"
	"sort"

	"handreplay-server/pkg/deck"
)

// handSize is the number of cards in a ranked poker hand
const handSize = 5

// Analyzer ranks the best five-card hand that can be made from the supplied
// cards. It accepts five to seven cards (two hole cards plus the board).
type Analyzer struct {
	cards         deck.Hand
	flush         []int
	quads         []int
	trips         []int
	pairs         []int
	straightFlush int
	straight      int

	hand     Hand
	strength int
}

// New will return a new Analyzer instance
func New(cards []*deck.Card) *Analyzer {
	// clone to prevent modifying original
	sortedCards := make(deck.Hand, len(cards))
	copy(sortedCards, cards)
	sort.Sort(sort.Reverse(sortByRank(sortedCards)))

	h := &Analyzer{
		cards: sortedCards,
	}

	h.analyzeHand()
	h.calculateHand()
	return h
}

// analyzeHand will loop through the cards and calculate the various combinations.
// This is required to be called in order for the public Get*() methods to return properly.
// This method should only be called once from the constructor.
func (h *Analyzer) analyzeHand() {
	// keeps track of flushes
	suitCounts := make(map[deck.Suit][]int)

	// straight-flush tracker
	sfTracker := map[deck.Suit]*straightTracker{
		deck.Clubs:    {},
		deck.Diamonds: {},
		deck.Hearts:   {},
		deck.Spades:   {},
	}

	// straight tracker
	sTracker := straightTracker{}

	// keeps track of pairs, trips, and quads
	prevRank := math.MaxInt8
	numOfRank := 1

	nCards := len(h.cards)
	for i, card := range h.cards {
		if h.straightFlush == 0 {
			h.checkStraight(card, sfTracker[card.Suit], deck.HighAce, &h.straightFlush)
		}

		if h.straight == 0 {
			h.checkStraight(card, &sTracker, deck.HighAce, &h.straight)
		}

		if h.flush == nil {
			h.checkFlush(card, suitCounts)
		}

		isLastCard := i+1 == nCards
		h.checkPairs(card, isLastCard, &prevRank, &numOfRank)
	}

	// check for straights and straight-flushes with a low-ace (the wheel)
	for _, card := range h.cards {
		if card.Rank != deck.Ace {
			break
		}

		if h.straightFlush == 0 {
			h.checkStraight(card, sfTracker[card.Suit], deck.LowAce, &h.straightFlush)
		}

		if h.straight == 0 {
			h.checkStraight(card, &sTracker, deck.LowAce, &h.straight)
		}
	}
}

// GetHand will return the best possible hand the cards can make
func (h *Analyzer) GetHand() Hand {
	return h.hand
}

// GetRoyalFlush will return true if there's a royal flush
func (h *Analyzer) GetRoyalFlush() bool {
	return h.straightFlush == deck.Ace
}

// GetStraightFlush will return the best straight flush, if possible
func (h *Analyzer) GetStraightFlush() (int, bool) {
	if h.straightFlush > 0 {
		return h.straightFlush, true
	}

	return 0, false
}

// GetFourOfAKind will return the best four of a kind, if possible
func (h *Analyzer) GetFourOfAKind() (int, bool) {
	if len(h.quads) > 0 {
		return h.quads[0], true
	}

	return 0, false
}

// GetFullHouse will return the best full house, if possible
func (h *Analyzer) GetFullHouse() ([]int, bool) {
	if len(h.trips) == 0 {
		return nil, false
	}

	trips := h.trips[0]

	pair, ok := h.GetPair()
	if !ok {
		if len(h.trips) == 1 {
			// could not find a pair from a second set of trips
			return nil, false
		}

		pair = h.trips[1]
	} else if len(h.trips) >= 2 && h.trips[1] > pair {
		// in a seven-card hand, we may have two sets of trips and a separate pair.
		// in that case, let's make sure we grab the better pair from the trips
		pair = h.trips[1]
	}

	return []int{trips, pair}, true
}

// GetFlush will return the best possible flush, if possible
func (h *Analyzer) GetFlush() ([]int, bool) {
	if h.flush != nil {
		return h.flush, true
	}

	return nil, false
}

// GetStraight will return the best straight, if possible
func (h *Analyzer) GetStraight() (int, bool) {
	if h.straight > 0 {
		return h.straight, true
	}

	return 0, false
}

// GetThreeOfAKind will return the best three of a kind, if possible
func (h *Analyzer) GetThreeOfAKind() (int, bool) {
	if len(h.trips) > 0 {
		return h.trips[0], true
	}

	return 0, false
}

// GetTwoPair will return the best two pairs, if possible
func (h *Analyzer) GetTwoPair() ([]int, bool) {
	if len(h.pairs) >= 2 {
		return h.pairs[0:2], true
	}

	return nil, false
}

// GetPair will return the best pair, if possible
func (h *Analyzer) GetPair() (int, bool) {
	if len(h.pairs) > 0 {
		return h.pairs[0], true
	}

	return 0, false
}

// GetHighCard will return the top ranks of the hand
func (h *Analyzer) GetHighCard() ([]int, bool) {
	cards := make([]int, handSize)
	for i := 0; i < handSize; i++ {
		if i < len(h.cards) {
			cards[i] = h.cards[i].Rank
		}
	}
	return cards, true
}

func calculateStrength(hand Hand, cards []int) int {
	fiveCards := make([]int, handSize)
	copy(fiveCards, cards)

	strength := math.Pow(15, 5) * float64(hand)
	for i := 0; i < handSize; i++ {
		val := fiveCards[4-i]
		strength += math.Pow(15, float64(i)) * float64(val)
	}

	return int(strength)
}

// GetStrength returns the strength of the hand.
// Strengths are totally ordered: a greater strength always beats a lesser one,
// and equal strengths split.
func (h *Analyzer) GetStrength() int {
	if h.strength > 0 {
		return h.strength
	}

	h.strength = h.getStrength()
	return h.strength
}

func (h *Analyzer) getStrength() int {
	hand := h.GetHand()

	switch hand {
	case HighCard:
		c, _ := h.GetHighCard()
		return calculateStrength(hand, c)
	case OnePair:
		pair, _ := h.GetPair()
		hc := make([]int, 0)
		for _, card := range h.cards {
			if card.Rank == pair {
				continue
			}

			hc = append(hc, card.Rank)
			if len(hc) == handSize-2 {
				break
			}
		}
		return calculateStrength(hand, append([]int{pair}, hc...))
	case TwoPair:
		twoPair, _ := h.GetTwoPair()
		hc := 0
		for _, card := range h.cards {
			if card.Rank == twoPair[0] || card.Rank == twoPair[1] {
				continue
			}

			hc = card.Rank
			break
		}
		return calculateStrength(hand, []int{twoPair[0], twoPair[1], hc})
	case ThreeOfAKind:
		trips, _ := h.GetThreeOfAKind()
		hc := make([]int, 0)
		for _, card := range h.cards {
			if card.Rank == trips {
				continue
			}

			hc = append(hc, card.Rank)
			if len(hc) >= 2 {
				break
			}
		}
		return calculateStrength(hand, append([]int{trips}, hc...))
	case Straight:
		s, _ := h.GetStraight()
		return calculateStrength(hand, []int{s})
	case Flush:
		f, _ := h.GetFlush()
		return calculateStrength(hand, f)
	case FullHouse:
		fh, _ := h.GetFullHouse()
		return calculateStrength(hand, fh)
	case FourOfAKind:
		fk, _ := h.GetFourOfAKind()
		found := 0
		hc := 0
		for _, c := range h.cards {
			if c.Rank == fk {
				found++
				if found <= 4 {
					continue
				}
			}

			hc = c.Rank
			break
		}

		return calculateStrength(hand, []int{fk, hc})
	case StraightFlush:
		s, _ := h.GetStraightFlush()
		return calculateStrength(hand, []int{s})
	case RoyalFlush:
		return calculateStrength(hand, []int{})
	}

	panic("unknown hand")
}

func (h *Analyzer) checkFlush(card *deck.Card, suitCounts map[deck.Suit][]int) {
	ranks, ok := suitCounts[card.Suit]
	if !ok {
		ranks = make([]int, 0, 1)
	}
	ranks = append(ranks, card.Rank)
	suitCounts[card.Suit] = ranks

	if len(ranks) >= handSize {
		h.flush = ranks[0:handSize]
	}
}

func (h *Analyzer) checkPairs(card *deck.Card, isLastCard bool, prevRank, numOfRank *int) {
	if card.Rank == *prevRank {
		*numOfRank++
	}

	// if the card is no longer the same rank, or we're at the end
	// check the longest group of cards we can form
	if card.Rank != *prevRank || isLastCard {
		// make sure this isn't the first card
		if *prevRank != math.MaxInt8 || isLastCard {
			if isLastCard && *prevRank == math.MaxInt8 {
				*prevRank = card.Rank
			}

			switch *numOfRank {
			case 4:
				if h.quads == nil {
					h.quads = make([]int, 0, 1)
				}

				h.quads = append(h.quads, *prevRank)
			case 3:
				if h.trips == nil {
					h.trips = make([]int, 0, 1)
				}

				h.trips = append(h.trips, *prevRank)
			case 2:
				if h.pairs == nil {
					h.pairs = make([]int, 0, 1)
				}

				h.pairs = append(h.pairs, *prevRank)
			}
		}

		// reset back to 1 since we changed rank
		*numOfRank = 1
	}

	*prevRank = card.Rank
}

// calculateHand will determine the best hand
// This must be called after analyzeHand() has been called
func (h *Analyzer) calculateHand() {
	if h.GetRoyalFlush() {
		h.hand = RoyalFlush
	} else if _, ok := h.GetStraightFlush(); ok {
		h.hand = StraightFlush
	} else if _, ok := h.GetFourOfAKind(); ok {
		h.hand = FourOfAKind
	} else if _, ok := h.GetFullHouse(); ok {
		h.hand = FullHouse
	} else if _, ok := h.GetFlush(); ok {
		h.hand = Flush
	} else if _, ok := h.GetStraight(); ok {
		h.hand = Straight
	} else if _, ok := h.GetThreeOfAKind(); ok {
		h.hand = ThreeOfAKind
	} else if _, ok := h.GetTwoPair(); ok {
		h.hand = TwoPair
	} else if _, ok := h.GetPair(); ok {
		h.hand = OnePair
	} else {
		h.hand = HighCard
	}
}
