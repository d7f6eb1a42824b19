package deck

import (
	"fmt"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
const (
	Ten     = 10
	Jack    = 11
	Queen   = 12
	King    = 13
	Ace     = 14
	HighAce = Ace
	LowAce  = 1
)

func (c *Card) String() string {
	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rankToString(c.Rank), suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// AceLowRank return the rank where Ace is considered low instead of high
func (c *Card) AceLowRank() int {
	if c.Rank == Ace {
		return 1
	}

	return c.Rank
}

func rankToString(rank int) string {
	switch rank {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}

	return strconv.Itoa(rank)
}

// CardFromString returns a Card from a two-character rank-suit token.
// The rank must be one of 2-9, T, J, Q, K, or A, and the suit one of [cdhs].
func CardFromString(s string) (*Card, error) {
	if len(s) != 2 {
		return nil, fmt.Errorf("invalid card: %s", s)
	}

	var rank int
	switch r := strings.ToUpper(s[0:1]); r {
	case "T":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		val, err := strconv.Atoi(r)
		if err != nil || val < 2 {
			return nil, fmt.Errorf("invalid card rank: %s", s)
		}

		rank = val
	}

	var suit Suit
	switch strings.ToLower(s[1:2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		return nil, fmt.Errorf("invalid card suit: %s", s)
	}

	return &Card{
		Rank: rank,
		Suit: suit,
	}, nil
}

// CardsFromString will return a slice of cards from concatenated two-character
// tokens (i.e., "AhKh" is the ace and king of hearts)
func CardsFromString(s string) ([]*Card, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("cards must be two-character tokens: %s", s)
	}

	cards := make([]*Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := CardFromString(s[i : i+2])
		if err != nil {
			return nil, err
		}

		cards = append(cards, card)
	}

	return cards, nil
}

// CardToString converts a card (Ace of Clubs) to a token (Ac)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%s%s", rankToString(card.Rank), suit)
}

// CardsToString will convert a slice of cards to a string in the format of AcTh4s...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, "")
}
