package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	card, err := CardFromString("Ah")
	a.NoError(err)
	a.Equal(&Card{Rank: Ace, Suit: Hearts}, card)

	card, err = CardFromString("2c")
	a.NoError(err)
	a.Equal(&Card{Rank: 2, Suit: Clubs}, card)

	card, err = CardFromString("tS")
	a.NoError(err)
	a.Equal(&Card{Rank: Ten, Suit: Spades}, card)

	for _, bad := range []string{"", "A", "Ahh", "1h", "0d", "Xs", "A!"} {
		card, err = CardFromString(bad)
		a.Error(err, bad)
		a.Nil(card)
	}
}

func TestCardsFromString(t *testing.T) {
	a := assert.New(t)

	cards, err := CardsFromString("AhKd")
	a.NoError(err)
	a.Equal([]*Card{
		{Rank: Ace, Suit: Hearts},
		{Rank: King, Suit: Diamonds},
	}, cards)

	cards, err = CardsFromString("AhK")
	a.EqualError(err, "cards must be two-character tokens: AhK")
	a.Nil(cards)

	cards, err = CardsFromString("AhXd")
	a.Error(err)
	a.Nil(cards)
}

func TestCardsToString(t *testing.T) {
	cards, err := CardsFromString("3hKdQs")
	assert.NoError(t, err)
	assert.Equal(t, "3hKdQs", CardsToString(cards))
}

func TestCard_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("A♡", (&Card{Rank: Ace, Suit: Hearts}).String())
	a.Equal("T♠", (&Card{Rank: Ten, Suit: Spades}).String())
	a.Equal("2♣", (&Card{Rank: 2, Suit: Clubs}).String())
}

func TestCard_AceLowRank(t *testing.T) {
	a := assert.New(t)
	a.Equal(1, (&Card{Rank: Ace, Suit: Hearts}).AceLowRank())
	a.Equal(13, (&Card{Rank: King, Suit: Hearts}).AceLowRank())
}
