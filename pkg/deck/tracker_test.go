package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker(t *testing.T) {
	a := assert.New(t)

	tr := NewTracker()
	a.Equal(52, tr.CardsLeft())

	card, _ := CardFromString("Ah")
	a.False(tr.Taken(card))
	a.NoError(tr.Take(card))
	a.True(tr.Taken(card))
	a.Equal(51, tr.CardsLeft())

	sameCard, _ := CardFromString("Ah")
	a.EqualError(tr.Take(sameCard), "duplicate card: Ah")

	other, _ := CardFromString("As")
	a.NoError(tr.Take(other))
	a.Equal(50, tr.CardsLeft())
}
