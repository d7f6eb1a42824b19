package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPots(t *testing.T) {
	a := assert.New(t)

	// everyone matched the same level: a single pot
	pots := BuildPots([]int{100, 100, 100}, []bool{false, false, false})
	a.Equal([]Pot{
		{Amount: 300, Eligible: []int{0, 1, 2}},
	}, pots)

	// a short all-in caps the main pot and spawns a side pot
	pots = BuildPots([]int{300, 300, 100}, []bool{false, false, false})
	a.Equal([]Pot{
		{Amount: 300, Eligible: []int{0, 1, 2}},
		{Amount: 400, Eligible: []int{0, 1}},
	}, pots)

	// two all-in levels stack two side pots
	pots = BuildPots([]int{500, 500, 100, 250}, []bool{false, false, false, false})
	a.Equal([]Pot{
		{Amount: 400, Eligible: []int{0, 1, 2, 3}},
		{Amount: 450, Eligible: []int{0, 1, 3}},
		{Amount: 500, Eligible: []int{0, 1}},
	}, pots)

	// folded chips stay in the pot but the folder is never eligible
	pots = BuildPots([]int{100, 40, 0}, []bool{false, true, true})
	a.Equal([]Pot{
		{Amount: 140, Eligible: []int{0}},
	}, pots)

	// a fold between levels leaves consecutive slices with the same
	// eligible seats, which collapse into one pot
	pots = BuildPots([]int{85, 135, 135}, []bool{true, false, false})
	a.Equal([]Pot{
		{Amount: 355, Eligible: []int{1, 2}},
	}, pots)
}

func TestBuildPots_conservesChips(t *testing.T) {
	a := assert.New(t)

	runTest := func(t *testing.T, contributions []int, folded []bool) {
		t.Helper()

		total := 0
		for _, c := range contributions {
			total += c
		}

		sum := 0
		for _, pot := range BuildPots(contributions, folded) {
			sum += pot.Amount
		}

		a.Equal(total, sum)
	}

	runTest(t, []int{300, 300, 100}, []bool{false, false, false})
	runTest(t, []int{500, 500, 100, 250}, []bool{false, true, false, true})
	runTest(t, []int{40, 20, 0, 0, 0, 0}, []bool{false, true, false, true, true, true})
	runTest(t, []int{0, 0, 0}, []bool{true, true, false})
}

func TestAwardPot(t *testing.T) {
	a := assert.New(t)

	// a clean win takes the whole pot
	winnings := make([]int, 3)
	awardPot(winnings, Pot{Amount: 300, Eligible: []int{0, 1, 2}}, []int{5, 9, 7}, 0)
	a.Equal([]int{0, 300, 0}, winnings)

	// ties split evenly
	winnings = make([]int, 4)
	awardPot(winnings, Pot{Amount: 200, Eligible: []int{0, 1, 2, 3}}, []int{9, 4, 9, 1}, 0)
	a.Equal([]int{100, 0, 100, 0}, winnings)

	// the odd chip goes to the tied seat closest to the dealer's left
	winnings = make([]int, 3)
	awardPot(winnings, Pot{Amount: 355, Eligible: []int{1, 2}}, []int{0, 8, 8}, 0)
	a.Equal([]int{0, 178, 177}, winnings)

	// same pot, dealer moved: the other seat now gets the odd chip
	winnings = make([]int, 3)
	awardPot(winnings, Pot{Amount: 355, Eligible: []int{1, 2}}, []int{0, 8, 8}, 1)
	a.Equal([]int{0, 177, 178}, winnings)
}

func TestSeatOrderFromDealer(t *testing.T) {
	a := assert.New(t)

	a.Equal(0, seatOrderFromDealer(1, 0, 6))
	a.Equal(4, seatOrderFromDealer(5, 0, 6))
	a.Equal(5, seatOrderFromDealer(0, 0, 6))
	a.Equal(0, seatOrderFromDealer(0, 5, 6))
	a.Equal(5, seatOrderFromDealer(5, 5, 6))
}
