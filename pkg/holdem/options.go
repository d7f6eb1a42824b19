package holdem

import "errors"

// Options configures a single hand replay
type Options struct {
	// Seats is the number of seats at the table
	Seats int

	// StartingStacks is the chip count each seat begins the hand with.
	// It must hold one entry per seat.
	StartingStacks []int

	SmallBlind int
	BigBlind   int

	// MinBet is the minimum opening bet, and the initial minimum raise
	// increment on every street
	MinBet int

	DealerPosition     int
	SmallBlindPosition int
	BigBlindPosition   int
}

// DefaultOptions returns the table configuration the hand records this
// service ingests are played with: six seats, 20/40 blinds, 40 minimum bet
func DefaultOptions() Options {
	return Options{
		Seats:              6,
		SmallBlind:         20,
		BigBlind:           40,
		MinBet:             40,
		DealerPosition:     0,
		SmallBlindPosition: 1,
		BigBlindPosition:   2,
	}
}

// UniformStacks returns a copy of the options with every seat's starting
// stack set to size
func (o Options) UniformStacks(size int) Options {
	stacks := make([]int, o.Seats)
	for i := range stacks {
		stacks[i] = size
	}

	o.StartingStacks = stacks
	return o
}

func validateOptions(o Options) error {
	if o.Seats < 2 {
		return errors.New("there must be at least two seats")
	}

	if len(o.StartingStacks) != o.Seats {
		return errors.New("starting stacks must match the seat count")
	}

	for _, stack := range o.StartingStacks {
		if stack < 0 {
			return errors.New("starting stacks cannot be negative")
		}
	}

	if o.SmallBlind <= 0 || o.BigBlind < o.SmallBlind {
		return errors.New("blinds must satisfy 0 < small blind <= big blind")
	}

	if o.MinBet < o.BigBlind {
		return errors.New("minimum bet cannot be less than the big blind")
	}

	for _, pos := range []int{o.DealerPosition, o.SmallBlindPosition, o.BigBlindPosition} {
		if pos < 0 || pos >= o.Seats {
			return errors.New("positions must reference a valid seat")
		}
	}

	if o.SmallBlindPosition == o.BigBlindPosition {
		return errors.New("small and big blind cannot share a seat")
	}

	return nil
}
