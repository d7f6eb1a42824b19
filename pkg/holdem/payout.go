package holdem

import (
	"sort"

	"handreplay-server/pkg/handrank"
)

// Payoffs computes each seat's net payoff once the replay is complete.
// Net payoff = winnings received across all pots - total contribution.
func (g *Game) Payoffs() ([]int, error) {
	if !g.finished {
		if g.street != River || g.turn >= 0 {
			return nil, &EvaluationError{
				Reason: "the action sequence ended on the " + g.street.String() +
					" with more than one seat in contention",
			}
		}

		g.street = Showdown
	}

	contributions := make([]int, len(g.seats))
	folded := make([]bool, len(g.seats))
	for i, seat := range g.seats {
		contributions[i] = seat.contributed
		folded[i] = seat.status == StatusFolded
	}

	pots := BuildPots(contributions, folded)
	winnings := make([]int, len(g.seats))

	if g.finished {
		// a single surviving seat takes every pot; no ranking is needed
		survivor := -1
		for i, seat := range g.seats {
			if seat.status != StatusFolded {
				survivor = i
				break
			}
		}

		for _, pot := range pots {
			winnings[survivor] += pot.Amount
		}
	} else {
		strengths := make([]int, len(g.seats))
		for i, seat := range g.seats {
			if seat.status == StatusFolded {
				continue
			}

			cards := append(seat.HoleCards.Clone(), g.board...)
			strengths[i] = handrank.New(cards).GetStrength()
		}

		for _, pot := range pots {
			awardPot(winnings, pot, strengths, g.opts.DealerPosition)
		}
	}

	payoffs := make([]int, len(g.seats))
	for i, seat := range g.seats {
		payoffs[i] = winnings[i] - seat.contributed
	}

	return payoffs, nil
}

// awardPot splits a pot evenly among its best-ranked eligible seats. A
// remainder goes one chip at a time to the tied seats closest to the
// dealer's left.
func awardPot(winnings []int, pot Pot, strengths []int, dealer int) {
	best := 0
	for _, idx := range pot.Eligible {
		if strengths[idx] > best {
			best = strengths[idx]
		}
	}

	winners := make([]int, 0, len(pot.Eligible))
	for _, idx := range pot.Eligible {
		if strengths[idx] == best {
			winners = append(winners, idx)
		}
	}

	n := len(winnings)
	sort.Slice(winners, func(i, j int) bool {
		return seatOrderFromDealer(winners[i], dealer, n) < seatOrderFromDealer(winners[j], dealer, n)
	})

	share := pot.Amount / len(winners)
	remainder := pot.Amount % len(winners)
	for i, idx := range winners {
		winnings[idx] += share
		if i < remainder {
			winnings[idx]++
		}
	}
}

// seatOrderFromDealer orders seats clockwise starting at the dealer's left
func seatOrderFromDealer(idx, dealer, seats int) int {
	return ((idx-dealer-1)%seats + seats) % seats
}
