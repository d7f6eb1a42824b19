package holdem

import "sort"

// Pot is a portion of the committed chips along with the seats eligible to
// win it. A hand produces one main pot and zero or more side pots, ordered by
// contribution level.
type Pot struct {
	Amount   int
	Eligible []int
}

// BuildPots splits the per-seat total contributions into a main pot and any
// side pots. Distinct contribution levels are processed ascending; each
// slice collects the level increment from every seat that contributed at
// least that much, and only unfolded seats at or above the level are
// eligible. The sum of all pot amounts equals the sum of all contributions.
func BuildPots(contributions []int, folded []bool) []Pot {
	levels := make([]int, 0, len(contributions))
	seen := make(map[int]bool)
	for _, c := range contributions {
		if c > 0 && !seen[c] {
			seen[c] = true
			levels = append(levels, c)
		}
	}
	sort.Ints(levels)

	pots := make([]Pot, 0, len(levels))

	prev := 0
	for _, level := range levels {
		amount := 0
		eligible := make([]int, 0, len(contributions))
		for i, c := range contributions {
			if c >= level {
				amount += level - prev
				if !folded[i] {
					eligible = append(eligible, i)
				}
			}
		}
		prev = level

		// folds between levels leave consecutive slices with the same
		// eligible seats; collapse them into a single pot
		if n := len(pots); n > 0 && (len(eligible) == 0 || equalSeatSets(pots[n-1].Eligible, eligible)) {
			pots[n-1].Amount += amount
			continue
		}

		pots = append(pots, Pot{
			Amount:   amount,
			Eligible: eligible,
		})
	}

	return pots
}

func equalSeatSets(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
