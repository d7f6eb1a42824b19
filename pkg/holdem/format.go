package holdem

import (
	"fmt"
	"strings"
)

// FormatPayoffs renders per-seat net payoffs as a winnings summary, e.g.
// "Player 1: +500; Player 2: -100"
func FormatPayoffs(payoffs []int) string {
	parts := make([]string, len(payoffs))
	for i, payoff := range payoffs {
		parts[i] = fmt.Sprintf("Player %d: %+d", i+1, payoff)
	}

	return strings.Join(parts, "; ")
}
