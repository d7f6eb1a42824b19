package holdem

import (
	"regexp"
	"strconv"
	"strings"

	"handreplay-server/pkg/deck"
)

var playerHandRx = regexp.MustCompile(`(?i)^player\s+(\d+)\s*:\s*([0-9a-z]+)$`)

// parseHoleCards decodes the `"Player <n>: <cards>; ..."` string into a hand
// per seat. Every card is taken from the tracker, so a card appearing twice
// fails with a ParseError.
func parseHoleCards(s string, seats int, tracker *deck.Tracker) ([]deck.Hand, error) {
	hands := make([]deck.Hand, seats)

	position := 0
	for _, entry := range strings.Split(s, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		position++

		match := playerHandRx.FindStringSubmatch(entry)
		if match == nil {
			return nil, newParseError(entry, position, `expected "Player <n>: <cards>"`)
		}

		n, err := strconv.Atoi(match[1])
		if err != nil || n < 1 || n > seats {
			return nil, newParseError(entry, position, "seat %s is out of range for a %d-seat table", match[1], seats)
		}

		if hands[n-1] != nil {
			return nil, newParseError(entry, position, "duplicate entry for seat %d", n)
		}

		cardsStr := match[2]
		if len(cardsStr) < 4 || len(cardsStr)%2 != 0 {
			return nil, newParseError(entry, position, "cards must be an even-length run of rank-suit tokens")
		}

		cards, err := deck.CardsFromString(cardsStr)
		if err != nil {
			return nil, newParseError(entry, position, err.Error())
		}

		if len(cards) != 2 {
			return nil, newParseError(entry, position, "expected exactly two hole cards, got %d", len(cards))
		}

		for _, card := range cards {
			if err := tracker.Take(card); err != nil {
				return nil, newParseError(entry, position, err.Error())
			}
		}

		hands[n-1] = cards
	}

	for i, hand := range hands {
		if hand == nil {
			return nil, newParseError(s, 0, "missing hole cards for seat %d", i+1)
		}
	}

	return hands, nil
}

// parseActions converts the dot-separated action sequence into typed actions.
// Board tokens are cumulative: each repeats the cards revealed so far, and
// only the new cards are taken from the tracker.
func parseActions(s string, tracker *deck.Tracker) ([]Action, error) {
	tokens := strings.Split(s, ".")
	actions := make([]Action, 0, len(tokens))

	var board deck.Hand

	position := 0
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		position++

		act := Action{
			Token:    token,
			Position: position,
		}

		switch {
		case token == "f":
			act.Type = Fold
		case token == "x" || token == "c":
			act.Type = CheckOrCall
		case token == "allin":
			act.Type = BetOrRaiseTo
			act.AllIn = true
		case token[0] == 'b' || token[0] == 'r':
			amount, err := strconv.Atoi(token[1:])
			if err != nil || amount <= 0 {
				return nil, newParseError(token, position, "bet or raise amount must be a positive integer")
			}

			act.Type = BetOrRaiseTo
			act.Amount = amount
		case len(token) == 6 || len(token) == 8 || len(token) == 10:
			cards, err := deck.CardsFromString(token)
			if err != nil {
				return nil, newParseError(token, position, err.Error())
			}

			if extendsBoard(board, cards) {
				for _, card := range cards[len(board):] {
					if err := tracker.Take(card); err != nil {
						return nil, newParseError(token, position, err.Error())
					}
				}

				board = cards
			}

			act.Type = DealBoard
			act.Cards = cards
		default:
			return nil, newParseError(token, position, "unrecognized action token")
		}

		actions = append(actions, act)
	}

	return actions, nil
}

// extendsBoard returns true if cards repeats the current board and reveals at
// least the same number of cards
func extendsBoard(board, cards deck.Hand) bool {
	if len(cards) < len(board) {
		return false
	}

	for i, card := range board {
		if !card.Equal(cards[i]) {
			return false
		}
	}

	return true
}
