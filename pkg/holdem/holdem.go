package holdem

import (
	"errors"

	"github.com/sirupsen/logrus"

	"handreplay-server/pkg/deck"
)

// Game replays a single hand of No-Limit Texas Hold'em. It is an
// authoritative state machine: every action is validated against the betting
// rules before it is applied, and an illegal action aborts the replay.
//
// A Game is created fresh per replay and shares nothing with other replays,
// so concurrent replays need no locking.
type Game struct {
	opts  Options
	seats []*Seat
	log   logrus.FieldLogger

	street Street
	board  deck.Hand

	// turn is the seat index of the next seat to act, or -1 when the
	// current betting round is closed
	turn       int
	currentBet int
	minRaise   int

	// lastFullRaiseTo is the street commitment set by the last full bet or
	// raise. A short all-in moves the current bet without moving this
	// level, which keeps betting closed for seats that already matched it.
	lastFullRaiseTo int

	// finished is set once all but one seat has folded
	finished bool
}

// Replay replays a textual hand record and returns each seat's net payoff.
// The computation is pure and deterministic: identical inputs always produce
// identical payoffs, and the payoffs always sum to zero.
func Replay(log logrus.FieldLogger, opts Options, playerHands, actionSequence string) ([]int, error) {
	tracker := deck.NewTracker()

	holeCards, err := parseHoleCards(playerHands, opts.Seats, tracker)
	if err != nil {
		return nil, err
	}

	actions, err := parseActions(actionSequence, tracker)
	if err != nil {
		return nil, err
	}

	game, err := NewGame(log, opts, holeCards)
	if err != nil {
		return nil, err
	}

	for _, act := range actions {
		if err := game.Apply(act); err != nil {
			return nil, err
		}
	}

	return game.Payoffs()
}

// NewGame returns a game with the blinds posted and the action on the seat
// after the big blind
func NewGame(log logrus.FieldLogger, opts Options, holeCards []deck.Hand) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if len(holeCards) != opts.Seats {
		return nil, errors.New("hole cards must match the seat count")
	}

	seats := make([]*Seat, opts.Seats)
	for i := range seats {
		seats[i] = newSeat(i, opts.StartingStacks[i], holeCards[i])
	}

	g := &Game{
		opts:            opts,
		seats:           seats,
		log:             log,
		street:          Preflop,
		board:           make(deck.Hand, 0, 5),
		currentBet:      opts.BigBlind,
		minRaise:        opts.MinBet,
		lastFullRaiseTo: opts.BigBlind,
	}

	// blinds are posted automatically, clamped for short stacks
	seats[opts.SmallBlindPosition].commitTo(opts.SmallBlind)
	seats[opts.BigBlindPosition].commitTo(opts.BigBlind)

	g.turn = g.nextToAct(opts.BigBlindPosition)
	return g, nil
}

// Apply validates and applies a single action
func (g *Game) Apply(act Action) error {
	if g.finished {
		return newInvalidAction(act, "the hand is over")
	}

	if act.Type == DealBoard {
		return g.applyDealBoard(act)
	}

	if g.turn < 0 {
		return newInvalidAction(act, "no betting action is expected on the %s", g.street)
	}

	seat := g.seats[g.turn]

	switch act.Type {
	case Fold:
		seat.status = StatusFolded
		if g.remainingCount() == 1 {
			g.log.WithField("seat", seat.Index).Debug("hand finished by fold-out")
			g.finished = true
			g.street = Showdown
			g.turn = -1
			return nil
		}
	case CheckOrCall:
		seat.commitTo(g.currentBet)
		seat.actedAt = g.currentBet
	case BetOrRaiseTo:
		if err := g.applyBetOrRaise(seat, act); err != nil {
			return err
		}
	default:
		return newInvalidAction(act, "unknown action type")
	}

	g.turn = g.nextToAct(seat.Index)
	return nil
}

func (g *Game) applyBetOrRaise(seat *Seat, act Action) error {
	amount := act.Amount
	if act.AllIn {
		amount = seat.maxTo()
	}

	// amounts at or above the seat's stack clamp to an all-in
	allIn := amount >= seat.maxTo()
	if allIn {
		amount = seat.maxTo()
	}

	if amount <= g.currentBet {
		return newInvalidAction(act, "a bet or raise to %d must exceed the current bet of %d", amount, g.currentBet)
	}

	if seat.actedAt >= 0 && seat.actedAt >= g.lastFullRaiseTo {
		return newInvalidAction(act, "betting was not reopened since the seat last acted")
	}

	if amount < g.currentBet+g.minRaise {
		if !allIn {
			return newInvalidAction(act, "a raise to %d is below the minimum raise to %d", amount, g.currentBet+g.minRaise)
		}

		// a short all-in: the current bet moves, but the minimum raise is
		// unchanged and betting is not reopened
		g.currentBet = amount
	} else {
		g.minRaise = amount - g.currentBet
		g.currentBet = amount
		g.lastFullRaiseTo = amount
	}

	seat.commitTo(amount)
	seat.actedAt = g.currentBet
	return nil
}

func (g *Game) applyDealBoard(act Action) error {
	if g.turn >= 0 {
		return newInvalidAction(act, "the board cannot be dealt until the %s betting round is closed", g.street)
	}

	if g.street >= River {
		return newInvalidAction(act, "the board is complete")
	}

	next := g.street + 1
	if len(act.Cards) != next.boardSize() {
		return newInvalidAction(act, "the %s requires %d total board cards, got %d", next, next.boardSize(), len(act.Cards))
	}

	if !extendsBoard(g.board, act.Cards) {
		return newInvalidAction(act, "board cards must extend the previously revealed board")
	}

	g.board = act.Cards.Clone()
	g.street = next
	g.log.WithFields(logrus.Fields{
		"street": g.street.String(),
		"board":  g.board.String(),
	}).Debug("board dealt")

	for _, seat := range g.seats {
		seat.newStreet()
	}

	g.currentBet = 0
	g.minRaise = g.opts.MinBet
	g.lastFullRaiseTo = 0
	g.turn = g.nextToAct(g.opts.DealerPosition)
	return nil
}

// needsAction returns true if the seat still owes a decision on the current
// betting round
func (g *Game) needsAction(s *Seat) bool {
	if !s.canAct() {
		return false
	}

	if s.streetBet < g.currentBet {
		return true
	}

	// with a single active seat left there is no one to bet against;
	// remaining streets run out without further actions
	return s.actedAt < 0 && g.activeCount() > 1
}

// nextToAct returns the index of the first seat after from that owes a
// decision, or -1 if the betting round is closed
func (g *Game) nextToAct(from int) int {
	n := len(g.seats)
	for i := 1; i <= n; i++ {
		seat := g.seats[(from+i)%n]
		if g.needsAction(seat) {
			return seat.Index
		}
	}

	return -1
}

func (g *Game) activeCount() int {
	count := 0
	for _, seat := range g.seats {
		if seat.canAct() {
			count++
		}
	}

	return count
}

func (g *Game) remainingCount() int {
	count := 0
	for _, seat := range g.seats {
		if seat.status != StatusFolded {
			count++
		}
	}

	return count
}

// Board returns the board cards revealed so far
func (g *Game) Board() deck.Hand {
	return g.board.Clone()
}

// Street returns the current street
func (g *Game) Street() Street {
	return g.street
}
