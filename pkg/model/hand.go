package model

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"

	"handreplay-server/pkg/db"
)

const handColumns = `
hands.id,
hands.stack_size,
hands.dealer_position,
hands.small_blind_position,
hands.big_blind_position,
hands.player_hands,
hands.action_sequence,
hands.winnings,
hands.created`

const pqDuplicateKeyErrorCode pq.ErrorCode = "23505"

// ErrDuplicateKey happens if a hand is saved with an ID that already exists
var ErrDuplicateKey = errors.New("duplicate key constraint violation")

// Hand is a record in the `hands` table. It stores a replayed hand record
// along with the computed winnings string.
type Hand struct {
	ID                 string    `json:"id"`
	StackSize          int       `json:"stackSize"`
	DealerPosition     int       `json:"dealerPosition"`
	SmallBlindPosition int       `json:"smallBlindPosition"`
	BigBlindPosition   int       `json:"bigBlindPosition"`
	PlayerHands        string    `json:"playerHands"`
	ActionSequence     string    `json:"actionSequence"`
	Winnings           string    `json:"winnings"`
	Created            time.Time `json:"created"`
}

func getHandByRow(row db.Scanner) (*Hand, error) {
	var hand Hand
	if err := row.Scan(&hand.ID, &hand.StackSize, &hand.DealerPosition, &hand.SmallBlindPosition,
		&hand.BigBlindPosition, &hand.PlayerHands, &hand.ActionSequence, &hand.Winnings, &hand.Created); err != nil {
		return nil, err
	}

	return &hand, nil
}

// Save will persist the hand to the database
func (h *Hand) Save(ctx context.Context) error {
	const query = `
INSERT INTO hands (id, stack_size, dealer_position, small_blind_position, big_blind_position, player_hands, action_sequence, winnings)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING created`

	row := db.Instance().QueryRowContext(ctx, query, h.ID, h.StackSize, h.DealerPosition,
		h.SmallBlindPosition, h.BigBlindPosition, h.PlayerHands, h.ActionSequence, h.Winnings)

	if err := row.Scan(&h.Created); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqDuplicateKeyErrorCode {
			return ErrDuplicateKey
		}

		return err
	}

	return nil
}

// GetHandByID returns a hand based on the ID
func GetHandByID(ctx context.Context, id string) (*Hand, error) {
	const query = `
SELECT ` + handColumns + `
FROM hands
WHERE id = $1`

	row := db.Instance().QueryRowContext(ctx, query, id)
	return getHandByRow(row)
}

// GetHands returns the most recently created hands, starting at the offset
func GetHands(ctx context.Context, start int64, rows int) ([]*Hand, error) {
	const query = `
SELECT ` + handColumns + `
FROM hands
ORDER BY created DESC, id
OFFSET $1
LIMIT $2`

	rs, err := db.Instance().QueryContext(ctx, query, start, rows)
	if err != nil {
		return nil, err
	}
	defer rs.Close()

	hands := make([]*Hand, 0)
	for rs.Next() {
		hand, err := getHandByRow(rs)
		if err != nil {
			return nil, err
		}

		hands = append(hands, hand)
	}

	return hands, rs.Err()
}
