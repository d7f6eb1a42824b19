package mux

import (
	"errors"
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"handreplay-server/internal/config"
	"handreplay-server/pkg/holdem"
	"handreplay-server/pkg/model"
)

type postHandsPayload struct {
	ID                 string `json:"id"`
	StackSize          int    `json:"stackSize"`
	DealerPosition     int    `json:"dealerPosition"`
	SmallBlindPosition int    `json:"smallBlindPosition"`
	BigBlindPosition   int    `json:"bigBlindPosition"`
	PlayerHands        string `json:"playerHands"`
	ActionSequence     string `json:"actionSequence"`
}

func (m *Mux) postHands() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postHandsPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		if payload.StackSize <= 0 {
			writeJSONError(w, http.StatusBadRequest, errors.New("stackSize must be greater than zero"))
			return
		}

		cfg := config.Instance()
		opts := holdem.Options{
			Seats:              cfg.Game.Seats,
			SmallBlind:         cfg.Game.SmallBlind,
			BigBlind:           cfg.Game.BigBlind,
			MinBet:             cfg.Game.MinBet,
			DealerPosition:     payload.DealerPosition,
			SmallBlindPosition: payload.SmallBlindPosition,
			BigBlindPosition:   payload.BigBlindPosition,
		}.UniformStacks(payload.StackSize)

		payoffs, err := holdem.Replay(logrus.StandardLogger(), opts, payload.PlayerHands, payload.ActionSequence)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		id := payload.ID
		if id == "" {
			id = uuid.New().String()
		}

		hand := &model.Hand{
			ID:                 id,
			StackSize:          payload.StackSize,
			DealerPosition:     payload.DealerPosition,
			SmallBlindPosition: payload.SmallBlindPosition,
			BigBlindPosition:   payload.BigBlindPosition,
			PlayerHands:        payload.PlayerHands,
			ActionSequence:     payload.ActionSequence,
			Winnings:           holdem.FormatPayoffs(payoffs),
		}

		if err := hand.Save(r.Context()); err != nil {
			if err == model.ErrDuplicateKey {
				writeJSONError(w, http.StatusConflict, err)
				return
			}

			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, hand)
	}
}

func (m *Mux) getHands() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, rows, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		hands, err := model.GetHands(r.Context(), start, rows)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, hands)
	}
}

func (m *Mux) getHandsID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := gmux.Vars(r)["id"]

		hand, err := model.GetHandByID(r.Context(), id)
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, hand)
	}
}
