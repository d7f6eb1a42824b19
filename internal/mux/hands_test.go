package mux

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMux_postHands_badRequests(t *testing.T) {
	ts := httptest.NewServer(NewMux("test"))
	defer ts.Close()

	a := assert.New(t)

	runTest := func(t *testing.T, payload interface{}, statusCode int, expectedMessage string) {
		t.Helper()

		var resp errorResponse
		assertPost(t, ts, "/api/hands", payload, &resp, statusCode)
		if expectedMessage != "" {
			a.Equal(expectedMessage, resp.Message)
		}
	}

	runTest(t, "{bad json", http.StatusBadRequest, "")

	runTest(t, postHandsPayload{}, http.StatusBadRequest, "stackSize must be greater than zero")

	// a malformed action token is a client error
	runTest(t, postHandsPayload{
		StackSize:          10000,
		SmallBlindPosition: 1,
		BigBlindPosition:   2,
		PlayerHands:        validSixHands,
		ActionSequence:     "z50",
	}, http.StatusBadRequest, `parse error at token "z50" (position 1): unrecognized action token`)

	// so is an action that violates the betting rules
	runTest(t, postHandsPayload{
		StackSize:          10000,
		SmallBlindPosition: 1,
		BigBlindPosition:   2,
		PlayerHands:        validSixHands,
		ActionSequence:     "r50",
	}, http.StatusBadRequest, `invalid action "r50" (position 1): a raise to 50 is below the minimum raise to 80`)

	// and a replay that never reaches a conclusion
	runTest(t, postHandsPayload{
		StackSize:          10000,
		SmallBlindPosition: 1,
		BigBlindPosition:   2,
		PlayerHands:        validSixHands,
		ActionSequence:     "c.c.c.c.c.x",
	}, http.StatusBadRequest,
		"evaluation error: the action sequence ended on the pre-flop with more than one seat in contention")

	runTest(t, postHandsPayload{
		StackSize:          10000,
		SmallBlindPosition: 1,
		BigBlindPosition:   1,
		PlayerHands:        validSixHands,
		ActionSequence:     "f.f.f.f.f",
	}, http.StatusBadRequest, "small and big blind cannot share a seat")
}

func TestMux_postHands_unsupportedMediaType(t *testing.T) {
	ts := httptest.NewServer(NewMux("test"))
	defer ts.Close()

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/hands", strings.NewReader("{}"))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "text/plain")

	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
}

func TestMux_getHands_badPagination(t *testing.T) {
	ts := httptest.NewServer(NewMux("test"))
	defer ts.Close()

	a := assert.New(t)

	var resp errorResponse
	assertGet(t, ts, "/api/hands?start=-1", &resp, http.StatusBadRequest)
	a.Equal("start cannot be less than zero", resp.Message)

	assertGet(t, ts, "/api/hands?rows=0", &resp, http.StatusBadRequest)
	a.Equal("rows must be greater than zero", resp.Message)

	assertGet(t, ts, "/api/hands?rows=101", &resp, http.StatusBadRequest)
	a.Equal("rows cannot be greater than 100", resp.Message)
}

const validSixHands = "Player 1: AhKh; Player 2: QsQd; Player 3: 9c9d; Player 4: 8s8h; Player 5: 7c7d; Player 6: 6s6h"
