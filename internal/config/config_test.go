package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"handreplay-server/internal/util"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("HRS_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("HRS_PG_DSN", "postgres://override:5432/handreplay")
	defer clear2()

	a := assert.New(t)
	a.NoError(Load())

	cfg := Instance()
	a.Equal("postgres://override:5432/handreplay", cfg.PGDSN)
	a.Equal("debug", cfg.Log.Level)
	a.Equal(10, cfg.Game.SmallBlind)
	a.Equal(20, cfg.Game.BigBlind)

	// ensure that it's only loaded once
	_ = os.Setenv("HRS_PG_DSN", "postgres://other:5432/handreplay")
	// ensure we aren't using a pointer
	cfg.PGDSN = "bad"
	cfg = Instance()
	a.Equal("postgres://override:5432/handreplay", cfg.PGDSN)
}

func TestDefaults(t *testing.T) {
	clear := util.SetEnv("HRS_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear()

	a := assert.New(t)
	a.NoError(Load())

	cfg := Instance()
	a.Equal("http://localhost:3000", cfg.AllowedOrigin)
	a.Equal(6, cfg.Game.Seats)
	a.Equal(20, cfg.Game.SmallBlind)
	a.Equal(40, cfg.Game.BigBlind)
	a.Equal(40, cfg.Game.MinBet)
}
