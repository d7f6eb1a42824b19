package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"handreplay-server/internal/util"
)

// Config provides configuration for the hand replay server
type Config struct {
	loaded         bool
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	AllowedOrigin  string `yaml:"allowedOrigin" envconfig:"allowed_origin"`
	Log            struct {
		Level             string
		DisableAccessLogs bool `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Game struct {
		Seats      int
		SmallBlind int `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind   int `yaml:"bigBlind" envconfig:"big_blind"`
		MinBet     int `yaml:"minBet" envconfig:"min_bet"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. A missing config file is not an error;
// the defaults and the environment still apply.
func Load() error {
	config = Config{}
	config.AllowedOrigin = "http://localhost:3000"
	config.Game.Seats = 6
	config.Game.SmallBlind = 20
	config.Game.BigBlind = 40
	config.Game.MinBet = 40

	configFile := util.Getenv("HRS_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("hrs", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
