package config

import (
	"drawpoker/internal/util"
	"drawpoker/pkg/playable/poker/draw"
	"drawpoker/pkg/playable/poker/handanalyzer"
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
	"os"
)

// Game configures the table
type Game struct {
	StartingMoney int    `yaml:"startingMoney" envconfig:"starting_money"`
	BetAmount     int    `yaml:"betAmount" envconfig:"bet_amount"`
	AIPlayers     int    `yaml:"aiPlayers" envconfig:"ai_players"`
	MaxRaises     int    `yaml:"maxRaises" envconfig:"max_raises"`
	Evaluator     string `yaml:"evaluator"`
	RandomNames   bool   `yaml:"randomNames" envconfig:"random_names"`
}

// Log configures the logger
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config provides configuration for five-card draw
type Config struct {
	loaded     bool
	PlayerName string `yaml:"playerName" envconfig:"player_name"`
	Seed       int64  `yaml:"seed"`
	Game       Game   `yaml:"game"`
	Log        Log    `yaml:"log"`
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	return Config{
		PlayerName: "You",
		Game: Game{
			StartingMoney: 100,
			BetAmount:     10,
			AIPlayers:     2,
			MaxRaises:     0,
			Evaluator:     "classic",
		},
		Log: Log{
			Level:  "warning",
			Format: "text",
		},
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

// Load will load the configuration from the file named by DRAWPOKER_CONFIG_FILE
func Load() error {
	return LoadFile(util.Getenv("DRAWPOKER_CONFIG_FILE", "config.yaml"))
}

// LoadFile will load the configuration from configFile
// A missing file is not an error; the defaults and the environment are used instead.
// Values from a .env file are applied to the environment before it is read.
func LoadFile(configFile string) error {
	cfg := DefaultConfig()

	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return fmt.Errorf("could not parse %s: %w", configFile, err)
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("drawpoker", &cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Validate checks that the configuration can be used to seat a table
func (c Config) Validate() error {
	if c.Game.StartingMoney <= 0 {
		return errors.New("game.startingMoney must be greater than zero")
	}

	if c.Game.BetAmount <= 0 {
		return errors.New("game.betAmount must be greater than zero")
	}

	if c.Game.AIPlayers < 1 || c.Game.AIPlayers > 4 {
		return fmt.Errorf("game.aiPlayers must be between 1 and 4, got %d", c.Game.AIPlayers)
	}

	if c.Game.MaxRaises < 0 {
		return errors.New("game.maxRaises must be >= 0")
	}

	if _, err := handanalyzer.NewEvaluator(c.Game.Evaluator); err != nil {
		return err
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return err
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("unknown log format: %s", c.Log.Format)
	}

	return nil
}

// TableOptions returns the options for a table
func (c Config) TableOptions() (draw.Options, error) {
	evaluator, err := handanalyzer.NewEvaluator(c.Game.Evaluator)
	if err != nil {
		return draw.Options{}, err
	}

	return draw.Options{
		StartingMoney: c.Game.StartingMoney,
		BetAmount:     c.Game.BetAmount,
		MaxRaises:     c.Game.MaxRaises,
		Evaluator:     evaluator,
	}, nil
}
