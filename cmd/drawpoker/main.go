package main

import (
	"context"
	"drawpoker/internal/config"
	"drawpoker/internal/console"
	"drawpoker/internal/rng"
	"drawpoker/internal/util"
	"drawpoker/pkg/playable"
	"drawpoker/pkg/playable/poker/draw"
	"errors"
	"flag"
	"fmt"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"io"
	"os"
	"os/signal"
)

var (
	configFile = flag.String("config", "", "path to the configuration file (default $DRAWPOKER_CONFIG_FILE or config.yaml)")
	aiPlayers  = flag.Int("ai", -1, "number of AI players, 1-4; 0 asks when the game starts")
	seed       = flag.Int64("seed", 0, "seed for a reproducible game")
)

const humanID = 1

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("could not load the configuration")
	}

	setupLogger(cfg)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableColor()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, cfg, *aiPlayers == 0, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, console.ErrInputClosed) || errors.Is(err, context.Canceled) {
			return
		}

		logrus.WithError(err).Fatal("the game was aborted")
	}
}

// loadConfig loads the configuration and applies the command line flags on top of it
func loadConfig() (config.Config, error) {
	var err error
	if *configFile != "" {
		err = config.LoadFile(*configFile)
	} else {
		err = config.Load()
	}

	if err != nil {
		return config.Config{}, err
	}

	cfg := config.Instance()
	if *aiPlayers > 0 {
		cfg.Game.AIPlayers = *aiPlayers
	}

	if *seed != 0 {
		cfg.Seed = *seed
	}

	return cfg, cfg.Validate()
}

func setupLogger(cfg config.Config) {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if cfg.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	logrus.SetOutput(os.Stderr)
}

// run seats the players and plays until the game is over or the human leaves
func run(ctx context.Context, cfg config.Config, askAIPlayers bool, in io.Reader, out io.Writer) error {
	logger := logrus.StandardLogger()
	prompter := console.NewPrompter(logger, in, out)
	gen := rng.New(cfg.Seed)

	count := cfg.Game.AIPlayers
	if askAIPlayers {
		var err error
		if count, err = prompter.AskInt(ctx, "How many AI players?", 1, 4); err != nil {
			return err
		}
	}

	opts, err := cfg.TableOptions()
	if err != nil {
		return err
	}

	players := newPlayers(cfg, count, prompter, gen)
	renderer := console.NewRenderer(out, humanID, players)
	table, err := draw.NewTable(logger, players, opts, gen, renderer)
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"players":   len(players),
		"money":     opts.StartingMoney,
		"betAmount": opts.BetAmount,
		"seed":      cfg.Seed,
	}).Info("starting the game")

	left := false
	err = table.Run(ctx, func(*draw.HandResult) (bool, error) {
		if over, _ := table.IsOver(); over {
			return true, nil
		}

		again, err := prompter.AskYesNo(ctx, "Play another hand?", true)
		left = !again
		return again, err
	})
	if err != nil {
		return err
	}

	if left {
		e := playable.NewEvent(playable.EventGameOver, "", 0, "Game over: %s left the table after %d hands", cfg.PlayerName, table.HandsPlayed())
		e.Stacks = table.Standings()
		renderer.Emit(e)
	}

	return nil
}

// newPlayers seats the human first, followed by the AI players
func newPlayers(cfg config.Config, count int, human draw.Strategy, gen rng.Generator) []*draw.Player {
	players := []*draw.Player{draw.NewPlayer(humanID, cfg.PlayerName, true, human)}

	var names []string
	if cfg.Game.RandomNames {
		names = util.GetRandomNames(gen, count, cfg.PlayerName)
	}

	for i := 0; i < count; i++ {
		name := fmt.Sprintf("AI Player %d", i+1)
		if names != nil {
			name = names[i]
		}

		players = append(players, draw.NewPlayer(int64(humanID+i+1), name, false, draw.NewRandomStrategy(gen)))
	}

	return players
}
