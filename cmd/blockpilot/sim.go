package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockpilot/internal/config"
	"github.com/vovakirdan/blockpilot/internal/core"
	"github.com/vovakirdan/blockpilot/internal/games/tetris"
	"github.com/vovakirdan/blockpilot/internal/pilot"
	"github.com/vovakirdan/blockpilot/internal/registry"
	"github.com/vovakirdan/blockpilot/internal/storage"
)

var (
	flagSimGames     int
	flagSimMaxPieces int
	flagSimConfig    string
	flagSimPilotCfg  string
	flagSimNoSave    bool
)

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Run headless autopilot games",
	Long: `Run the autopilot against the given game without a UI and report
per-game results plus aggregate statistics. Runs are recorded in the
database unless --no-save is given.

Examples:
  blockpilot sim tetris
  blockpilot sim tetris --games 50
  blockpilot sim tetris --games 10 --seed 42
  blockpilot sim tetris --pilot-config ./my-pilot.yaml --no-save`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimGames, "games", 10, "Number of games to run")
	simCmd.Flags().IntVar(&flagSimMaxPieces, "max-pieces", 10000, "Piece cap per game")
	simCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagSimPilotCfg, "pilot-config", "", "Path to custom autopilot config YAML")
	simCmd.Flags().BoolVar(&flagSimNoSave, "no-save", false, "Do not record runs in the database")
}

func runSim(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blockpilot list' to see available games.")
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sim",
	})

	tetris.SetConfigPath(flagSimConfig)

	pcfg, err := config.LoadPilot(flagSimPilotCfg)
	if err != nil {
		logger.Fatal("cannot load pilot config", "error", err)
	}

	var store *storage.Store
	if !flagSimNoSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open database, runs will not be recorded", "error", err)
		} else {
			defer store.Close()
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Info("starting simulation", "game", gameID, "games", flagSimGames, "seed", seed)

	for i := 0; i < flagSimGames; i++ {
		game, err := registry.Create(gameID)
		if err != nil {
			logger.Fatal("cannot create game", "error", err)
		}
		game.Reset(core.RuntimeConfig{
			ScreenW:  80,
			ScreenH:  24,
			TickRate: 60,
			Seed:     seed + int64(i),
		})

		p, err := pilot.ForGame(game, pcfg.ToPilot())
		if err != nil {
			logger.Fatal("game cannot be piloted", "game", gameID, "error", err)
		}

		start := time.Now()
		state := simulate(game, p, logger)
		elapsed := time.Since(start)

		logger.Info("game finished",
			"n", i+1,
			"score", state.Score,
			"lines", state.Lines,
			"pieces", state.Pieces,
			"elapsed", elapsed.Round(time.Millisecond),
		)

		if store != nil {
			//nolint:errcheck // Best-effort save
			store.SaveRun(storage.RunRecord{
				GameID:    gameID,
				Score:     state.Score,
				Lines:     state.Lines,
				Pieces:    state.Pieces,
				Autopilot: true,
				Duration:  int(elapsed.Seconds()),
			})
			if state.Score > 0 {
				//nolint:errcheck // Best-effort save
				store.SaveScore(gameID, state.Score)
			}
		}
	}

	if store != nil {
		stats, err := store.PilotStats(gameID)
		if err == nil && stats.Runs > 0 {
			logger.Info("autopilot statistics",
				"runs", stats.Runs,
				"avg_score", fmt.Sprintf("%.1f", stats.AvgScore),
				"avg_lines", fmt.Sprintf("%.1f", stats.AvgLines),
				"max_score", stats.MaxScore,
			)
		}
	}
}

// stallTicks bounds how many pilot actions a single piece may take. Reaching
// a placement needs at most a handful of rotations plus a board-width of
// shifts; a piece still in flight after this many actions is wedged (the
// engine keeps refusing the move) and the run cannot make progress.
const stallTicks = 256

// simulate drives one game with the pilot until game over or the piece cap.
// The pilot acts every tick; gravity is irrelevant since every piece is
// hard-dropped into place.
func simulate(game registry.Game, p *pilot.Pilot, logger *log.Logger) core.GameState {
	p.Enable()
	lastPieces := game.State().Pieces
	stalled := 0
	for {
		state := game.State()
		if state.GameOver || state.Pieces >= flagSimMaxPieces {
			return state
		}
		if state.Pieces != lastPieces {
			lastPieces = state.Pieces
			stalled = 0
		}
		if p.Tick() == pilot.MoveNone {
			// While the game is running this means the search found no legal
			// placement; the piece is stuck and the run is over.
			return state
		}
		stalled++
		if stalled >= stallTicks {
			logger.Warn("aborting wedged run, piece is not settling",
				"pieces", state.Pieces, "score", state.Score)
			return state
		}
	}
}
