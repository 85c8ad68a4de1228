package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/session"
)

var (
	configPath = flag.String("config", "", "Path to a YAML config file")
	width      = flag.Int("width", 0, "Board width in cells (overrides config)")
	height     = flag.Int("height", 0, "Board height in cells (overrides config)")
	tick       = flag.Duration("tick", 0, "Gravity tick interval (overrides config)")
	seed       = flag.Uint64("seed", 0, "Piece sequence seed, 0 for random (overrides config)")
	debug      = flag.Bool("debug", false, "Show the ImGui debug overlay")
	logLevel   = flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := cfg.Logger()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	sess, err := session.New(cfg.NewGame,
		session.WithLogger(logger),
		session.WithInterval(cfg.Tick),
	)
	if err != nil {
		logger.Fatalw("failed to start session", "error", err)
	}
	defer sess.Stop()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	game := &Game{
		ctx:      ctx,
		session:  sess,
		logger:   logger,
		cellSize: cfg.Display.CellSize,
		ghost:    cfg.Display.Ghost,
	}

	w, h := windowSize(cfg.Board.Width, cfg.Board.Height, cfg.Display.CellSize)
	title := fmt.Sprintf("Blockfall %dx%d", cfg.Board.Width, cfg.Board.Height)
	if cfg.Display.Debug {
		w, h = max(w+720, 1280), max(h, 720)
		game.imguiBackend = debugui_ebiten.NewImguiBackend(title, w, h)
		game.overlay = debugui.NewOverlay()

		timer := debugui.NewFrameTimer()
		stats := debugui.NewStatsWindow(sess, 120)
		board := debugui.NewBoardWindow(sess, 12)
		game.overlay.Add(func() { stats.Render(timer.GetDeltaTime()) })
		game.overlay.Add(board.Render)
	} else {
		ebiten.SetWindowSize(w, h)
		ebiten.SetWindowTitle(title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Infow("starting",
		"session", sess.ID().String(),
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"tick", cfg.Tick,
		"debug", cfg.Display.Debug,
	)

	game.startRunner()

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatalw("game loop failed", "error", err)
	}

	st := sess.State()
	logger.Infow("exiting", "score", st.Score, "lines", st.Lines, "level", st.Level)
}

// loadConfig reads the config file and applies any flags set on the command line.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return cfg, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Board.Width = *width
		case "height":
			cfg.Board.Height = *height
		case "tick":
			cfg.Tick = *tick
		case "seed":
			cfg.Seed = *seed
		case "debug":
			cfg.Display.Debug = *debug
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

