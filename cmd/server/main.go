package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"skirmish-server/internal/agent"
	"skirmish-server/internal/engine"
	"skirmish-server/internal/network"
	"skirmish-server/internal/server"
	"skirmish-server/internal/version"
	"skirmish-server/pkg/logger"
	"skirmish-server/pkg/utils"

	"github.com/sirupsen/logrus"
)

func init() {
	logger.Init()
}

func main() {
	var (
		seed       string
		configPath string
		mode       string
		port       string
		color      bool
		autoplay   bool
		games      int
	)
	flag.StringVar(&seed, "seed", "", "Master seed: a number or any word (empty for random)")
	flag.StringVar(&configPath, "config", "", "Path to a YAML config file")
	flag.StringVar(&mode, "mode", "run", "run: one headless game in the console; serve: HTTP + WebSocket spectators")
	flag.StringVar(&port, "port", "", "HTTP port for serve mode (default $SKIRMISH_PORT or 8080)")
	flag.BoolVar(&color, "color", false, "Draw the console map with ANSI colors")
	flag.BoolVar(&autoplay, "autoplay", false, "Serve mode: start a game at boot and restart it whenever it ends")
	flag.IntVar(&games, "games", 0, "Autoplay: stop after this many games (0 for no limit)")
	flag.Parse()

	logger.Log.Info("Starting skirmish server...")
	logger.Log.Info(version.String())

	cfg, err := loadConfig(configPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Config error")
	}
	if seed != "" {
		cfg.Seed = parseSeed(seed)
		logger.Log.WithFields(logrus.Fields{"seed": cfg.Seed, "input": seed}).Info("Using explicit master seed")
	} else {
		logger.Log.WithField("seed", cfg.Seed).Info("Using random master seed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch mode {
	case "run":
		runOnce(ctx, cfg, color)
	case "serve":
		serve(ctx, cfg, resolvePort(port), autoplay, games)
	default:
		logger.Log.WithField("mode", mode).Fatal("Unknown mode")
	}
}

func loadConfig(path string) (engine.Config, error) {
	if path == "" {
		return engine.NewConfig(), nil
	}
	return engine.LoadConfig(path)
}

// parseSeed accepts a decimal seed or derives one from a word.
func parseSeed(s string) int64 {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	return utils.StringToSeed(s)
}

func resolvePort(flagPort string) string {
	if flagPort != "" {
		return flagPort
	}
	if env := os.Getenv("SKIRMISH_PORT"); env != "" {
		return env
	}
	return "8080"
}

// runOnce plays a single game in the console. Ctrl+C stops it after the current tick.
func runOnce(ctx context.Context, cfg engine.Config, color bool) {
	game, err := engine.NewGame(cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to start game")
	}

	res := game.Run(ctx, consoleRenderer(color), engine.DelayWaiter(cfg.TickDelay))

	logger.Log.WithFields(logrus.Fields{
		"seed":    res.Seed,
		"outcome": res.Outcome.String(),
		"ticks":   res.Ticks,
	}).Info("Done.")
}

func serve(ctx context.Context, cfg engine.Config, port string, autoplay bool, games int) {
	svc := engine.NewService(cfg, network.NewBroadcaster())
	srv := server.New(svc, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.WithError(err).Fatal("Server start error")
		}
	}()

	if autoplay {
		bot := agent.NewAutoplay(svc, cfg.Params(), games)
		go func() {
			if err := bot.Run(ctx); err != nil {
				logger.Log.WithError(err).Error("Autoplay stopped")
			}
		}()
	}

	<-ctx.Done()
	logger.Log.Info("Shutting down...")
	svc.StopGame()
	logger.Log.Info("Done.")
}
