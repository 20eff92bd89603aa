package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/isometric/config"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "isometric.toml", "path to the TOML config file")
	mapName := flag.String("map", "", "map name in levels/ (basename, .json optional); overrides game.start_map")
	debug := flag.Bool("debug", false, "draw enemy paths, colliders and frame stats")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *mapName != "" {
		cfg.Game.StartMap = *mapName
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetTPS(cfg.Game.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("isometric")

	game, err := NewGame(cfg, logger, *debug)
	if err != nil {
		logger.Fatal("init game", zap.Error(err))
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game exited", zap.Error(err))
	}
}
