package main

import (
	"flag"
	"log"

	"github.com/Garsondee/color-the-map/internal/assets"
	"github.com/Garsondee/color-the-map/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := game.DefaultConfig()
	flag.IntVar(&cfg.PlayerCount, "players", cfg.PlayerCount, "initial number of players (2-4)")
	flag.Float64Var(&cfg.FirstRoundTime, "first-round", cfg.FirstRoundTime, "seconds of the opening round")
	flag.Float64Var(&cfg.RoundTime, "round", cfg.RoundTime, "seconds of every later round")
	flag.IntVar(&cfg.WinPoints, "win-points", cfg.WinPoints, "points needed to win the game")
	flag.BoolVar(&cfg.LegacyScoring, "legacy-scoring", cfg.LegacyScoring, "credit unclaimed pixels to player 3 when 3+ players play")
	flag.BoolVar(&cfg.VerboseLog, "verbose", cfg.VerboseLog, "record paint events and print the match log on exit")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	sprites, err := game.LoadSprites(assets.FS)
	if err != nil {
		log.Fatal(err)
	}

	g := game.New(cfg, sprites)
	ebiten.SetWindowTitle("Color The Map")
	ebiten.SetWindowSize(game.ScreenWidth, game.ScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
	if cfg.VerboseLog {
		log.Print(g.Match().Log.Dump())
	}
}
