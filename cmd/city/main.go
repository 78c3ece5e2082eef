//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"

	"microcity/internal/app"
	"microcity/internal/core"
	"microcity/internal/sims/city"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()["city"]
	if !ok {
		log.Fatal("city simulation not registered")
	}
	sim, ok := factory(map[string]string{
		"seed":  strconv.FormatUint(cfg.Seed, 10),
		"level": cfg.Level,
	}).(*city.City)
	if !ok {
		log.Fatal("registry returned an unexpected simulation type")
	}

	game := app.New(sim, cfg.Scale, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("microcity")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
