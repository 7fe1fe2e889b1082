//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"conway-life/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	s, err := loadSettings(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	l := s.NewLife()
	game := app.New(l, s)

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetWindowSize(s.Size.W*s.Scale, s.Size.H*s.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	log.Printf("stopped at generation %d, population %d", l.Generation(), l.Population())
}
