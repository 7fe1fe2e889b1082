//go:build !ebiten

package main

import (
	"flag"
	"log"
	"os"

	"conway-life/internal/app"
	"conway-life/internal/render"
)

// Without the ebiten build tag the board is drawn in the terminal instead of
// a window. Build with `-tags ebiten` for the windowed version.
func main() {
	s, err := loadSettings(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	input := app.NewSignalInput()

	loop := &app.Loop{
		Life:        s.NewLife(),
		Display:     render.NewTerminal(os.Stdout),
		Input:       input,
		Palette:     s.Palette,
		Delay:       s.Delay,
		Generations: s.Generations,
		Logger:      log.New(os.Stderr, "", log.LstdFlags),
	}
	err = loop.Run()
	input.Stop()
	if err != nil {
		log.Fatal(err)
	}
}
