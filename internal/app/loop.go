package app

import (
	"io"
	"log"
	"time"

	"github.com/pkg/errors"

	"conway-life/internal/life"
	"conway-life/internal/render"
)

// Display presents a finished generation, one 0xRRGGBB value per cell.
type Display interface {
	Present(pixels []uint32, width, height int) error
}

// Input reports whether the host wants the run to continue.
type Input interface {
	IsOpen() bool
	ExitRequested() bool
}

// Loop drives a board sequentially: step, present, sleep, until the input
// asks it to stop.
type Loop struct {
	Life    *life.Life
	Display Display
	Input   Input
	Palette render.Palette
	Delay   time.Duration

	// Generations stops the loop after that many steps when positive.
	Generations int

	Logger *log.Logger
	Sleep  func(time.Duration)

	pixels []uint32
}

// Tick computes one generation and hands it to the display.
func (l *Loop) Tick() error {
	l.Life.Step()
	size := l.Life.Size()
	l.pixels = render.Pixels(l.pixels, l.Life.Grid().Cells(), l.Palette)
	if err := l.Display.Present(l.pixels, size.W, size.H); err != nil {
		return errors.Wrapf(err, "present generation %d", l.Life.Generation())
	}
	return nil
}

// Run ticks until the input closes, an exit is requested, the generation
// limit is reached, or the display fails.
func (l *Loop) Run() error {
	logger := l.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	sleep := l.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	start := l.Life.Generation()
	for l.Input.IsOpen() && !l.Input.ExitRequested() {
		if l.Generations > 0 && l.Life.Generation()-start >= l.Generations {
			logger.Printf("reached generation limit %d", l.Generations)
			break
		}
		if err := l.Tick(); err != nil {
			return err
		}
		sleep(l.Delay)
	}
	logger.Printf("stopped at generation %d, population %d", l.Life.Generation(), l.Life.Population())
	return nil
}
