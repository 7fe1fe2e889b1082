package app

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"

	"conway-life/internal/core"
	"conway-life/internal/life"
	"conway-life/internal/patterns"
	"conway-life/internal/render"
)

// Config represents the startup parameters for the application.
type Config struct {
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Scale       int           `json:"scale"`
	Delay       time.Duration `json:"delay"`
	Edge        string        `json:"edge"`
	Layout      string        `json:"layout"`
	Alive       string        `json:"alive"`
	Background  string        `json:"background"`
	Generations int           `json:"generations"`
}

// NewConfig returns a Config populated with sensible defaults: a 100x100
// board shown at 3x in a 300x300 window, one generation every 200ms.
func NewConfig() *Config {
	return &Config{
		Width:      100,
		Height:     100,
		Scale:      3,
		Delay:      core.DefaultDelay,
		Edge:       life.DeadBorder.String(),
		Layout:     "classic",
		Alive:      render.FormatColor(render.DefaultAlive),
		Background: render.FormatColor(render.DefaultBackground),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "pause between generations")
	fs.StringVar(&c.Edge, "edge", c.Edge, "boundary policy: dead, wrap or clamp")
	fs.StringVar(&c.Layout, "layout", c.Layout, "initial layout: classic or a pattern name")
	fs.StringVar(&c.Alive, "alive", c.Alive, "alive cell colour (#RRGGBB)")
	fs.StringVar(&c.Background, "background", c.Background, "background colour (#RRGGBB)")
	fs.IntVar(&c.Generations, "gens", c.Generations, "stop after this many generations (0 runs until closed)")
}

// LoadFile overlays the JSON file at path onto c. Keys missing from the file
// keep their current values; unknown keys are rejected. Delay accepts a Go
// duration string.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", path)
	}
	raw := struct {
		*Config
		Delay *string `json:"delay"`
	}{Config: c}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err = dec.Decode(&raw); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", path)
	}
	if raw.Delay != nil {
		d, err := time.ParseDuration(*raw.Delay)
		if err != nil {
			return errors.Wrapf(err, "[LoadFile] bad delay in file: %+v", path)
		}
		c.Delay = d
	}
	return nil
}

// Settings is a validated Config with every field resolved to its runtime
// type.
type Settings struct {
	Size        core.Size
	Scale       int
	Delay       time.Duration
	Edge        life.Edge
	Layout      []patterns.Placement
	Palette     render.Palette
	Generations int
}

// Resolve validates the configuration.
func (c *Config) Resolve() (Settings, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return Settings{}, errors.Errorf("grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return Settings{}, errors.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.Delay <= 0 {
		return Settings{}, errors.Errorf("delay must be positive, got %v", c.Delay)
	}
	if c.Generations < 0 {
		return Settings{}, errors.Errorf("gens must not be negative, got %d", c.Generations)
	}
	edge, err := life.ParseEdge(c.Edge)
	if err != nil {
		return Settings{}, err
	}
	size := core.Size{W: c.Width, H: c.Height}
	layout, err := patterns.LayoutFor(c.Layout, size)
	if err != nil {
		return Settings{}, err
	}
	alive, err := render.ParseColor(c.Alive)
	if err != nil {
		return Settings{}, errors.Wrap(err, "alive")
	}
	background, err := render.ParseColor(c.Background)
	if err != nil {
		return Settings{}, errors.Wrap(err, "background")
	}
	if alive == background {
		return Settings{}, errors.Errorf("alive and background colours are both %s", render.FormatColor(alive))
	}
	return Settings{
		Size:        size,
		Scale:       c.Scale,
		Delay:       c.Delay,
		Edge:        edge,
		Layout:      layout,
		Palette:     render.Palette{Alive: alive, Background: background},
		Generations: c.Generations,
	}, nil
}

// NewLife builds and seeds the board described by s.
func (s Settings) NewLife() *life.Life {
	l := life.New(s.Size.W, s.Size.H, s.Edge)
	l.Seed(s.Layout)
	return l
}
