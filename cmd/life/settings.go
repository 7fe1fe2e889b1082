package main

import (
	"flag"

	"conway-life/internal/app"
)

// loadSettings applies the optional -config file, then the remaining flags,
// and validates the result. Flags given on the command line win over the file.
func loadSettings(fs *flag.FlagSet, args []string) (app.Settings, error) {
	cfg := app.NewConfig()
	cfg.Bind(fs)
	path := fs.String("config", "", "JSON config file applied before flags")
	if err := fs.Parse(args); err != nil {
		return app.Settings{}, err
	}
	if *path != "" {
		set := map[string]string{}
		fs.Visit(func(f *flag.Flag) { set[f.Name] = f.Value.String() })
		if err := cfg.LoadFile(*path); err != nil {
			return app.Settings{}, err
		}
		// Re-apply explicit flags so they override the file.
		for name, value := range set {
			if name == "config" {
				continue
			}
			if err := fs.Set(name, value); err != nil {
				return app.Settings{}, err
			}
		}
	}
	return cfg.Resolve()
}
