package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"conway-life/internal/census"
	"conway-life/internal/patterns"
)

func main() {
	gens := flag.Int("gens", 64, fmt.Sprintf("generation budget per pattern (at most %d)", census.MaxGenerations))
	workers := flag.Int("workers", runtime.NumCPU(), "patterns analysed in parallel")
	only := flag.String("patterns", "", "comma-separated pattern names (default: whole catalogue)")
	flag.Parse()

	names := patterns.Names()
	if *only != "" {
		names = strings.Split(*only, ",")
	}
	reports, err := run(names, *gens, *workers)
	if err != nil {
		log.Fatal(err)
	}
	printReports(os.Stdout, reports)
}

// run analyses each named pattern on its own goroutine, at most workers at a
// time. Reports come back in the order of names.
func run(names []string, gens, workers int) ([]census.Report, error) {
	if gens <= 0 || gens > census.MaxGenerations {
		return nil, errors.Errorf("gens must be between 1 and %d, got %d", census.MaxGenerations, gens)
	}
	if workers <= 0 {
		workers = 1
	}
	selected := make([]patterns.Pattern, len(names))
	for i, name := range names {
		p, ok := patterns.Lookup(strings.TrimSpace(name))
		if !ok {
			return nil, errors.Errorf("unknown pattern %q (want one of %v)", name, patterns.Names())
		}
		selected[i] = p
	}

	reports := make([]census.Report, len(selected))
	var eg errgroup.Group
	eg.SetLimit(workers)
	for i, p := range selected {
		i, p := i, p
		eg.Go(func() error {
			reports[i] = census.Analyze(p, gens)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func printReports(w io.Writer, reports []census.Report) {
	fmt.Fprintf(w, "%-16s %-11s %6s %8s %5s\n", "pattern", "fate", "period", "shift", "cells")
	for _, r := range reports {
		period, shift := "-", "-"
		if r.Period > 0 {
			period = fmt.Sprint(r.Period)
		}
		if r.Fate == census.Spaceship {
			shift = fmt.Sprintf("%+d,%+d", r.Shift.X, r.Shift.Y)
		}
		fmt.Fprintf(w, "%-16s %-11s %6s %8s %5d\n", r.Name, r.Fate, period, shift, r.Population)
	}
}
