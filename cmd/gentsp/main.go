// Command gentsp evolves a short closed tour over a TSP-format coordinate
// file and reports it as text and, optionally, PNG charts.
//
// Usage:
//
//	gentsp [flags] <input.tsp>
//
// The run prints one line per improvement of the best tour, then the final
// listing. Interrupting the run (Ctrl-C) stops it cleanly: the best tour
// found so far is still reported.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/gentsp/tspfile"
	"github.com/katalvlaran/gentsp/tspga"
	"github.com/katalvlaran/gentsp/tspplot"
)

func main() {
	var (
		pop        = flag.Int("pop", tspga.DefaultPopulationSize, "initial population size")
		genSize    = flag.Int("gen-size", tspga.DefaultGenerationSize, "chromosomes per generation")
		rate       = flag.Float64("crossover-rate", tspga.DefaultCrossoverRate, "crossover probability (mutation otherwise)")
		stagnation = flag.Int("stagnation", tspga.DefaultStagnationLimit, "generations without improvement before stopping")
		tournament = flag.Int("tournament", tspga.DefaultTournamentSize, "tournament window size")
		seed       = flag.Int64("seed", 0, "random seed (0 = fixed default stream)")
		selection  = flag.String("selection", "tournament", "parent selection: tournament|roulette|rank")
		crossover  = flag.String("crossover", "segment", "crossover operator: segment|cycle")
		target     = flag.Float64("target", 0, "stop when best length reaches this value (0 = off)")
		twoOpt     = flag.Bool("two-opt", false, "2-opt polish of the final tour")
		plotPath   = flag.String("plot", "", "write the best tour as a PNG to this path")
		histPath   = flag.String("history", "", "write the convergence chart as a PNG to this path")
		outPath    = flag.String("out", "", "write the final tour listing to this file instead of stdout")
		quiet      = flag.Bool("quiet", false, "suppress per-improvement progress lines")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <input.tsp>\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), runConfig{
		pop: *pop, genSize: *genSize, rate: *rate, stagnation: *stagnation,
		tournament: *tournament, seed: *seed, selection: *selection,
		crossover: *crossover, target: *target, twoOpt: *twoOpt,
		plotPath: *plotPath, histPath: *histPath, outPath: *outPath, quiet: *quiet,
	}); err != nil {
		fmt.Fprintln(os.Stderr, "gentsp:", err)
		os.Exit(1)
	}
}

type runConfig struct {
	pop, genSize, stagnation, tournament int
	rate, target                         float64
	seed                                 int64
	selection, crossover                 string
	twoOpt, quiet                        bool
	plotPath, histPath, outPath          string
}

func run(path string, cfg runConfig) error {
	inst, err := tspfile.ParseFile(path)
	if err != nil {
		return err
	}
	fmt.Printf("found %d entries\n", inst.Dimension)

	opts, err := buildOptions(cfg)
	if err != nil {
		return err
	}

	// Improvement history feeds both the progress lines and the chart.
	var (
		gens []int
		best []float64
	)
	opts.OnImprovement = func(ev tspga.ProgressEvent) {
		gens = append(gens, ev.Generation)
		best = append(best, ev.Fitness)
		if !cfg.quiet {
			fmt.Printf("best path %d %.8f\n", ev.Generation, ev.Fitness)
		}
	}

	// SIGINT/SIGTERM cancel the context; Evolve returns the best-so-far
	// tour with ReasonCanceled and no state is left to corrupt.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := tspga.Evolve(ctx, inst.Cities, opts)
	if err != nil {
		return err
	}
	if res.Reason == tspga.ReasonCanceled {
		fmt.Println("\ninterrupted; reporting best tour so far")
	}
	fmt.Printf("stopped after %d generations (%s)\n", res.Generations, res.Reason)

	if err = writeListing(cfg.outPath, res); err != nil {
		return err
	}
	if cfg.plotPath != "" {
		if err = tspplot.SaveTourPNG(cfg.plotPath, res.Best, res.Fitness); err != nil {
			return err
		}
	}
	if cfg.histPath != "" {
		if err = tspplot.SaveConvergencePNG(cfg.histPath, gens, best); err != nil {
			return err
		}
	}

	return nil
}

// buildOptions maps CLI flags onto engine options.
func buildOptions(cfg runConfig) (tspga.Options, error) {
	opts := tspga.DefaultOptions()
	opts.PopulationSize = cfg.pop
	opts.GenerationSize = cfg.genSize
	opts.CrossoverRate = cfg.rate
	opts.StagnationLimit = cfg.stagnation
	opts.TournamentSize = cfg.tournament
	opts.Seed = cfg.seed
	opts.TargetFitness = cfg.target
	opts.TwoOptPolish = cfg.twoOpt

	switch cfg.selection {
	case "tournament":
		opts.Selection = tspga.SelectTournament
	case "roulette":
		opts.Selection = tspga.SelectRoulette
	case "rank":
		opts.Selection = tspga.SelectRank
	default:
		return tspga.Options{}, fmt.Errorf("unknown selection strategy %q", cfg.selection)
	}

	switch cfg.crossover {
	case "segment":
		opts.Crossover = tspga.CrossSegment
	case "cycle":
		opts.Crossover = tspga.CrossCycle
	default:
		return tspga.Options{}, fmt.Errorf("unknown crossover operator %q", cfg.crossover)
	}

	return opts, nil
}

// writeListing sends the final tour to stdout or the configured file.
func writeListing(path string, res tspga.Result) error {
	if path == "" {
		return tspfile.WriteTour(os.Stdout, res)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = tspfile.WriteTour(f, res); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
