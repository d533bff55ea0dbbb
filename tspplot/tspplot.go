// Package tspplot renders run results as PNG charts: the best tour over
// the city plane, and the convergence of best fitness per generation.
// It is the only package in the module that draws anything; the engine
// itself stays I/O-free.
package tspplot

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/gentsp/tspga"
)

// ErrEmptyTour is returned when there is nothing to draw.
var ErrEmptyTour = errors.New("tspplot: empty tour")

// ErrEmptyHistory is returned when no improvement events were recorded.
var ErrEmptyHistory = errors.New("tspplot: empty history")

// canvas size shared by both charts.
const (
	chartWidth  = 6 * vg.Inch
	chartHeight = 4 * vg.Inch
)

// SaveTourPNG draws tour as a closed polyline with one marker and one id
// label per city, titles it with the stabilized length, and saves a PNG
// at path.
func SaveTourPNG(path string, tour tspga.Chromosome, fitness float64) error {
	if len(tour) < 2 {
		return ErrEmptyTour
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Distance: %.3f", fitness)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	// Closed polyline: repeat the first city so the wrap-around edge shows.
	pts := make(plotter.XYs, len(tour)+1)
	var i int
	for i = 0; i < len(tour); i++ {
		pts[i].X = tour[i].X
		pts[i].Y = tour[i].Y
	}
	pts[len(tour)] = pts[0]

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("tspplot: %w", err)
	}
	scatter, err := plotter.NewScatter(pts[:len(tour)])
	if err != nil {
		return fmt.Errorf("tspplot: %w", err)
	}

	labels, err := plotter.NewLabels(cityLabels(tour))
	if err != nil {
		return fmt.Errorf("tspplot: %w", err)
	}

	p.Add(line, scatter, labels)

	if err = p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("tspplot: %w", err)
	}

	return nil
}

// SaveConvergencePNG draws best fitness against generation index and saves
// a PNG at path. gens and best must be aligned improvement samples (as
// collected from ProgressEvents).
func SaveConvergencePNG(path string, gens []int, best []float64) error {
	if len(gens) == 0 || len(gens) != len(best) {
		return ErrEmptyHistory
	}

	p := plot.New()
	p.Title.Text = "Best tour length by generation"
	p.X.Label.Text = "generation"
	p.Y.Label.Text = "best length"

	pts := make(plotter.XYs, len(gens))
	var i int
	for i = 0; i < len(gens); i++ {
		pts[i].X = float64(gens[i])
		pts[i].Y = best[i]
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("tspplot: %w", err)
	}
	p.Add(line)
	p.Legend.Add("best", line)
	p.Legend.Top = true

	if err = p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("tspplot: %w", err)
	}

	return nil
}

// cityLabels builds the id annotations drawn next to each city marker.
func cityLabels(tour tspga.Chromosome) plotter.XYLabels {
	xys := make(plotter.XYs, len(tour))
	names := make([]string, len(tour))
	var i int
	for i = 0; i < len(tour); i++ {
		xys[i].X = tour[i].X
		xys[i].Y = tour[i].Y
		names[i] = fmt.Sprintf("%d", tour[i].ID)
	}

	return plotter.XYLabels{XYs: xys, Labels: names}
}
