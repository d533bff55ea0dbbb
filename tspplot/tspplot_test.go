package tspplot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gentsp/tspga"
	"github.com/katalvlaran/gentsp/tspplot"
)

func squareTour() tspga.Chromosome {
	return tspga.Chromosome{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 0, Y: 1},
		{ID: 3, X: 1, Y: 1},
		{ID: 4, X: 1, Y: 0},
	}
}

func TestSaveTourPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tour.png")
	require.NoError(t, tspplot.SaveTourPNG(path, squareTour(), 4.0))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0), "empty PNG written")
}

func TestSaveTourPNG_EmptyTour(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tour.png")
	require.ErrorIs(t, tspplot.SaveTourPNG(path, nil, 0), tspplot.ErrEmptyTour)
	require.ErrorIs(t,
		tspplot.SaveTourPNG(path, squareTour()[:1], 0), tspplot.ErrEmptyTour)
}

func TestSaveConvergencePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conv.png")
	gens := []int{0, 3, 9, 27}
	best := []float64{10.5, 8.2, 6.1, 4.0}
	require.NoError(t, tspplot.SaveConvergencePNG(path, gens, best))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestSaveConvergencePNG_BadHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conv.png")
	require.ErrorIs(t, tspplot.SaveConvergencePNG(path, nil, nil), tspplot.ErrEmptyHistory)
	require.ErrorIs(t,
		tspplot.SaveConvergencePNG(path, []int{1, 2}, []float64{3}), tspplot.ErrEmptyHistory)
}
