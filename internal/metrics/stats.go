package metrics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Stats summarises one derived series for the run report and the optional
// database record. All values are milliseconds.
type Stats struct {
	Samples  int
	MinMs    float64
	MaxMs    float64
	MeanMs   float64
	StdDevMs float64
	P50Ms    float64
	P95Ms    float64
}

// Summarise computes summary statistics over a series' values. An empty
// series yields the zero Stats.
func Summarise(ys []float64) Stats {
	if len(ys) == 0 {
		return Stats{}
	}

	sorted := make([]float64, len(ys))
	copy(sorted, ys)
	sort.Float64s(sorted)

	mean, stddev := stat.MeanStdDev(sorted, nil)
	if math.IsNaN(stddev) {
		// Sample standard deviation is undefined for a single value.
		stddev = 0
	}

	return Stats{
		Samples:  len(sorted),
		MinMs:    sorted[0],
		MaxMs:    sorted[len(sorted)-1],
		MeanMs:   mean,
		StdDevMs: stddev,
		P50Ms:    stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P95Ms:    stat.Quantile(0.95, stat.Empirical, sorted, nil),
	}
}
