// Package metrics derives timing series from directional packet traces:
// per-direction inter-frame jitter and the command-to-status delay.
package metrics

import (
	"gonum.org/v1/gonum/floats"
)

// Series is an ordered set of points ready for plotting. X is trajectory
// time in seconds, Y the derived value in milliseconds.
type Series struct {
	X []float64
	Y []float64
}

// msPerSecond scales raw second-differences to millisecond display values.
const msPerSecond = 1000

// Align truncates the longer of the two time series to the length of the
// shorter, keeping the leading prefix. The command series is usually the
// shorter one because the controller is terminated before the arm is power
// cycled, though not always.
func Align(status, command []float64) (s, c []float64) {
	n := len(status)
	if len(command) < n {
		n = len(command)
	}
	return status[:n], command[:n]
}

// Jitter returns the successive differences of a timestamp series in
// milliseconds. The difference at index 0 would wrap around the start of the
// trajectory, so the series begins at the second sample and has length n-1.
func Jitter(times []float64) Series {
	if len(times) < 2 {
		return Series{}
	}
	y := make([]float64, len(times)-1)
	for i := 1; i < len(times); i++ {
		y[i-1] = times[i] - times[i-1]
	}
	floats.Scale(msPerSecond, y)
	return Series{X: times[1:], Y: y}
}

// Delay returns the element-wise command minus status timestamps in
// milliseconds, plotted against command time. Both inputs must already be
// aligned to the same length (see Align).
func Delay(status, command []float64) Series {
	y := make([]float64, len(command))
	floats.SubTo(y, command, status)
	floats.Scale(msPerSecond, y)
	return Series{X: command, Y: y}
}
