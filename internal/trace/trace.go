// Package trace loads CSV dumps of UDP traffic between the arm and its
// controller and splits them into the two link directions.
package trace

// Record is a single row of a UDP dump: a packet timestamp in seconds plus
// the source and destination addresses. Extra columns from the capture
// export (protocol, length, info) are dropped at load time.
type Record struct {
	Time        float64
	Source      string
	Destination string
}

// Trace holds one loaded dump. Name is the filename stem and becomes the
// figure title and output basename.
type Trace struct {
	Name    string
	Records []Record
}

// Direction labels for DirectionalTrace.
const (
	DirectionStatus  = "status"  // frames sent by the arm
	DirectionCommand = "command" // frames sent by the controller
)

// DirectionalTrace is the subset of a Trace flowing one way across the link.
// Only the packet timestamps survive the split.
type DirectionalTrace struct {
	Direction string
	Times     []float64
}
