package trace

// Default endpoint addresses of the recorded link. The arm sits at .1 and
// the controller at .11 on the control subnet.
const (
	DefaultDeviceAddr     = "192.168.38.1"
	DefaultControllerAddr = "192.168.38.11"
)

// Endpoints names the two sides of the link. Status frames flow from the
// device, command frames towards it.
type Endpoints struct {
	Device     string
	Controller string
}

// DefaultEndpoints returns the addresses the trajectories were recorded with.
func DefaultEndpoints() Endpoints {
	return Endpoints{Device: DefaultDeviceAddr, Controller: DefaultControllerAddr}
}

// Split partitions a trace into its status and command directions. Matching
// is exact string equality on both addresses; rows matching neither pairing
// (unrelated traffic on the capture) are dropped.
func Split(t Trace, ep Endpoints) (status, command DirectionalTrace) {
	status.Direction = DirectionStatus
	command.Direction = DirectionCommand

	for _, r := range t.Records {
		switch {
		case r.Source == ep.Device && r.Destination == ep.Controller:
			status.Times = append(status.Times, r.Time)
		case r.Source == ep.Controller && r.Destination == ep.Device:
			command.Times = append(command.Times, r.Time)
		}
	}
	return status, command
}
