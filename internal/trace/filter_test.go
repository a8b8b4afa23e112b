package trace

import "testing"

func TestDefaultEndpoints(t *testing.T) {
	ep := DefaultEndpoints()
	if ep.Device != "192.168.38.1" {
		t.Errorf("got device %q, want 192.168.38.1", ep.Device)
	}
	if ep.Controller != "192.168.38.11" {
		t.Errorf("got controller %q, want 192.168.38.11", ep.Controller)
	}
}

func TestSplit(t *testing.T) {
	ep := DefaultEndpoints()

	tr := Trace{Name: "traj"}
	// Five command rows (controller -> arm), three status rows (arm ->
	// controller) and two unrelated rows that must be dropped.
	for i := 0; i < 5; i++ {
		tr.Records = append(tr.Records, Record{
			Time: float64(i), Source: ep.Controller, Destination: ep.Device,
		})
	}
	for i := 0; i < 3; i++ {
		tr.Records = append(tr.Records, Record{
			Time: float64(10 + i), Source: ep.Device, Destination: ep.Controller,
		})
	}
	tr.Records = append(tr.Records,
		Record{Time: 20, Source: "10.0.0.1", Destination: ep.Device},
		Record{Time: 21, Source: ep.Device, Destination: "10.0.0.1"},
	)

	status, command := Split(tr, ep)

	if len(command.Times) != 5 {
		t.Errorf("got %d command rows, want 5", len(command.Times))
	}
	if len(status.Times) != 3 {
		t.Errorf("got %d status rows, want 3", len(status.Times))
	}
	if status.Direction != DirectionStatus || command.Direction != DirectionCommand {
		t.Errorf("unexpected directions %q / %q", status.Direction, command.Direction)
	}
}

func TestSplitCustomEndpoints(t *testing.T) {
	ep := Endpoints{Device: "172.16.0.2", Controller: "172.16.0.3"}
	tr := Trace{Records: []Record{
		{Time: 0.5, Source: "172.16.0.2", Destination: "172.16.0.3"},
		{Time: 0.6, Source: "192.168.38.1", Destination: "192.168.38.11"},
	}}

	status, command := Split(tr, ep)
	if len(status.Times) != 1 || len(command.Times) != 0 {
		t.Errorf("got %d status / %d command rows, want 1 / 0",
			len(status.Times), len(command.Times))
	}
}

func TestSplitEmptyTrace(t *testing.T) {
	status, command := Split(Trace{}, DefaultEndpoints())
	if len(status.Times) != 0 || len(command.Times) != 0 {
		t.Error("empty trace should split into empty directions")
	}
}
