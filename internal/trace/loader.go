package trace

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Column names required in every dump. The exports carry more columns
// ("No.", "Protocol", "Length", "Info"); those are ignored.
const (
	colTime        = "Time"
	colSource      = "Source"
	colDestination = "Destination"
)

// LoadDir loads every CSV dump in dir. A file qualifies when its name
// contains ".csv". It returns an error when the directory holds no matching
// files; a malformed file aborts the whole load rather than being skipped.
func LoadDir(dir string) ([]Trace, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read data directory: %w", err)
	}

	var traces []Trace
	for _, e := range entries {
		if e.IsDir() || !strings.Contains(e.Name(), ".csv") {
			continue
		}
		t, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", e.Name(), err)
		}
		traces = append(traces, t)
	}

	if len(traces) == 0 {
		return nil, fmt.Errorf("no .csv files were found in %s", dir)
	}
	return traces, nil
}

// LoadFile parses a single dump. The trace name is the filename stem, the
// text before the first dot.
func LoadFile(path string) (Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return Trace{}, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return Trace{}, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colTime, colSource, colDestination} {
		if _, ok := cols[required]; !ok {
			return Trace{}, fmt.Errorf("missing column %q", required)
		}
	}

	rows, err := r.ReadAll()
	if err != nil {
		return Trace{}, fmt.Errorf("read rows: %w", err)
	}

	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		ts, err := strconv.ParseFloat(row[cols[colTime]], 64)
		if err != nil {
			return Trace{}, fmt.Errorf("row %d: parse time: %w", i+1, err)
		}
		records = append(records, Record{
			Time:        ts,
			Source:      row[cols[colSource]],
			Destination: row[cols[colDestination]],
		})
	}

	return Trace{Name: stem(filepath.Base(path)), Records: records}, nil
}

// stem returns the part of a filename before the first dot.
func stem(name string) string {
	if i := strings.Index(name, "."); i >= 0 {
		return name[:i]
	}
	return name
}
