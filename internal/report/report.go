// Package report serializes collision event logs into the fixed-width text
// report and the compact console listing.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vovakirdan/beltsim/internal/sim"
)

const (
	headerTitle = "ASTEROID COLLISION SIMULATION RESULTS"
	rule        = "===================================="
)

// Write renders the full collision report to w. Events are written in log
// order; the report is a pure function of the event log.
func Write(w io.Writer, events []sim.Event) error {
	var sb strings.Builder

	sb.WriteString(headerTitle + "\n")
	sb.WriteString(rule + "\n\n")
	fmt.Fprintf(&sb, "Total collisions detected: %d\n\n", len(events))
	sb.WriteString("Time (s) | Asteroid ID 1 | Asteroid ID 2\n")
	sb.WriteString("---------|--------------|--------------\n")

	for _, e := range events {
		fmt.Fprintf(&sb, "%.1f      | %12d | %12d\n", e.Time, e.IDLow, e.IDHigh)
	}

	sb.WriteString("\n" + rule + "\n")
	sb.WriteString("End of collision report")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("report: write failed: %w", err)
	}
	return nil
}

// WriteFile renders the full collision report to the file at path,
// creating or truncating it.
func WriteFile(path string, events []sim.Event) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: cannot create %s: %w", path, err)
	}

	if err := Write(f, events); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("report: cannot close %s: %w", path, err)
	}
	return nil
}

// WriteListing renders the compact console listing used after a run.
func WriteListing(w io.Writer, events []sim.Event) {
	fmt.Fprintln(w, "Time    Asteroid IDs")
	fmt.Fprintln(w, strings.Repeat("-", 20))
	for _, e := range events {
		fmt.Fprintf(w, "%.1f     %d %d\n", e.Time, e.IDLow, e.IDHigh)
	}
}
