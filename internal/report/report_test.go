package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/beltsim/internal/sim"
)

func TestWriteFormat(t *testing.T) {
	events := []sim.Event{
		{Time: 4.0, IDLow: 1, IDHigh: 2},
		{Time: 4.5, IDLow: 3, IDHigh: 12},
	}

	var sb strings.Builder
	if err := Write(&sb, events); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	out := sb.String()

	if !strings.HasPrefix(out, "ASTEROID COLLISION SIMULATION RESULTS\n") {
		t.Error("Report missing title line")
	}
	if !strings.Contains(out, "Total collisions detected: 2\n") {
		t.Error("Report missing collision count")
	}
	if !strings.Contains(out, "Time (s) | Asteroid ID 1 | Asteroid ID 2\n") {
		t.Error("Report missing column header")
	}
	if !strings.Contains(out, "4.0      |            1 |            2\n") {
		t.Errorf("Row not formatted as fixed-width table:\n%s", out)
	}
	if !strings.Contains(out, "4.5      |            3 |           12\n") {
		t.Errorf("Row with two-digit ID misaligned:\n%s", out)
	}
	if !strings.HasSuffix(out, "End of collision report") {
		t.Error("Report missing footer")
	}
}

func TestWriteEmpty(t *testing.T) {
	var sb strings.Builder
	if err := Write(&sb, nil); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	out := sb.String()
	if !strings.Contains(out, "Total collisions detected: 0\n") {
		t.Error("Empty report should state zero collisions")
	}
	if !strings.HasSuffix(out, "End of collision report") {
		t.Error("Empty report missing footer")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collisions.txt")
	events := []sim.Event{{Time: 1.0, IDLow: 1, IDHigh: 2}}

	if err := WriteFile(path, events); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "1.0      |            1 |            2") {
		t.Error("File content missing event row")
	}
}

func TestWriteListing(t *testing.T) {
	events := []sim.Event{
		{Time: 2.5, IDLow: 4, IDHigh: 9},
	}

	var sb strings.Builder
	WriteListing(&sb, events)
	out := sb.String()

	if !strings.Contains(out, "Time    Asteroid IDs\n") {
		t.Error("Listing missing header")
	}
	if !strings.Contains(out, "2.5     4 9\n") {
		t.Errorf("Listing row malformed:\n%s", out)
	}
}
