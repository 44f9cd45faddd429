package body

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrDuplicateID is returned by strict loads when two rows share a body ID.
var ErrDuplicateID = errors.New("duplicate body id")

// Options control loader behavior.
type Options struct {
	// Strict rejects duplicate IDs instead of letting the later row
	// silently replace the earlier one.
	Strict bool
}

// Load reads a body set from the file at path.
func Load(path string, opts Options) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("body: cannot open %s: %w", path, err)
	}
	defer f.Close()

	set, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("body: %s: %w", path, err)
	}
	return set, nil
}

// Parse reads whitespace-separated body rows from r.
//
// Format detection happens once per input:
//   - If any token on the first line does not parse as a number, the line
//     is treated as a header and skipped.
//   - If the first data line has at least 6 columns and its first column is
//     an unsigned integer, rows carry explicit IDs (id x y radius vx vy).
//     Otherwise rows are (x y radius vx vy) and IDs are assigned 1, 2, 3...
//     in file order.
//
// Rows with fewer than 5 columns are skipped. Rows with non-numeric fields
// are a parse error.
func Parse(r io.Reader, opts Options) (Set, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	hasHeader := false
	if len(lines) > 0 && !allNumeric(strings.Fields(lines[0])) {
		hasHeader = true
	}

	// The ID-column heuristic looks at the first data line only.
	firstData := 0
	if hasHeader {
		firstData = 1
	}
	hasIDs := false
	if firstData < len(lines) {
		fields := strings.Fields(lines[firstData])
		if len(fields) >= 6 {
			if _, err := strconv.ParseUint(fields[0], 10, 64); err == nil {
				hasIDs = true
			}
		}
	}

	set := make(Set)
	nextID := 1
	for i := firstData; i < len(lines); i++ {
		fields := strings.Fields(lines[i])
		if len(fields) < 5 {
			continue
		}

		var b Body
		var err error
		if hasIDs {
			if len(fields) < 6 {
				return nil, fmt.Errorf("line %d: expected 6 columns, got %d", i+1, len(fields))
			}
			b, err = parseRow(fields[0], fields[1:6])
		} else {
			b, err = parseRow("", fields[:5])
			b.ID = nextID
			nextID++
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		if _, exists := set[b.ID]; exists && opts.Strict {
			return nil, fmt.Errorf("line %d: %w %d", i+1, ErrDuplicateID, b.ID)
		}
		// Last write wins when not strict.
		set[b.ID] = b
	}

	return set, nil
}

// parseRow builds a Body from one row. idField is empty when IDs are
// auto-assigned; values must hold exactly x, y, radius, vx, vy.
func parseRow(idField string, values []string) (Body, error) {
	var b Body

	if idField != "" {
		id, err := strconv.Atoi(idField)
		if err != nil {
			return b, fmt.Errorf("invalid id %q: %w", idField, err)
		}
		b.ID = id
	}

	names := [5]string{"x", "y", "radius", "vx", "vy"}
	var parsed [5]float64
	for i, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return b, fmt.Errorf("invalid %s %q: %w", names[i], v, err)
		}
		parsed[i] = f
	}

	b.X, b.Y, b.Radius, b.VX, b.VY = parsed[0], parsed[1], parsed[2], parsed[3], parsed[4]
	return b, nil
}

// allNumeric reports whether every token parses as a float.
// An empty token list counts as numeric (a blank first line is not a header).
func allNumeric(tokens []string) bool {
	for _, tok := range tokens {
		if _, err := strconv.ParseFloat(tok, 64); err != nil {
			return false
		}
	}
	return true
}
