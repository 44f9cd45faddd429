package sim

import (
	"math"

	"github.com/vovakirdan/beltsim/internal/body"
)

// Event records one detected overlap: the pair (IDLow, IDHigh) overlapped at
// the sampled time. IDLow < IDHigh always. The same pair produces one event
// per sample it is detected at; overlapping across several consecutive
// samples yields several events.
type Event struct {
	Time   float64
	IDLow  int
	IDHigh int
}

// SampleTimes returns the sampled time domain for the given duration and
// step: t_i = i*step for i in [0, n) with n = ceil((duration+step)/step),
// each sample rounded to one decimal place. The domain covers [0, duration]
// and deliberately steps one sample past duration. The rounded values are
// the timestamps consumers key events by.
//
// Returns nil if duration or step is not positive.
func SampleTimes(duration, step float64) []float64 {
	if duration <= 0 || step <= 0 {
		return nil
	}

	n := int(math.Ceil((duration + step) / step))
	times := make([]float64, n)
	for i := range times {
		times[i] = roundTime(float64(i) * step)
	}
	return times
}

// roundTime quantizes a sample time to one decimal place. Ties round away
// from zero.
func roundTime(t float64) float64 {
	return math.Round(t*10) / 10
}

// Simulate runs the full simulation and returns the ordered collision event
// log. For every sampled time it evaluates each body's instantaneous state,
// then tests every unordered pair of distinct bodies exactly once, enumerated
// over IDs sorted ascending. Events are emitted in detection order: ascending
// time, then ascending (IDLow, IDHigh).
//
// The computation is sequential and fully determined by its inputs.
func Simulate(bodies body.Set, duration, step float64) []Event {
	ids := bodies.IDs()
	var events []Event

	states := make([]State, len(ids))
	for _, t := range SampleTimes(duration, step) {
		for i, id := range ids {
			states[i] = At(bodies[id], t)
		}

		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				if Overlaps(states[i], states[j]) {
					events = append(events, Event{Time: t, IDLow: ids[i], IDHigh: ids[j]})
				}
			}
		}
	}

	return events
}
