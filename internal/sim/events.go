package sim

// EventsByTime indexes an event log by sampled time for frame lookup during
// playback. Events within one timestamp keep their log order.
func EventsByTime(events []Event) map[float64][]Event {
	byTime := make(map[float64][]Event)
	for _, e := range events {
		byTime[e.Time] = append(byTime[e.Time], e)
	}
	return byTime
}

// CollidingIDs returns the set of body IDs involved in any of the given
// events. Used by the renderer to highlight bodies in the current frame.
func CollidingIDs(events []Event) map[int]bool {
	ids := make(map[int]bool)
	for _, e := range events {
		ids[e.IDLow] = true
		ids[e.IDHigh] = true
	}
	return ids
}
