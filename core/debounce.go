package core

// ButtonHistory tracks the debounce state of a single input line.
type ButtonHistory struct {
	// State is the last accepted (stable) value of the line.
	State bool

	// Tick is the cycle on which the line entered State.
	Tick Tick
}

// debounce filters one raw sample against the line's history and
// returns the value the rest of the pipeline should use. Each line is
// debounced independently; there is no cross-line coordination.
//
// A changed sample is only committed once the line has been out of
// transition for DebounceInterval ticks. While a transition is being
// rejected the function returns !raw, which equals the previous stable
// state here because raw != history.State on this path. Callers rely
// on that exact behavior.
//
// Histories start zeroed, so the elapsed check runs against tick 0 for
// the very first transition as well; the tick source must share that
// epoch.
func debounce(raw bool, history *ButtonHistory, now Tick) bool {
	if raw == history.State {
		return raw
	}

	elapsed := now - history.Tick
	if elapsed < DebounceInterval {
		return !raw
	}

	history.State = raw
	history.Tick = now
	return raw
}
