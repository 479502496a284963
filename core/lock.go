package core

// DisplayNotifier is invoked exactly once per actual lock-state
// transition, never once per cycle. The display subsystem registers
// itself here; a nil notifier is allowed.
type DisplayNotifier func(locked bool)

// Locked reports the current lock state.
func (p *Pipeline) Locked() bool {
	return p.locked
}

// setLocked updates the lock gate. Calls with an unchanged value are
// no-ops; on an actual change the display is notified before the new
// value is committed.
//
// The lock line feeds this with its raw, not debounced, value once per
// cycle. Lock toggling deliberately has no dwell-time protection.
func (p *Pipeline) setLocked(locked bool) {
	if locked == p.locked {
		return
	}
	if p.notify != nil {
		p.notify(locked)
	}
	p.locked = locked
}
