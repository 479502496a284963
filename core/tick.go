package core

// Tick is a monotonic time value in system timer ticks.
// The platform supplies the tick source; core code only compares
// and subtracts ticks, it never converts them back to wall time.
type Tick uint64

// Timebase for tick conversions
const (
	TickFreq = 1000000 // 1MHz default timebase (one tick per microsecond)
)

// TickSource returns the current monotonic tick count.
// Targets install a hardware-backed source; tests install a fake.
type TickSource func() Tick

// TicksFromMS converts milliseconds to timer ticks, rounding up so a
// dwell-time threshold never comes out shorter than requested.
func TicksFromMS(ms uint32) Tick {
	return Tick((uint64(ms)*TickFreq + 999) / 1000)
}

// TicksFromUS converts microseconds to timer ticks.
func TicksFromUS(us uint32) Tick {
	return Tick(uint64(us) * TickFreq / 1000000)
}

// DebounceInterval is the minimum dwell time before a button state
// transition is accepted (5ms expressed in ticks).
const DebounceInterval = Tick(5 * TickFreq / 1000)
