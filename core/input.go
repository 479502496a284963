// Input state pipeline: acquisition, debouncing, SOCD resolution and
// output-mode mapping for the controller's physical lines.
package core

// Pipeline owns all per-process input state: the signal source, the
// single-slot injection queue, per-line debounce histories, the lock
// flag and the touchpad snapshot. Instances are independent, so tests
// can run several pipelines side by side.
type Pipeline struct {
	cfg    Config
	source SignalSource
	now    TickSource

	// Single-slot override queue. External tooling injects a
	// snapshot here; it preempts the signal source for exactly one
	// cycle.
	override    RawInputState
	overrideSet bool

	histories [LineCount]ButtonHistory

	locked bool
	notify DisplayNotifier

	touchpad TouchpadData
}

// NewPipeline validates the config table and builds a pipeline around
// the given source. A validation error here is a configuration fault:
// fatal at startup, never seen mid-run.
func NewPipeline(cfg Config, source SignalSource, now TickSource, notify DisplayNotifier) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{
		cfg:    cfg,
		source: source,
		now:    now,
		notify: notify,
	}, nil
}

// InjectRawState queues a snapshot that takes precedence over the
// signal source on the next cycle. The slot holds one snapshot; a
// second injection before the next cycle replaces the first.
func (p *Pipeline) InjectRawState(state RawInputState) {
	p.override = state
	p.overrideSet = true
}

// acquire returns this cycle's raw snapshot: the pending injected
// snapshot if one exists (consumed at most once), otherwise whatever
// the signal source reads.
func (p *Pipeline) acquire() (RawInputState, error) {
	if p.overrideSet {
		p.overrideSet = false
		return p.override, nil
	}
	return p.source.Acquire()
}

// GetState runs one full pipeline cycle: acquire, debounce, lock gate,
// SOCD resolution and mode mapping, touchpad copy. On acquisition
// failure no partial InputState is produced and the error propagates;
// the caller is expected to halt rather than retry.
func (p *Pipeline) GetState() (InputState, error) {
	raw, err := p.acquire()
	if err != nil {
		return InputState{}, err
	}

	now := p.now()

	// Debounce every tracked line against its history. Results go
	// into a separate table; the raw snapshot stays untouched so the
	// lock gate below can see the undebounced line.
	var stable [LineCount]bool
	for l := Line(0); l < LineCount; l++ {
		stable[l] = debounce(raw.Pressed(l), &p.histories[l], now)
	}

	if p.cfg.LockLine != LineNone {
		p.setLocked(raw.Pressed(p.cfg.LockLine))
	}

	var out InputState
	out.Touchpad = p.touchpad

	out.ButtonNorth = stable[LineButtonNorth]
	out.ButtonEast = stable[LineButtonEast]
	out.ButtonSouth = stable[LineButtonSouth]
	out.ButtonWest = stable[LineButtonWest]
	out.ButtonL1 = stable[LineButtonL1]
	out.ButtonL2 = stable[LineButtonL2]
	out.ButtonL3 = stable[LineButtonL3]
	out.ButtonR1 = stable[LineButtonR1]
	out.ButtonR2 = stable[LineButtonR2]
	out.ButtonR3 = stable[LineButtonR3]
	out.ButtonTouchpad = stable[LineButtonTouchpad]

	// Meta buttons are suppressed while locked.
	out.ButtonSelect = !p.locked && stable[LineButtonSelect]
	out.ButtonStart = !p.locked && stable[LineButtonStart]
	out.ButtonHome = !p.locked && stable[LineButtonHome]

	vertical := resolveAxis(stable[LineStickUp], stable[LineStickDown])
	horizontal := resolveAxis(stable[LineStickLeft], stable[LineStickRight])

	// First active mode-select line wins, in declared priority
	// order; with none active the directions drive the d-pad.
	mode := ModeDPad
	for _, ml := range p.cfg.ModeLines {
		if stable[ml.Line] {
			mode = ml.Mode
			break
		}
	}

	// The two unselected representations stay neutral.
	out.DPad = StickNeutral
	out.LeftStickX = StickCenter
	out.LeftStickY = StickCenter
	out.RightStickX = StickCenter
	out.RightStickY = StickCenter

	switch mode {
	case ModeDPad:
		out.DPad = stickStateFromXY(horizontal, vertical)
	case ModeLeftStick:
		out.LeftStickX = stickScale(horizontal)
		out.LeftStickY = stickScale(vertical)
	case ModeRightStick:
		out.RightStickX = stickScale(horizontal)
		out.RightStickY = stickScale(vertical)
	}

	return out, nil
}
