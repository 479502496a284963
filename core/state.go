package core

// RawInputState is one sampling instant's snapshot of every logical
// input line, after polarity normalization (true = active). It is
// immutable once acquired; the pipeline never writes debounced values
// back into it.
type RawInputState struct {
	lines [LineCount]bool
}

// Pressed reports whether the given line was active in this snapshot.
func (s *RawInputState) Pressed(l Line) bool {
	if l >= LineCount {
		return false
	}
	return s.lines[l]
}

// Set records the state of a line. Only snapshot producers (signal
// sources, the wire decoder, tests) call this.
func (s *RawInputState) Set(l Line, v bool) {
	if l < LineCount {
		s.lines[l] = v
	}
}

// Pack serializes the snapshot into a bitmask, bit position = Line
// value. Used by the synthetic source and the inject wire format.
func (s *RawInputState) Pack() uint32 {
	var bits uint32
	for l := Line(0); l < LineCount; l++ {
		if s.lines[l] {
			bits |= 1 << l
		}
	}
	return bits
}

// UnpackRawState rebuilds a snapshot from its packed bitmask.
func UnpackRawState(bits uint32) RawInputState {
	var s RawInputState
	for l := Line(0); l < LineCount; l++ {
		s.lines[l] = bits&(1<<l) != 0
	}
	return s
}

// StickState is the discrete eight-way d-pad direction plus center.
type StickState uint8

const (
	StickNeutral StickState = iota
	StickNorth
	StickNorthEast
	StickEast
	StickSouthEast
	StickSouth
	StickSouthWest
	StickWest
	StickNorthWest
)

var stickNames = [...]string{
	StickNeutral:   "neutral",
	StickNorth:     "north",
	StickNorthEast: "northeast",
	StickEast:      "east",
	StickSouthEast: "southeast",
	StickSouth:     "south",
	StickSouthWest: "southwest",
	StickWest:      "west",
	StickNorthWest: "northwest",
}

func (s StickState) String() string {
	if int(s) < len(stickNames) {
		return stickNames[s]
	}
	return "unknown"
}

// OutputMode selects which downstream representation the directional
// lines drive: the digital d-pad or one of the two analog sticks.
type OutputMode uint8

const (
	ModeDPad OutputMode = iota
	ModeLeftStick
	ModeRightStick
)

// StickCenter is the neutral analog axis value.
const StickCenter = 0x80

// InputState is the normalized controller state produced once per
// cycle: debounced and lock-gated buttons, the resolved d-pad value,
// the four analog axis bytes, and the touchpad blob copied verbatim.
type InputState struct {
	ButtonNorth    bool
	ButtonEast     bool
	ButtonSouth    bool
	ButtonWest     bool
	ButtonL1       bool
	ButtonL2       bool
	ButtonL3       bool
	ButtonR1       bool
	ButtonR2       bool
	ButtonR3       bool
	ButtonSelect   bool
	ButtonStart    bool
	ButtonHome     bool
	ButtonTouchpad bool

	DPad StickState

	LeftStickX  uint8
	LeftStickY  uint8
	RightStickX uint8
	RightStickY uint8

	Touchpad TouchpadData
}

// PackButtons serializes the button booleans into a bitmask for the
// state report frame, bit position = the button's Line value.
func (s *InputState) PackButtons() uint32 {
	var bits uint32
	set := func(l Line, v bool) {
		if v {
			bits |= 1 << l
		}
	}
	set(LineButtonNorth, s.ButtonNorth)
	set(LineButtonEast, s.ButtonEast)
	set(LineButtonSouth, s.ButtonSouth)
	set(LineButtonWest, s.ButtonWest)
	set(LineButtonL1, s.ButtonL1)
	set(LineButtonL2, s.ButtonL2)
	set(LineButtonL3, s.ButtonL3)
	set(LineButtonR1, s.ButtonR1)
	set(LineButtonR2, s.ButtonR2)
	set(LineButtonR3, s.ButtonR3)
	set(LineButtonSelect, s.ButtonSelect)
	set(LineButtonStart, s.ButtonStart)
	set(LineButtonHome, s.ButtonHome)
	set(LineButtonTouchpad, s.ButtonTouchpad)
	return bits
}
