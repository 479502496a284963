package core

import "errors"

// Line identifies a logical input line on the controller.
// The mapping from a Line to a physical bank/bit lives in the Config
// table, not here; core code only ever works with logical lines.
type Line uint8

const (
	LineStickUp Line = iota
	LineStickDown
	LineStickLeft
	LineStickRight

	LineButtonNorth
	LineButtonEast
	LineButtonSouth
	LineButtonWest

	LineButtonL1
	LineButtonL2
	LineButtonL3
	LineButtonR1
	LineButtonR2
	LineButtonR3

	LineButtonSelect
	LineButtonStart
	LineButtonHome
	LineButtonTouchpad

	LineModeLS
	LineModeRS
	LineModeLock

	LineCount

	// LineNone marks an unconfigured optional line (e.g. no lock line).
	LineNone Line = 0xFF
)

// BankCount is the number of distinct I/O banks the hardware source
// snapshots per acquisition.
const BankCount = 4

// LineConfig binds a logical line to its physical source: the bank it
// lives on, the bit within that bank's value, and its polarity.
type LineConfig struct {
	Line      Line
	Bank      uint8
	Bit       uint8
	ActiveLow bool
}

// ModeLineConfig declares one mode-select line. The order of these
// entries in Config.ModeLines is the selection priority.
type ModeLineConfig struct {
	Line Line
	Mode OutputMode
}

// Config is the static build-time description of the controller wiring.
// It is data, not behavior: the pipeline validates it once at
// construction and never mutates it.
type Config struct {
	// Lines maps every tracked logical line to a bank/bit/polarity.
	Lines []LineConfig

	// ModeLines lists the output-mode select lines in priority order.
	// The first active line wins; with none active the pipeline
	// defaults to d-pad output.
	ModeLines []ModeLineConfig

	// LockLine is the line driving the lock gate, or LineNone if the
	// build has no lock-capable line.
	LockLine Line
}

var (
	ErrLineUnmapped  = errors.New("line referenced but not mapped in config")
	ErrLineDuplicate = errors.New("line mapped more than once in config")
	ErrBankRange     = errors.New("line mapped to out-of-range bank")
	ErrBitRange      = errors.New("line mapped to out-of-range bank bit")
)

// Validate checks the config table for faults that must be caught at
// initialization: duplicate or out-of-range mappings, and mode/lock
// lines that reference unmapped lines. These are fatal at startup and
// can never appear mid-run.
func (c *Config) Validate() error {
	var seen [LineCount]bool
	for _, lc := range c.Lines {
		if lc.Line >= LineCount {
			return ErrLineUnmapped
		}
		if seen[lc.Line] {
			return ErrLineDuplicate
		}
		seen[lc.Line] = true
		if lc.Bank >= BankCount {
			return ErrBankRange
		}
		if lc.Bit >= 32 {
			return ErrBitRange
		}
	}
	for _, ml := range c.ModeLines {
		if ml.Line >= LineCount || !seen[ml.Line] {
			return ErrLineUnmapped
		}
	}
	if c.LockLine != LineNone {
		if c.LockLine >= LineCount || !seen[c.LockLine] {
			return ErrLineUnmapped
		}
	}
	return nil
}

// lineNames is indexed by Line and used by the host tooling and debug
// output. Kept in sync with the Line constants above.
var lineNames = [LineCount]string{
	LineStickUp:        "up",
	LineStickDown:      "down",
	LineStickLeft:      "left",
	LineStickRight:     "right",
	LineButtonNorth:    "north",
	LineButtonEast:     "east",
	LineButtonSouth:    "south",
	LineButtonWest:     "west",
	LineButtonL1:       "l1",
	LineButtonL2:       "l2",
	LineButtonL3:       "l3",
	LineButtonR1:       "r1",
	LineButtonR2:       "r2",
	LineButtonR3:       "r3",
	LineButtonSelect:   "select",
	LineButtonStart:    "start",
	LineButtonHome:     "home",
	LineButtonTouchpad: "touchpad",
	LineModeLS:         "mode_ls",
	LineModeRS:         "mode_rs",
	LineModeLock:       "mode_lock",
}

// String returns the logical name of the line.
func (l Line) String() string {
	if l < LineCount {
		return lineNames[l]
	}
	return "unknown"
}

// LineByName resolves a logical line name back to its Line value.
// Used by host tooling to parse scripted input sequences.
func LineByName(name string) (Line, bool) {
	for l := Line(0); l < LineCount; l++ {
		if lineNames[l] == name {
			return l, true
		}
	}
	return LineNone, false
}
