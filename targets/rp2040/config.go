//go:build rp2040

package main

import "padlink/core"

// wiring is the static line table for the reference board: every
// switch pulls its GPIO to ground, so all lines are active-low with
// the internal pull-up. GP0/GP1 are reserved for the display I2C bus.
var wiring = core.Config{
	Lines: []core.LineConfig{
		{Line: core.LineStickUp, Bank: 0, Bit: 2, ActiveLow: true},
		{Line: core.LineStickDown, Bank: 0, Bit: 3, ActiveLow: true},
		{Line: core.LineStickLeft, Bank: 0, Bit: 4, ActiveLow: true},
		{Line: core.LineStickRight, Bank: 0, Bit: 5, ActiveLow: true},

		{Line: core.LineButtonNorth, Bank: 0, Bit: 6, ActiveLow: true},
		{Line: core.LineButtonEast, Bank: 0, Bit: 7, ActiveLow: true},
		{Line: core.LineButtonSouth, Bank: 0, Bit: 8, ActiveLow: true},
		{Line: core.LineButtonWest, Bank: 0, Bit: 9, ActiveLow: true},

		{Line: core.LineButtonL1, Bank: 0, Bit: 10, ActiveLow: true},
		{Line: core.LineButtonL2, Bank: 0, Bit: 11, ActiveLow: true},
		{Line: core.LineButtonL3, Bank: 0, Bit: 12, ActiveLow: true},
		{Line: core.LineButtonR1, Bank: 0, Bit: 13, ActiveLow: true},
		{Line: core.LineButtonR2, Bank: 0, Bit: 14, ActiveLow: true},
		{Line: core.LineButtonR3, Bank: 0, Bit: 15, ActiveLow: true},

		{Line: core.LineButtonSelect, Bank: 0, Bit: 16, ActiveLow: true},
		{Line: core.LineButtonStart, Bank: 0, Bit: 17, ActiveLow: true},
		{Line: core.LineButtonHome, Bank: 0, Bit: 18, ActiveLow: true},
		{Line: core.LineButtonTouchpad, Bank: 0, Bit: 19, ActiveLow: true},

		{Line: core.LineModeLS, Bank: 0, Bit: 20, ActiveLow: true},
		{Line: core.LineModeRS, Bank: 0, Bit: 21, ActiveLow: true},
		{Line: core.LineModeLock, Bank: 0, Bit: 22, ActiveLow: true},
	},

	// Left stick before right stick: with both switches held the
	// earlier entry wins.
	ModeLines: []core.ModeLineConfig{
		{Line: core.LineModeLS, Mode: core.ModeLeftStick},
		{Line: core.LineModeRS, Mode: core.ModeRightStick},
	},

	LockLine: core.LineModeLock,
}
