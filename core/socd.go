package core

// resolveAxis applies the SOCD policy to one opposing pair of
// directional lines. The policy is last-writer-wins over a fixed
// evaluation order: the negative direction is applied first, the
// positive one after, so when both are held the positive direction
// (down, right) takes the axis. Neutral-on-conflict is deliberately
// not the policy here.
func resolveAxis(negative, positive bool) int {
	axis := 0
	if negative {
		axis = -1
	}
	if positive {
		axis = 1
	}
	return axis
}

// stickStateFromXY converts a ({-1,0,1}, {-1,0,1}) pair to a discrete
// direction. Positive Y means down, matching screen coordinates.
func stickStateFromXY(horizontal, vertical int) StickState {
	switch {
	case vertical == -1 && horizontal == 0:
		return StickNorth
	case vertical == -1 && horizontal == 1:
		return StickNorthEast
	case vertical == 0 && horizontal == 1:
		return StickEast
	case vertical == 1 && horizontal == 1:
		return StickSouthEast
	case vertical == 1 && horizontal == 0:
		return StickSouth
	case vertical == 1 && horizontal == -1:
		return StickSouthWest
	case vertical == 0 && horizontal == -1:
		return StickWest
	case vertical == -1 && horizontal == -1:
		return StickNorthWest
	default:
		return StickNeutral
	}
}

// stickScale maps an axis sign to its analog byte. The three anchor
// values are exact; nothing in between is ever produced.
func stickScale(sign int) uint8 {
	switch {
	case sign < 0:
		return 0x00
	case sign == 0:
		return 0x80
	default:
		return 0xFF
	}
}
