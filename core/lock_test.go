package core

import "testing"

func TestLockSuppressesMetaButtonsOnly(t *testing.T) {
	p, src, _ := newTestPipeline(t, nil)

	allButtons := []Line{
		LineButtonNorth, LineButtonEast, LineButtonSouth, LineButtonWest,
		LineButtonL1, LineButtonL2, LineButtonL3,
		LineButtonR1, LineButtonR2, LineButtonR3,
		LineButtonSelect, LineButtonStart, LineButtonHome, LineButtonTouchpad,
	}

	// Everything pressed while locked: exactly select/start/home
	// are suppressed.
	src.SetRaw(pressAll(append([]Line{LineModeLock}, allButtons...)...))
	state, err := p.GetState()
	if err != nil {
		t.Fatalf("GetState failed: %v", err)
	}

	if state.ButtonSelect || state.ButtonStart || state.ButtonHome {
		t.Error("meta buttons not suppressed while locked")
	}
	if !state.ButtonNorth || !state.ButtonEast || !state.ButtonSouth || !state.ButtonWest ||
		!state.ButtonL1 || !state.ButtonL2 || !state.ButtonL3 ||
		!state.ButtonR1 || !state.ButtonR2 || !state.ButtonR3 ||
		!state.ButtonTouchpad {
		t.Error("lock suppressed a non-meta button")
	}

	// Same press set unlocked: everything passes.
	src.SetRaw(pressAll(allButtons...))
	state, err = p.GetState()
	if err != nil {
		t.Fatalf("GetState failed: %v", err)
	}
	if !state.ButtonSelect || !state.ButtonStart || !state.ButtonHome {
		t.Error("meta buttons suppressed while unlocked")
	}
}

func TestLockNotifiesDisplayOncePerFlip(t *testing.T) {
	var notifications []bool
	p, src, _ := newTestPipeline(t, func(locked bool) {
		notifications = append(notifications, locked)
	})

	// Repeated cycles with the lock line held: one notification for
	// the flip, none for the steady state.
	src.SetRaw(pressAll(LineModeLock))
	for i := 0; i < 5; i++ {
		if _, err := p.GetState(); err != nil {
			t.Fatalf("GetState failed: %v", err)
		}
	}
	if len(notifications) != 1 || notifications[0] != true {
		t.Fatalf("notifications after lock = %v, want [true]", notifications)
	}

	// Releasing flips back: exactly one more.
	src.SetRaw(RawInputState{})
	for i := 0; i < 5; i++ {
		if _, err := p.GetState(); err != nil {
			t.Fatalf("GetState failed: %v", err)
		}
	}
	if len(notifications) != 2 || notifications[1] != false {
		t.Fatalf("notifications after unlock = %v, want [true false]", notifications)
	}
}

func TestLockUsesRawLineWithoutDebounce(t *testing.T) {
	p, src, _ := newTestPipeline(t, nil)

	// The lock line feeds the gate with its raw value, so a flip
	// takes effect the same cycle with no dwell-time protection,
	// even though the line's debounced value lags.
	src.SetRaw(pressAll(LineModeLock))
	if _, err := p.GetState(); err != nil {
		t.Fatalf("GetState failed: %v", err)
	}
	if !p.Locked() {
		t.Error("lock did not engage on the raw line value")
	}

	// Immediate release, well inside the dwell window: unlocks
	// anyway.
	src.SetRaw(RawInputState{})
	if _, err := p.GetState(); err != nil {
		t.Fatalf("GetState failed: %v", err)
	}
	if p.Locked() {
		t.Error("lock release was debounced; it must follow the raw line")
	}
}

func TestLockWithoutConfiguredLine(t *testing.T) {
	cfg := testConfig()
	cfg.LockLine = LineNone

	src := NewSyntheticSource()
	clock := &testClock{tick: DebounceInterval}
	notified := false
	p, err := NewPipeline(cfg, src, clock.now, func(bool) { notified = true })
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}

	src.SetRaw(pressAll(LineModeLock, LineButtonSelect))
	state, err := p.GetState()
	if err != nil {
		t.Fatalf("GetState failed: %v", err)
	}

	if p.Locked() || notified {
		t.Error("lock engaged on a build with no lock line")
	}
	if !state.ButtonSelect {
		t.Error("select suppressed without a lock")
	}
}
