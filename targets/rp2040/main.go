//go:build rp2040

package main

import (
	"machine"
	"time"

	"padlink/core"
	"padlink/display"
	"padlink/protocol"
)

// Poll period: one pipeline cycle per millisecond.
const cyclePeriod = time.Millisecond

// ledBlink blinks the LED a specific number of times for diagnostics
func ledBlink(count int) {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for i := 0; i < count; i++ {
		led.High()
		time.Sleep(150 * time.Millisecond)
		led.Low()
		time.Sleep(150 * time.Millisecond)
	}
	time.Sleep(500 * time.Millisecond) // Pause after blink sequence
}

// halt reports a fatal fault and stops the firmware. Stale or
// fabricated controller state must never go out, so there is no
// degraded mode: blink forever.
func halt(msg string, err error) {
	if err != nil {
		msg = msg + ": " + err.Error()
	}
	machine.Serial.Write([]byte("FATAL: " + msg + "\r\n"))
	for {
		ledBlink(3)
	}
}

func main() {
	core.SetDebugWriter(func(s string) {
		machine.Serial.Write([]byte(s + "\r\n"))
	})

	// Status display on I2C0.
	err := machine.I2C0.Configure(machine.I2CConfig{
		SDA:       machine.GP0,
		SCL:       machine.GP1,
		Frequency: 400 * machine.KHz,
	})
	if err != nil {
		halt("i2c init failed", err)
	}
	disp := display.NewI2C(machine.I2C0)
	if err := disp.Configure(); err != nil {
		halt("display init failed", err)
	}

	// Bind the line table to the hardware. Any failure here is a
	// configuration fault and fatal at startup.
	reader := NewRPBankReader()
	core.SetBankReader(reader)

	source, err := core.NewHardwareSource(core.MustBankReader(), wiring.Lines)
	if err != nil {
		halt("line configuration failed", err)
	}

	notify := func(locked bool) {
		if locked {
			core.DebugPrintln("lock engaged")
		} else {
			core.DebugPrintln("lock released")
		}
		disp.SetLocked(locked)
	}

	pipeline, err := core.NewPipeline(wiring, source, hardwareTick, notify)
	if err != nil {
		halt("pipeline configuration failed", err)
	}

	// Host-side tooling drives the debug channel over USB CDC:
	// injected snapshots preempt the hardware source for a single
	// cycle, and debug frames toggle diagnostic output.
	decoder := protocol.NewDecoder(func(msgType byte, payload []byte) {
		switch msgType {
		case protocol.MsgInject:
			bits, err := protocol.ParseInject(payload)
			if err != nil {
				return
			}
			core.DebugPrintln("inject frame queued")
			pipeline.InjectRawState(core.UnpackRawState(bits))

		case protocol.MsgDebug:
			enabled, err := protocol.ParseDebug(payload)
			if err != nil {
				return
			}
			core.SetDebugEnabled(enabled)
			core.DebugPrintln("debug output enabled")
		}
	})

	var rx [64]byte
	for {
		cycleStart := time.Now()

		// Drain any pending injection bytes first so an injected
		// snapshot applies to this cycle.
		n := 0
		for machine.Serial.Buffered() > 0 && n < len(rx) {
			b, err := machine.Serial.ReadByte()
			if err != nil {
				break
			}
			rx[n] = b
			n++
		}
		if n > 0 {
			decoder.Write(rx[:n])
		}

		state, err := pipeline.GetState()
		if err != nil {
			// Acquisition fault: no further cycles may run.
			halt("input acquisition failed", err)
		}

		machine.Serial.Write(protocol.EncodeState(stateReport(&state)))

		if elapsed := time.Since(cycleStart); elapsed < cyclePeriod {
			time.Sleep(cyclePeriod - elapsed)
		}
	}
}

// stateReport packs the normalized state into the wire report.
func stateReport(s *core.InputState) protocol.StateReport {
	return protocol.StateReport{
		Buttons:     s.PackButtons(),
		DPad:        uint8(s.DPad),
		LeftStickX:  s.LeftStickX,
		LeftStickY:  s.LeftStickY,
		RightStickX: s.RightStickX,
		RightStickY: s.RightStickY,
	}
}
