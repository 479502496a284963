//go:build rp2040

package main

import (
	"errors"
	"machine"
	"runtime/volatile"
	"unsafe"

	"padlink/core"
)

// SIO peripheral memory map: GPIO_IN holds the current level of all
// 30 GPIO lines in one register, so one read is one bank snapshot.
const (
	sioBase   = 0xD0000000
	sioGPIOIn = sioBase + 0x004
)

var gpioIn = (*volatile.Register32)(unsafe.Pointer(uintptr(sioGPIOIn)))

var (
	errBankUnsupported = errors.New("rp2040 has a single GPIO bank")
	errPinConflict     = errors.New("pin already bound to another line")
)

// RPBankReader implements core.BankReader for the RP2040. Every line
// lives on bank 0; the bank's bit index is the GPIO number.
type RPBankReader struct {
	// Track configured pins to prevent conflicts
	configuredPins map[uint8]machine.Pin
}

// NewRPBankReader creates the RP2040 GPIO implementation.
func NewRPBankReader() *RPBankReader {
	return &RPBankReader{
		configuredPins: make(map[uint8]machine.Pin),
	}
}

// ConfigureLine binds one input line. Active-low lines (buttons to
// ground) get the internal pull-up; active-high lines get the
// pull-down.
func (r *RPBankReader) ConfigureLine(cfg core.LineConfig) error {
	if cfg.Bank != 0 {
		return errBankUnsupported
	}
	if _, exists := r.configuredPins[cfg.Bit]; exists {
		return errPinConflict
	}

	pin := machine.Pin(cfg.Bit)
	mode := machine.PinInputPulldown
	if cfg.ActiveLow {
		mode = machine.PinInputPullup
	}
	pin.Configure(machine.PinConfig{Mode: mode})

	r.configuredPins[cfg.Bit] = pin
	return nil
}

// ReadBank snapshots every GPIO level in a single register read. The
// read itself cannot fault on this part; errors here would mean a
// bank the board does not have.
func (r *RPBankReader) ReadBank(bank uint8) (uint32, error) {
	if bank != 0 {
		return 0, errBankUnsupported
	}
	return gpioIn.Get(), nil
}
