//go:build rp2040

package main

import (
	"runtime/volatile"
	"unsafe"

	"padlink/core"
)

// RP2040 Timer peripheral memory map
const (
	timerBase     = 0x40054000
	timerTIMERAWH = timerBase + 0x08 // Raw timer high word
	timerTIMERAWL = timerBase + 0x0C // Raw timer low word
)

var (
	timerRAWH = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWH)))
	timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))
)

// hardwareTick reads the RP2040's 64-bit microsecond timer. It runs
// at 1MHz, matching core.TickFreq, so ticks are microseconds here.
//
// Must read high, then low, then high again to detect rollover
// between the two word reads.
func hardwareTick() core.Tick {
	for {
		high1 := timerRAWH.Get()
		low := timerRAWL.Get()
		high2 := timerRAWH.Get()

		if high1 == high2 {
			return core.Tick(uint64(high1)<<32 | uint64(low))
		}
		// Rollover happened during the read, retry.
	}
}
