package core

import "testing"

func TestDebugOutputGated(t *testing.T) {
	var lines []string
	SetDebugWriter(func(s string) {
		lines = append(lines, s)
	})
	defer func() {
		SetDebugWriter(func(s string) {})
		SetDebugEnabled(false)
	}()

	// Disabled by default: nothing reaches the writer.
	DebugPrintln("suppressed")
	if len(lines) != 0 {
		t.Fatalf("debug output emitted while disabled: %v", lines)
	}

	SetDebugEnabled(true)
	DebugPrintln("visible")
	if len(lines) != 1 || lines[0] != "visible" {
		t.Fatalf("debug output while enabled = %v, want [visible]", lines)
	}

	SetDebugEnabled(false)
	DebugPrintln("suppressed again")
	if len(lines) != 1 {
		t.Fatalf("debug output emitted after disable: %v", lines)
	}
}
