package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"padlink/core"
	"padlink/host/inject"
	"padlink/host/serial"
	"padlink/protocol"
)

var (
	device = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud   = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	script = flag.String("script", "", "Input script file (default: stdin)")
	watch  = flag.Bool("watch", false, "Print decoded state reports after the script finishes")
	debug  = flag.Bool("debug", false, "Enable the firmware's diagnostic output")
)

func main() {
	flag.Parse()

	var in io.Reader = os.Stdin
	if *script != "" {
		f, err := os.Open(*script)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	steps, err := inject.Parse(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	if *debug {
		if _, err := port.Write(protocol.EncodeDebug(true)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: debug toggle failed: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Injecting %d steps on %s...\n", len(steps), *device)
	if err := inject.Run(port, steps, time.Sleep); err != nil {
		fmt.Fprintf(os.Stderr, "Error: injection failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Done.")

	if *watch {
		watchReports(port)
	}
}

// watchReports tails the firmware's per-cycle state reports until the
// link drops.
func watchReports(port serial.Port) {
	decoder := protocol.NewDecoder(func(msgType byte, payload []byte) {
		if msgType != protocol.MsgState {
			return
		}
		report, err := protocol.ParseState(payload)
		if err != nil {
			return
		}
		printReport(report)
	})

	buf := make([]byte, 256)
	for {
		n, err := port.Read(buf)
		if n > 0 {
			decoder.Write(buf[:n])
		}
		if err != nil && err != io.EOF {
			fmt.Fprintf(os.Stderr, "Error: read failed: %v\n", err)
			return
		}
	}
}

func printReport(r protocol.StateReport) {
	fmt.Printf("dpad=%-9s ls=(%02x,%02x) rs=(%02x,%02x) buttons=",
		core.StickState(r.DPad), r.LeftStickX, r.LeftStickY, r.RightStickX, r.RightStickY)

	any := false
	for l := core.Line(0); l < core.LineCount; l++ {
		if r.Buttons&(1<<l) != 0 {
			if any {
				fmt.Print("+")
			}
			fmt.Print(l)
			any = true
		}
	}
	if !any {
		fmt.Print("none")
	}
	fmt.Println()
}
