// Package inject turns textual input scripts into injection frames
// for the firmware's override queue, so test sequences run with
// deterministic timing and no hardware rig.
package inject

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"padlink/core"
	"padlink/protocol"
)

// DefaultHold is used when a script step omits its duration.
const DefaultHold = 16 * time.Millisecond

// Step is one scripted snapshot: the lines held and for how long.
type Step struct {
	Bits uint32
	Hold time.Duration
}

// Parse reads a script, one step per line:
//
//	up+right 100    hold up and right for 100ms
//	south           press south for the default hold
//	release 50      hold everything released for 50ms
//
// '#' starts a comment. Line names match core's logical line names.
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) > 2 {
			return nil, fmt.Errorf("line %d: expected \"lines [hold-ms]\", got %q", lineNo, text)
		}

		step := Step{Hold: DefaultHold}

		if fields[0] != "release" {
			for _, name := range strings.Split(fields[0], "+") {
				l, ok := core.LineByName(name)
				if !ok {
					return nil, fmt.Errorf("line %d: unknown input line %q", lineNo, name)
				}
				step.Bits |= 1 << l
			}
		}

		if len(fields) == 2 {
			ms, err := strconv.Atoi(fields[1])
			if err != nil || ms < 0 {
				return nil, fmt.Errorf("line %d: bad hold duration %q", lineNo, fields[1])
			}
			step.Hold = time.Duration(ms) * time.Millisecond
		}

		steps = append(steps, step)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return steps, nil
}

// Run plays the steps into the port as injection frames, one frame
// per step followed by its hold time, and releases every line at the
// end. The sleep function is injectable for tests.
func Run(port io.Writer, steps []Step, sleep func(time.Duration)) error {
	for _, step := range steps {
		if _, err := port.Write(protocol.EncodeInject(step.Bits)); err != nil {
			return err
		}
		sleep(step.Hold)
	}

	// Leave the controller released, not stuck on the last step.
	_, err := port.Write(protocol.EncodeInject(0))
	return err
}
