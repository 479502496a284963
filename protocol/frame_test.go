package protocol

import (
	"bytes"
	"testing"
)

type capturedFrame struct {
	msgType byte
	payload []byte
}

func newCapturingDecoder() (*Decoder, *[]capturedFrame) {
	var frames []capturedFrame
	d := NewDecoder(func(msgType byte, payload []byte) {
		frames = append(frames, capturedFrame{
			msgType: msgType,
			payload: append([]byte(nil), payload...),
		})
	})
	return d, &frames
}

func TestInjectRoundTrip(t *testing.T) {
	d, frames := newCapturingDecoder()

	frame := EncodeInject(0x000A5F31)
	d.Write(frame)

	if len(*frames) != 1 {
		t.Fatalf("decoded %d frames, want 1", len(*frames))
	}
	got := (*frames)[0]
	if got.msgType != MsgInject {
		t.Errorf("message type = %#02x, want MsgInject", got.msgType)
	}
	bits, err := ParseInject(got.payload)
	if err != nil {
		t.Fatalf("ParseInject failed: %v", err)
	}
	if bits != 0x000A5F31 {
		t.Errorf("bitmask = %#08x, want 0x000A5F31", bits)
	}
}

func TestStateRoundTrip(t *testing.T) {
	d, frames := newCapturingDecoder()

	report := StateReport{
		Buttons:     0x0002C010,
		DPad:        3,
		LeftStickX:  0x00,
		LeftStickY:  0xFF,
		RightStickX: 0x80,
		RightStickY: 0x80,
	}
	d.Write(EncodeState(report))

	if len(*frames) != 1 {
		t.Fatalf("decoded %d frames, want 1", len(*frames))
	}
	got, err := ParseState((*frames)[0].payload)
	if err != nil {
		t.Fatalf("ParseState failed: %v", err)
	}
	if got != report {
		t.Errorf("report = %+v, want %+v", got, report)
	}
}

func TestDebugToggleRoundTrip(t *testing.T) {
	d, frames := newCapturingDecoder()

	d.Write(EncodeDebug(true))
	d.Write(EncodeDebug(false))

	if len(*frames) != 2 {
		t.Fatalf("decoded %d frames, want 2", len(*frames))
	}
	for i, want := range []bool{true, false} {
		got := (*frames)[i]
		if got.msgType != MsgDebug {
			t.Errorf("frame %d: message type = %#02x, want MsgDebug", i, got.msgType)
		}
		enabled, err := ParseDebug(got.payload)
		if err != nil {
			t.Fatalf("frame %d: ParseDebug failed: %v", i, err)
		}
		if enabled != want {
			t.Errorf("frame %d: enabled = %v, want %v", i, enabled, want)
		}
	}

	if _, err := ParseDebug([]byte{1, 0}); err != ErrBadPayload {
		t.Errorf("oversized payload: err = %v, want ErrBadPayload", err)
	}
}

func TestDecoderByteAtATime(t *testing.T) {
	d, frames := newCapturingDecoder()

	frame := EncodeInject(0x1234)
	for _, b := range frame {
		d.Write([]byte{b})
	}

	if len(*frames) != 1 {
		t.Fatalf("decoded %d frames from byte-wise delivery, want 1", len(*frames))
	}
}

func TestDecoderBackToBackFrames(t *testing.T) {
	d, frames := newCapturingDecoder()

	var stream []byte
	stream = append(stream, EncodeInject(1)...)
	stream = append(stream, EncodeInject(2)...)
	stream = append(stream, EncodeInject(3)...)
	d.Write(stream)

	if len(*frames) != 3 {
		t.Fatalf("decoded %d frames, want 3", len(*frames))
	}
	for i, want := range []uint32{1, 2, 3} {
		bits, err := ParseInject((*frames)[i].payload)
		if err != nil || bits != want {
			t.Errorf("frame %d: bits=%d err=%v, want %d", i, bits, err, want)
		}
	}
}

func TestDecoderResyncAfterGarbage(t *testing.T) {
	d, frames := newCapturingDecoder()

	// Garbage with no valid framing, then a good frame. The bad
	// length byte forces a desync; the previous frame's trailing
	// sync convention lets the decoder find the real frame again.
	var stream []byte
	stream = append(stream, 0x03, 0x99, 0xAB, FrameSync)
	stream = append(stream, EncodeInject(0xBEEF)...)
	d.Write(stream)

	if len(*frames) != 1 {
		t.Fatalf("decoded %d frames after garbage, want 1", len(*frames))
	}
	bits, _ := ParseInject((*frames)[0].payload)
	if bits != 0xBEEF {
		t.Errorf("bits = %#x, want 0xBEEF", bits)
	}
}

func TestDecoderRejectsCorruptCRC(t *testing.T) {
	d, frames := newCapturingDecoder()

	frame := EncodeInject(0x42)
	frame[2] ^= 0xFF // flip a payload byte, CRC now wrong
	d.Write(frame)

	if len(*frames) != 0 {
		t.Fatalf("corrupt frame delivered: %d frames", len(*frames))
	}

	// Link recovers for the next good frame.
	d.Write(EncodeInject(0x43))
	if len(*frames) != 1 {
		t.Fatalf("decoder did not recover after corrupt frame: %d frames", len(*frames))
	}
}

func TestDecoderSustainedStream(t *testing.T) {
	// Push enough frames through to wrap the internal FIFO several
	// times; every frame must still decode.
	d, frames := newCapturingDecoder()

	const count = 100
	for i := 0; i < count; i++ {
		d.Write(EncodeInject(uint32(i)))
	}

	if len(*frames) != count {
		t.Fatalf("decoded %d frames, want %d", len(*frames), count)
	}
	for i, f := range *frames {
		bits, _ := ParseInject(f.payload)
		if bits != uint32(i) {
			t.Fatalf("frame %d decoded as %d", i, bits)
		}
	}
}

func TestEncodeFrameLengthLimit(t *testing.T) {
	payload := make([]byte, FrameLengthMax)
	if _, err := EncodeFrame(MsgInject, payload); err == nil {
		t.Error("oversized payload accepted")
	}

	frame, err := EncodeFrame(MsgInject, make([]byte, FrameLengthMax-FrameHeaderSize-FrameTrailerSize))
	if err != nil {
		t.Fatalf("max-size payload rejected: %v", err)
	}
	if len(frame) != FrameLengthMax {
		t.Errorf("frame length = %d, want %d", len(frame), FrameLengthMax)
	}
}

func TestFifoBufferWrapAround(t *testing.T) {
	f := NewFifoBuffer(8)

	f.Write([]byte{1, 2, 3, 4, 5})
	f.Pop(4)
	f.Write([]byte{6, 7, 8, 9})

	want := []byte{5, 6, 7, 8, 9}
	if got := f.Data(); !bytes.Equal(got, want) {
		t.Errorf("wrapped Data() = %v, want %v", got, want)
	}
	if f.Available() != 5 {
		t.Errorf("Available() = %d, want 5", f.Available())
	}
}

func TestFifoBufferFullDropsExcess(t *testing.T) {
	f := NewFifoBuffer(4)

	n := f.Write([]byte{1, 2, 3, 4, 5})
	if n != 3 {
		t.Errorf("wrote %d bytes into capacity-4 fifo, want 3", n)
	}
	if f.Free() != 0 {
		t.Errorf("Free() = %d, want 0", f.Free())
	}
}
