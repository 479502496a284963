package protocol

import "errors"

var (
	ErrFrameTooLong = errors.New("frame payload exceeds maximum length")
	ErrBadPayload   = errors.New("payload size does not match message type")
)

// EncodeFrame builds one wire frame around the given payload.
func EncodeFrame(msgType byte, payload []byte) ([]byte, error) {
	total := FrameHeaderSize + len(payload) + FrameTrailerSize
	if total > FrameLengthMax {
		return nil, ErrFrameTooLong
	}

	frame := make([]byte, 0, total)
	frame = append(frame, byte(total), msgType)
	frame = append(frame, payload...)

	crc := CRC16(frame)
	frame = append(frame, byte(crc>>8), byte(crc&0xFF), FrameSync)
	return frame, nil
}

// EncodeInject builds an injection frame from a packed raw line
// bitmask.
func EncodeInject(bits uint32) []byte {
	payload := []byte{
		byte(bits),
		byte(bits >> 8),
		byte(bits >> 16),
		byte(bits >> 24),
	}
	frame, _ := EncodeFrame(MsgInject, payload)
	return frame
}

// ParseInject extracts the packed line bitmask from a MsgInject
// payload.
func ParseInject(payload []byte) (uint32, error) {
	if len(payload) != InjectPayloadSize {
		return 0, ErrBadPayload
	}
	return uint32(payload[0]) |
		uint32(payload[1])<<8 |
		uint32(payload[2])<<16 |
		uint32(payload[3])<<24, nil
}

// EncodeState builds a state report frame.
func EncodeState(r StateReport) []byte {
	payload := []byte{
		byte(r.Buttons),
		byte(r.Buttons >> 8),
		byte(r.Buttons >> 16),
		byte(r.Buttons >> 24),
		r.DPad,
		r.LeftStickX,
		r.LeftStickY,
		r.RightStickX,
		r.RightStickY,
	}
	frame, _ := EncodeFrame(MsgState, payload)
	return frame
}

// ParseState decodes a MsgState payload.
func ParseState(payload []byte) (StateReport, error) {
	if len(payload) != StatePayloadSize {
		return StateReport{}, ErrBadPayload
	}
	return StateReport{
		Buttons: uint32(payload[0]) |
			uint32(payload[1])<<8 |
			uint32(payload[2])<<16 |
			uint32(payload[3])<<24,
		DPad:        payload[4],
		LeftStickX:  payload[5],
		LeftStickY:  payload[6],
		RightStickX: payload[7],
		RightStickY: payload[8],
	}, nil
}

// EncodeDebug builds a debug-toggle frame.
func EncodeDebug(enabled bool) []byte {
	payload := []byte{0}
	if enabled {
		payload[0] = 1
	}
	frame, _ := EncodeFrame(MsgDebug, payload)
	return frame
}

// ParseDebug decodes a MsgDebug payload.
func ParseDebug(payload []byte) (bool, error) {
	if len(payload) != DebugPayloadSize {
		return false, ErrBadPayload
	}
	return payload[0] != 0, nil
}

// FrameHandler receives each validated frame's type and payload. The
// payload slice is only valid for the duration of the call.
type FrameHandler func(msgType byte, payload []byte)

// Decoder extracts frames from a byte stream buffered in a fixed-size
// FIFO. Garbage, truncated frames and CRC failures drop data up to
// the next sync byte, after which decoding resumes; a corrupted frame
// never desynchronizes the link permanently.
type Decoder struct {
	fifo    *FifoBuffer
	synced  bool
	handler FrameHandler
}

// NewDecoder creates a Decoder delivering validated frames to handler.
func NewDecoder(handler FrameHandler) *Decoder {
	return &Decoder{
		fifo:    NewFifoBuffer(4 * FrameLengthMax),
		synced:  true, // Start synchronized
		handler: handler,
	}
}

// Write feeds received bytes into the decoder and processes every
// complete frame they finish. It never blocks and never fails; bad
// data is skipped.
func (d *Decoder) Write(data []byte) {
	d.fifo.Write(data)
	d.process()
}

func (d *Decoder) process() {
	for !d.fifo.IsEmpty() {
		buf := d.fifo.Data()

		if !d.synced {
			// Look for a sync byte to resynchronize: everything
			// before it is garbage.
			syncPos := -1
			for i, b := range buf {
				if b == FrameSync {
					syncPos = i
					break
				}
			}
			if syncPos < 0 {
				d.fifo.Pop(len(buf))
				return
			}
			d.fifo.Pop(syncPos + 1)
			d.synced = true
			continue
		}

		// Skip leading sync bytes between frames.
		if buf[0] == FrameSync {
			d.fifo.Pop(1)
			continue
		}

		if len(buf) < FrameLengthMin {
			return
		}

		frameLen := int(buf[0])
		if frameLen < FrameLengthMin || frameLen > FrameLengthMax {
			d.synced = false
			continue
		}

		// Wait for the full frame.
		if len(buf) < frameLen {
			return
		}

		frame := buf[:frameLen]
		crcPos := frameLen - FrameTrailerSize
		wantCRC := uint16(frame[crcPos])<<8 | uint16(frame[crcPos+1])
		if CRC16(frame[:crcPos]) != wantCRC || frame[frameLen-1] != FrameSync {
			d.synced = false
			continue
		}

		if d.handler != nil {
			d.handler(frame[1], frame[FrameHeaderSize:crcPos])
		}
		d.fifo.Pop(frameLen)
	}
}
