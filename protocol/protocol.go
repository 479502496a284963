// Package protocol implements the framed serial link used by the
// input injection and state reporting debug channel.
//
// Frame layout on the wire:
//
//	[length][type][payload...][crc16 hi][crc16 lo][sync]
//
// length counts the whole frame including the trailer. The CRC covers
// everything before the trailer. The trailing sync byte bounds frames
// so a receiver joining mid-stream can resynchronize.
package protocol

// Version of the firmware/tool protocol.
const Version = "0.1.0"

// Framing constants
const (
	FrameSync        = 0x7E
	FrameHeaderSize  = 2 // length + type
	FrameTrailerSize = 3 // crc16 + sync
	FrameLengthMin   = FrameHeaderSize + FrameTrailerSize
	FrameLengthMax   = 64
)

// Message types
const (
	// MsgInject carries a packed raw input snapshot from the host
	// into the firmware's single-slot override queue.
	// Payload: 4 bytes, little-endian line bitmask.
	MsgInject = 0x01

	// MsgState is the firmware's per-cycle normalized state report.
	// Payload: 4-byte button bitmask, 1-byte dpad, 4 stick axis
	// bytes.
	MsgState = 0x02

	// MsgDebug toggles the firmware's diagnostic output.
	// Payload: 1 byte, non-zero enables.
	MsgDebug = 0x03
)

// Payload sizes per message type
const (
	InjectPayloadSize = 4
	StatePayloadSize  = 9
	DebugPayloadSize  = 1
)

// StateReport is the decoded form of a MsgState payload. The host
// tool displays these; the firmware never parses them back.
type StateReport struct {
	Buttons uint32
	DPad    uint8

	LeftStickX  uint8
	LeftStickY  uint8
	RightStickX uint8
	RightStickY uint8
}
