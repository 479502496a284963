package core

// TouchpadDataSize is the size of the touchpad record in bytes. The
// layout belongs to the touchpad driver; the pipeline treats it as an
// opaque blob and copies it into each InputState verbatim.
const TouchpadDataSize = 12

// TouchpadData is the opaque, fixed-size record produced by the
// touchpad collaborator.
type TouchpadData [TouchpadDataSize]byte

// SetTouchpadData publishes the latest touchpad record. The touchpad
// driver calls this between cycles; the record is assumed to be
// updated atomically as a whole under the single-threaded model.
func (p *Pipeline) SetTouchpadData(data TouchpadData) {
	p.touchpad = data
}
