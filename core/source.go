package core

// SignalSource produces one raw snapshot of every input line per
// sampling instant. Exactly one implementation is selected when the
// pipeline is constructed; the choice never changes at runtime.
type SignalSource interface {
	Acquire() (RawInputState, error)
}

// AcquisitionError reports a failed hardware snapshot. It is fatal:
// the caller must halt the polling loop rather than report stale
// controller state as authoritative.
type AcquisitionError struct {
	Bank uint8
	Err  error
}

func (e *AcquisitionError) Error() string {
	return "input acquisition failed on bank " + itoa(int(e.Bank)) + ": " + e.Err.Error()
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}

// HardwareSource reads the configured lines from the physical I/O
// banks through the BankReader HAL.
type HardwareSource struct {
	reader BankReader
	lines  []LineConfig

	// bankUsed marks which banks actually carry configured lines,
	// so acquisition only snapshots those.
	bankUsed [BankCount]bool
}

// NewHardwareSource configures every line in the table and returns a
// source reading them. Configuration errors are fatal at startup.
func NewHardwareSource(reader BankReader, lines []LineConfig) (*HardwareSource, error) {
	s := &HardwareSource{
		reader: reader,
		lines:  lines,
	}
	for _, lc := range lines {
		if err := reader.ConfigureLine(lc); err != nil {
			return nil, err
		}
		s.bankUsed[lc.Bank] = true
	}
	return s, nil
}

// Acquire snapshots each used bank once, then extracts every line from
// the cached bank values. Reading banks before extracting keeps two
// lines on one bank consistent within the same logical sample.
func (s *HardwareSource) Acquire() (RawInputState, error) {
	var state RawInputState

	var bankValues [BankCount]uint32
	for bank := uint8(0); bank < BankCount; bank++ {
		if !s.bankUsed[bank] {
			continue
		}
		value, err := s.reader.ReadBank(bank)
		if err != nil {
			return RawInputState{}, &AcquisitionError{Bank: bank, Err: err}
		}
		bankValues[bank] = value
	}

	for _, lc := range s.lines {
		level := bankValues[lc.Bank]&(1<<lc.Bit) != 0
		if lc.ActiveLow {
			level = !level
		}
		state.Set(lc.Line, level)
	}

	return state, nil
}

// SyntheticSource holds the last externally-set snapshot and returns
// it on every acquisition. It never fails; before the first SetRaw it
// reports a zeroed snapshot.
type SyntheticSource struct {
	state RawInputState
}

func NewSyntheticSource() *SyntheticSource {
	return &SyntheticSource{}
}

// SetRaw replaces the snapshot returned by subsequent acquisitions.
func (s *SyntheticSource) SetRaw(state RawInputState) {
	s.state = state
}

func (s *SyntheticSource) Acquire() (RawInputState, error) {
	return s.state, nil
}
