package core

// BankReader is the abstract GPIO interface that core code uses.
// Platform-specific implementations handle actual hardware access.
//
// The hardware signal source reads each distinct bank exactly once per
// acquisition and extracts every line belonging to that bank from the
// cached value, so two lines on the same bank always come from the
// same instant.
type BankReader interface {
	// ConfigureLine prepares one input line (direction, pull
	// resistor per polarity). Returns an error if the bank/bit pair
	// cannot be bound; such errors are fatal at initialization.
	ConfigureLine(cfg LineConfig) error

	// ReadBank returns the raw level of every bit on one bank in a
	// single snapshot. A read fault here means controller input is
	// gone and the firmware cannot safely continue.
	ReadBank(bank uint8) (uint32, error)
}

// Global singleton used by target code that wires the default
// hardware source. Tests construct sources around their own readers
// instead of registering here.
var bankReader BankReader

// SetBankReader is called by target-specific code to register its
// GPIO implementation.
func SetBankReader(r BankReader) {
	bankReader = r
}

// MustBankReader returns the configured reader or panics if missing.
func MustBankReader() BankReader {
	if bankReader == nil {
		panic("GPIO bank reader not configured")
	}
	return bankReader
}
