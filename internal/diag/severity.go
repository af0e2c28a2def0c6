package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevWarning is recoverable: the stage reports it and keeps going.
	SevWarning Severity = iota
	// SevError stops the stage that raised it.
	SevError
	// SevCritical marks a broken front-end invariant, never bad input.
	SevCritical
)

func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "Warning"
	case SevError:
		return "Error"
	case SevCritical:
		return "Critical"
	}
	return "Unknown"
}

// IsFatal reports whether a diagnostic of this severity terminates the run.
func (s Severity) IsFatal() bool {
	return s >= SevError
}
