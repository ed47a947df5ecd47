package engine

// Signal is one edge-triggered input for an evaluation cycle
type Signal uint8

const (
	SignalNone Signal = iota
	SignalNext
	SignalPrevious
	SignalRefresh
)

func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "None"
	case SignalNext:
		return "Next"
	case SignalPrevious:
		return "Previous"
	case SignalRefresh:
		return "Refresh"
	default:
		return "Unknown"
	}
}

// Recognized reports whether s triggers an evaluation
func (s Signal) Recognized() bool {
	return s == SignalNext || s == SignalPrevious || s == SignalRefresh
}
