package extension

// Outcome is the result of a registration attempt.
type Outcome int

const (
	// Undefined means the capability was never exposed by the host.
	Undefined Outcome = iota + 1
	// AlreadyImplemented means a single-implementation capability is already satisfied.
	AlreadyImplemented
	// Implemented means the first implementation of the capability was registered.
	Implemented
	// Added means another implementation of a multi-implementation capability was registered.
	Added
)

// Succeeded reports whether the attempt produced a registration.
func (o Outcome) Succeeded() bool {
	switch o {
	case Implemented, Added:
		return true
	default:
		return false
	}
}

func (o Outcome) String() string {
	switch o {
	case Undefined:
		return "undefined"
	case AlreadyImplemented:
		return "already implemented"
	case Implemented:
		return "implemented"
	case Added:
		return "added"
	default:
		return "unknown"
	}
}
