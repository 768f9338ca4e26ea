package container

import (
	"fmt"
	"strings"
)

// Lifetime controls how long a resolved instance is reused.
type Lifetime int

const (
	// Transient entries are built on every resolution.
	Transient Lifetime = iota
	// Scoped entries are built once per Scope.
	Scoped
	// Singleton entries are built once per Provider.
	Singleton
)

func (l Lifetime) String() string {
	switch l {
	case Transient:
		return "transient"
	case Scoped:
		return "scoped"
	case Singleton:
		return "singleton"
	default:
		return fmt.Sprintf("lifetime(%d)", int(l))
	}
}

// ParseLifetime converts a configuration string into a Lifetime.
func ParseLifetime(s string) (Lifetime, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "transient":
		return Transient, nil
	case "scoped":
		return Scoped, nil
	case "singleton":
		return Singleton, nil
	default:
		return Transient, fmt.Errorf("unknown lifetime %q: must be 'transient', 'scoped' or 'singleton'", s)
	}
}
