// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
package event

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}

// Status reports whether an element consumed an event.
type Status uint8

const (
	// Ignored means the event was not used.
	Ignored Status = iota
	// Captured means the event was consumed and should
	// not be handled further.
	Captured
)

// Merge returns the combined status of s and s2. An event
// captured by any receiver is captured.
func (s Status) Merge(s2 Status) Status {
	if s == Captured || s2 == Captured {
		return Captured
	}
	return Ignored
}

func (s Status) String() string {
	switch s {
	case Ignored:
		return "Ignored"
	case Captured:
		return "Captured"
	default:
		panic("unknown status")
	}
}
