// Package metrics records placement outcomes of a generation run.
package metrics

// Recorder receives placement events from the allocator.
type Recorder interface {
	RecordPlacement(component string)
	RecordUnscheduled(component string)
	RecordAttempts(component string, n int)
}

// Nop discards all events.
type Nop struct{}

func (Nop) RecordPlacement(string)     {}
func (Nop) RecordUnscheduled(string)   {}
func (Nop) RecordAttempts(string, int) {}
