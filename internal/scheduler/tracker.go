package scheduler

import "github.com/Venkatesh961/TimeTable-Generator/pkg/model"

// UnscheduledTracker accumulates session instances that could not be placed.
// An unplaced session is reported, never fatal.
type UnscheduledTracker struct {
	records []model.UnscheduledRecord
}

// NewUnscheduledTracker returns an empty tracker.
func NewUnscheduledTracker() *UnscheduledTracker {
	return &UnscheduledTracker{}
}

// Add appends one failed session instance.
func (t *UnscheduledTracker) Add(rec model.UnscheduledRecord) {
	if rec.Sessions == 0 {
		rec.Sessions = 1
	}
	t.records = append(t.records, rec)
}

// Records returns everything tracked so far.
func (t *UnscheduledTracker) Records() []model.UnscheduledRecord {
	return t.records
}

// Count returns the number of tracked failures.
func (t *UnscheduledTracker) Count() int { return len(t.records) }
