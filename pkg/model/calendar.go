package model

import "fmt"

// Grid constants. The working day spans 09:00-18:30 in 30 minute steps,
// giving 19 slots per day over 5 working days. Break windows stay in the
// grid as non-schedulable columns.
const (
	NumberOfDays   = 5
	SlotsPerDay    = 19
	SlotMinutes    = 30
	DayStartMinute = 9 * 60

	LectureSlots   = 3
	LabSlots       = 4
	TutorialSlots  = 2
	SelfStudySlots = 2
)

var DayNames = [NumberOfDays]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// DayIndex maps a day name to its index, -1 for anything else.
func DayIndex(name string) int {
	for i, d := range DayNames {
		if d == name {
			return i
		}
	}
	return -1
}

// TimeSlot is one half-hour column of the daily grid.
type TimeSlot struct {
	Index int
	Start int // minutes since midnight
	End   int
	Break bool
}

// Calendar holds the ordered slot sequence for a working day.
type Calendar struct {
	Slots []TimeSlot
}

// NewCalendar builds the fixed slot sequence. Calling it twice yields
// identical calendars.
func NewCalendar() *Calendar {
	slots := make([]TimeSlot, SlotsPerDay)
	for i := range slots {
		start := DayStartMinute + i*SlotMinutes
		slots[i] = TimeSlot{
			Index: i,
			Start: start,
			End:   start + SlotMinutes,
			Break: isBreakMinute(start),
		}
	}
	return &Calendar{Slots: slots}
}

// Morning break 10:30-11:00, lunch break 12:30-14:30.
func isBreakMinute(start int) bool {
	if start >= 10*60+30 && start < 11*60 {
		return true
	}
	return start >= 12*60+30 && start < 14*60+30
}

// IsBreak reports whether the slot at the given index is a break window.
func (c *Calendar) IsBreak(slot int) bool {
	if slot < 0 || slot >= len(c.Slots) {
		return false
	}
	return c.Slots[slot].Break
}

// Clock renders minutes since midnight as HH:MM.
func Clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseClock converts an HH:MM string to minutes since midnight.
func ParseClock(s string) (int, error) {
	var hh, mm int
	if _, err := fmt.Sscanf(s, "%d:%d", &hh, &mm); err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("clock %q out of range", s)
	}
	return hh*60 + mm, nil
}
