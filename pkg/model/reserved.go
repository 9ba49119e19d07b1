package model

// ReservedRow is one externally blocked time window as loaded from disk.
// Department may be "ALL"; Semester may be a semicolon-separated list where a
// bare numeral matches its lettered section variants.
type ReservedRow struct {
	Day        string `csv:"Day"`
	StartTime  string `csv:"Start Time"`
	EndTime    string `csv:"End Time"`
	Department string `csv:"Department"`
	Semester   string `csv:"Semester"`
}

// ReservedWindow is a parsed reservation with expanded semester scopes.
type ReservedWindow struct {
	Day        int
	Start      int // minutes since midnight
	End        int
	Department string
	Semesters  []string
}

// Covers reports whether the window overlaps the given slot.
func (w ReservedWindow) Covers(slot TimeSlot) bool {
	if slot.Start >= w.Start && slot.Start < w.End {
		return true
	}
	return slot.End > w.Start && slot.End <= w.End
}
