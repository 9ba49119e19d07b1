package scheduler

import "github.com/Venkatesh961/TimeTable-Generator/pkg/model"

// FacultyLedger tracks every faculty member's commitments across the whole
// run: occupied slots, daily component counts per department+semester
// context, and which courses already got a lecture that day. State is created
// lazily on first reference and lives for one generation run.
type FacultyLedger struct {
	state map[string]*facultyState
}

type facultyState struct {
	occupied   [model.NumberOfDays]map[int]bool
	components [model.NumberOfDays]map[string]int  // context -> count
	lectured   [model.NumberOfDays]map[string]bool // course codes
}

// NewFacultyLedger returns an empty ledger.
func NewFacultyLedger() *FacultyLedger {
	return &FacultyLedger{state: make(map[string]*facultyState)}
}

// Reset discards all state for a fresh run.
func (l *FacultyLedger) Reset() {
	l.state = make(map[string]*facultyState)
}

func (l *FacultyLedger) get(faculty string) *facultyState {
	st, ok := l.state[faculty]
	if !ok {
		st = &facultyState{}
		for d := 0; d < model.NumberOfDays; d++ {
			st.occupied[d] = make(map[int]bool)
			st.components[d] = make(map[string]int)
			st.lectured[d] = make(map[string]bool)
		}
		l.state[faculty] = st
	}
	return st
}

func contextKey(department, semester string) string {
	return department + "|" + semester
}

// IsFree reports whether the faculty member has no commitment at the slot.
func (l *FacultyLedger) IsFree(faculty string, day, slot int) bool {
	st, ok := l.state[faculty]
	if !ok {
		return true
	}
	return !st.occupied[day][slot]
}

// FreeFor reports whether slots [start,start+duration) are all free.
func (l *FacultyLedger) FreeFor(faculty string, day, start, duration int) bool {
	for i := 0; i < duration; i++ {
		if !l.IsFree(faculty, day, start+i) {
			return false
		}
	}
	return true
}

// CanTakeComponent runs the per-day load checks: at most 2 distinct
// lecture/lab/tutorial components per department+semester context, and never
// a second lecture of the same course on the same day. Self-study blocks are
// exempt.
func (l *FacultyLedger) CanTakeComponent(faculty string, day int, department, semester, code string, session model.SessionType) bool {
	if session == model.SessionSelfStudy {
		return true
	}
	st, ok := l.state[faculty]
	if !ok {
		return true
	}
	if st.components[day][contextKey(department, semester)] >= 2 {
		return false
	}
	if session == model.SessionLecture && st.lectured[day][code] {
		return false
	}
	return true
}

// Commit records a placed session: occupies the slots, bumps the component
// count, and remembers lectured courses.
func (l *FacultyLedger) Commit(faculty string, day, start int, department, semester, code string, session model.SessionType) {
	st := l.get(faculty)
	for i := 0; i < session.Duration(); i++ {
		st.occupied[day][start+i] = true
	}
	switch session {
	case model.SessionLecture:
		st.components[day][contextKey(department, semester)]++
		st.lectured[day][code] = true
	case model.SessionLab, model.SessionTutorial:
		st.components[day][contextKey(department, semester)]++
	}
}
