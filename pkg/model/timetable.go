package model

// CellKind discriminates the content of one timetable cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellBreak
	CellSessionStart
	CellSessionContinuation
)

// Cell is one (day, slot) entry of a section's grid. Only SessionStart cells
// carry the descriptive fields; continuation cells carry the session type so
// exporters can merge them.
type Cell struct {
	Kind    CellKind
	Session SessionType
	Code    string
	Name    string
	Faculty string
	Room    string
}

// Timetable is the weekly grid for one department/semester/section.
type Timetable struct {
	Department string
	Semester   string
	Section    string // "" for a single-section cohort, otherwise "A", "B", ...

	Grid [NumberOfDays][SlotsPerDay]Cell
}

// NewTimetable builds an empty grid with break columns pre-marked.
func NewTimetable(cal *Calendar, department, semester, section string) *Timetable {
	t := &Timetable{Department: department, Semester: semester, Section: section}
	for d := 0; d < NumberOfDays; d++ {
		for s := 0; s < SlotsPerDay; s++ {
			if cal.IsBreak(s) {
				t.Grid[d][s] = Cell{Kind: CellBreak}
			}
		}
	}
	return t
}

// IsEmpty reports whether a cell can still take a session.
func (t *Timetable) IsEmpty(day, slot int) bool {
	if day < 0 || day >= NumberOfDays || slot < 0 || slot >= SlotsPerDay {
		return false
	}
	return t.Grid[day][slot].Kind == CellEmpty
}

// HoldsComponent reports whether the cell holds any part of a lecture, lab or
// tutorial. Self-study blocks do not count.
func (t *Timetable) HoldsComponent(day, slot int) bool {
	if day < 0 || day >= NumberOfDays || slot < 0 || slot >= SlotsPerDay {
		return false
	}
	c := t.Grid[day][slot]
	if c.Kind != CellSessionStart && c.Kind != CellSessionContinuation {
		return false
	}
	switch c.Session {
	case SessionLecture, SessionLab, SessionTutorial:
		return true
	}
	return false
}

// Place writes a session into the grid: the first slot carries the full
// descriptor, the remaining slots are continuation markers.
func (t *Timetable) Place(day, start int, session SessionType, code, name, faculty, room string) {
	t.Grid[day][start] = Cell{
		Kind:    CellSessionStart,
		Session: session,
		Code:    code,
		Name:    name,
		Faculty: faculty,
		Room:    room,
	}
	for i := 1; i < session.Duration(); i++ {
		t.Grid[day][start+i] = Cell{Kind: CellSessionContinuation, Session: session}
	}
}

// Label names the grid the way the source sheets do: DEPT_SEM or DEPT_SEM_A.
func (t *Timetable) Label() string {
	if t.Section == "" {
		return t.Department + "_" + t.Semester
	}
	return t.Department + "_" + t.Semester + "_" + t.Section
}

// UnscheduledRecord describes one session instance that could not be placed
// within the retry budget.
type UnscheduledRecord struct {
	Department string      `csv:"Department"`
	Semester   string      `csv:"Semester"`
	Section    string      `csv:"Section"`
	Code       string      `csv:"Course Code"`
	Name       string      `csv:"Course Name"`
	Faculty    string      `csv:"Faculty"`
	Component  SessionType `csv:"Component"`
	Sessions   int         `csv:"Sessions"`
	Reason     string      `csv:"Reason"`
}

// SelfStudyCourse is a catalog entry with self-study hours only; it is listed
// separately and never placed on the grid.
type SelfStudyCourse struct {
	Department string `csv:"Department"`
	Semester   string `csv:"Semester"`
	Code       string `csv:"Course Code"`
	Name       string `csv:"Course Name"`
	Faculty    string `csv:"Faculty"`
}

// Result is the full output of one generation run.
type Result struct {
	RunID         string
	Tables        []*Timetable
	Unscheduled   []UnscheduledRecord
	SelfStudyOnly []SelfStudyCourse
}
