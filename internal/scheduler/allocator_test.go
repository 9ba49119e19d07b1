package scheduler

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Venkatesh961/TimeTable-Generator/pkg/model"
)

// scriptedGen replays a fixed candidate sequence so allocation tests are
// deterministic.
type scriptedGen struct {
	slots [][2]int
	i     int
}

func (g *scriptedGen) RandomSlot(duration int) (int, int) {
	s := g.slots[g.i%len(g.slots)]
	g.i++
	return s[0], s[1]
}

func (g *scriptedGen) ShuffledDays() []int { return []int{0, 1, 2, 3, 4} }

func newTestAllocator(rooms []*model.Room, reservedRows []*model.ReservedRow,
	gen CandidateGenerator, maxAttempts int) (*Allocator, *UnscheduledTracker) {
	cal := model.NewCalendar()
	tracker := NewUnscheduledTracker()
	alloc := NewAllocator(cal, NewRoomRegistry(rooms), NewFacultyLedger(),
		BuildReservedIndex(reservedRows, zerolog.Nop()), gen, tracker, nil, maxAttempts)
	return alloc, tracker
}

func lectureRequest(code, faculty string) sessionRequest {
	return sessionRequest{
		Department: "CSE", Semester: "4", Section: "A",
		Code: code, Name: code + " name", Faculty: faculty,
		Session: model.SessionLecture, Capacity: 60,
	}
}

func TestPlaceRandomKeepsLectureGap(t *testing.T) {
	gen := &scriptedGen{slots: [][2]int{{0, 11}, {0, 14}, {1, 14}}}
	alloc, tracker := newTestAllocator(nil, nil, gen, 10)
	table := model.NewTimetable(model.NewCalendar(), "CSE", "4", "A")

	require.True(t, alloc.PlaceRandom(table, lectureRequest("CS101", "Dr. A")))
	assert.Equal(t, model.CellSessionStart, table.Grid[0][11].Kind)

	// The candidate at (0,14) touches the lecture ending at slot 13 and is
	// rejected; the next candidate lands on Tuesday.
	require.True(t, alloc.PlaceRandom(table, lectureRequest("CS102", "Dr. B")))
	assert.Equal(t, model.CellEmpty, table.Grid[0][14].Kind)
	assert.Equal(t, "CS102", table.Grid[1][14].Code)
	assert.Zero(t, tracker.Count())
}

func TestPlaceRandomRecordsExhaustion(t *testing.T) {
	// Slot 3 is a break column, so every attempt is rejected.
	gen := &scriptedGen{slots: [][2]int{{0, 3}}}
	alloc, tracker := newTestAllocator(nil, nil, gen, 5)
	table := model.NewTimetable(model.NewCalendar(), "CSE", "4", "A")

	assert.False(t, alloc.PlaceRandom(table, lectureRequest("CS101", "Dr. A")))
	require.Equal(t, 1, tracker.Count())
	rec := tracker.Records()[0]
	assert.Equal(t, "CS101", rec.Code)
	assert.Equal(t, model.SessionLecture, rec.Component)
	assert.Equal(t, 1, rec.Sessions)
	assert.Empty(t, rec.Reason)
}

func TestPlaceRandomAvoidsReservedWindows(t *testing.T) {
	reservedRows := []*model.ReservedRow{
		reservedRow("Monday", "09:00", "10:30", "CSE", "4"),
	}
	gen := &scriptedGen{slots: [][2]int{{0, 0}, {1, 0}}}
	alloc, _ := newTestAllocator(nil, reservedRows, gen, 10)
	table := model.NewTimetable(model.NewCalendar(), "CSE", "4", "A")

	require.True(t, alloc.PlaceRandom(table, lectureRequest("CS101", "Dr. A")))
	assert.Equal(t, model.CellEmpty, table.Grid[0][0].Kind)
	assert.Equal(t, model.CellSessionStart, table.Grid[1][0].Kind)
}

func TestPlaceRandomUsesPlaceholderWithoutRooms(t *testing.T) {
	gen := &scriptedGen{slots: [][2]int{{0, 0}}}
	alloc, _ := newTestAllocator(nil, nil, gen, 10)
	table := model.NewTimetable(model.NewCalendar(), "CSE", "4", "A")

	require.True(t, alloc.PlaceRandom(table, lectureRequest("CS101", "Dr. A")))
	assert.Equal(t, DefaultRoomID, table.Grid[0][0].Room)
}

func TestPlaceLabCombinesAdjacentRooms(t *testing.T) {
	rooms := []*model.Room{
		model.NewRoom("CL1", 30, "COMPUTER_LAB", "101"),
		model.NewRoom("CL2", 30, "COMPUTER_LAB", "102"),
	}
	alloc, tracker := newTestAllocator(rooms, nil, &scriptedGen{}, 10)
	table := model.NewTimetable(model.NewCalendar(), "CSE", "4", "A")

	req := lectureRequest("CS204", "Dr. A")
	req.Session = model.SessionLab
	req.Capacity = 50
	require.True(t, alloc.PlaceLab(table, req))
	assert.Zero(t, tracker.Count())

	// Labs need four contiguous slots, which only exist after lunch. The
	// first feasible start on the first day is slot 11.
	cell := table.Grid[0][11]
	assert.Equal(t, model.CellSessionStart, cell.Kind)
	assert.Equal(t, model.SessionLab, cell.Session)
	assert.Equal(t, "CL1,CL2", cell.Room)
}

func TestPlaceLabRecordsFailureWithReason(t *testing.T) {
	rooms := []*model.Room{
		model.NewRoom("LH1", 240, "LECTURE_ROOM", "001"),
	}
	alloc, tracker := newTestAllocator(rooms, nil, &scriptedGen{}, 10)
	table := model.NewTimetable(model.NewCalendar(), "CSE", "4", "A")

	req := lectureRequest("CS204", "Dr. A")
	req.Session = model.SessionLab
	assert.False(t, alloc.PlaceLab(table, req))
	require.Equal(t, 1, tracker.Count())
	rec := tracker.Records()[0]
	assert.Equal(t, model.SessionLab, rec.Component)
	assert.Equal(t, labFailureReason, rec.Reason)
}

func TestPlaceLabRespectsDailyComponentLimit(t *testing.T) {
	rooms := []*model.Room{
		model.NewRoom("CL1", 120, "COMPUTER_LAB", "101"),
	}
	alloc, _ := newTestAllocator(rooms, nil, &scriptedGen{}, 10)
	table := model.NewTimetable(model.NewCalendar(), "CSE", "4", "A")

	// Dr. A already carries two components on Monday in this cohort.
	alloc.faculty.Commit("Dr. A", 0, 0, "CSE", "4", "CS101", model.SessionLecture)
	alloc.faculty.Commit("Dr. A", 0, 4, "CSE", "4", "CS102", model.SessionTutorial)

	req := lectureRequest("CS204", "Dr. A")
	req.Session = model.SessionLab
	require.True(t, alloc.PlaceLab(table, req))
	assert.Equal(t, model.CellSessionStart, table.Grid[1][11].Kind)
	assert.Equal(t, model.CellEmpty, table.Grid[0][11].Kind)
}
