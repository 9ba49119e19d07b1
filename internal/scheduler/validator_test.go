package scheduler

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Venkatesh961/TimeTable-Generator/pkg/model"
)

func TestValidateCleanSchedule(t *testing.T) {
	cal := model.NewCalendar()
	table := model.NewTimetable(cal, "CSE", "4", "")
	table.Place(0, 0, model.SessionLecture, "CS101", "Algorithms", "Dr. A", "LH1")
	table.Place(1, 11, model.SessionLab, "CS204", "Systems Lab", "Dr. B", "CL1,CL2")

	valid, report := Validate(&model.Result{Tables: []*model.Timetable{table}}, cal, nil)
	assert.True(t, valid, report)
	assert.NotContains(t, report, "[FAIL]")
	assert.Contains(t, report, "[  OK]: Faculty collision check.")
}

func TestValidateDetectsFacultyAndRoomClashes(t *testing.T) {
	cal := model.NewCalendar()
	a := model.NewTimetable(cal, "CSE", "4", "A")
	b := model.NewTimetable(cal, "CSE", "4", "B")
	a.Place(0, 11, model.SessionLecture, "CS101", "Algorithms", "Dr. A", "LH1")
	b.Place(0, 12, model.SessionLecture, "CS102", "Databases", "Dr. A", "LH1")

	valid, report := Validate(&model.Result{Tables: []*model.Timetable{a, b}}, cal, nil)
	require.False(t, valid)
	assert.Contains(t, report, "[FAIL]: Faculty collision check.")
	assert.Contains(t, report, "[FAIL]: Room collision check.")
	assert.Contains(t, report, "Dr. A double-booked on Monday")
	assert.Contains(t, report, "room LH1 double-booked on Monday")
}

func TestValidateDetectsBreakOverlap(t *testing.T) {
	cal := model.NewCalendar()
	table := model.NewTimetable(cal, "CSE", "4", "")
	// A lecture starting at slot 2 runs into the morning break at slot 3.
	table.Place(0, 2, model.SessionLecture, "CS101", "Algorithms", "Dr. A", "LH1")

	valid, report := Validate(&model.Result{Tables: []*model.Timetable{table}}, cal, nil)
	require.False(t, valid)
	assert.Contains(t, report, "[FAIL]: Break window check.")
}

func TestValidateDetectsReservedOverlap(t *testing.T) {
	cal := model.NewCalendar()
	idx := BuildReservedIndex([]*model.ReservedRow{
		reservedRow("Monday", "09:00", "10:00", "ALL", "4"),
	}, zerolog.Nop())
	table := model.NewTimetable(cal, "CSE", "4", "")
	table.Place(0, 0, model.SessionTutorial, "CS101", "Algorithms", "Dr. A", "LH1")

	valid, report := Validate(&model.Result{Tables: []*model.Timetable{table}}, cal, idx)
	require.False(t, valid)
	assert.Contains(t, report, "[FAIL]: Reserved window check.")
}

func TestValidateDetectsComponentOverloadAndDuplicateLecture(t *testing.T) {
	cal := model.NewCalendar()
	table := model.NewTimetable(cal, "CSE", "4", "")
	table.Place(0, 0, model.SessionLecture, "CS101", "Algorithms", "Dr. A", "LH1")
	table.Place(0, 4, model.SessionTutorial, "CS102", "Databases", "Dr. A", "LH2")
	table.Place(0, 11, model.SessionLecture, "CS101", "Algorithms", "Dr. A", "LH1")

	valid, report := Validate(&model.Result{Tables: []*model.Timetable{table}}, cal, nil)
	require.False(t, valid)
	assert.Contains(t, report, "[FAIL]: Daily component limit check.")
	assert.Contains(t, report, "[FAIL]: Duplicate lecture check.")
	assert.Contains(t, report, "Dr. A lectures CS101 twice on Monday")
}

func TestValidateIgnoresPlaceholderRooms(t *testing.T) {
	cal := model.NewCalendar()
	a := model.NewTimetable(cal, "CSE", "4", "A")
	b := model.NewTimetable(cal, "ECE", "2", "")
	a.Place(0, 11, model.SessionLecture, "CS101", "Algorithms", "Dr. A", DefaultRoomID)
	b.Place(0, 11, model.SessionLecture, "EC101", "Circuits", "Dr. B", DefaultRoomID)

	valid, report := Validate(&model.Result{Tables: []*model.Timetable{a, b}}, cal, nil)
	assert.True(t, valid, report)
}

func TestValidateReportLinesPerCheck(t *testing.T) {
	valid, report := Validate(&model.Result{}, model.NewCalendar(), nil)
	assert.True(t, valid)
	assert.Equal(t, 6, strings.Count(report, "[  OK]"))
}
