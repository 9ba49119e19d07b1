package scheduler

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Venkatesh961/TimeTable-Generator/pkg/model"
)

func reservedRow(day, start, end, dept, sem string) *model.ReservedRow {
	return &model.ReservedRow{Day: day, StartTime: start, EndTime: end, Department: dept, Semester: sem}
}

func TestBuildReservedIndexSkipsMalformedRows(t *testing.T) {
	idx := BuildReservedIndex([]*model.ReservedRow{
		reservedRow("Monday", "09:00", "10:00", "CSE", "4"),
		reservedRow("Someday", "09:00", "10:00", "CSE", "4"),
		reservedRow("Tuesday", "late", "10:00", "CSE", "4"),
		reservedRow("Tuesday", "09:00", "", "CSE", "4"),
	}, zerolog.Nop())

	require.Len(t, idx.windows, 1)
	assert.Equal(t, 0, idx.windows[0].Day)
}

func TestExpandSemesters(t *testing.T) {
	assert.Equal(t, []string{"4A", "4B", "4"}, expandSemesters("4"))
	assert.Equal(t, []string{"4A"}, expandSemesters("4A"))
	assert.Equal(t, []string{"2A", "2B", "2", "6A", "6B", "6"}, expandSemesters("2; 6"))
	assert.Nil(t, expandSemesters(""))
}

func TestIsReserved(t *testing.T) {
	cal := model.NewCalendar()
	idx := BuildReservedIndex([]*model.ReservedRow{
		reservedRow("Monday", "09:00", "10:00", "ALL", "4"),
		reservedRow("Wednesday", "15:00", "16:00", "ECE", "2A"),
	}, zerolog.Nop())

	// Department ALL with an expanded semester scope.
	assert.True(t, idx.IsReserved(cal.Slots[0], 0, "CSE", "4"))
	assert.True(t, idx.IsReserved(cal.Slots[1], 0, "MME", "4A"))
	assert.False(t, idx.IsReserved(cal.Slots[2], 0, "CSE", "4"))
	assert.False(t, idx.IsReserved(cal.Slots[0], 1, "CSE", "4"))
	assert.False(t, idx.IsReserved(cal.Slots[0], 0, "CSE", "6"))

	// 15:00 is slot 12, 16:00 ends slot 13.
	assert.True(t, idx.IsReserved(cal.Slots[12], 2, "ECE", "2A"))
	assert.True(t, idx.IsReserved(cal.Slots[13], 2, "ECE", "2A"))
	assert.False(t, idx.IsReserved(cal.Slots[14], 2, "ECE", "2A"))
	assert.False(t, idx.IsReserved(cal.Slots[12], 2, "CSE", "2A"))
}

func TestAnyReserved(t *testing.T) {
	cal := model.NewCalendar()
	idx := BuildReservedIndex([]*model.ReservedRow{
		reservedRow("Monday", "09:30", "10:00", "CSE", "4"),
	}, zerolog.Nop())

	// A window whose last slot is blocked is rejected as a whole.
	assert.True(t, idx.AnyReserved(cal, 0, 0, 2, "CSE", "4"))
	assert.False(t, idx.AnyReserved(cal, 0, 2, 1, "CSE", "4"))
	// A window running off the end of the day is rejected.
	assert.True(t, idx.AnyReserved(cal, 0, model.SlotsPerDay-1, 2, "CSE", "4"))
}

func TestReservedWindowCovers(t *testing.T) {
	w := model.ReservedWindow{Start: 9 * 60, End: 10 * 60}
	cal := model.NewCalendar()
	assert.True(t, w.Covers(cal.Slots[0]))
	assert.True(t, w.Covers(cal.Slots[1]))
	assert.False(t, w.Covers(cal.Slots[2]))
}
