package scheduler

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/Venkatesh961/TimeTable-Generator/pkg/model"
)

// ReservedSlotIndex answers whether a slot is blocked for a given
// department/semester. Built once per run.
type ReservedSlotIndex struct {
	windows []model.ReservedWindow
}

// BuildReservedIndex parses reservation rows. Malformed rows are skipped with
// a warning rather than aborting the run. A semester entry that is a bare
// numeral expands to its lettered section variants ("4" -> "4A", "4B", "4").
func BuildReservedIndex(rows []*model.ReservedRow, log zerolog.Logger) *ReservedSlotIndex {
	idx := &ReservedSlotIndex{}
	for _, row := range rows {
		day := model.DayIndex(strings.TrimSpace(row.Day))
		if day < 0 {
			log.Warn().Str("day", row.Day).Msg("reserved slot row has unknown day, skipping")
			continue
		}
		start, err := model.ParseClock(strings.TrimSpace(row.StartTime))
		if err != nil {
			log.Warn().Err(err).Msg("reserved slot row has bad start time, skipping")
			continue
		}
		end, err := model.ParseClock(strings.TrimSpace(row.EndTime))
		if err != nil {
			log.Warn().Err(err).Msg("reserved slot row has bad end time, skipping")
			continue
		}
		idx.windows = append(idx.windows, model.ReservedWindow{
			Day:        day,
			Start:      start,
			End:        end,
			Department: strings.TrimSpace(row.Department),
			Semesters:  expandSemesters(row.Semester),
		})
	}
	return idx
}

func expandSemesters(field string) []string {
	var out []string
	for _, part := range strings.Split(field, ";") {
		s := strings.TrimSpace(part)
		if s == "" {
			continue
		}
		if isDigits(s) {
			out = append(out, s+"A", s+"B", s)
		} else {
			out = append(out, s)
		}
	}
	return out
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}

// IsReserved reports whether the slot is blocked for the department/semester
// on the given day. Department "ALL" matches everything; a semester matches
// when it equals or starts with a listed scope.
func (x *ReservedSlotIndex) IsReserved(slot model.TimeSlot, day int, department, semester string) bool {
	for _, w := range x.windows {
		if w.Day != day {
			continue
		}
		if w.Department != "ALL" && w.Department != department {
			continue
		}
		if !semesterMatches(semester, w.Semesters) {
			continue
		}
		if w.Covers(slot) {
			return true
		}
	}
	return false
}

func semesterMatches(semester string, scopes []string) bool {
	for _, s := range scopes {
		if semester == s || strings.HasPrefix(semester, s) {
			return true
		}
	}
	return false
}

// AnyReserved reports whether any slot of [start,start+duration) is blocked.
func (x *ReservedSlotIndex) AnyReserved(cal *model.Calendar, day, start, duration int, department, semester string) bool {
	for i := 0; i < duration; i++ {
		if start+i >= len(cal.Slots) {
			return true
		}
		if x.IsReserved(cal.Slots[start+i], day, department, semester) {
			return true
		}
	}
	return false
}
