package scheduler

import (
	"fmt"
	"strings"

	"github.com/Venkatesh961/TimeTable-Generator/pkg/model"
)

// Validate rebuilds occupancy from the output grids and checks every
// scheduling invariant: no faculty or room double-booking, nothing on break
// or reserved slots, per-day component limits, and no duplicate same-day
// lectures of one course. Returns false and a report for invalid schedules.
func Validate(res *model.Result, cal *model.Calendar, reserved *ReservedSlotIndex) (bool, string) {
	var (
		facultyUse = make(map[string]int) // faculty|day|slot
		roomUse    = make(map[string]int) // room|day|slot
		components = make(map[string]int) // faculty|day|dept|sem
		lectures   = make(map[string]int) // faculty|day|code

		facultyClash, roomClash, breakClash, reservedClash bool
		componentOverload, duplicateLecture                bool
		detail                                             strings.Builder
	)

	for _, t := range res.Tables {
		for day := 0; day < model.NumberOfDays; day++ {
			for slot := 0; slot < model.SlotsPerDay; slot++ {
				cell := t.Grid[day][slot]
				if cell.Kind != model.CellSessionStart {
					continue
				}
				duration := cell.Session.Duration()
				for i := 0; i < duration; i++ {
					cur := slot + i
					if cal.IsBreak(cur) {
						breakClash = true
						fmt.Fprintf(&detail, "- %s %s covers break slot %d on %s\n",
							t.Label(), cell.Code, cur, model.DayNames[day])
					}
					if reserved != nil && reserved.IsReserved(cal.Slots[cur], day, t.Department, t.Semester) {
						reservedClash = true
						fmt.Fprintf(&detail, "- %s %s covers reserved slot %d on %s\n",
							t.Label(), cell.Code, cur, model.DayNames[day])
					}
					fkey := fmt.Sprintf("%s|%d|%d", cell.Faculty, day, cur)
					facultyUse[fkey]++
					if facultyUse[fkey] > 1 {
						facultyClash = true
						fmt.Fprintf(&detail, "- %s double-booked on %s slot %d\n",
							cell.Faculty, model.DayNames[day], cur)
					}
					for _, room := range strings.Split(cell.Room, ",") {
						if room == "" || room == DefaultRoomID {
							continue
						}
						rkey := fmt.Sprintf("%s|%d|%d", room, day, cur)
						roomUse[rkey]++
						if roomUse[rkey] > 1 {
							roomClash = true
							fmt.Fprintf(&detail, "- room %s double-booked on %s slot %d\n",
								room, model.DayNames[day], cur)
						}
					}
				}
				switch cell.Session {
				case model.SessionLecture, model.SessionLab, model.SessionTutorial:
					ckey := fmt.Sprintf("%s|%d|%s|%s", cell.Faculty, day, t.Department, t.Semester)
					components[ckey]++
					if components[ckey] > 2 {
						componentOverload = true
						fmt.Fprintf(&detail, "- %s has more than 2 components on %s (%s %s)\n",
							cell.Faculty, model.DayNames[day], t.Department, t.Semester)
					}
				}
				if cell.Session == model.SessionLecture {
					lkey := fmt.Sprintf("%s|%d|%s", cell.Faculty, day, cell.Code)
					lectures[lkey]++
					if lectures[lkey] > 1 {
						duplicateLecture = true
						fmt.Fprintf(&detail, "- %s lectures %s twice on %s\n",
							cell.Faculty, cell.Code, model.DayNames[day])
					}
				}
			}
		}
	}

	var report strings.Builder
	writeCheck(&report, "Faculty collision check", !facultyClash)
	writeCheck(&report, "Room collision check", !roomClash)
	writeCheck(&report, "Break window check", !breakClash)
	writeCheck(&report, "Reserved window check", !reservedClash)
	writeCheck(&report, "Daily component limit check", !componentOverload)
	writeCheck(&report, "Duplicate lecture check", !duplicateLecture)
	report.WriteString(detail.String())

	valid := !facultyClash && !roomClash && !breakClash && !reservedClash &&
		!componentOverload && !duplicateLecture
	return valid, report.String()
}

func writeCheck(b *strings.Builder, name string, ok bool) {
	if ok {
		fmt.Fprintf(b, "[  OK]: %s.\n", name)
	} else {
		fmt.Fprintf(b, "[FAIL]: %s.\n", name)
	}
}
