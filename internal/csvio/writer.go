package csvio

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/Venkatesh961/TimeTable-Generator/pkg/model"
)

// ScheduleCSVRow is one placed session in the flat export format. Only the
// first slot of a session becomes a row; continuation slots are implied by
// the duration.
type ScheduleCSVRow struct {
	Department string `csv:"Department"`
	Semester   string `csv:"Semester"`
	Section    string `csv:"Section"`
	Day        string `csv:"Day"`
	Start      string `csv:"Start"`
	End        string `csv:"End"`
	Component  string `csv:"Component"`
	Code       string `csv:"Course Code"`
	Name       string `csv:"Course Name"`
	Faculty    string `csv:"Faculty"`
	Room       string `csv:"Room"`
}

// ExportSchedule flattens every section grid into CSV rows and writes them to
// the given path.
func ExportSchedule(res *model.Result, cal *model.Calendar, path string) error {
	var rows []*ScheduleCSVRow
	for _, t := range res.Tables {
		for day := 0; day < model.NumberOfDays; day++ {
			for slot := 0; slot < model.SlotsPerDay; slot++ {
				cell := t.Grid[day][slot]
				if cell.Kind != model.CellSessionStart {
					continue
				}
				end := slot + cell.Session.Duration() - 1
				rows = append(rows, &ScheduleCSVRow{
					Department: t.Department,
					Semester:   t.Semester,
					Section:    t.Section,
					Day:        model.DayNames[day],
					Start:      model.Clock(cal.Slots[slot].Start),
					End:        model.Clock(cal.Slots[end].End),
					Component:  string(cell.Session),
					Code:       cell.Code,
					Name:       cell.Name,
					Faculty:    cell.Faculty,
					Room:       cell.Room,
				})
			}
		}
	}
	return writeCSV(path, &rows)
}

// ExportUnscheduled writes the unplaced session records.
func ExportUnscheduled(res *model.Result, path string) error {
	rows := make([]*model.UnscheduledRecord, 0, len(res.Unscheduled))
	for i := range res.Unscheduled {
		rows = append(rows, &res.Unscheduled[i])
	}
	return writeCSV(path, &rows)
}

// ExportSelfStudy writes the self-study-only course list.
func ExportSelfStudy(res *model.Result, path string) error {
	rows := make([]*model.SelfStudyCourse, 0, len(res.SelfStudyOnly))
	for i := range res.SelfStudyOnly {
		rows = append(rows, &res.SelfStudyOnly[i])
	}
	return writeCSV(path, &rows)
}

func writeCSV(path string, rows any) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()
	if err := gocsv.MarshalFile(rows, out); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
